package json

// Options configures the JSON adapter's serializer; the parser does
// not consult any options.
type Options struct {
	Pretty bool
	Indent int
}

// NewOptions builds Options from the loosely-typed map the script
// header parses adapter option blocks into.
func NewOptions(raw map[string]any) Options {
	opts := Options{Pretty: true, Indent: 2}

	if raw == nil {
		return opts
	}

	if v, ok := raw["pretty"].(bool); ok {
		opts.Pretty = v
	}

	if v, ok := raw["indent"].(int64); ok {
		opts.Indent = int(v)
	}

	return opts
}

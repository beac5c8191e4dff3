package yaml

// Options configures the YAML adapter. The only header option key is
// `indent`, the serializer's indentation width (default 2).
type Options struct {
	Indent int
}

// NewOptions builds Options from a script header's option block.
func NewOptions(raw map[string]any) Options {
	opts := Options{Indent: 2}

	if raw == nil {
		return opts
	}

	if v, ok := raw["indent"].(int64); ok {
		opts.Indent = int(v)
	}

	return opts
}

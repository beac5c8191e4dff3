package csv

import "github.com/utlx-lang/utlx/numfmt"

// Options configures both directions of the CSV adapter.
type Options struct {
	Headers        bool
	Delimiter      rune
	Quote          rune
	SkipEmptyLines bool
	RegionalFormat numfmt.Format
	Decimals       int
	UseThousands   bool
	IncludeBOM     bool
}

// NewOptions builds Options from a script header's option block,
// applying the documented defaults.
func NewOptions(raw map[string]any) Options {
	opts := Options{
		Headers:        true,
		Delimiter:      ',',
		Quote:          '"',
		SkipEmptyLines: true,
		RegionalFormat: numfmt.None,
		Decimals:       2,
		UseThousands:   true,
	}

	if raw == nil {
		return opts
	}

	if v, ok := raw["headers"].(bool); ok {
		opts.Headers = v
	}

	if v, ok := raw["delimiter"].(string); ok && len(v) > 0 {
		opts.Delimiter = delimiterRune(v)
	}

	if v, ok := raw["quote"].(string); ok && len(v) > 0 {
		opts.Quote = []rune(v)[0]
	}

	if v, ok := raw["skipEmptyLines"].(bool); ok {
		opts.SkipEmptyLines = v
	}

	if v, ok := raw["regionalFormat"].(string); ok {
		opts.RegionalFormat = numfmt.Format(v)
	}

	if v, ok := raw["decimals"].(int64); ok {
		opts.Decimals = int(v)
	}

	if v, ok := raw["useThousands"].(bool); ok {
		opts.UseThousands = v
	}

	if v, ok := raw["includeBOM"].(bool); ok {
		opts.IncludeBOM = v
	}

	return opts
}

func delimiterRune(s string) rune {
	switch s {
	case "\\t", "\t":
		return '\t'
	default:
		return []rune(s)[0]
	}
}

package parser

// InputDirective is one `input <format> [ident-suffix]? [options]?`
// header line. Name is "" for the single unnamed input (bound to
// `$input`); otherwise the directive was `input-<name>` and the
// parsed UDM binds to `$input-<name>`.
type InputDirective struct {
	Name    string
	Format  string
	Options map[string]any
}

// OutputDirective is one named output in a multi-output script, or
// the sole output of a single-output script (Name == "").
type OutputDirective struct {
	Name    string
	Format  string
	Options map[string]any
}

// Header is the parsed script header: version pragma, ordered
// input directives, and one or more output directives.
type Header struct {
	Version string
	Inputs  []InputDirective
	Outputs []OutputDirective
}

// MultiOutput reports whether the script declares more than one named
// output (the `output { name: fmt, ... }` block form).
func (h *Header) MultiOutput() bool {
	return len(h.Outputs) > 1 || (len(h.Outputs) == 1 && h.Outputs[0].Name != "")
}

package engine

import "errors"

// Sentinel errors for façade-level misuse, distinct from the
// structured [github.com/utlx-lang/utlx/errs.Error] the interpreter
// and adapters raise for script-level failures.
var (
	// ErrUnknownFormat marks a header or option `format` string none
	// of the adapters recognize.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrUnknownInput marks a TransformMulti call missing a byte blob
	// for a declared input name.
	ErrUnknownInput = errors.New("missing input")
	// ErrUnknownOutput marks a request for a named output the script
	// never declared.
	ErrUnknownOutput = errors.New("unknown output")
	// ErrSingleOutput marks a call to Transform (the single-output
	// entry point) against a script with a multi-output header.
	ErrSingleOutput = errors.New("script declares multiple outputs")
	// ErrSniffFailed marks "auto" format detection unable to
	// recognize the input bytes as any supported format.
	ErrSniffFailed = errors.New("could not detect input format")
)

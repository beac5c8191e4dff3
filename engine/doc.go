// Package engine is the compile-once, execute-many façade tying the
// lexer/parser, interpreter, and format adapters together:
// [Compile] lexes and parses a script once into a cacheable [Engine];
// [Engine.Transform] and [Engine.TransformMulti] bind input bytes
// through the declared adapters, run the interpreter, and serialize
// the result through the declared output adapter(s).
//
// Construction is functional-options over a small struct built once;
// façade misuse surfaces as sentinel errors from errors.New wrapped
// with fmt.Errorf("%w: ...", cause) at each call site, while domain
// errors (bad script, bad input, bad output) surface as the shared
// [github.com/utlx-lang/utlx/errs.Error] the interpreter and adapters
// already raise.
package engine

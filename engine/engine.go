package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"

	"github.com/utlx-lang/utlx/interp"
	"github.com/utlx-lang/utlx/parser"
	"github.com/utlx-lang/utlx/udm"
)

// discardLogger is the zero-value logger for a run with no [WithLogger]
// option: every call is a no-op, so callers pay nothing for logging they
// never asked for.
var discardLogger = slog.New(slog.DiscardHandler)

// Engine is a compiled UTL-X script: header metadata plus the parsed
// [parser.Program], ready to run against input bytes any number of
// times. An Engine holds no mutable state of its own and is safe to
// share across goroutines.
type Engine struct {
	src    string
	header *parser.Header
	prog   *parser.Program
}

var compileCache sync.Map // hash string -> *Engine

// Compile lexes and parses source into an [Engine], or returns the
// cached Engine for the same source, keyed by script hash.
func Compile(source string) (*Engine, error) {
	sum := sha256.Sum256([]byte(source))
	key := hex.EncodeToString(sum[:])

	if cached, ok := compileCache.Load(key); ok {
		return cached.(*Engine), nil
	}

	header, prog, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	eng := &Engine{src: source, header: header, prog: prog}

	actual, _ := compileCache.LoadOrStore(key, eng)

	return actual.(*Engine), nil
}

// Option configures a single [Engine.Transform] / [Engine.TransformMulti] call.
type Option func(*runConfig)

type runConfig struct {
	ctx      context.Context
	maxDepth int
	logger   *slog.Logger
}

// WithContext attaches a cancellation context, checked at every AST
// node and stdlib call boundary for the duration of this run.
func WithContext(ctx context.Context) Option {
	return func(c *runConfig) { c.ctx = ctx }
}

// WithMaxDepth overrides [interp.DefaultMaxDepth] for this run.
func WithMaxDepth(n int) Option {
	return func(c *runConfig) { c.maxDepth = n }
}

// WithLogger attaches a [*slog.Logger] for this run. The engine logs
// adapter dispatch and serialization timings at [slog.LevelDebug] and
// an XML parse failure at [slog.LevelWarn] before returning it as an
// error; the interpreter logs
// template dispatch at [slog.LevelDebug]. With no WithLogger option,
// logging is a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) { c.logger = logger }
}

func newRunConfig(opts []Option) *runConfig {
	c := &runConfig{ctx: context.Background(), maxDepth: interp.DefaultMaxDepth, logger: discardLogger}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Header exposes the compiled script's parsed header, e.g. for a CLI
// to validate `--input`/`--output` flags against declared directives
// before running.
func (e *Engine) Header() *parser.Header { return e.header }

// Source returns the script text this Engine was compiled from.
func (e *Engine) Source() string { return e.src }

// Transform runs a single-input, single-output script: input is
// parsed through the sole declared input adapter, bound to `$input`,
// and the body result is serialized through the sole declared output
// adapter.
//
// callOpts, when non-nil, is merged over the header's declared input
// options; it is not merged into output options, which the header
// alone controls.
func (e *Engine) Transform(input []byte, callOpts map[string]any, opts ...Option) ([]byte, error) {
	if e.header.MultiOutput() {
		return nil, fmt.Errorf("%w: use TransformMulti", ErrSingleOutput)
	}

	cfg := newRunConfig(opts)

	in := e.header.Inputs[0]
	env := interp.NewEnv()

	v, err := parseAdapter(cfg.logger, in.Format, input, mergeOptions(in.Options, callOpts))
	if err != nil {
		return nil, err
	}

	env.Set(inputBindingName(in.Name), v)

	result, err := e.run(env, cfg)
	if err != nil {
		return nil, err
	}

	out := e.header.Outputs[0]

	return serializeAdapter(cfg.logger, out.Format, result, out.Options)
}

// TransformMulti runs a script against one or more named inputs.
// inputs is keyed by declared input name ("" for the sole unnamed
// input); callOpts, also keyed by input name, is optional per-input
// option overrides.
//
// The return value is a []byte for a single-output script, or a
// map[string][]byte keyed by output name for a multi-output script.
func (e *Engine) TransformMulti(inputs map[string][]byte, callOpts map[string]map[string]any, opts ...Option) (any, error) {
	cfg := newRunConfig(opts)

	env := interp.NewEnv()

	for _, in := range e.header.Inputs {
		data, ok := inputs[in.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInput, in.Name)
		}

		v, err := parseAdapter(cfg.logger, in.Format, data, mergeOptions(in.Options, callOpts[in.Name]))
		if err != nil {
			return nil, err
		}

		env.Set(inputBindingName(in.Name), v)
	}

	result, err := e.run(env, cfg)
	if err != nil {
		return nil, err
	}

	if !e.header.MultiOutput() {
		out := e.header.Outputs[0]

		return serializeAdapter(cfg.logger, out.Format, result, out.Options)
	}

	rendered := make(map[string][]byte, len(e.header.Outputs))

	for _, out := range e.header.Outputs {
		branch := result.GetProperty(out.Name)

		b, serr := serializeAdapter(cfg.logger, out.Format, branch, out.Options)
		if serr != nil {
			return nil, fmt.Errorf("output %q: %w", out.Name, serr)
		}

		rendered[out.Name] = b
	}

	return rendered, nil
}

func (e *Engine) run(env *interp.Env, cfg *runConfig) (*udm.Value, error) {
	ip := interp.New(e.prog,
		interp.WithContext(cfg.ctx),
		interp.WithMaxDepth(cfg.maxDepth),
		interp.WithLogger(cfg.logger),
	)

	return ip.Run(e.prog, env)
}

func inputBindingName(name string) string {
	if name == "" {
		return "$input"
	}

	return "$input-" + name
}

// mergeOptions overlays call-supplied keys on top of the header's
// declared option block, without mutating either map.
func mergeOptions(declared map[string]any, call map[string]any) map[string]any {
	if len(declared) == 0 && len(call) == 0 {
		return nil
	}

	merged := make(map[string]any, len(declared)+len(call))

	for k, v := range declared {
		merged[k] = v
	}

	for k, v := range call {
		merged[k] = v
	}

	return merged
}

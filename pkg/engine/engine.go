// Package engine evaluates the box DSL. It wraps zygomys in a sandboxed
// environment and produces a scene of named boxes from user source code.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/boxkit/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
	"go.uber.org/zap"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalResult bundles the full output of an evaluation.
type EvalResult struct {
	Scene    *scene.Scene
	Value    string // printed form of the last expression
	Errors   []EvalError
	Findings []scene.Finding
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use; each
// call to Evaluate creates a fresh sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	timeout time.Duration
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout sets the hard limit for a single evaluation. Non-positive
// values keep EvalTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates a new Engine instance.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: EvalTimeout, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeout returns the per-evaluation limit.
func (e *Engine) Timeout() time.Duration {
	return e.timeout
}

// Evaluate takes Lisp source code and produces a new Scene.
//
// Return semantics:
//   - On success: returns scene + nil errors + nil error
//   - On parse/eval failure: returns nil scene + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*scene.Scene, []EvalError, error) {
	res, err := e.run(source)
	if err != nil {
		return nil, nil, err
	}
	return res.scene, res.errors, nil
}

// EvaluateResult is Evaluate plus the printed value of the last expression
// and the validation findings of the resulting scene.
func (e *Engine) EvaluateResult(source string) (*EvalResult, error) {
	res, err := e.run(source)
	if err != nil {
		return nil, err
	}
	out := &EvalResult{Scene: res.scene, Value: res.value, Errors: res.errors}
	if res.scene != nil {
		out.Findings = scene.Validate(res.scene)
	}
	return out, nil
}

func (e *Engine) run(source string) (evalResult, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	log := e.log.With(zap.Uint64("generation", gen))
	log.Debug("evaluation started", zap.Int("bytes", len(source)))
	start := time.Now()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		ch <- e.evaluate(source)
	}()

	res, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.timeout)
	if err != nil {
		log.Warn("evaluation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return evalResult{}, err
	}

	fields := []zap.Field{zap.Duration("elapsed", time.Since(start)), zap.Int("errors", len(res.errors))}
	if res.scene != nil {
		fields = append(fields, zap.Int("boxes", res.scene.NodeCount()))
	}
	log.Debug("evaluation finished", fields...)
	return res, nil
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) evalResult {
	// Empty source is a valid program that produces an empty scene.
	if strings.TrimSpace(source) == "" {
		return evalResult{scene: scene.New()}
	}

	// Sandbox mode keeps user code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	s := scene.New()
	registerBuiltins(env, s)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return evalResult{errors: parseZygomysError(err)}
	}

	v, err := env.Run()
	if err != nil {
		return evalResult{errors: parseZygomysError(err)}
	}

	res := evalResult{scene: s}
	if v != nil {
		res.value = v.SexpString(nil)
	}
	return res
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values,
// pulling the line number out of the message when there is one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}

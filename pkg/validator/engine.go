package validator

import (
	"log/slog"

	"github.com/dmitrymomot/freshval/pkg/logger"
)

// Engine owns one validation session: its custom checks, the accumulated
// errors and the working copy of the validated data. An Engine is not safe
// for concurrent use.
type Engine struct {
	checks     *Registry
	defaults   *Registry
	mode       TransformationMode
	logger     *slog.Logger
	logSkipped bool

	errors ValidationErrors

	own        ownership
	working    any
	hasWorking bool
	root       identity
	rootKeyed  bool
	visited    Keys
}

// Option configures an Engine.
type Option func(*Engine)

// WithTransformationMode sets the transformation mode. The mode is checked
// when the first chain is opened.
func WithTransformationMode(mode TransformationMode) Option {
	return func(e *Engine) { e.mode = mode }
}

// WithLogger sets the logger used for debug tracing. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaults replaces the built-in catalog consulted after the engine's own checks.
func WithDefaults(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.defaults = r
		}
	}
}

// WithSkipLogging enables debug records for checks skipped by an aborted
// scope or a satisfied OR group.
func WithSkipLogging(enabled bool) Option {
	return func(e *Engine) { e.logSkipped = enabled }
}

// New creates an Engine backed by DefaultRegistry in ModeCopy.
func New(opts ...Option) *Engine {
	e := &Engine{
		checks:   &Registry{checks: make(map[string]Check)},
		defaults: DefaultRegistry(),
		mode:     ModeCopy,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("validator"))
	return e
}

// NewFromConfig creates an Engine from cfg, rejecting unknown modes up front.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	mode, err := ParseTransformationMode(cfg.TransformationMode)
	if err != nil {
		return nil, err
	}
	base := []Option{WithTransformationMode(mode), WithSkipLogging(cfg.LogSkipped)}
	return New(append(base, opts...)...), nil
}

// Is opens a chain on value. name seeds every error path of the chain.
func (e *Engine) Is(value any, name string) *Chain {
	c := &Chain{engine: e}
	return c.Is(value, name)
}

// RegisterCheck adds a check to this engine only. It shadows any built-in
// check with the same name.
func (e *Engine) RegisterCheck(c Check) error {
	if err := e.checks.Register(c); err != nil {
		return err
	}
	e.logger.Debug("check registered", logger.Check(c.Name))
	return nil
}

// RegisterCheckFunc is the positional form of RegisterCheck.
func (e *Engine) RegisterCheckFunc(name string, continueOnFail bool, message string, fn ValidateFunc) error {
	return e.RegisterCheck(Check{
		Name:           name,
		ContinueOnFail: continueOnFail,
		Message:        message,
		Validate:       fn,
	})
}

func (e *Engine) lookup(name string) (Check, bool) {
	if c, ok := e.checks.Lookup(name); ok {
		return c, true
	}
	return e.defaults.Lookup(name)
}

// Errors returns a copy of the accumulated errors without clearing them.
func (e *Engine) Errors() ValidationErrors {
	if len(e.errors) == 0 {
		return nil
	}
	return append(ValidationErrors(nil), e.errors...)
}

// Err returns every accumulated error folded into one *CompoundError and
// clears the list. It returns nil when nothing failed.
func (e *Engine) Err() error {
	if len(e.errors) == 0 {
		return nil
	}
	compound := e.errors.Compound()
	e.errors = nil
	return compound
}

// Reset clears the accumulated errors and drops the working copy.
func (e *Engine) Reset() {
	e.errors = nil
	e.working = nil
	e.hasWorking = false
	e.rootKeyed = false
	e.visited = nil
}

// TransformationOutput returns the working copy: a transformed clone in
// ModeCopy, the caller's own value in ModeMutate and ModeNone.
func (e *Engine) TransformationOutput() any {
	return e.working
}

// open returns the working copy for root, reusing the current one when root
// is the same value the session already works on.
func (e *Engine) open(root any) any {
	if e.own == nil {
		own, err := ownershipFor(e.mode)
		if err != nil {
			panic(err)
		}
		e.own = own
	}

	id, keyed := identityOf(root)
	if e.hasWorking && keyed && e.rootKeyed && id == e.root {
		return e.working
	}

	e.working = e.own.acquire(root)
	e.hasWorking = true
	e.root = id
	e.rootKeyed = keyed
	e.visited = Keys{}
	e.logger.Debug("working copy acquired", logger.Mode(string(e.mode)))
	return e.working
}

func (e *Engine) transforms() bool {
	return e.own != nil && e.own.transforms()
}

func (e *Engine) markVisited(segments []string) {
	node := e.visited
	if node == nil {
		return
	}
	for _, s := range segments {
		next, ok := node[s]
		if !ok || next == nil {
			next = Keys{}
			node[s] = next
		}
		node = next
	}
}

func (e *Engine) addError(err ValidationError) int {
	e.errors = append(e.errors, err)
	e.logger.Debug("check failed",
		logger.Path(err.TargetName),
		slog.String("message", err.Message),
	)
	return len(e.errors) - 1
}

// popError retracts the provisional error of an OR group that turned out
// to be satisfied. Only the most recent error can be retracted.
func (e *Engine) popError(index int) {
	if index != len(e.errors)-1 {
		e.logger.Warn("provisional error is not the latest, keeping it",
			slog.Int("index", index),
			slog.Int("errors", len(e.errors)),
		)
		return
	}
	e.logger.Debug("or group satisfied, retracting error", logger.Path(e.errors[index].TargetName))
	e.errors = e.errors[:index]
}

// mergeOrError folds a failed OR alternative into the group's error.
func (e *Engine) mergeOrError(index int, path string, value any, failed ValidationError) {
	target := &e.errors[index]
	if !target.OrGroup {
		prefix := interpolate(orGroupPrefix, map[string]string{
			"name": path,
			"val":  formatValue(value),
		}, nil)
		target.Message = prefix + target.Message
		target.Parameters = []any{target.Parameters}
		target.OrGroup = true
	}
	target.Message += ", " + failed.Message
	target.Parameters = append(target.Parameters, failed.Parameters)
	e.logger.Debug("or alternative failed", logger.Path(path), slog.String("message", failed.Message))
}

const orGroupPrefix = "{name} ({val}) did not satisfy any validator in the OR expression: "

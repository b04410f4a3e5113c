package validator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/freshval/pkg/logger"
)

// frame is one scope of a chain: the focused value, the key it was reached
// by, and whether a non-continuing check already failed at or above it.
type frame struct {
	key    any
	name   string
	value  any
	failed bool
	// visit is the segment recorded for Whitelist: struct fields are
	// recorded under their Go name however they were addressed.
	visit string
}

// Chain is the fluent cursor returned by Engine.Is. Every method returns the
// same chain so calls can be strung together.
type Chain struct {
	engine *Engine
	frames []frame

	negateNext  bool
	orNext      bool
	orSatisfied bool

	// orError is the index of the error recorded for the running OR group,
	// or -1 when the group has not failed. Whether that error already merges
	// several alternatives is tracked by its OrGroup flag.
	orError int
	// orDepth is the scope depth at which the running OR group started.
	orDepth int
}

// Is resets the chain onto a new root value. Errors and the working copy of
// the engine carry over.
func (c *Chain) Is(value any, name string) *Chain {
	working := c.engine.open(value)
	c.frames = append(c.frames[:0], frame{name: name, value: working})
	c.negateNext = false
	c.orNext = false
	c.orSatisfied = false
	c.orError = -1
	c.orDepth = 0
	return c
}

// Not inverts the result of the next check. Two calls cancel out.
func (c *Chain) Not() *Chain {
	c.negateNext = !c.negateNext
	return c
}

// Or makes the next check an alternative of the previous one: the group
// passes when any of its checks passes and fails with a single error.
// When an alternative that stopped the scope is followed by one that
// passes, the scope is no longer stopped and later checks run.
func (c *Chain) Or() *Chain {
	c.orNext = true
	return c
}

// Property moves the focus to key of the current value. Keys address map
// entries, struct fields (by name or json tag) and slice indexes. Missing
// keys and non-container values yield nil.
func (c *Chain) Property(key any) *Chain {
	parent := c.top()
	name := fmt.Sprint(key)
	c.frames = append(c.frames, frame{
		key:    key,
		name:   name,
		value:  childValue(parent.value, key),
		failed: parent.failed,
		visit:  fieldName(parent.value, key, name),
	})
	c.engine.markVisited(c.segments())
	return c
}

// Back returns the focus to the parent value. It panics when called on the root.
func (c *Chain) Back() *Chain {
	if len(c.frames) <= 1 {
		panic(fmt.Errorf("%w: Back called on root %q", ErrNoParentScope, c.Path()))
	}
	c.frames = c.frames[:len(c.frames)-1]
	return c
}

// Path returns the dotted name of the focused value.
func (c *Chain) Path() string {
	parts := make([]string, 0, len(c.frames))
	for i, f := range c.frames {
		if i == 0 && f.name == "" {
			continue
		}
		parts = append(parts, f.name)
	}
	return strings.Join(parts, ".")
}

// Value returns the focused value as the chain currently sees it,
// including transformations applied so far.
func (c *Chain) Value() any {
	return c.top().value
}

// Check runs the registered check name against the focused value. It
// panics when no check with that name is registered.
func (c *Chain) Check(name string, params ...any) *Chain {
	check, ok := c.engine.lookup(name)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownCheck, name))
	}
	return c.run(check, params)
}

func (c *Chain) top() *frame {
	return &c.frames[len(c.frames)-1]
}

func (c *Chain) segments() []string {
	out := make([]string, 0, len(c.frames)-1)
	for _, f := range c.frames[1:] {
		out = append(out, f.visit)
	}
	return out
}

func (c *Chain) run(check Check, params []any) *Chain {
	orNext := c.orNext
	c.orNext = false
	negate := c.negateNext
	c.negateNext = false

	top := c.top()
	if orNext && c.orSatisfied {
		c.skipped(check, "or group already satisfied")
		return c
	}
	if !orNext && top.failed {
		// alternatives of a skipped check are skipped with it
		c.orSatisfied = true
		c.orError = -1
		c.skipped(check, "scope aborted")
		return c
	}
	if !orNext {
		c.orError = -1
		c.orDepth = len(c.frames) - 1
	}
	if c.orError >= len(c.engine.errors) {
		c.orError = -1
	}

	valid := check.Validate(top.value, params...)
	if negate {
		valid = !valid
	}

	wasSatisfied := c.orSatisfied
	if orNext {
		c.orSatisfied = wasSatisfied || valid
	} else {
		c.orSatisfied = valid
	}

	if orNext && !wasSatisfied && valid && c.orError >= 0 {
		c.engine.popError(c.orError)
		c.orError = -1
		if c.orDepth == len(c.frames)-1 {
			top.failed = false
		}
	}

	required := check.Name == CheckRequired
	switch {
	case valid && required && negate:
		// missing value under Not().Required(): stop the scope without an error
		top.failed = true
	case valid:
		if !negate && check.Transform != nil && c.engine.transforms() {
			c.transform(check)
		}
	case required && negate:
		// present value under Not().Required(): keep going
	default:
		c.fail(check, params, negate, orNext)
	}
	return c
}

func (c *Chain) fail(check Check, params []any, negate, orNext bool) {
	top := c.top()
	path := c.Path()
	not := ""
	if negate {
		not = " not"
	}
	verr := ValidationError{
		Message: interpolate(check.Message, map[string]string{
			"name": path,
			"val":  formatValue(top.value),
			"not":  not,
		}, params),
		TargetName:  path,
		TargetValue: top.value,
		Parameters:  params,
	}

	if orNext && c.orError >= 0 {
		c.engine.mergeOrError(c.orError, path, top.value, verr)
	} else {
		c.orError = c.engine.addError(verr)
	}

	if !check.ContinueOnFail {
		top.failed = true
	}
}

// transform replaces the focused value with its transformed form and writes
// it back into the parent, propagating copies of value-typed parents upward
// until a write lands in shared data or replaces the root.
func (c *Chain) transform(check Check) {
	top := len(c.frames) - 1
	c.frames[top].value = check.Transform(c.frames[top].value)

	for i := top; i > 0; i-- {
		parent := &c.frames[i-1]
		updated, inPlace, err := setChild(parent.value, c.frames[i].key, c.frames[i].value)
		if err != nil {
			c.engine.logger.Debug("transformed value not written back",
				logger.Check(check.Name),
				logger.Path(c.Path()),
				logger.Error(err),
			)
			return
		}
		if inPlace {
			return
		}
		parent.value = updated
	}
	c.engine.working = c.frames[0].value
}

func (c *Chain) skipped(check Check, reason string) {
	if !c.engine.logSkipped {
		return
	}
	c.engine.logger.Debug("check skipped",
		logger.Check(check.Name),
		logger.Path(c.Path()),
		slog.String("reason", reason),
	)
}

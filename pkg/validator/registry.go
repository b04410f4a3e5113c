package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ValidateFunc reports whether target passes the check for the given call parameters.
type ValidateFunc func(target any, params ...any) bool

// TransformFunc returns the coerced form of a value that passed its check.
type TransformFunc func(target any) any

// Check describes a named check. ContinueOnFail=false makes a failure abort
// the remaining checks of the current scope (a type gate); true records the
// failure and keeps evaluating (a value constraint).
type Check struct {
	Name           string
	ContinueOnFail bool
	Message        string
	Validate       ValidateFunc
	Transform      TransformFunc
}

func (c Check) validate() error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "name")
	}
	if c.Message == "" {
		missing = append(missing, "message")
	}
	if c.Validate == nil {
		missing = append(missing, "validation function")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: check %q is missing %s", ErrInvalidValidator, c.Name, strings.Join(missing, ", "))
	}
	if strings.ContainsAny(c.Name, " \t\n.{}") {
		return fmt.Errorf("%w: check name %q contains reserved characters", ErrInvalidValidator, c.Name)
	}
	return nil
}

// Registry maps check names to descriptors. Registries are not safe for
// concurrent registration; the default registry is sealed after construction.
type Registry struct {
	checks map[string]Check
	sealed bool
}

// NewRegistry creates a registry holding the given checks.
func NewRegistry(checks ...Check) (*Registry, error) {
	r := &Registry{checks: make(map[string]Check, len(checks))}
	for _, c := range checks {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a check, replacing any previous check with the same name.
func (r *Registry) Register(c Check) error {
	if err := c.validate(); err != nil {
		return err
	}
	if r.sealed {
		return fmt.Errorf("%w: registry is read-only, cannot add %q", ErrInvalidValidator, c.Name)
	}
	r.checks[c.Name] = c
	return nil
}

// RegisterFunc is the positional form of Register.
func (r *Registry) RegisterFunc(name string, continueOnFail bool, message string, fn ValidateFunc) error {
	return r.Register(Check{
		Name:           name,
		ContinueOnFail: continueOnFail,
		Message:        message,
		Validate:       fn,
	})
}

// Lookup returns the check registered under name.
func (r *Registry) Lookup(name string) (Check, bool) {
	if r == nil {
		return Check{}, false
	}
	c, ok := r.checks[name]
	return c, ok
}

// Names returns every registered check name in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.checks))
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the read-only catalog of built-in checks. It is
// built on first use and shared by every engine.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(builtinChecks()...)
		if err != nil {
			panic(fmt.Errorf("building default validator registry: %w", err))
		}
		r.sealed = true
		defaultRegistry = r
	})
	return defaultRegistry
}

// Package validator provides a fluent, chainable validation engine for
// arbitrary Go values: maps, slices, structs, pointers and scalars.
//
// An Engine holds one validation session. Engine.Is opens a Chain on a root
// value; checks are issued on the chain against the focused value, Property
// and Back move the focus through nested data, and every failure is
// collected instead of stopping at the first one.
//
// # Architecture
//
// The package is organized around four parts:
//   - Registry        – maps check names to Check descriptors (predicate,
//     message template, continue-on-fail policy, optional transformation).
//     DefaultRegistry holds the built-ins; engine registrations shadow them.
//   - Chain           – the cursor. It keeps a stack of scope frames
//     (name, value, failed flag) plus the Not/Or flags of the next check.
//   - Error model     – ValidationError per failed check or OR group,
//     ValidationErrors for the session, CompoundError for reporting.
//   - Transformation  – ModeCopy works on a private deep copy, ModeMutate on
//     the caller's value, ModeNone never transforms. Transformed values are
//     written back into their parent so later checks and
//     TransformationOutput see them.
//
// # Usage
//
//	v := validator.New()
//	v.Is(input, "user").
//	    Property("name").Required().Str().MinLength(2).Back().
//	    Property("age").Number().GreaterThan(17).Back().
//	    Property("email").Not().Required().Email().Back().
//	    Property("role").EqualTo("admin").Or().EqualTo("member")
//
//	if err := v.Err(); err != nil {
//	    compound := validator.ExtractCompoundError(err)
//	    // compound.TargetNames, compound.Parameters, ...
//	}
//	clean := v.TransformationOutput()
//
// # Scopes and failures
//
// A check with ContinueOnFail=false (the type checks) aborts the remaining
// checks of its scope when it fails; value checks such as EqualTo record
// the failure and continue. Child scopes inherit the failure state of their
// parent but never change it, so siblings reached after Back are unaffected.
//
// Not() inverts the next check. Or() joins the next check to the previous
// one: the group passes when any alternative passes, later alternatives are
// skipped once it does, and a failed group yields a single error.
//
// # Custom checks
//
//	err := v.RegisterCheckFunc("halfOf", true, "{name} ({val}) must{not} be half of {1}",
//	    func(target any, params ...any) bool { ... })
//	v.Is(8, "n").Check("halfOf", 16)
//
// Message templates understand {name}, {val}, {not} and {1}..{n}.
//
// # Error Handling
//
// Failed checks never panic. Programmer errors do: Back on the root scope,
// unknown check names and unknown transformation modes panic with errors
// wrapping ErrNoParentScope, ErrUnknownCheck and ErrInvalidTransformationMode.
// Registration returns errors wrapping ErrInvalidValidator.
//
// Engines are not safe for concurrent use. DefaultRegistry is read-only and
// may be shared freely.
package validator

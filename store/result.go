package store

// Result reports the outcome of a store mutation. Mutations never panic or
// return errors for stale references; instead callers receive a Result and
// decide whether to log, ignore, or surface it.
type Result int

const (
	// ResultApplied means the mutation took effect
	ResultApplied Result = iota
	// ResultNotFound means the target identity does not exist; state is unchanged
	ResultNotFound
	// ResultInvalidTransition means the requested status change is not allowed;
	// state is unchanged
	ResultInvalidTransition
)

// String returns the result name
func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultNotFound:
		return "target-not-found"
	case ResultInvalidTransition:
		return "invalid-transition"
	default:
		return "unknown"
	}
}

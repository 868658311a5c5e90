package interp

// OutcomeKind is the result of evaluating a statement: whether execution
// falls through normally or unwinds toward a loop/procedure boundary.
//
// SPEC_FULL.md §9's Design Notes flags the counter-based propagation
// (return_count/break_count/continue_count) as replaceable by "an explicit
// control-flow sum type {Normal, Break, Continue, Return(value)}... simpler
// and avoids the reset-counter pattern." This interpreter takes that
// alternative: every statement evaluator returns an Outcome, and Block/loop
// evaluators inspect it instead of diffing counters.
type OutcomeKind int

const (
	Normal OutcomeKind = iota
	Breaking
	Continuing
	Returning
)

// Outcome is returned by every statement evaluator.
type Outcome struct {
	Kind  OutcomeKind
	Value *Value // set when Kind == Returning and the procedure is non-void
}

var normalOutcome = Outcome{Kind: Normal}

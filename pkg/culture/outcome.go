package culture

// Outcome is the tri-valued result of a single rule evaluation.
//
// It is a flat enum rather than a (bool, error) pair so that implementers
// see an inability to determine an answer as an ordinary value, not an
// anomaly: OutcomeFailure means the rule ran to completion and the project
// violates it, while OutcomeUndetermined means the rule's preconditions
// could not be evaluated at all.
type Outcome int

const (
	// OutcomeSuccess means the rule's description definitely holds for the project.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means the rule's description definitely does not hold.
	OutcomeFailure
	// OutcomeUndetermined means the rule could not tell one way or the other,
	// typically because a subprocess could not be spawned or metadata was missing.
	OutcomeUndetermined
)

// String returns the report token for the outcome: ok, FAILED, or undetermined.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "ok"
	case OutcomeFailure:
		return "FAILED"
	default:
		return "undetermined"
	}
}

// ExitCode maps an outcome to a process exit code:
// Success(0), Failure(1), Undetermined(2).
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess:
		return 0
	case OutcomeFailure:
		return 1
	default:
		return 2
	}
}

// OutcomeRecord pairs a rule's description with the outcome it produced.
type OutcomeRecord struct {
	Description string
	Outcome     Outcome
}

// Outcomes is the ordered result of one evaluation pass, preserving the
// order in which the rules were evaluated.
type Outcomes []OutcomeRecord

// Stats folds the outcome sequence into aggregate counts. It is total over
// any finite sequence; the empty sequence yields all-zero counts, which
// count as a (vacuous) success.
func (o Outcomes) Stats() OutcomeStats {
	var s OutcomeStats
	for _, rec := range o {
		switch rec.Outcome {
		case OutcomeSuccess:
			s.SuccessCount++
		case OutcomeFailure:
			s.FailCount++
		default:
			s.UndeterminedCount++
		}
	}
	return s
}

// OutcomeStats summarizes the outcomes of an evaluation pass.
type OutcomeStats struct {
	SuccessCount      int
	FailCount         int
	UndeterminedCount int
}

// IsSuccess answers the simple question "is everything all right?" while
// providing no answer at all to the useful question "why or why not?".
// It holds iff both the failure count and the undetermined count are zero,
// so an undetermined rule is never silently swallowed.
func (s OutcomeStats) IsSuccess() bool {
	return s.FailCount == 0 && s.UndeterminedCount == 0
}

// Outcome rolls the stats up into a single outcome: any failure wins, then
// any undetermined, otherwise success (including the vacuous empty case).
func (s OutcomeStats) Outcome() Outcome {
	switch {
	case s.FailCount > 0:
		return OutcomeFailure
	case s.UndeterminedCount > 0:
		return OutcomeUndetermined
	default:
		return OutcomeSuccess
	}
}

// ExitCode returns the process exit code for the rolled-up outcome.
func (s OutcomeStats) ExitCode() int {
	return s.Outcome().ExitCode()
}

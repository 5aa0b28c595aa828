package book

import "fmt"

// Reason codes attribute an OpError to a specific cause.
type Reason uint8

const (
	ReasonUnknownID Reason = iota
	ReasonDuplicateID
	ReasonZeroQuantity
	ReasonInvalidSide
	ReasonInvalidAmendQuantity
	ReasonPostOnlyWouldTake
	ReasonFOKNotFilled
	ReasonSTPCancelTaker
	ReasonSTPCancelBoth
)

func (r Reason) String() string {
	switch r {
	case ReasonUnknownID:
		return "unknown order id"
	case ReasonDuplicateID:
		return "duplicate order id"
	case ReasonZeroQuantity:
		return "zero or negative quantity"
	case ReasonInvalidSide:
		return "invalid side"
	case ReasonInvalidAmendQuantity:
		return "invalid amend quantity"
	case ReasonPostOnlyWouldTake:
		return "post-only order would have taken liquidity"
	case ReasonFOKNotFilled:
		return "fill-or-kill order could not fill in full"
	case ReasonSTPCancelTaker:
		return "self-trade prevention cancelled the incoming order"
	case ReasonSTPCancelBoth:
		return "self-trade prevention cancelled both orders"
	default:
		return "unknown reason"
	}
}

// OpError is an expected, per-Op error: the Op at OpIndex was rejected for
// Reason. It never aborts the rest of the batch — every other Op in the
// same Eval call is still evaluated.
type OpError struct {
	OpIndex int
	OrderID OrderID
	Reason  Reason
}

func (e *OpError) Error() string {
	return fmt.Sprintf("book: op %d (order %d): %s", e.OpIndex, e.OrderID, e.Reason)
}

// invariantViolation panics: a structural precondition the Evaluator
// guarantees was violated, meaning the Applier was driven against a Book
// that has drifted from the one the Instruction stream was computed
// against. This is a programming error, not a validation failure; no
// recovery is attempted.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("book: invariant violation: "+format, args...))
}

package book

// OpKind discriminates the four operations the Evaluator accepts.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpCancel
	OpAmend
	OpMarket
)

// Op is one operation in a batch handed to Evaluator.Eval: Insert a limit
// order, Cancel a resting order by id, Amend a resting order's price
// and/or quantity, or Market an order that never rests.
//
// Represented as one struct with a Kind discriminant rather than an
// interface-typed sum, so a batch is a plain slice with no per-element
// allocation or boxing.
type Op[N Number[N], O Order[N]] struct {
	Kind OpKind

	// Order carries the order for OpInsert and OpMarket.
	Order O

	// OrderID carries the target order for OpCancel and OpAmend.
	OrderID OrderID

	// NewPrice and NewQuantity carry the amendment for OpAmend.
	NewPrice    N
	NewQuantity N
}

// InstructionKind discriminates the Applier-facing mutations an Eval call
// can produce.
type InstructionKind uint8

const (
	// InstrAddResting rests Order at Price on Side with sequence Seq.
	InstrAddResting InstructionKind = iota
	// InstrFill reduces OrderID's remaining quantity by Quantity.
	InstrFill
	// InstrRemove excises OrderID from the book entirely.
	InstrRemove
	// InstrReprice sets OrderID's remaining quantity to Quantity without
	// changing its price or priority.
	InstrReprice
)

// Instruction is one reified, ordered mutation the Applier replays against
// a Book. The full Instruction slice from one Eval call must be applied in
// order and in full.
type Instruction[N Number[N], O Order[N]] struct {
	Kind InstructionKind

	Order O    // InstrAddResting
	Side  Side // InstrAddResting
	Price N    // InstrAddResting

	OrderID  OrderID // InstrFill, InstrRemove, InstrReprice
	Quantity N       // InstrFill (fill size), InstrReprice (new remaining)
	Seq      uint64  // InstrAddResting
}

// Match records one trade produced by an Eval call: MakerID rested on the
// book before this batch began; orders that earlier Ops of the same batch
// decided to rest are not matched against. TakerID is the order that
// crossed it.
type Match[N Number[N]] struct {
	MakerID   OrderID
	TakerID   OrderID
	Price     N
	Quantity  N
	MakerSide Side
}

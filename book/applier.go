package book

// Apply mutates b to reflect instrs, which must have been produced by an
// Eval call against a Book in the exact same state as b. Apply does not
// revalidate economic rules that Eval already checked; it only asserts
// structural preconditions, panicking (a programming error, not a
// validation failure) if they don't hold.
func (b *Book[N, O]) Apply(instrs []Instruction[N, O]) {
	for i := range instrs {
		b.applyOne(&instrs[i])
	}
}

func (b *Book[N, O]) applyOne(instr *Instruction[N, O]) {
	switch instr.Kind {
	case InstrAddResting:
		b.applyAddResting(instr)
	case InstrFill:
		b.applyFill(instr)
	case InstrRemove:
		b.applyRemove(instr)
	case InstrReprice:
		b.applyReprice(instr)
	default:
		invariantViolation("unknown instruction kind %d", instr.Kind)
	}
}

func (b *Book[N, O]) applyAddResting(instr *Instruction[N, O]) {
	id := instr.Order.ID()
	if _, exists := b.ids[id]; exists {
		invariantViolation("AddResting: order %d already resting", id)
	}
	// The Evaluator never mutates orders, so the order's price and
	// remaining are brought in line with what it computed — whether that's
	// an ordinary residual after partial fills or an Amend's new
	// price/quantity — right here, the only place Apply performs it.
	instr.Order.Amend(instr.Price, instr.Quantity)
	lvl := b.sideFor(instr.Side).upsert(instr.Price)
	n := &node[N, O]{order: instr.Order}
	lvl.append(n)
	b.ids[id] = &locator[N, O]{node: n, level: lvl, side: instr.Side}
}

func (b *Book[N, O]) applyFill(instr *Instruction[N, O]) {
	loc, ok := b.ids[instr.OrderID]
	if !ok {
		invariantViolation("Fill: order %d not resting", instr.OrderID)
	}
	loc.node.order.Fill(instr.Quantity)
	loc.level.reduce(instr.Quantity)
	if loc.node.order.Remaining().IsZero() {
		b.excise(instr.OrderID, loc)
	}
}

func (b *Book[N, O]) applyRemove(instr *Instruction[N, O]) {
	loc, ok := b.ids[instr.OrderID]
	if !ok {
		invariantViolation("Remove: order %d not resting", instr.OrderID)
	}
	b.excise(instr.OrderID, loc)
}

func (b *Book[N, O]) applyReprice(instr *Instruction[N, O]) {
	loc, ok := b.ids[instr.OrderID]
	if !ok {
		invariantViolation("Reprice: order %d not resting", instr.OrderID)
	}
	order := loc.node.order
	delta := order.Remaining().Sub(instr.Quantity)
	if !delta.IsZero() {
		order.Fill(delta)
	}
	loc.level.reduce(delta)
}

// excise removes a resting order from its Level and the id index,
// dropping the Level itself once it's empty. The order's own remaining
// quantity is backed out of the Level's cached aggregate first — by Fill
// time that's already zero, but Remove (Cancel, an STP cancellation) can
// excise an order with remaining still outstanding.
func (b *Book[N, O]) excise(id OrderID, loc *locator[N, O]) {
	if r := loc.node.order.Remaining(); !r.IsZero() {
		loc.level.reduce(r)
	}
	loc.level.unlink(loc.node)
	delete(b.ids, id)
	if loc.level.IsEmpty() {
		b.sideFor(loc.side).remove(loc.level.price)
	}
}

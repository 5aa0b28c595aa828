package book

// Evaluator computes what a batch of Ops would do against a Book without
// mutating it. It is stateful across calls in exactly two ways: it owns
// the monotonic sequence counter assigned to newly resting orders (so
// Construct hands out a Book *and* an Evaluator together, per the external
// interface), and it reuses its internal overlay map call to call to avoid
// per-batch allocation. Neither piece of state is safe for concurrent use.
//
// The overlay (temp) tracks, for orders already resting in the Book, an
// effective remaining quantity that later Ops in the same batch observe
// instead of the Book's real state — it is reset at the start of every
// Eval call. It does not extend to orders a prior Op in the same batch
// newly rests: an Insert immediately followed, in the same batch, by a
// Cancel or Amend of that same not-yet-applied order is out of scope, the
// same limitation the reference implementation this package is grounded on
// has. The matching walk likewise only visits orders already resting in
// the Book, so a later Insert in the same batch never matches against an
// order an earlier Op of that batch decided to rest.
//
// Eval never mutates an order value, even one that is about to be
// cancelled and reinserted by an Amend: doing so would mean a discarded
// Eval call (one whose Instructions are never handed to Apply) had still
// changed caller-visible state, and a second Eval call against the same
// Book would no longer reproduce the first call's result. Every quantity
// or price an order should have once resting is instead carried explicitly
// on the AddResting instruction, and it's the Applier, not the Evaluator,
// that ever calls Order.Amend.
type Evaluator[N Number[N], O Order[N]] struct {
	defaultSTP STPPolicy
	seq        uint64
	temp       map[OrderID]N
}

func newEvaluator[N Number[N], O Order[N]](cfg EngineConfig) *Evaluator[N, O] {
	return &Evaluator[N, O]{
		defaultSTP: cfg.DefaultSTP,
		seq:        cfg.StartSequence,
		temp:       make(map[OrderID]N),
	}
}

// Sequence returns the next sequence number the Evaluator will assign,
// useful when journaling so a reconstructed Evaluator can resume at the
// same point.
func (e *Evaluator[N, O]) Sequence() uint64 { return e.seq }

func (e *Evaluator[N, O]) nextSeq() uint64 {
	s := e.seq
	e.seq++
	return s
}

func (e *Evaluator[N, O]) reset() {
	for k := range e.temp {
		delete(e.temp, k)
	}
}

// effectiveRemaining returns what order's remaining quantity is as far as
// this Eval call has observed so far: the overlay value if one has been
// recorded, otherwise the Book's real value.
func (e *Evaluator[N, O]) effectiveRemaining(order O) N {
	if v, ok := e.temp[order.ID()]; ok {
		return v
	}
	return order.Remaining()
}

// Eval computes the Matches and Instructions a batch of Ops would produce
// against book, without mutating it. Ops are evaluated strictly in order;
// later Ops observe earlier ones' effects through the overlay described
// above. A per-Op failure produces an OpError and never aborts the call.
// A rejected Op contributes no Matches and none of its fills, with two
// exceptions: STPCancelBoth still emits a Remove of the colliding maker,
// and an Amend whose reinsertion is rejected has already emitted the
// Remove of the original order.
func (e *Evaluator[N, O]) Eval(b *Book[N, O], ops []Op[N, O]) ([]Match[N], []Instruction[N, O], []OpError) {
	e.reset()
	var matches []Match[N]
	var instrs []Instruction[N, O]
	var errs []OpError

	for i, op := range ops {
		switch op.Kind {
		case OpInsert:
			e.evalInsert(b, op.Order, i, false, &matches, &instrs, &errs)
		case OpMarket:
			e.evalInsert(b, op.Order, i, true, &matches, &instrs, &errs)
		case OpCancel:
			e.evalCancel(b, op.OrderID, i, &instrs, &errs)
		case OpAmend:
			e.evalAmend(b, op.OrderID, op.NewPrice, op.NewQuantity, i, &matches, &instrs, &errs)
		default:
			errs = append(errs, OpError{OpIndex: i, Reason: ReasonInvalidSide})
		}
	}
	return matches, instrs, errs
}

type fillRec[N any] struct {
	id             OrderID
	price          N
	qty            N
	remainingAfter N
}

// evalInsert validates a fresh Insert/Market Op and, once validated, runs
// the matching walk against the order's own price and remaining quantity.
func (e *Evaluator[N, O]) evalInsert(
	b *Book[N, O], order O, opIdx int, isMarket bool,
	matches *[]Match[N], instrs *[]Instruction[N, O], errs *[]OpError,
) {
	id := order.ID()
	if order.Side() != Buy && order.Side() != Ask {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonInvalidSide})
		return
	}
	if _, exists := b.ids[id]; exists {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonDuplicateID})
		return
	}
	if !isPositive(order.Remaining()) {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonZeroQuantity})
		return
	}
	e.insertCore(b, order, order.Price(), order.Remaining(), opIdx, isMarket, matches, instrs, errs)
}

// insertCore walks the opposing side best-price-first against a (price,
// remaining) pair that may differ from order's own fields — Amend's
// cancel-and-reinsert path evaluates the order's prospective amended price
// and quantity without ever writing them onto order itself. It honors
// price crossing (skipped for Market), post-only, self-trade prevention,
// and time-in-force, then commits whatever matched plus, if anything, an
// AddResting instruction carrying the exact price/quantity the order
// should rest with.
func (e *Evaluator[N, O]) insertCore(
	b *Book[N, O], order O, price, startRemaining N, opIdx int, isMarket bool,
	matches *[]Match[N], instrs *[]Instruction[N, O], errs *[]OpError,
) {
	id := order.ID()
	side := order.Side()
	tif := tifOf[N](order)
	postOnly := postOnlyOf[N](order)
	stp := stpPolicyOf[N](order, e.defaultSTP)
	opposite := b.sideFor(oppositeSide(side))

	var fills []fillRec[N]
	var stpDeletes []OrderID
	remaining := startRemaining

	rejected := false
	rejectReason := ReasonUnknownID
	stpBoth := false
	var stpBothMaker OrderID

	opposite.scan(func(lvl *Level[N, O]) bool {
		if !isPositive(remaining) {
			return false
		}
		if !isMarket {
			if side == Buy && price.Compare(lvl.price) < 0 {
				return false
			}
			if side == Ask && price.Compare(lvl.price) > 0 {
				return false
			}
		}
		for n := lvl.head; n != nil; n = n.next {
			if !isPositive(remaining) {
				break
			}
			maker := n.order
			makerID := maker.ID()
			makerAvail := e.effectiveRemaining(maker)
			if !isPositive(makerAvail) {
				continue
			}

			if postOnly {
				rejected = true
				rejectReason = ReasonPostOnlyWouldTake
				return false
			}

			if order.Owner() == maker.Owner() {
				switch stp {
				case STPSkip:
					continue
				case STPCancelTaker:
					rejected = true
					rejectReason = ReasonSTPCancelTaker
					return false
				case STPCancelMaker:
					stpDeletes = append(stpDeletes, makerID)
					continue
				case STPCancelBoth:
					stpBoth = true
					stpBothMaker = makerID
					return false
				case STPNone:
					// falls through: self-trade permitted
				}
			}

			qty := minN(remaining, makerAvail)
			fills = append(fills, fillRec[N]{id: makerID, price: lvl.price, qty: qty, remainingAfter: makerAvail.Sub(qty)})
			remaining = remaining.Sub(qty)
		}
		return true
	})

	if rejected {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: rejectReason})
		return
	}
	if stpBoth {
		*instrs = append(*instrs, Instruction[N, O]{Kind: InstrRemove, OrderID: stpBothMaker})
		e.temp[stpBothMaker] = zeroN[N]()
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonSTPCancelBoth})
		return
	}
	if !isMarket && tif == FOK && isPositive(remaining) {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonFOKNotFilled})
		return
	}

	// Only committed here, once the Op is known to survive in full: a
	// rejected Op (FOK, STPCancelTaker, STPCancelBoth) must leave none of
	// its fills in the overlay (STPCancelBoth records only the removal of
	// the maker it collided with), or a later Op in the same batch would
	// see makers as partially consumed or removed that this Op never
	// actually touched.
	for _, f := range fills {
		*matches = append(*matches, Match[N]{
			MakerID: f.id, TakerID: id, Price: f.price, Quantity: f.qty,
			MakerSide: oppositeSide(side),
		})
		*instrs = append(*instrs, Instruction[N, O]{Kind: InstrFill, OrderID: f.id, Quantity: f.qty})
		e.temp[f.id] = f.remainingAfter
	}
	for _, did := range stpDeletes {
		*instrs = append(*instrs, Instruction[N, O]{Kind: InstrRemove, OrderID: did})
		e.temp[did] = zeroN[N]()
	}

	if !isPositive(remaining) {
		return
	}
	if isMarket || tif == IOC {
		// Market never rests; IOC drops its residual instead of resting.
		return
	}
	*instrs = append(*instrs, Instruction[N, O]{
		Kind: InstrAddResting, Order: order, Side: side,
		Price: price, Quantity: remaining, Seq: e.nextSeq(),
	})
}

func (e *Evaluator[N, O]) evalCancel(b *Book[N, O], id OrderID, opIdx int, instrs *[]Instruction[N, O], errs *[]OpError) {
	if _, ok := b.ids[id]; !ok {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonUnknownID})
		return
	}
	if v, seen := e.temp[id]; seen && !isPositive(v) {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonUnknownID})
		return
	}
	e.temp[id] = zeroN[N]()
	*instrs = append(*instrs, Instruction[N, O]{Kind: InstrRemove, OrderID: id})
}

// evalAmend implements the three Amend paths: pure quantity reduction at
// the same price (Reprice, priority preserved), price change or quantity
// increase (cancel + reinsert through insertCore against the prospective
// new price/quantity, priority lost, may match immediately), and amend of
// an unknown id (a per-Op error).
func (e *Evaluator[N, O]) evalAmend(
	b *Book[N, O], id OrderID, newPrice, newQty N, opIdx int,
	matches *[]Match[N], instrs *[]Instruction[N, O], errs *[]OpError,
) {
	loc, ok := b.ids[id]
	if !ok {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonUnknownID})
		return
	}
	if v, seen := e.temp[id]; seen && !isPositive(v) {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonUnknownID})
		return
	}
	if !isPositive(newQty) {
		*errs = append(*errs, OpError{OpIndex: opIdx, OrderID: id, Reason: ReasonInvalidAmendQuantity})
		return
	}

	order := loc.node.order
	currentRemaining := e.effectiveRemaining(order)
	samePrice := newPrice.Compare(order.Price()) == 0

	if samePrice && newQty.Compare(currentRemaining) <= 0 {
		e.temp[id] = newQty
		*instrs = append(*instrs, Instruction[N, O]{
			Kind: InstrReprice, OrderID: id, Price: newPrice, Quantity: newQty,
		})
		return
	}

	e.temp[id] = zeroN[N]()
	*instrs = append(*instrs, Instruction[N, O]{Kind: InstrRemove, OrderID: id})
	e.insertCore(b, order, newPrice, newQty, opIdx, false, matches, instrs, errs)
}

package book

// locator is the id-index entry: enough to excise a resting order in O(1)
// without scanning its Level.
type locator[N Number[N], O Order[N]] struct {
	node  *node[N, O]
	level *Level[N, O]
	side  Side
}

// Book holds the resting state of one instrument: two price-indexed sides
// plus a secondary index from OrderID to its resting location. A Book is
// never safe for concurrent mutation and has no internal synchronization.
type Book[N Number[N], O Order[N]] struct {
	bids *side[N, O]
	asks *side[N, O]
	ids  map[OrderID]*locator[N, O]
}

// New constructs a Book with no resting orders and a paired Evaluator
// whose sequence counter starts at cfg.StartSequence.
func New[N Number[N], O Order[N]](cfg EngineConfig) (*Book[N, O], *Evaluator[N, O]) {
	b := &Book[N, O]{
		bids: newSide[N, O](Buy),
		asks: newSide[N, O](Ask),
		ids:  make(map[OrderID]*locator[N, O]),
	}
	e := newEvaluator[N, O](cfg)
	return b, e
}

func (b *Book[N, O]) sideFor(s Side) *side[N, O] {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// BestBid returns the best (highest) bid price and its aggregate resting
// quantity.
func (b *Book[N, O]) BestBid() (price, qty N, ok bool) {
	lvl, found := b.bids.best()
	if !found {
		return price, qty, false
	}
	return lvl.price, lvl.total, true
}

// BestAsk returns the best (lowest) ask price and its aggregate resting
// quantity.
func (b *Book[N, O]) BestAsk() (price, qty N, ok bool) {
	lvl, found := b.asks.best()
	if !found {
		return price, qty, false
	}
	return lvl.price, lvl.total, true
}

// DepthAt returns the aggregate resting quantity at price on side s.
func (b *Book[N, O]) DepthAt(s Side, price N) (N, bool) {
	lvl := b.sideFor(s).find(price)
	if lvl == nil {
		var zero N
		return zero, false
	}
	return lvl.total, true
}

// IterSide calls fn for every Level on side s, best price first, stopping
// early if fn returns false.
func (b *Book[N, O]) IterSide(s Side, fn func(*Level[N, O]) bool) {
	b.sideFor(s).scan(fn)
}

// BidLevels returns the number of distinct bid price levels.
func (b *Book[N, O]) BidLevels() int { return b.bids.depth() }

// AskLevels returns the number of distinct ask price levels.
func (b *Book[N, O]) AskLevels() int { return b.asks.depth() }

// Len returns the total number of resting orders across both sides.
func (b *Book[N, O]) Len() int { return len(b.ids) }

// IsEmpty reports whether the book has no resting orders.
func (b *Book[N, O]) IsEmpty() bool { return len(b.ids) == 0 }

// Order returns the resting order with the given id, if any.
func (b *Book[N, O]) Order(id OrderID) (O, bool) {
	loc, ok := b.ids[id]
	if !ok {
		var zero O
		return zero, false
	}
	return loc.node.order, true
}

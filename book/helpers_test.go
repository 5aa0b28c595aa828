package book

// testOrder is a minimal Order[Ticks] used across the package's tests. It
// optionally implements TimeInForcer, PostOnlyer, and STPPolicer so tests
// can exercise those paths by setting the relevant field.
type testOrder struct {
	id        OrderID
	owner     OwnerID
	side      Side
	price     Ticks
	qty       Ticks
	remaining Ticks

	tif      TimeInForce
	hasTIF   bool
	postOnly bool
	stp      STPPolicy
	hasSTP   bool
}

func newTestOrder(id OrderID, owner OwnerID, side Side, price, qty Ticks) *testOrder {
	return &testOrder{id: id, owner: owner, side: side, price: price, qty: qty, remaining: qty}
}

func (o *testOrder) ID() OrderID        { return o.id }
func (o *testOrder) Owner() OwnerID     { return o.owner }
func (o *testOrder) Side() Side         { return o.side }
func (o *testOrder) Price() Ticks       { return o.price }
func (o *testOrder) Quantity() Ticks    { return o.qty }
func (o *testOrder) Remaining() Ticks   { return o.remaining }
func (o *testOrder) Fill(qty Ticks)     { o.remaining -= qty }
func (o *testOrder) Amend(price, remaining Ticks) {
	o.price = price
	o.remaining = remaining
}

func (o *testOrder) TIF() TimeInForce {
	if o.hasTIF {
		return o.tif
	}
	return GTC
}

func (o *testOrder) PostOnly() bool { return o.postOnly }

func (o *testOrder) STPPolicy() STPPolicy {
	if o.hasSTP {
		return o.stp
	}
	return STPSkip
}

package book

// Side is which side of the book an order or level belongs to.
type Side uint8

const (
	Buy Side = iota
	Ask
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "ask"
}

func oppositeSide(s Side) Side {
	if s == Buy {
		return Ask
	}
	return Buy
}

// OrderID identifies an order for the lifetime of the Book it rests in.
type OrderID uint64

// OwnerID identifies the owner of an order, for self-trade prevention.
type OwnerID uint64

// TimeInForce controls what happens to an Insert's unfilled residual.
type TimeInForce uint8

const (
	// GTC rests any residual on the book. The default when an order does
	// not implement TimeInForcer.
	GTC TimeInForce = iota
	// IOC fills what it can immediately and drops the residual.
	IOC
	// FOK requires the entire order to fill immediately or none of it
	// does; a partial-fill outcome is rejected as a whole.
	FOK
)

// STPPolicy controls what happens when an aggressor would trade against
// resting liquidity from the same owner.
type STPPolicy uint8

const (
	// STPSkip steps over same-owner resting liquidity: no trade occurs
	// against it and neither side is cancelled. This is the default.
	STPSkip STPPolicy = iota
	// STPNone disables self-trade prevention; same-owner liquidity trades
	// normally.
	STPNone
	// STPCancelTaker cancels the incoming order outright the moment it
	// would self-trade, discarding any fills already accumulated against
	// other makers earlier in the same walk.
	STPCancelTaker
	// STPCancelMaker cancels the resting maker and lets the aggressor
	// continue walking the book.
	STPCancelMaker
	// STPCancelBoth cancels both the incoming order and the resting
	// maker it collided with.
	STPCancelBoth
)

// Order is the capability contract the engine requires of any order value.
// The engine never constructs an order; it only stores and mutates values
// handed to it through Ops.
type Order[N Number[N]] interface {
	ID() OrderID
	Owner() OwnerID
	Side() Side
	// Price is meaningless for a Market Op's order; its value is ignored
	// for one.
	Price() N
	// Quantity is the order's original size, immutable once submitted.
	Quantity() N
	// Remaining is the order's unfilled size.
	Remaining() N
	// Fill reduces Remaining by qty. The engine never calls Fill with a
	// qty greater than the order's current effective remaining.
	Fill(qty N)
	// Amend sets price and remaining in place. The Applier calls it on
	// every order it rests (AddResting), carrying either an Insert's
	// residual after fills or an Amend's cancel-and-reinsert price and
	// quantity, since the engine never constructs a replacement order
	// itself.
	Amend(price, remaining N)
}

// TimeInForcer is an optional capability. Orders that don't implement it
// are treated as GTC.
type TimeInForcer interface {
	TIF() TimeInForce
}

// PostOnlyer is an optional capability. An order that implements it and
// returns true is rejected instead of taking any liquidity.
type PostOnlyer interface {
	PostOnly() bool
}

// STPPolicer is an optional capability. An order that doesn't implement it
// uses the Evaluator's configured default policy.
type STPPolicer interface {
	STPPolicy() STPPolicy
}

func tifOf[N Number[N]](o Order[N]) TimeInForce {
	if t, ok := any(o).(TimeInForcer); ok {
		return t.TIF()
	}
	return GTC
}

func postOnlyOf[N Number[N]](o Order[N]) bool {
	if p, ok := any(o).(PostOnlyer); ok {
		return p.PostOnly()
	}
	return false
}

func stpPolicyOf[N Number[N]](o Order[N], fallback STPPolicy) STPPolicy {
	if s, ok := any(o).(STPPolicer); ok {
		return s.STPPolicy()
	}
	return fallback
}

// Package simpleorder is a reference implementation of book.Order[book.Ticks]
// for tests, benchmarks, and the replaydemo command. Production embedders
// are expected to adapt their own order type to book.Order rather than
// depend on this one directly.
package simpleorder

import (
	"github.com/google/uuid"

	"limitbook/book"
)

// Order is a plain resting order keyed by a sequential uint64 id, with a
// UUID-based ClientID for external correlation — the same split many
// exchanges draw between an internal sequence id and an external,
// caller-supplied client order id.
type Order struct {
	IDValue    book.OrderID
	ClientID   string
	OwnerValue book.OwnerID
	SideValue  book.Side
	PriceValue book.Ticks
	QtyValue   book.Ticks
	Remain     book.Ticks
	TIFValue   book.TimeInForce
	PostOnlyV  bool
	STPValue   book.STPPolicy
}

// New builds a GTC limit order with a fresh UUID client id and remaining
// quantity equal to qty.
func New(id book.OrderID, owner book.OwnerID, side book.Side, price, qty book.Ticks) *Order {
	return &Order{
		IDValue:    id,
		ClientID:   uuid.NewString(),
		OwnerValue: owner,
		SideValue:  side,
		PriceValue: price,
		QtyValue:   qty,
		Remain:     qty,
		TIFValue:   book.GTC,
		STPValue:   book.STPSkip,
	}
}

func (o *Order) ID() book.OrderID      { return o.IDValue }
func (o *Order) Owner() book.OwnerID   { return o.OwnerValue }
func (o *Order) Side() book.Side       { return o.SideValue }
func (o *Order) Price() book.Ticks     { return o.PriceValue }
func (o *Order) Quantity() book.Ticks  { return o.QtyValue }
func (o *Order) Remaining() book.Ticks { return o.Remain }

func (o *Order) Fill(qty book.Ticks) { o.Remain -= qty }

func (o *Order) Amend(price, remaining book.Ticks) {
	o.PriceValue = price
	o.Remain = remaining
}

// TIF implements book.TimeInForcer.
func (o *Order) TIF() book.TimeInForce { return o.TIFValue }

// PostOnly implements book.PostOnlyer.
func (o *Order) PostOnly() bool { return o.PostOnlyV }

// STPPolicy implements book.STPPolicer.
func (o *Order) STPPolicy() book.STPPolicy { return o.STPValue }

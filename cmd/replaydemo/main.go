// Command replaydemo wires Construct, eval, apply, and the journal package
// together end to end: it builds a book, evaluates and applies a handful
// of batches while journaling each one, then replays the journal into a
// fresh book and logs the best bid and ask of both books so their resting
// state can be compared.
package main

import (
	"bytes"
	"log"
	"time"

	"limitbook/book"
	"limitbook/journal"
	"limitbook/simpleorder"
)

func main() {
	// ---------------- Construct ----------------

	b, ev := book.New[book.Ticks, *simpleorder.Order](book.DefaultEngineConfig())

	var buf bytes.Buffer
	writer := journal.NewWriter[book.Ticks, *simpleorder.Order](&buf, gobCodec{}, func() int64 {
		return time.Now().UnixNano()
	})

	batches := [][]book.Op[book.Ticks, *simpleorder.Order]{
		{
			{Kind: book.OpInsert, Order: simpleorder.New(1, 100, book.Ask, 101, 10)},
			{Kind: book.OpInsert, Order: simpleorder.New(2, 100, book.Ask, 102, 5)},
		},
		{
			{Kind: book.OpInsert, Order: simpleorder.New(3, 200, book.Buy, 102, 12)},
		},
		{
			{Kind: book.OpAmend, OrderID: 2, NewPrice: 102, NewQuantity: 2},
		},
	}

	for i, ops := range batches {
		_, instrs, errs := ev.Eval(b, ops)
		for _, e := range errs {
			log.Printf("batch %d: op rejected: %v", i, &e)
		}
		b.Apply(instrs)
		if err := writer.Append(ops); err != nil {
			log.Fatalf("journal append failed: %v", err)
		}
	}

	logBest(b, "after live batches")

	// ---------------- Replay ----------------

	replayBook, replayEval := book.New[book.Ticks, *simpleorder.Order](book.DefaultEngineConfig())
	if _, err := journal.Replay[book.Ticks, *simpleorder.Order](&buf, gobCodec{}, replayBook, replayEval); err != nil {
		log.Fatalf("replay failed: %v", err)
	}

	logBest(replayBook, "after replay")
}

func logBest(b *book.Book[book.Ticks, *simpleorder.Order], label string) {
	bidPrice, bidQty, hasBid := b.BestBid()
	askPrice, askQty, hasAsk := b.BestAsk()
	log.Printf("%s: best bid=%v/%v(%v) best ask=%v/%v(%v)", label, bidPrice, bidQty, hasBid, askPrice, askQty, hasAsk)
}

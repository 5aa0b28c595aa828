package journal

import (
	"bytes"
	"encoding/gob"
	"testing"

	"limitbook/book"
	"limitbook/simpleorder"
)

type gobCodec struct{}

func (gobCodec) EncodeOps(ops []book.Op[book.Ticks, *simpleorder.Order]) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ops); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) DecodeOps(data []byte) ([]book.Op[book.Ticks, *simpleorder.Order], error) {
	var ops []book.Op[book.Ticks, *simpleorder.Order]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func fixedClock() func() int64 {
	return func() int64 { return 1 }
}

func TestWriterAppendThenRecordRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter[book.Ticks, *simpleorder.Order](&buf, gobCodec{}, fixedClock())

	ops := []book.Op[book.Ticks, *simpleorder.Order]{
		{Kind: book.OpInsert, Order: simpleorder.New(1, 1, book.Buy, 100, 5)},
	}
	if err := w.Append(ops); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	rec, err := decodeRecord(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec.Seq != 1 {
		t.Errorf("expected seq 1, got %d", rec.Seq)
	}

	decoded, err := gobCodec{}.DecodeOps(rec.Payload)
	if err != nil {
		t.Fatalf("payload decode failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Order.ID() != 1 {
		t.Fatalf("unexpected decoded ops: %+v", decoded)
	}
}

func TestReplayReconstructsRestingState(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter[book.Ticks, *simpleorder.Order](&buf, gobCodec{}, fixedClock())

	liveBook, liveEval := book.New[book.Ticks, *simpleorder.Order](book.DefaultEngineConfig())
	batches := [][]book.Op[book.Ticks, *simpleorder.Order]{
		{
			{Kind: book.OpInsert, Order: simpleorder.New(1, 1, book.Ask, 101, 10)},
			{Kind: book.OpInsert, Order: simpleorder.New(2, 2, book.Ask, 102, 5)},
		},
		{
			{Kind: book.OpInsert, Order: simpleorder.New(3, 3, book.Buy, 102, 12)},
		},
		{
			{Kind: book.OpAmend, OrderID: 2, NewPrice: 102, NewQuantity: 2},
		},
	}
	for _, ops := range batches {
		_, instrs, _ := liveEval.Eval(liveBook, ops)
		liveBook.Apply(instrs)
		if err := w.Append(ops); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	replayBook, replayEval := book.New[book.Ticks, *simpleorder.Order](book.DefaultEngineConfig())
	if _, err := Replay[book.Ticks, *simpleorder.Order](&buf, gobCodec{}, replayBook, replayEval); err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	liveBid, liveBidQty, liveBidOK := liveBook.BestBid()
	replayBid, replayBidQty, replayBidOK := replayBook.BestBid()
	if liveBidOK != replayBidOK || liveBid != replayBid || liveBidQty != replayBidQty {
		t.Fatalf("best bid diverged: live=%v/%v(%v) replay=%v/%v(%v)", liveBid, liveBidQty, liveBidOK, replayBid, replayBidQty, replayBidOK)
	}
	liveAsk, liveAskQty, liveAskOK := liveBook.BestAsk()
	replayAsk, replayAskQty, replayAskOK := replayBook.BestAsk()
	if liveAskOK != replayAskOK || liveAsk != replayAsk || liveAskQty != replayAskQty {
		t.Fatalf("best ask diverged: live=%v/%v(%v) replay=%v/%v(%v)", liveAsk, liveAskQty, liveAskOK, replayAsk, replayAskQty, replayAskOK)
	}
	if liveBook.Len() != replayBook.Len() {
		t.Fatalf("resting order count diverged: live=%d replay=%d", liveBook.Len(), replayBook.Len())
	}
}

func TestDecodeRecordDetectsCorruption(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter[book.Ticks, *simpleorder.Order](&buf, gobCodec{}, fixedClock())
	ops := []book.Op[book.Ticks, *simpleorder.Order]{
		{Kind: book.OpInsert, Order: simpleorder.New(1, 1, book.Buy, 100, 5)},
	}
	if err := w.Append(ops); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	corrupted := buf.Bytes()
	corrupted[len(corrupted)-1] ^= 0xFF

	if _, err := decodeRecord(bytes.NewReader(corrupted)); err != ErrCorruptRecord {
		t.Fatalf("expected ErrCorruptRecord, got %v", err)
	}
}

package main

import (
	"bytes"
	"encoding/gob"

	"limitbook/book"
	"limitbook/simpleorder"
)

// gobCodec is the simplest possible journal.Codec: it gob-encodes the Op
// batch directly, since the demo's order type (*simpleorder.Order) is a
// plain exported struct.
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

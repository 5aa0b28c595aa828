package journal

import "limitbook/book"

// Codec encodes and decodes one batch of Ops. The journal package has no
// way to serialize book.Op[N, O] on its own, since O is an opaque,
// caller-supplied order type — production embedders supply a Codec that
// knows how to round-trip their own order representation.
type Codec[N book.Number[N], O book.Order[N]] interface {
	EncodeOps(ops []book.Op[N, O]) ([]byte, error)
	DecodeOps(data []byte) ([]book.Op[N, O], error)
}

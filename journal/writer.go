package journal

import (
	"io"

	"limitbook/book"
)

// Writer appends one record per applied Op batch to an underlying
// io.Writer, typically an *os.File opened for append.
type Writer[N book.Number[N], O book.Order[N]] struct {
	w     io.Writer
	codec Codec[N, O]
	seq   uint64
	now   func() int64
}

// NewWriter builds a Writer around w. now is called once per Append to
// stamp the record; production callers should pass a function returning
// time.Now().UnixNano().
func NewWriter[N book.Number[N], O book.Order[N]](w io.Writer, codec Codec[N, O], now func() int64) *Writer[N, O] {
	return &Writer[N, O]{w: w, codec: codec, now: now}
}

// Append encodes ops and writes one framed, checksummed record.
func (wr *Writer[N, O]) Append(ops []book.Op[N, O]) error {
	payload, err := wr.codec.EncodeOps(ops)
	if err != nil {
		return err
	}
	wr.seq++
	frame := encodeRecord(record{Seq: wr.seq, TimeNS: wr.now(), Payload: payload})
	_, err = wr.w.Write(frame)
	return err
}

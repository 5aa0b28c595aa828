package journal

import (
	"errors"
	"io"

	"limitbook/book"
)

// Replay reads every record from r in order and re-drives eval+apply
// against b and ev for each one, demonstrating the reconstruction
// guarantee spec'd for callers that journal their Op batches: replaying
// the same sequence of batches against a fresh Book produces the same
// resting state. It stops cleanly at end of file and returns any other
// read, checksum, or decode error encountered.
func Replay[N book.Number[N], O book.Order[N]](
	r io.Reader, codec Codec[N, O], b *book.Book[N, O], ev *book.Evaluator[N, O],
) ([]book.OpError, error) {
	var allErrs []book.OpError
	for {
		rec, err := decodeRecord(r)
		if errors.Is(err, io.EOF) {
			return allErrs, nil
		}
		if err != nil {
			return allErrs, err
		}
		ops, err := codec.DecodeOps(rec.Payload)
		if err != nil {
			return allErrs, err
		}
		_, instrs, errs := ev.Eval(b, ops)
		b.Apply(instrs)
		allErrs = append(allErrs, errs...)
	}
}

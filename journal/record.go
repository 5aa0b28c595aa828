package journal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
)

// ErrCorruptRecord is returned when a record's checksum doesn't match its
// payload.
var ErrCorruptRecord = errors.New("journal: corrupted record")

// record is one on-disk frame: a monotonic sequence number, a wall-clock
// timestamp, and the caller-encoded payload, followed by a CRC32 of
// everything before it.
type record struct {
	Seq     uint64
	TimeNS  int64
	Payload []byte
}

func encodeRecord(r record) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, r.Seq)
	binary.Write(buf, binary.LittleEndian, r.TimeNS)
	binary.Write(buf, binary.LittleEndian, uint32(len(r.Payload)))
	buf.Write(r.Payload)
	sum := crc32.ChecksumIEEE(buf.Bytes())
	binary.Write(buf, binary.LittleEndian, sum)
	return buf.Bytes()
}

func decodeRecord(rd io.Reader) (record, error) {
	var seq uint64
	var ts int64
	var n uint32
	if err := binary.Read(rd, binary.LittleEndian, &seq); err != nil {
		return record{}, err
	}
	if err := binary.Read(rd, binary.LittleEndian, &ts); err != nil {
		return record{}, err
	}
	if err := binary.Read(rd, binary.LittleEndian, &n); err != nil {
		return record{}, err
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(rd, payload); err != nil {
		return record{}, err
	}
	var crc uint32
	if err := binary.Read(rd, binary.LittleEndian, &crc); err != nil {
		return record{}, err
	}

	check := new(bytes.Buffer)
	binary.Write(check, binary.LittleEndian, seq)
	binary.Write(check, binary.LittleEndian, ts)
	binary.Write(check, binary.LittleEndian, n)
	check.Write(payload)
	if crc32.ChecksumIEEE(check.Bytes()) != crc {
		return record{}, ErrCorruptRecord
	}
	return record{Seq: seq, TimeNS: ts, Payload: payload}, nil
}

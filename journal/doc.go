// Package journal is an optional, file-based implementation of the
// "journal the Op batches, replay through eval+apply" pattern the book
// package documents as available to callers that want persistence. It is
// example/testing tooling: the core book package never imports it, and an
// embedder that wants a different persistence strategy is free to ignore
// it entirely.
//
// Each record is one applied batch: a length-prefixed, CRC32-checksummed
// frame wrapping caller-encoded Ops, the same framing idea as a
// write-ahead log record, stripped of segment rotation and any particular
// wire format — the caller supplies both via a Codec.
package journal

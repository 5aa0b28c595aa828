// Package book implements a single-threaded, price-time priority limit
// order book built around an eval/apply separation: Evaluator.Eval computes
// what a batch of operations would do against a read-only Book, and
// Book.Apply is the only thing that ever mutates it.
//
// The package never constructs or owns a concrete order type. Callers
// implement Order[N] over whatever order representation they already have
// and hand values of it to the engine; see package simpleorder for a
// reference implementation.
package book

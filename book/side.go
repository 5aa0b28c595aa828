package book

import "github.com/tidwall/btree"

// side is one side of the book: price levels ordered best-first via a
// generic B-tree, replacing a hand-rolled red-black tree with a maintained
// library implementation. The comparator is flipped per side (bids sort
// highest price first, asks sort lowest price first) so that, for both
// sides, the tree's Min is always the best level and a forward Scan
// visits levels best-first.
type side[N Number[N], O Order[N]] struct {
	which Side
	tree  *btree.BTreeG[*Level[N, O]]
}

func newSide[N Number[N], O Order[N]](which Side) *side[N, O] {
	var less func(a, b *Level[N, O]) bool
	if which == Buy {
		less = func(a, b *Level[N, O]) bool { return a.price.Compare(b.price) > 0 }
	} else {
		less = func(a, b *Level[N, O]) bool { return a.price.Compare(b.price) < 0 }
	}
	return &side[N, O]{which: which, tree: btree.NewBTreeG(less)}
}

// find returns the level at price, if one exists.
func (s *side[N, O]) find(price N) *Level[N, O] {
	probe := &Level[N, O]{price: price}
	lvl, ok := s.tree.Get(probe)
	if !ok {
		return nil
	}
	return lvl
}

// upsert returns the level at price, creating an empty one if necessary.
func (s *side[N, O]) upsert(price N) *Level[N, O] {
	if lvl := s.find(price); lvl != nil {
		return lvl
	}
	lvl := newLevel[N, O](price, s.which)
	s.tree.Set(lvl)
	return lvl
}

// remove drops the level at price entirely. Callers must only call this
// once the level has no resting orders left.
func (s *side[N, O]) remove(price N) {
	s.tree.Delete(&Level[N, O]{price: price})
}

// best returns the best (highest bid / lowest ask) level.
func (s *side[N, O]) best() (*Level[N, O], bool) {
	return s.tree.Min()
}

// depth returns the number of distinct price levels.
func (s *side[N, O]) depth() int {
	return s.tree.Len()
}

// scan visits every level best price first, stopping early if fn returns
// false.
func (s *side[N, O]) scan(fn func(*Level[N, O]) bool) {
	s.tree.Scan(fn)
}

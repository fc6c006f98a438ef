package frame

import (
	"iter"

	"go.trai.ch/zerr"
)

// Resource is a ring of one T per frame slot. Entries are created once and mutated in place;
// it has no lifecycle logic of its own.
type Resource[T any] struct {
	index *Index
	slots []T
}

// NewResource creates one entry per slot of idx by calling factory with the slot number.
// The first factory error aborts construction.
func NewResource[T any](idx *Index, factory func(slot int) (T, error)) (*Resource[T], error) {
	r := &Resource[T]{index: idx, slots: make([]T, idx.Count())}
	for slot := range r.slots {
		v, err := factory(slot)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create frame resource"), "slot", slot)
		}
		r.slots[slot] = v
	}
	return r, nil
}

// Current returns the entry of the slot being recorded.
func (r *Resource[T]) Current() *T { return &r.slots[r.index.Current()] }

// Next returns the entry of the next slot.
func (r *Resource[T]) Next() *T { return &r.slots[r.index.Next()] }

// Previous returns the entry of the previous slot.
func (r *Resource[T]) Previous() *T { return &r.slots[r.index.Previous()] }

// At returns the entry of slot. It panics if slot is out of range.
func (r *Resource[T]) At(slot int) *T { return &r.slots[slot] }

// All yields every slot and its entry in slot order.
func (r *Resource[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range r.slots {
			if !yield(i, &r.slots[i]) {
				return
			}
		}
	}
}

// Package frame provides the frames-in-flight index and per-slot resource rings.
package frame

import (
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// MaxFramesInFlight is the largest supported number of frames in flight.
const MaxFramesInFlight = 3

// Index tracks which frame slot is being recorded. It is shared by every Resource of a renderer.
type Index struct {
	count   int
	current int
}

// NewIndex returns an index over count slots, starting at slot 0.
func NewIndex(count int) (*Index, error) {
	if count < 1 || count > MaxFramesInFlight {
		return nil, zerr.With(zerr.With(domain.ErrInvalidFrameCount, "count", count), "max", MaxFramesInFlight)
	}
	return &Index{count: count}, nil
}

// Count returns the number of slots.
func (i *Index) Count() int { return i.count }

// Current returns the slot being recorded.
func (i *Index) Current() int { return i.current }

// Next returns the slot after Current.
func (i *Index) Next() int { return (i.current + 1) % i.count }

// Previous returns the slot before Current.
func (i *Index) Previous() int { return (i.current + i.count - 1) % i.count }

// Advance moves to the next slot, wrapping around.
func (i *Index) Advance() { i.current = i.Next() }

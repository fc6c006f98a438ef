// Package domain contains the value types shared by the frame graph, the resource pools and the
// command recorder: content hashes, GPU object handles and descriptions, pipeline and binding state.
package domain

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const wordBits = 64

// ContentHash is an ordered sequence of bits built by appending fixed-width fields.
// Two hashes are equal iff their bit sequences are identical. Equality is taken to mean that the
// described configurations are identical; there is no collision handling.
// Copies share storage: Clone a hash before pushing into a copy of it.
type ContentHash struct {
	words []uint64
	n     int
}

// Key is the comparable form of a ContentHash, used as a map key by the caches.
type Key string

// Push appends the low width bits of v to h.
// It panics if width is outside 1..64 or exceeds the bit width of T.
func Push[T constraints.Integer](h *ContentHash, width int, v T) {
	size := int(unsafe.Sizeof(v)) * 8
	if width <= 0 || width > wordBits || width > size {
		panic(fmt.Sprintf("domain: invalid push width %d for a %d-bit value", width, size))
	}
	h.pushBits(uint64(v), width) //nolint:gosec // truncation to width is the point
}

// PushBool appends a single bit.
func PushBool(h *ContentHash, b bool) {
	var v uint8
	if b {
		v = 1
	}
	Push(h, 1, v)
}

// PushFloat32 appends the IEEE-754 bits of f.
func PushFloat32(h *ContentHash, f float32) {
	Push(h, 32, math.Float32bits(f))
}

func (h *ContentHash) pushBits(v uint64, width int) {
	if width < wordBits {
		v &= (uint64(1) << width) - 1
	}
	off := h.n % wordBits
	if off == 0 {
		h.words = append(h.words, 0)
	}
	h.words[len(h.words)-1] |= v << off
	if spill := off + width - wordBits; spill > 0 {
		h.words = append(h.words, v>>(wordBits-off))
	}
	h.n += width
}

// Append appends every bit of other to h.
func (h *ContentHash) Append(other ContentHash) {
	remaining := other.n
	for _, w := range other.words {
		width := min(remaining, wordBits)
		h.pushBits(w, width)
		remaining -= width
	}
}

// Clear resets h to the empty sequence.
func (h *ContentHash) Clear() {
	h.words = h.words[:0]
	h.n = 0
}

// Len returns the number of bits in h.
func (h ContentHash) Len() int {
	return h.n
}

// Equal reports whether h and other hold the same bit sequence.
func (h ContentHash) Equal(other ContentHash) bool {
	if h.n != other.n {
		return false
	}
	for i := range h.words {
		if h.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of h that does not share storage.
func (h ContentHash) Clone() ContentHash {
	return ContentHash{words: append([]uint64(nil), h.words...), n: h.n}
}

// Key returns the comparable form of h.
func (h ContentHash) Key() Key {
	return Key(h.bytes())
}

// Digest returns a 64-bit summary of h for logs and file names.
// It is not used for equality.
func (h ContentHash) Digest() uint64 {
	return xxhash.Sum64(h.bytes())
}

// String returns the digest and bit length of h.
func (h ContentHash) String() string {
	return fmt.Sprintf("%016x/%d", h.Digest(), h.n)
}

func (h ContentHash) bytes() []byte {
	buf := make([]byte, 0, 8+8*len(h.words))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(h.n)) //nolint:gosec // n is never negative
	for _, w := range h.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return buf
}

// Digest returns the 64-bit summary of the hash k was derived from.
func (k Key) Digest() uint64 {
	return xxhash.Sum64String(string(k))
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
)

func TestContentHash_Deterministic(t *testing.T) {
	build := func() domain.ContentHash {
		var h domain.ContentHash
		domain.Push(&h, 3, uint8(5))
		domain.Push(&h, 64, uint64(0xdeadbeefcafebabe))
		domain.PushBool(&h, true)
		domain.PushFloat32(&h, 0.5)
		return h
	}

	a, b := build(), build()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Digest(), b.Digest())
	assert.Equal(t, 3+64+1+32, a.Len())
}

func TestContentHash_WidthAndOrderMatter(t *testing.T) {
	var wide, narrow domain.ContentHash
	domain.Push(&wide, 16, uint16(1))
	domain.Push(&narrow, 8, uint8(1))
	assert.False(t, wide.Equal(narrow), "different widths must differ")

	var ab, ba domain.ContentHash
	domain.Push(&ab, 8, uint8(1))
	domain.Push(&ab, 8, uint8(2))
	domain.Push(&ba, 8, uint8(2))
	domain.Push(&ba, 8, uint8(1))
	assert.False(t, ab.Equal(ba), "different push orders must differ")
	assert.NotEqual(t, ab.Key(), ba.Key())
}

func TestContentHash_Truncates(t *testing.T) {
	var a, b domain.ContentHash
	domain.Push(&a, 4, uint32(0xff))
	domain.Push(&b, 4, uint32(0x0f))
	assert.True(t, a.Equal(b))
}

func TestContentHash_SpillsAcrossWords(t *testing.T) {
	var split, joined domain.ContentHash
	domain.Push(&split, 60, uint64(0))
	domain.Push(&split, 8, uint8(0xab))

	domain.Push(&joined, 60, uint64(0))
	domain.Push(&joined, 4, uint8(0xb))
	domain.Push(&joined, 4, uint8(0xa))

	assert.True(t, split.Equal(joined))
	assert.Equal(t, 68, split.Len())
}

func TestContentHash_Append(t *testing.T) {
	var left, right, direct domain.ContentHash
	domain.Push(&left, 37, uint64(0x1234567))
	domain.Push(&right, 64, uint64(0xfedcba9876543210))
	domain.Push(&right, 5, uint8(0x13))

	domain.Push(&direct, 37, uint64(0x1234567))
	domain.Push(&direct, 64, uint64(0xfedcba9876543210))
	domain.Push(&direct, 5, uint8(0x13))

	left.Append(right)
	assert.True(t, left.Equal(direct))
}

func TestContentHash_CloneAndClear(t *testing.T) {
	var h domain.ContentHash
	domain.Push(&h, 32, uint32(7))
	c := h.Clone()

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 32, c.Len())

	domain.Push(&h, 32, uint32(9))
	assert.False(t, h.Equal(c), "clone must not share storage")
}

func TestContentHash_InvalidWidthPanics(t *testing.T) {
	tests := []struct {
		name string
		push func(*domain.ContentHash)
	}{
		{"zero", func(h *domain.ContentHash) { domain.Push(h, 0, uint8(1)) }},
		{"over 64", func(h *domain.ContentHash) { domain.Push(h, 65, uint64(1)) }},
		{"wider than type", func(h *domain.ContentHash) { domain.Push(h, 9, uint8(1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h domain.ContentHash
			require.Panics(t, func() { tt.push(&h) })
		})
	}
}

func TestHandle(t *testing.T) {
	assert.True(t, domain.NullHandle.IsNull())
	h := domain.Handle{Kind: domain.KindBuffer, Index: 3, Generation: 2}
	assert.False(t, h.IsNull())
	assert.Equal(t, "buffer#3.2", h.String())

	var a, b domain.ContentHash
	domain.PushHandle(&a, h)
	domain.PushHandle(&b, domain.Handle{Kind: domain.KindBuffer, Index: 3, Generation: 3})
	assert.False(t, a.Equal(b), "generations must distinguish reused slots")
}

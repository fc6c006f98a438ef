package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
)

var (
	bufA = domain.Handle{Kind: domain.KindBuffer, Index: 1, Generation: 1}
	imgA = domain.Handle{Kind: domain.KindImage, Index: 1, Generation: 1}
)

func TestBindingState_IdenticalBindIsNoop(t *testing.T) {
	s := domain.NewBindingState()
	require.NoError(t, s.Bind(0, 0, domain.BufferBinding{Buffer: bufA, Range: 64}))
	assert.True(t, s.Dirty(0))

	s.ClearDirty()
	require.NoError(t, s.Bind(0, 0, domain.BufferBinding{Buffer: bufA, Range: 64}))
	assert.False(t, s.Dirty(0))
	assert.Empty(t, s.DirtyBindings(0))

	require.NoError(t, s.Bind(0, 0, domain.BufferBinding{Buffer: bufA, Range: 128}))
	assert.True(t, s.Dirty(0))
}

func TestBindingState_DirtyBindingsSorted(t *testing.T) {
	s := domain.NewBindingState()
	require.NoError(t, s.Bind(1, 5, domain.ImageBinding{Image: imgA}))
	require.NoError(t, s.Bind(1, 2, domain.InputAttachmentBinding{Image: imgA}))
	require.NoError(t, s.Bind(1, 5, domain.ImageBinding{Image: imgA, Filter: domain.FilterNearest}))

	assert.Equal(t, []uint32{2, 5}, s.DirtyBindings(1))
	assert.False(t, s.Dirty(0))
}

func TestBindingState_HashFollowsContent(t *testing.T) {
	a := domain.NewBindingState()
	b := domain.NewBindingState()

	require.NoError(t, a.Bind(0, 1, domain.ImageBinding{Image: imgA}))
	require.NoError(t, a.Bind(0, 0, domain.DynamicBufferBinding{Buffer: bufA, Range: 64, Offset: 256}))
	require.NoError(t, b.Bind(0, 0, domain.DynamicBufferBinding{Buffer: bufA, Range: 64, Offset: 256}))
	require.NoError(t, b.Bind(0, 1, domain.ImageBinding{Image: imgA}))
	assert.Equal(t, a.Key(0), b.Key(0), "bind order must not matter")

	require.NoError(t, b.Bind(0, 0, domain.DynamicBufferBinding{Buffer: bufA, Range: 64, Offset: 512}))
	assert.NotEqual(t, a.Key(0), b.Key(0), "dynamic offsets are part of the hash")
	assert.Equal(t, []uint32{512}, b.DynamicOffsets(0))
}

func TestBindingState_PushIntoReturnedHash(t *testing.T) {
	s := domain.NewBindingState()
	require.NoError(t, s.Bind(0, 0, domain.BufferBinding{Buffer: bufA, Range: 64}))
	want := s.Hash(0)
	key := s.Key(0)

	h := s.Hash(0)
	domain.Push(&h, 8, uint8(0xff))

	assert.True(t, s.Hash(0).Equal(want))
	assert.Equal(t, key, s.Key(0))
}

func TestBindingState_InvalidSet(t *testing.T) {
	s := domain.NewBindingState()
	err := s.Bind(domain.MaxDescriptorSets, 0, domain.ImageBinding{Image: imgA})
	require.ErrorContains(t, err, domain.ErrInvalidDescriptorSet.Error())
}

func TestBindingState_Reset(t *testing.T) {
	s := domain.NewBindingState()
	require.NoError(t, s.Bind(2, 0, domain.ImageBinding{Image: imgA}))
	s.ClearDirty()

	s.Reset()
	assert.True(t, s.Dirty(2))
	assert.Empty(t, s.Bound(2))
}

func TestDescriptorTypeOf(t *testing.T) {
	tests := []struct {
		binding domain.Binding
		want    domain.DescriptorType
	}{
		{domain.ImageBinding{}, domain.DescriptorCombinedImageSampler},
		{domain.InputAttachmentBinding{}, domain.DescriptorInputAttachment},
		{domain.BufferBinding{}, domain.DescriptorUniformBuffer},
		{domain.DynamicBufferBinding{}, domain.DescriptorUniformBufferDynamic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.DescriptorTypeOf(tt.binding))
	}
}

func TestSetLayout_HashIgnoresOrder(t *testing.T) {
	a := domain.NewSetLayout(domain.Handle{Kind: domain.KindSetLayout, Index: 1, Generation: 1}, []domain.LayoutBinding{
		{Binding: 1, Type: domain.DescriptorCombinedImageSampler, Count: 1},
		{Binding: 0, Type: domain.DescriptorUniformBuffer, Count: 1},
	})
	b := domain.NewSetLayout(domain.Handle{Kind: domain.KindSetLayout, Index: 2, Generation: 1}, []domain.LayoutBinding{
		{Binding: 0, Type: domain.DescriptorUniformBuffer, Count: 1},
		{Binding: 1, Type: domain.DescriptorCombinedImageSampler, Count: 1},
	})
	assert.Equal(t, a.Key(), b.Key())

	desc := domain.PoolDescFor(a, 8)
	assert.Equal(t, uint32(8), desc.MaxSets)
	assert.Equal(t, []domain.PoolSize{
		{Type: domain.DescriptorCombinedImageSampler, Count: 8},
		{Type: domain.DescriptorUniformBuffer, Count: 8},
	}, desc.Sizes)
}

func TestSetLayout_PushIntoReturnedHash(t *testing.T) {
	l := domain.NewSetLayout(domain.Handle{Kind: domain.KindSetLayout, Index: 1, Generation: 1}, []domain.LayoutBinding{
		{Binding: 0, Type: domain.DescriptorUniformBuffer, Count: 1},
	})
	key := l.Key()

	h := l.Hash()
	domain.Push(&h, 8, uint8(0xff))

	assert.Equal(t, key, l.Key())
}

func TestParseFormatAndAccess(t *testing.T) {
	f, err := domain.ParseFormat("RGBA16F")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatRGBA16F, f)
	assert.True(t, domain.FormatD24S8.IsDepth())

	_, err = domain.ParseFormat("rgb565")
	require.ErrorContains(t, err, domain.ErrUnknownFormat.Error())

	a, err := domain.ParseAccess("readwrite")
	require.NoError(t, err)
	assert.True(t, a.Reads())
	assert.True(t, a.Writes())
	assert.False(t, domain.AccessWrite.Reads())
}

package frame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/engine/frame"
)

func TestNewIndex_Range(t *testing.T) {
	for _, n := range []int{0, frame.MaxFramesInFlight + 1} {
		_, err := frame.NewIndex(n)
		require.ErrorContains(t, err, domain.ErrInvalidFrameCount.Error())
	}
}

func TestIndex_Wraps(t *testing.T) {
	idx, err := frame.NewIndex(3)
	require.NoError(t, err)

	assert.Equal(t, 0, idx.Current())
	assert.Equal(t, 1, idx.Next())
	assert.Equal(t, 2, idx.Previous())

	var seen []int
	for range 4 {
		idx.Advance()
		seen = append(seen, idx.Current())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)
}

func TestResource_FollowsIndex(t *testing.T) {
	idx, err := frame.NewIndex(2)
	require.NoError(t, err)

	calls := 0
	res, err := frame.NewResource(idx, func(slot int) (int, error) {
		calls++
		return slot * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	assert.Equal(t, 0, *res.Current())
	*res.Current() = 5
	idx.Advance()
	assert.Equal(t, 10, *res.Current())
	assert.Equal(t, 5, *res.Previous())
	assert.Equal(t, 5, *res.Next())

	var slots []int
	for slot, v := range res.All() {
		slots = append(slots, slot)
		assert.Same(t, res.At(slot), v)
	}
	assert.Equal(t, []int{0, 1}, slots)
}

func TestResource_FactoryErrorAborts(t *testing.T) {
	idx, err := frame.NewIndex(3)
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	_, err = frame.NewResource(idx, func(slot int) (string, error) {
		calls++
		if slot == 1 {
			return "", boom
		}
		return "ok", nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

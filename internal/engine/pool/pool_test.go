package pool_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/framegraph/internal/core/ports/mocks"
	"go.trai.ch/framegraph/internal/engine/pool"
	"go.uber.org/mock/gomock"
)

// handleSource hands out distinct handles of one kind.
type handleSource struct {
	kind domain.ObjectKind
	next atomic.Uint32
}

func (s *handleSource) new() domain.Handle {
	return domain.Handle{Kind: s.kind, Index: s.next.Add(1), Generation: 1}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	return logger
}

func TestBufferCache_ReuseAfterRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindBuffer}

	desc := domain.BufferDesc{Size: 1024, Usage: domain.BufferUsageUniform, Memory: domain.MemoryHostVisible}
	device.EXPECT().CreateBuffer(desc).DoAndReturn(func(domain.BufferDesc) (domain.Handle, error) {
		return src.new(), nil
	}).Times(1)

	cache := pool.NewBufferCache(device)

	h1, err := cache.Acquire(desc)
	require.NoError(t, err)
	require.NoError(t, cache.Release(h1))

	h2, err := cache.Acquire(desc)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	stats := cache.Stats()
	assert.Equal(t, uint64(1), stats.Created)
	assert.Equal(t, uint64(1), stats.Reused)
	assert.Equal(t, 1, stats.Used)
}

func TestBufferCache_NeverHandsOutUsedHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindBuffer}
	device.EXPECT().CreateBuffer(gomock.Any()).DoAndReturn(func(domain.BufferDesc) (domain.Handle, error) {
		return src.new(), nil
	}).Times(3)

	cache := pool.NewBufferCache(device)
	desc := domain.BufferDesc{Size: 256, Usage: domain.BufferUsageVertex}

	seen := make(map[domain.Handle]bool)
	for range 3 {
		h, err := cache.Acquire(desc)
		require.NoError(t, err)
		assert.False(t, seen[h], "handle %s handed out twice", h)
		seen[h] = true
	}
	assert.Equal(t, 3, cache.Stats().Used)
}

func TestPool_ReleaseUnknownHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindBuffer}
	device.EXPECT().CreateBuffer(gomock.Any()).DoAndReturn(func(domain.BufferDesc) (domain.Handle, error) {
		return src.new(), nil
	})

	cache := pool.NewBufferCache(device)
	err := cache.Release(domain.Handle{Kind: domain.KindBuffer, Index: 99, Generation: 1})
	require.ErrorContains(t, err, domain.ErrUnknownHandle.Error())

	h, err := cache.Acquire(domain.BufferDesc{Size: 16})
	require.NoError(t, err)
	require.NoError(t, cache.Release(h))
	err = cache.Release(h)
	require.ErrorContains(t, err, domain.ErrUnknownHandle.Error(), "double release must fail")
}

func TestPool_ReleaseAllKeepsObjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindImage}
	device.EXPECT().CreateImage(gomock.Any()).DoAndReturn(func(domain.ImageDesc) (domain.Handle, error) {
		return src.new(), nil
	}).Times(2)

	cache := pool.NewImageCache(device)
	a := domain.ImageDesc{Format: domain.FormatRGBA8, Extent: domain.Extent2D{Width: 4, Height: 4}}
	b := domain.ImageDesc{Format: domain.FormatD32, Extent: domain.Extent2D{Width: 4, Height: 4}}

	ha, err := cache.Acquire(a)
	require.NoError(t, err)
	hb, err := cache.Acquire(b)
	require.NoError(t, err)

	cache.ReleaseAll()
	assert.False(t, cache.InUse(ha))
	assert.Equal(t, pool.Stats{Buckets: 2, Free: 2, Created: 2}, cache.Stats())

	again, err := cache.Acquire(b)
	require.NoError(t, err)
	assert.Equal(t, hb, again, "handles never cross buckets")
}

func TestPool_DeleteAllDestroysEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindBuffer}
	device.EXPECT().CreateBuffer(gomock.Any()).DoAndReturn(func(domain.BufferDesc) (domain.Handle, error) {
		return src.new(), nil
	}).Times(2)

	cache := pool.NewBufferCache(device)
	h1, err := cache.Acquire(domain.BufferDesc{Size: 1})
	require.NoError(t, err)
	h2, err := cache.Acquire(domain.BufferDesc{Size: 1})
	require.NoError(t, err)
	require.NoError(t, cache.Release(h2))

	destroyFailure := errors.New("device lost")
	device.EXPECT().Destroy(h1).Return(nil)
	device.EXPECT().Destroy(h2).Return(destroyFailure)

	err = cache.DeleteAll()
	require.ErrorIs(t, err, destroyFailure)
	assert.Equal(t, pool.Stats{Created: 2}, cache.Stats())
}

func TestPool_CreateErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	oom := errors.New("out of device memory")
	device.EXPECT().CreateBuffer(gomock.Any()).Return(domain.NullHandle, oom)

	cache := pool.NewBufferCache(device)
	_, err := cache.Acquire(domain.BufferDesc{Size: 1 << 30})
	require.ErrorIs(t, err, oom)
	assert.Equal(t, 0, cache.Stats().Used)
}

func TestPool_DeleteAllDuringCreate(t *testing.T) {
	src := &handleSource{kind: domain.KindBuffer}
	started := make(chan struct{})
	proceed := make(chan struct{})

	p := pool.New(
		domain.BufferDesc.Hash,
		func(domain.BufferDesc) (domain.Handle, error) {
			close(started)
			<-proceed
			return src.new(), nil
		},
		func(domain.Handle) error { return nil },
		pool.WithMutex(),
	)

	type result struct {
		h   domain.Handle
		err error
	}
	acquired := make(chan result, 1)
	go func() {
		h, err := p.Acquire(domain.BufferDesc{Size: 64})
		acquired <- result{h, err}
	}()

	<-started
	require.NoError(t, p.DeleteAll())
	close(proceed)

	r := <-acquired
	require.NoError(t, r.err)
	assert.True(t, p.InUse(r.h))
	require.NoError(t, p.Release(r.h))
	assert.Equal(t, pool.Stats{Buckets: 1, Free: 1, Created: 1}, p.Stats())
}

func TestPool_AtMostReuseUnderConcurrency(t *testing.T) {
	var mu sync.Mutex
	live := make(map[domain.Handle]bool)
	src := &handleSource{kind: domain.KindBuffer}

	p := pool.New(
		domain.BufferDesc.Hash,
		func(domain.BufferDesc) (domain.Handle, error) { return src.new(), nil },
		func(domain.Handle) error { return nil },
		pool.WithMutex(),
	)

	desc := domain.BufferDesc{Size: 64}
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				h, err := p.Acquire(desc)
				assert.NoError(t, err)

				mu.Lock()
				assert.False(t, live[h], "handle %s is in use twice", h)
				live[h] = true
				mu.Unlock()

				mu.Lock()
				delete(live, h)
				mu.Unlock()
				assert.NoError(t, p.Release(h))
			}
		})
	}
	wg.Wait()

	stats := p.Stats()
	assert.Equal(t, 0, stats.Used)
	assert.LessOrEqual(t, stats.Created, uint64(8))
}

func TestPipelineCache_SharedHandles(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindPipeline}
	device.EXPECT().CreatePipeline(gomock.Any()).DoAndReturn(func(domain.PipelineDesc) (domain.Handle, error) {
		return src.new(), nil
	}).Times(1)

	cache := pool.NewPipelineCache(device, quietLogger(ctrl))
	state := domain.NewGraphicsStateHash(domain.DefaultGraphicsState())
	desc := domain.NewPipelineDesc(state, domain.Handle{Kind: domain.KindRenderPass, Index: 1, Generation: 1}, 0, domain.NullHandle)

	a, err := cache.Acquire(desc)
	require.NoError(t, err)
	b, err := cache.Acquire(desc)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.NoError(t, cache.Release(a))
	assert.True(t, cache.InUse(a), "one reference is still held")
	require.NoError(t, cache.Release(b))
	assert.False(t, cache.InUse(a))
}

func TestPipelineCache_Prewarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	src := &handleSource{kind: domain.KindPipeline}
	device.EXPECT().CreatePipeline(gomock.Any()).DoAndReturn(func(domain.PipelineDesc) (domain.Handle, error) {
		return src.new(), nil
	}).Times(3)

	cache := pool.NewPipelineCache(device, quietLogger(ctrl))
	rp := domain.Handle{Kind: domain.KindRenderPass, Index: 1, Generation: 1}
	var descs []domain.PipelineDesc
	for subpass := range uint32(3) {
		state := domain.NewGraphicsStateHash(domain.DefaultGraphicsState())
		descs = append(descs, domain.NewPipelineDesc(state, rp, subpass, domain.NullHandle))
		// Duplicates are served from the cache.
		descs = append(descs, domain.NewPipelineDesc(state, rp, subpass, domain.NullHandle))
	}

	require.NoError(t, cache.Prewarm(context.Background(), descs))
	stats := cache.Stats()
	assert.Equal(t, uint64(3), stats.Created)
	assert.Equal(t, 3, stats.Free)
}

func TestPipelineCache_SaveAndLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)
	store := mocks.NewMockPipelineStore(ctrl)
	id := ports.DeviceIdentity{Vendor: 0x10de, Device: 1}
	device.EXPECT().Identity().Return(id).AnyTimes()

	cache := pool.NewPipelineCache(device, quietLogger(ctrl))

	device.EXPECT().PipelineCacheData().Return([]byte("blob"), nil)
	store.EXPECT().Put(gomock.Any(), id, []byte("blob")).Return(nil)
	require.NoError(t, cache.Save(context.Background(), store))

	store.EXPECT().Get(gomock.Any(), id).Return([]byte("blob"), nil)
	device.EXPECT().SeedPipelineCache([]byte("blob")).Return(nil)
	require.NoError(t, cache.Load(context.Background(), store))

	store.EXPECT().Get(gomock.Any(), id).Return(nil, nil)
	require.NoError(t, cache.Load(context.Background(), store), "missing blob is not an error")
}

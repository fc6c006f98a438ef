// Package headless implements the device, surface and shader ports in memory. Every object is a
// generation-counted slot, submitted work completes immediately, and every call is counted so
// that tests and dry runs can observe allocation and reuse.
package headless

import (
	"context"
	"encoding/binary"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Counters reports how many objects of each kind were created and destroyed.
type Counters struct {
	Created          map[domain.ObjectKind]int
	Destroyed        map[domain.ObjectKind]int
	Submits          int
	FenceWaits       int
	FenceResets      int
	DescriptorWrites int
}

// Live returns the number of objects of kind k that are still alive.
func (c Counters) Live(k domain.ObjectKind) int {
	return c.Created[k] - c.Destroyed[k]
}

type fence struct {
	signaled bool
	done     chan struct{}
}

type descriptorPool struct {
	maxSets uint32
	sets    map[domain.Handle]struct{}
}

type object struct {
	kind       domain.ObjectKind
	generation uint32
	alive      bool

	fence *fence
	pool  *descriptorPool
	owner domain.Handle
}

// Option configures a Device.
type Option func(*Device)

// WithIdentity sets the identity reported to the pipeline cache store.
func WithIdentity(id ports.DeviceIdentity) Option {
	return func(d *Device) { d.identity = id }
}

// Device is an in-memory ports.Device. It is safe for concurrent use.
type Device struct {
	mu       sync.Mutex
	objects  []object
	free     []uint32
	counters Counters
	identity ports.DeviceIdentity

	pipelineDigests []uint64
	knownDigests    map[uint64]bool
	seed            []byte
}

var _ ports.Device = (*Device)(nil)

// DefaultIdentity is reported when no identity is configured.
var DefaultIdentity = ports.DeviceIdentity{
	Vendor: 0x10005,
	Device: 1,
	Driver: 1,
	UUID:   [16]byte{'h', 'e', 'a', 'd', 'l', 'e', 's', 's'},
}

// New returns an empty device.
func New(opts ...Option) *Device {
	d := &Device{
		identity: DefaultIdentity,
		counters: Counters{
			Created:   make(map[domain.ObjectKind]int),
			Destroyed: make(map[domain.ObjectKind]int),
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// alloc must be called with d.mu held.
func (d *Device) alloc(kind domain.ObjectKind) (domain.Handle, *object) {
	var idx uint32
	if n := len(d.free); n > 0 {
		idx = d.free[n-1]
		d.free = d.free[:n-1]
	} else {
		idx = uint32(len(d.objects))
		d.objects = append(d.objects, object{})
	}
	obj := &d.objects[idx]
	*obj = object{kind: kind, generation: obj.generation + 1, alive: true}
	d.counters.Created[kind]++
	return domain.Handle{Kind: kind, Index: idx + 1, Generation: obj.generation}, obj
}

// lookup must be called with d.mu held.
func (d *Device) lookup(h domain.Handle, kind domain.ObjectKind) (*object, error) {
	if h.IsNull() || h.Index == 0 || int(h.Index) > len(d.objects) {
		return nil, zerr.With(domain.ErrUnknownHandle, "handle", h.String())
	}
	obj := &d.objects[h.Index-1]
	if !obj.alive || obj.generation != h.Generation {
		return nil, zerr.With(domain.ErrStaleHandle, "handle", h.String())
	}
	if kind != domain.KindNone && obj.kind != kind {
		return nil, zerr.With(zerr.With(domain.ErrWrongHandleKind, "handle", h.String()), "expected", kind.String())
	}
	return obj, nil
}

// release must be called with d.mu held.
func (d *Device) release(h domain.Handle, obj *object) {
	obj.alive = false
	obj.fence = nil
	obj.pool = nil
	d.free = append(d.free, h.Index-1)
	d.counters.Destroyed[obj.kind]++
}

func (d *Device) create(kind domain.ObjectKind) domain.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, _ := d.alloc(kind)
	return h
}

// CreateImage allocates an image.
func (d *Device) CreateImage(desc domain.ImageDesc) (domain.Handle, error) {
	if desc.Extent.IsZero() {
		return domain.NullHandle, zerr.With(domain.ErrInvalidExtent, "extent", desc.Extent.String())
	}
	return d.create(domain.KindImage), nil
}

// CreateBuffer allocates a buffer.
func (d *Device) CreateBuffer(desc domain.BufferDesc) (domain.Handle, error) {
	if desc.Size == 0 {
		return domain.NullHandle, zerr.New("buffer size must not be zero")
	}
	return d.create(domain.KindBuffer), nil
}

// CreatePipeline records the pipeline in the serialized pipeline cache.
func (d *Device) CreatePipeline(desc domain.PipelineDesc) (domain.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.lookup(desc.RenderPass, domain.KindRenderPass); err != nil {
		return domain.NullHandle, zerr.Wrap(err, "invalid render pass")
	}
	if _, err := d.lookup(desc.Layout, domain.KindPipelineLayout); err != nil {
		return domain.NullHandle, zerr.Wrap(err, "invalid pipeline layout")
	}
	if digest := desc.Hash().Digest(); !d.knownDigests[digest] {
		if d.knownDigests == nil {
			d.knownDigests = make(map[uint64]bool)
		}
		d.knownDigests[digest] = true
		d.pipelineDigests = append(d.pipelineDigests, digest)
	}
	h, _ := d.alloc(domain.KindPipeline)
	return h, nil
}

// CreatePipelineLayout allocates a pipeline layout object.
func (d *Device) CreatePipelineLayout() domain.Handle {
	return d.create(domain.KindPipelineLayout)
}

// CreateDescriptorSetLayout creates a set layout.
func (d *Device) CreateDescriptorSetLayout(bindings []domain.LayoutBinding) (domain.SetLayout, error) {
	return domain.NewSetLayout(d.create(domain.KindSetLayout), bindings), nil
}

// CreateDescriptorPool creates a pool holding at most desc.MaxSets sets.
func (d *Device) CreateDescriptorPool(desc domain.DescriptorPoolDesc) (domain.Handle, error) {
	if desc.MaxSets == 0 {
		return domain.NullHandle, zerr.New("descriptor pool must hold at least one set")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	h, obj := d.alloc(domain.KindDescriptorPool)
	obj.pool = &descriptorPool{maxSets: desc.MaxSets, sets: make(map[domain.Handle]struct{})}
	return h, nil
}

// AllocateDescriptorSet returns domain.ErrPoolExhausted, unwrapped, when pool is full.
func (d *Device) AllocateDescriptorSet(pool domain.Handle, layout domain.SetLayout) (domain.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, err := d.lookup(pool, domain.KindDescriptorPool)
	if err != nil {
		return domain.NullHandle, err
	}
	if _, err := d.lookup(layout.Handle(), domain.KindSetLayout); err != nil {
		return domain.NullHandle, zerr.Wrap(err, "invalid set layout")
	}
	p := obj.pool
	if uint32(len(p.sets)) >= p.maxSets {
		return domain.NullHandle, domain.ErrPoolExhausted
	}
	h, set := d.alloc(domain.KindDescriptorSet)
	set.owner = pool
	p.sets[h] = struct{}{}
	return h, nil
}

// FreeDescriptorSet returns set to pool.
func (d *Device) FreeDescriptorSet(pool, set domain.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, err := d.lookup(pool, domain.KindDescriptorPool)
	if err != nil {
		return err
	}
	s, err := d.lookup(set, domain.KindDescriptorSet)
	if err != nil {
		return err
	}
	if s.owner != pool {
		return zerr.With(zerr.New("descriptor set does not belong to pool"), "pool", pool.String())
	}
	delete(obj.pool.sets, set)
	d.release(set, s)
	return nil
}

// UpdateDescriptorSet checks that every written resource is alive.
func (d *Device) UpdateDescriptorSet(set domain.Handle, writes []domain.DescriptorWrite) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.lookup(set, domain.KindDescriptorSet); err != nil {
		return err
	}
	for _, w := range writes {
		var target domain.Handle
		var kind domain.ObjectKind
		switch v := w.Value.(type) {
		case domain.ImageBinding:
			target, kind = v.Image, domain.KindImage
		case domain.InputAttachmentBinding:
			target, kind = v.Image, domain.KindImage
		case domain.BufferBinding:
			target, kind = v.Buffer, domain.KindBuffer
		case domain.DynamicBufferBinding:
			target, kind = v.Buffer, domain.KindBuffer
		}
		if _, err := d.lookup(target, kind); err != nil {
			return zerr.With(err, "binding", w.Binding)
		}
	}
	d.counters.DescriptorWrites += len(writes)
	return nil
}

// CreateRenderPass creates a render pass.
func (d *Device) CreateRenderPass(desc domain.RenderPassDesc) (domain.Handle, error) {
	if len(desc.Subpasses) == 0 {
		return domain.NullHandle, zerr.With(zerr.New("render pass has no subpasses"), "render_pass", desc.Name)
	}
	return d.create(domain.KindRenderPass), nil
}

// CreateFramebuffer checks that the render pass and every attachment are alive.
func (d *Device) CreateFramebuffer(desc domain.FramebufferDesc) (domain.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.lookup(desc.RenderPass, domain.KindRenderPass); err != nil {
		return domain.NullHandle, err
	}
	for _, a := range desc.Attachments {
		if _, err := d.lookup(a, domain.KindImage); err != nil {
			return domain.NullHandle, zerr.Wrap(err, "invalid framebuffer attachment")
		}
	}
	h, _ := d.alloc(domain.KindFramebuffer)
	return h, nil
}

// CreateFence creates a fence.
func (d *Device) CreateFence(signaled bool) (domain.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, obj := d.alloc(domain.KindFence)
	obj.fence = &fence{signaled: signaled, done: make(chan struct{})}
	if signaled {
		close(obj.fence.done)
	}
	return h, nil
}

// CreateSemaphore creates a semaphore.
func (d *Device) CreateSemaphore() (domain.Handle, error) {
	return d.create(domain.KindSemaphore), nil
}

// CreateCommandBuffer allocates a command buffer.
func (d *Device) CreateCommandBuffer() (ports.CommandBuffer, error) {
	return &CommandBuffer{device: d, handle: d.create(domain.KindCommandBuffer)}, nil
}

// WaitForFence blocks until fence is signaled or ctx is done.
func (d *Device) WaitForFence(ctx context.Context, h domain.Handle) error {
	d.mu.Lock()
	obj, err := d.lookup(h, domain.KindFence)
	if err != nil {
		d.mu.Unlock()
		return err
	}
	d.counters.FenceWaits++
	done := obj.fence.done
	d.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return zerr.Wrap(ctx.Err(), "fence wait cancelled")
	}
}

// ResetFence returns fence to the unsignaled state.
func (d *Device) ResetFence(h domain.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, err := d.lookup(h, domain.KindFence)
	if err != nil {
		return err
	}
	d.counters.FenceResets++
	if obj.fence.signaled {
		obj.fence = &fence{done: make(chan struct{})}
	}
	return nil
}

// Submit completes the work immediately and signals sub.Fence.
func (d *Device) Submit(ctx context.Context, sub domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.lookup(sub.Commands, domain.KindCommandBuffer); err != nil {
		return err
	}
	for _, s := range slices.Concat(sub.Wait, sub.Signal) {
		if _, err := d.lookup(s, domain.KindSemaphore); err != nil {
			return err
		}
	}
	d.counters.Submits++
	if sub.Fence.IsNull() {
		return nil
	}
	obj, err := d.lookup(sub.Fence, domain.KindFence)
	if err != nil {
		return err
	}
	if obj.fence.signaled {
		return zerr.With(zerr.New("fence is already signaled"), "fence", sub.Fence.String())
	}
	obj.fence.signaled = true
	close(obj.fence.done)
	return nil
}

// Destroy releases any object. Destroying a descriptor pool frees its sets.
func (d *Device) Destroy(h domain.Handle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, err := d.lookup(h, domain.KindNone)
	if err != nil {
		return err
	}
	if obj.kind == domain.KindDescriptorSet {
		if owner, err := d.lookup(obj.owner, domain.KindDescriptorPool); err == nil {
			delete(owner.pool.sets, h)
		}
	}
	if obj.pool != nil {
		for set := range obj.pool.sets {
			if s, err := d.lookup(set, domain.KindDescriptorSet); err == nil {
				d.release(set, s)
			}
		}
	}
	d.release(h, obj)
	return nil
}

// PipelineCacheData serializes the seed followed by the digest of every pipeline created that
// the seed does not already hold. Each digest appears once.
func (d *Device) PipelineCacheData() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := slices.Clone(d.seed)
	for _, digest := range d.pipelineDigests {
		out = binary.LittleEndian.AppendUint64(out, digest)
	}
	return out, nil
}

// SeedPipelineCache primes the cache with data from PipelineCacheData.
func (d *Device) SeedPipelineCache(data []byte) error {
	if len(data)%8 != 0 {
		return zerr.With(zerr.New("corrupt pipeline cache data"), "size", len(data))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seed = slices.Clone(data)
	d.pipelineDigests = nil
	d.knownDigests = make(map[uint64]bool, len(data)/8)
	for i := 0; i < len(data); i += 8 {
		d.knownDigests[binary.LittleEndian.Uint64(data[i:])] = true
	}
	return nil
}

// Identity returns the configured device identity.
func (d *Device) Identity() ports.DeviceIdentity { return d.identity }

// Counters returns a snapshot of the device counters.
func (d *Device) Counters() Counters {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := d.counters
	c.Created = maps.Clone(d.counters.Created)
	c.Destroyed = maps.Clone(d.counters.Destroyed)
	return c
}

// Alive reports whether h refers to a live object.
func (d *Device) Alive(h domain.Handle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.lookup(h, domain.KindNone)
	return err == nil
}

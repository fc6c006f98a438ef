// Package framegraph turns a declared graph of logical passes and resources into an ordered,
// merged list of physical render passes and records it once per frame.
//
// Resources and passes are declared up front. The graph is validated and the physical passes
// of a frame slot are rebuilt only when something changed: a declaration, a resource setting,
// or the extent of the output surface.
package framegraph

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/framegraph/internal/engine/frame"
	"go.trai.ch/framegraph/internal/engine/pool"
	"go.trai.ch/framegraph/internal/engine/recorder"
	"go.trai.ch/zerr"
)

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger for rebuild and lifecycle messages.
func WithLogger(l ports.Logger) Option {
	return func(g *Graph) { g.logger = l }
}

// WithTracer sets the tracer used for frame and rebuild spans.
func WithTracer(t ports.Tracer) Option {
	return func(g *Graph) { g.tracer = t }
}

// WithTelemetry records a vertex per physical pass on every rebuild.
func WithTelemetry(t ports.Telemetry) Option {
	return func(g *Graph) { g.telemetry = t }
}

// WithPipelineCache shares a pipeline cache with the graph. The caller keeps ownership.
func WithPipelineCache(c *pool.PipelineCache) Option {
	return func(g *Graph) { g.pipelines = c }
}

// WithImageCache shares an image cache with the graph. The caller keeps ownership.
func WithImageCache(c *pool.ImageCache) Option {
	return func(g *Graph) { g.images = c }
}

// WithDescriptorPoolCache shares a descriptor pool cache with the graph. The caller keeps ownership.
func WithDescriptorPoolCache(c *pool.DescriptorPoolCache) Option {
	return func(g *Graph) { g.descriptorPools = c }
}

// slot is the state of one frame in flight.
type slot struct {
	index    int
	dirty    bool
	fence    domain.Handle
	acquired domain.Handle
	rendered domain.Handle
	cmd      ports.CommandBuffer
	sets     *pool.DescriptorSetCache
	rec      *recorder.Recorder
	physical []*physicalPass
	images   map[*Resource]domain.Handle
}

// Stats summarizes the work a Graph has done.
type Stats struct {
	Frames          int
	Rebuilds        int
	PhysicalPasses  int
	Images          pool.Stats
	Pipelines       pool.Stats
	DescriptorPools pool.DescriptorPoolStats
	Recorder        recorder.Stats
}

// Graph is a frame graph bound to a device and an output surface.
// It is driven by a single goroutine.
type Graph struct {
	device  ports.Device
	surface ports.Surface
	frames  *frame.Index

	logger    ports.Logger
	tracer    ports.Tracer
	telemetry ports.Telemetry

	images          *pool.ImageCache
	pipelines       *pool.PipelineCache
	descriptorPools *pool.DescriptorPoolCache
	owned           []func() error

	resources  []*Resource
	resByName  map[string]*Resource
	passes     []*Pass
	passByName map[string]*Pass

	dirty  bool
	final  *Pass
	extent domain.Extent2D
	slots  *frame.Resource[slot]
	closed bool

	frameCount int
	rebuilds   int
}

// New creates a graph recording frames for surface with the given number of frames in flight.
func New(device ports.Device, surface ports.Surface, frames int, opts ...Option) (*Graph, error) {
	idx, err := frame.NewIndex(frames)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		device:     device,
		surface:    surface,
		frames:     idx,
		resByName:  make(map[string]*Resource),
		passByName: make(map[string]*Pass),
		dirty:      true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = nopLogger{}
	}
	if g.tracer == nil {
		g.tracer = nopTracer{}
	}
	// Caches created here are destroyed by Close, in reverse order of creation.
	if g.images == nil {
		g.images = pool.NewImageCache(device)
		g.owned = append(g.owned, g.images.DeleteAll)
	}
	if g.pipelines == nil {
		g.pipelines = pool.NewPipelineCache(device, g.logger)
		g.owned = append(g.owned, g.pipelines.DeleteAll)
	}
	if g.descriptorPools == nil {
		g.descriptorPools = pool.NewDescriptorPoolCache(device, g.logger, pool.DefaultMaxSetsPerPool)
		g.owned = append(g.owned, g.descriptorPools.DeleteAll)
	}

	var built []slot
	g.slots, err = frame.NewResource(idx, func(index int) (slot, error) {
		s, err := g.newSlot(index)
		if err == nil {
			built = append(built, s)
		}
		return s, err
	})
	if err != nil {
		for _, s := range slices.Backward(built) {
			err = errors.Join(err, g.destroyAll(s.handles()))
		}
		return nil, err
	}
	return g, nil
}

// newSlot creates the synchronization objects and command buffer of one frame slot. On failure
// the objects it already created are destroyed.
func (g *Graph) newSlot(index int) (s slot, err error) {
	var created []domain.Handle
	defer func() {
		if err != nil {
			err = errors.Join(err, g.destroyAll(created))
		}
	}()

	fence, err := g.device.CreateFence(true)
	if err != nil {
		return slot{}, zerr.Wrap(err, "failed to create fence")
	}
	created = append(created, fence)
	acquired, err := g.device.CreateSemaphore()
	if err != nil {
		return slot{}, zerr.Wrap(err, "failed to create semaphore")
	}
	created = append(created, acquired)
	rendered, err := g.device.CreateSemaphore()
	if err != nil {
		return slot{}, zerr.Wrap(err, "failed to create semaphore")
	}
	created = append(created, rendered)
	cmd, err := g.device.CreateCommandBuffer()
	if err != nil {
		return slot{}, zerr.Wrap(err, "failed to create command buffer")
	}
	sets := pool.NewDescriptorSetCache(g.descriptorPools)
	return slot{
		index:    index,
		dirty:    true,
		fence:    fence,
		acquired: acquired,
		rendered: rendered,
		cmd:      cmd,
		sets:     sets,
		rec:      recorder.New(g.device, cmd, g.pipelines, sets),
		images:   make(map[*Resource]domain.Handle),
	}, nil
}

// handles lists the device objects owned by the slot itself.
func (s *slot) handles() []domain.Handle {
	return []domain.Handle{s.fence, s.acquired, s.rendered, s.cmd.Handle()}
}

// destroyAll destroys hs in reverse order.
func (g *Graph) destroyAll(hs []domain.Handle) error {
	var errs []error
	for _, h := range slices.Backward(hs) {
		if err := g.device.Destroy(h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CreateResource declares a logical resource.
func (g *Graph) CreateResource(name string, desc ResourceDesc) (*Resource, error) {
	if _, exists := g.resByName[name]; exists {
		return nil, zerr.With(domain.ErrDuplicateResource, "resource", name)
	}
	r := &Resource{graph: g, name: name, desc: desc}
	g.resources = append(g.resources, r)
	g.resByName[name] = r
	g.markDirty()
	return r, nil
}

// CreatePass declares a logical pass. Declaration order is significant: a pass depends on the
// nearest earlier pass that writes each resource it reads.
func (g *Graph) CreatePass(name string, record RecordFunc) (*Pass, error) {
	if _, exists := g.passByName[name]; exists {
		return nil, zerr.With(domain.ErrDuplicatePass, "pass", name)
	}
	p := &Pass{graph: g, name: name, index: len(g.passes), record: record}
	g.passes = append(g.passes, p)
	g.passByName[name] = p
	g.markDirty()
	return p, nil
}

// Resource returns the resource named name.
func (g *Graph) Resource(name string) (*Resource, bool) {
	r, ok := g.resByName[name]
	return r, ok
}

// Pass returns the pass named name.
func (g *Graph) Pass(name string) (*Pass, bool) {
	p, ok := g.passByName[name]
	return p, ok
}

// Frames returns the frame index shared by the graph's per-slot state.
func (g *Graph) Frames() *frame.Index { return g.frames }

// Pipelines returns the pipeline cache used by the graph's recorders.
func (g *Graph) Pipelines() *pool.PipelineCache { return g.pipelines }

func (g *Graph) markDirty() {
	g.dirty = true
}

// Stats returns counters for the frames processed so far.
func (g *Graph) Stats() Stats {
	// After Advance the current slot is the next one to record; the last recorded is Previous.
	last := g.slots.Previous()
	return Stats{
		Frames:          g.frameCount,
		Rebuilds:        g.rebuilds,
		PhysicalPasses:  len(last.physical),
		Images:          g.images.Stats(),
		Pipelines:       g.pipelines.Stats(),
		DescriptorPools: g.descriptorPools.Stats(),
		Recorder:        last.rec.Stats(),
	}
}

// Close waits for every frame in flight and destroys every object the graph created.
func (g *Graph) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true

	var errs []error
	ctx := context.Background()
	for _, s := range g.slots.All() {
		if err := g.device.WaitForFence(ctx, s.fence); err != nil {
			errs = append(errs, err)
		}
		if err := s.rec.Reset(); err != nil {
			errs = append(errs, err)
		}
		if err := s.sets.DeleteAll(); err != nil {
			errs = append(errs, err)
		}
		if err := g.release(s); err != nil {
			errs = append(errs, err)
		}
		if err := g.destroyAll(s.handles()); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(g.owned) - 1; i >= 0; i-- {
		if err := g.owned[i](); err != nil {
			errs = append(errs, err)
		}
	}
	g.logger.Debug("frame graph closed", "frames", g.frameCount)
	if err := errors.Join(errs...); err != nil {
		return zerr.Wrap(err, "failed to close frame graph")
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                   {}
func (nopSpan) RecordError(error)      {}
func (nopSpan) SetAttribute(string, any) {}

package pool

import (
	"context"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// prewarmLimit bounds the number of pipelines compiled at once by Prewarm.
const prewarmLimit = 4

// PipelineCache pools graphics pipelines by graphics state, render pass, subpass and layout.
// Pipelines are immutable, so every acquirer of a key shares one reference-counted handle.
// It is safe for concurrent use.
type PipelineCache struct {
	*Pool[domain.PipelineDesc]
	device ports.Device
	logger ports.Logger
}

// NewPipelineCache returns an empty pipeline cache backed by device.
func NewPipelineCache(device ports.Device, logger ports.Logger) *PipelineCache {
	return &PipelineCache{
		Pool:   New(domain.PipelineDesc.Hash, device.CreatePipeline, device.Destroy, WithMutex(), Shared()),
		device: device,
		logger: logger,
	}
}

// Prewarm creates the pipelines for descs concurrently and releases them again, so that later
// acquisitions are served from the cache.
func (c *PipelineCache) Prewarm(ctx context.Context, descs []domain.PipelineDesc) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prewarmLimit)
	for _, desc := range descs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := c.Acquire(desc)
			if err != nil {
				return err
			}
			return c.Release(h)
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "failed to prewarm pipelines")
	}
	c.logger.Debug("pipelines prewarmed", "count", len(descs))
	return nil
}

// Load seeds the device's pipeline cache with the blob saved for this device, if any.
func (c *PipelineCache) Load(ctx context.Context, store ports.PipelineStore) error {
	data, err := store.Get(ctx, c.device.Identity())
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := c.device.SeedPipelineCache(data); err != nil {
		return zerr.Wrap(err, "failed to seed pipeline cache")
	}
	c.logger.Debug("pipeline cache loaded", "bytes", len(data))
	return nil
}

// Save stores the device's current pipeline cache blob.
func (c *PipelineCache) Save(ctx context.Context, store ports.PipelineStore) error {
	data, err := c.device.PipelineCacheData()
	if err != nil {
		return zerr.Wrap(err, "failed to read pipeline cache")
	}
	if len(data) == 0 {
		return nil
	}
	if err := store.Put(ctx, c.device.Identity(), data); err != nil {
		return err
	}
	c.logger.Debug("pipeline cache saved", "bytes", len(data))
	return nil
}

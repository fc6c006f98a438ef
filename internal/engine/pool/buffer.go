package pool

import (
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
)

// BufferCache pools buffers by size, usage and memory properties. It is safe for concurrent use.
type BufferCache struct {
	*Pool[domain.BufferDesc]
}

// NewBufferCache returns an empty buffer cache backed by device.
func NewBufferCache(device ports.Device) *BufferCache {
	return &BufferCache{
		Pool: New(domain.BufferDesc.Hash, device.CreateBuffer, device.Destroy, WithMutex()),
	}
}

// ImageCache pools images by format, extent, usage and sample count. It is safe for concurrent use.
type ImageCache struct {
	*Pool[domain.ImageDesc]
}

// NewImageCache returns an empty image cache backed by device.
func NewImageCache(device ports.Device) *ImageCache {
	return &ImageCache{
		Pool: New(domain.ImageDesc.Hash, device.CreateImage, device.Destroy, WithMutex()),
	}
}

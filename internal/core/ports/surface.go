package ports

import (
	"context"

	"go.trai.ch/framegraph/internal/core/domain"
)

// Surface is the presentation target the output pass is copied to.
//
//go:generate go run go.uber.org/mock/mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// Extent returns the current size of the surface. A change marks the frame graph dirty.
	Extent() domain.Extent2D
	// Format returns the pixel format of the surface images.
	Format() domain.Format
	// Acquire returns the next presentable image; signal is signaled once it is ready.
	Acquire(ctx context.Context, signal domain.Handle) (domain.Handle, error)
	// Present queues image for display after wait is signaled.
	Present(ctx context.Context, image, wait domain.Handle) error
}

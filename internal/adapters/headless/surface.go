package headless

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Surface is an in-memory swapchain of images owned by a Device.
type Surface struct {
	mu       sync.Mutex
	device   *Device
	format   domain.Format
	extent   domain.Extent2D
	count    int
	images   []domain.Handle
	next     int
	acquired int
	presents int
}

var _ ports.Surface = (*Surface)(nil)

// NewSurface creates a surface with count images of the given extent.
func NewSurface(device *Device, extent domain.Extent2D, count int) (*Surface, error) {
	s := &Surface{device: device, format: domain.FormatBGRA8, count: max(count, 1)}
	if err := s.Resize(extent); err != nil {
		return nil, err
	}
	return s, nil
}

// Resize recreates the surface images at extent.
func (s *Surface) Resize(extent domain.Extent2D) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.destroyImages(); err != nil {
		return err
	}
	for range s.count {
		h, err := s.device.CreateImage(domain.ImageDesc{
			Format:  s.format,
			Extent:  extent,
			Usage:   domain.ImageUsageTransferDst,
			Samples: 1,
		})
		if err != nil {
			return zerr.Wrap(err, "failed to create surface image")
		}
		s.images = append(s.images, h)
	}
	s.extent = extent
	s.next = 0
	return nil
}

func (s *Surface) destroyImages() error {
	for _, h := range s.images {
		if err := s.device.Destroy(h); err != nil {
			return err
		}
	}
	s.images = s.images[:0]
	return nil
}

// Extent returns the current size of the surface.
func (s *Surface) Extent() domain.Extent2D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extent
}

// Format returns the pixel format of the surface images.
func (s *Surface) Format() domain.Format { return s.format }

// Acquire returns the surface images in round-robin order.
func (s *Surface) Acquire(ctx context.Context, _ domain.Handle) (domain.Handle, error) {
	if err := ctx.Err(); err != nil {
		return domain.NullHandle, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.images[s.next]
	s.next = (s.next + 1) % len(s.images)
	s.acquired++
	return h, nil
}

// Present accepts an image previously returned by Acquire.
func (s *Surface) Present(ctx context.Context, image, _ domain.Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.images, image) {
		return zerr.With(domain.ErrUnknownHandle, "image", image.String())
	}
	s.presents++
	return nil
}

// Presents returns the number of presented frames.
func (s *Surface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}

// Close destroys the surface images.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyImages()
}

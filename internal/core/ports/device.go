package ports

import (
	"context"

	"go.trai.ch/framegraph/internal/core/domain"
)

// DeviceIdentity identifies a physical device and driver. Pipeline cache blobs are only valid
// for the identity they were produced by.
type DeviceIdentity struct {
	Vendor uint32
	Device uint32
	Driver uint32
	UUID   [16]byte
}

// Device creates and destroys GPU objects and submits work.
// Every error it returns is fatal to the caller, except domain.ErrPoolExhausted from
// AllocateDescriptorSet, which the descriptor pool cache handles by growing.
//
//go:generate go run go.uber.org/mock/mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks
type Device interface {
	// CreateImage allocates an image.
	CreateImage(desc domain.ImageDesc) (domain.Handle, error)
	// CreateBuffer allocates a buffer.
	CreateBuffer(desc domain.BufferDesc) (domain.Handle, error)
	// CreatePipeline compiles a graphics pipeline.
	CreatePipeline(desc domain.PipelineDesc) (domain.Handle, error)
	// CreateDescriptorSetLayout creates a set layout with the given bindings.
	CreateDescriptorSetLayout(bindings []domain.LayoutBinding) (domain.SetLayout, error)
	// CreateDescriptorPool creates a native descriptor pool.
	CreateDescriptorPool(desc domain.DescriptorPoolDesc) (domain.Handle, error)
	// AllocateDescriptorSet allocates a set of the given layout from pool.
	AllocateDescriptorSet(pool domain.Handle, layout domain.SetLayout) (domain.Handle, error)
	// FreeDescriptorSet returns set to pool.
	FreeDescriptorSet(pool, set domain.Handle) error
	// UpdateDescriptorSet writes bindings into set.
	UpdateDescriptorSet(set domain.Handle, writes []domain.DescriptorWrite) error
	// CreateRenderPass creates a render pass.
	CreateRenderPass(desc domain.RenderPassDesc) (domain.Handle, error)
	// CreateFramebuffer creates a framebuffer.
	CreateFramebuffer(desc domain.FramebufferDesc) (domain.Handle, error)
	// CreateFence creates a fence, optionally already signaled.
	CreateFence(signaled bool) (domain.Handle, error)
	// CreateSemaphore creates a binary semaphore.
	CreateSemaphore() (domain.Handle, error)
	// CreateCommandBuffer allocates a primary command buffer.
	CreateCommandBuffer() (CommandBuffer, error)
	// WaitForFence blocks until fence is signaled or ctx is done.
	WaitForFence(ctx context.Context, fence domain.Handle) error
	// ResetFence returns fence to the unsignaled state.
	ResetFence(fence domain.Handle) error
	// Submit queues recorded work.
	Submit(ctx context.Context, sub domain.Submission) error
	// Destroy releases any object created by the device.
	Destroy(h domain.Handle) error
	// PipelineCacheData returns the driver's serialized pipeline cache.
	PipelineCacheData() ([]byte, error)
	// SeedPipelineCache primes the driver's pipeline cache with previously saved data.
	SeedPipelineCache(data []byte) error
	// Identity returns the physical device identity.
	Identity() DeviceIdentity
}

// CommandBuffer records GPU commands. It is used by one goroutine at a time.
type CommandBuffer interface {
	Handle() domain.Handle
	Reset() error
	Begin() error
	End() error
	BeginRenderPass(renderPass, framebuffer domain.Handle, extent domain.Extent2D, clears []domain.ClearValue)
	NextSubpass()
	EndRenderPass()
	BindPipeline(pipeline domain.Handle)
	BindDescriptorSet(layout domain.Handle, set uint32, descriptorSet domain.Handle, dynamicOffsets []uint32)
	BindVertexBuffer(binding uint32, buffer domain.Handle, offset uint64)
	Draw(vertices, instances, firstVertex, firstInstance uint32)
	DrawIndexed(indices, instances, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	BlitImage(src, dst domain.Handle)
}

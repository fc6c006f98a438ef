package headless

import (
	"fmt"
	"slices"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandBuffer logs every recorded command. It is used by one goroutine at a time.
type CommandBuffer struct {
	device    *Device
	handle    domain.Handle
	recording bool
	inPass    bool
	log       []string
	draws     int
}

var _ ports.CommandBuffer = (*CommandBuffer)(nil)

// Handle returns the device handle of the command buffer.
func (c *CommandBuffer) Handle() domain.Handle { return c.handle }

// Reset discards everything recorded.
func (c *CommandBuffer) Reset() error {
	c.recording = false
	c.inPass = false
	c.log = c.log[:0]
	c.draws = 0
	return nil
}

// Begin starts recording.
func (c *CommandBuffer) Begin() error {
	if c.recording {
		return zerr.With(zerr.New("command buffer is already recording"), "command_buffer", c.handle.String())
	}
	c.recording = true
	return nil
}

// End finishes recording.
func (c *CommandBuffer) End() error {
	if !c.recording {
		return zerr.With(zerr.New("command buffer is not recording"), "command_buffer", c.handle.String())
	}
	if c.inPass {
		return zerr.With(zerr.New("render pass was not ended"), "command_buffer", c.handle.String())
	}
	c.recording = false
	return nil
}

func (c *CommandBuffer) add(format string, args ...any) {
	c.log = append(c.log, fmt.Sprintf(format, args...))
}

// BeginRenderPass starts a render pass.
func (c *CommandBuffer) BeginRenderPass(renderPass, framebuffer domain.Handle, extent domain.Extent2D, clears []domain.ClearValue) {
	c.inPass = true
	c.add("begin_render_pass %s %s %s clears=%d", renderPass, framebuffer, extent, len(clears))
}

// NextSubpass advances to the next subpass.
func (c *CommandBuffer) NextSubpass() { c.add("next_subpass") }

// EndRenderPass ends the render pass.
func (c *CommandBuffer) EndRenderPass() {
	c.inPass = false
	c.add("end_render_pass")
}

// BindPipeline binds a pipeline.
func (c *CommandBuffer) BindPipeline(pipeline domain.Handle) {
	c.add("bind_pipeline %s", pipeline)
}

// BindDescriptorSet binds a descriptor set.
func (c *CommandBuffer) BindDescriptorSet(layout domain.Handle, set uint32, descriptorSet domain.Handle, dynamicOffsets []uint32) {
	c.add("bind_descriptor_set %s set=%d %s offsets=%v", layout, set, descriptorSet, dynamicOffsets)
}

// BindVertexBuffer binds a vertex buffer.
func (c *CommandBuffer) BindVertexBuffer(binding uint32, buffer domain.Handle, offset uint64) {
	c.add("bind_vertex_buffer %d %s +%d", binding, buffer, offset)
}

// Draw records a draw.
func (c *CommandBuffer) Draw(vertices, instances, firstVertex, firstInstance uint32) {
	c.draws++
	c.add("draw %d %d %d %d", vertices, instances, firstVertex, firstInstance)
}

// DrawIndexed records an indexed draw.
func (c *CommandBuffer) DrawIndexed(indices, instances, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	c.draws++
	c.add("draw_indexed %d %d %d %d %d", indices, instances, firstIndex, vertexOffset, firstInstance)
}

// BlitImage copies src into dst.
func (c *CommandBuffer) BlitImage(src, dst domain.Handle) {
	c.add("blit %s %s", src, dst)
}

// Log returns the commands recorded since the last Reset.
func (c *CommandBuffer) Log() []string { return slices.Clone(c.log) }

// Draws returns the number of draws recorded since the last Reset.
func (c *CommandBuffer) Draws() int { return c.draws }

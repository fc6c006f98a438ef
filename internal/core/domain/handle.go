package domain

import "fmt"

// ObjectKind identifies the type of GPU object a Handle refers to.
type ObjectKind uint8

// GPU object kinds.
const (
	KindNone ObjectKind = iota
	KindImage
	KindBuffer
	KindPipeline
	KindPipelineLayout
	KindSetLayout
	KindDescriptorPool
	KindDescriptorSet
	KindRenderPass
	KindFramebuffer
	KindFence
	KindSemaphore
	KindCommandBuffer
)

var kindNames = [...]string{
	KindNone:           "none",
	KindImage:          "image",
	KindBuffer:         "buffer",
	KindPipeline:       "pipeline",
	KindPipelineLayout: "pipeline_layout",
	KindSetLayout:      "set_layout",
	KindDescriptorPool: "descriptor_pool",
	KindDescriptorSet:  "descriptor_set",
	KindRenderPass:     "render_pass",
	KindFramebuffer:    "framebuffer",
	KindFence:          "fence",
	KindSemaphore:      "semaphore",
	KindCommandBuffer:  "command_buffer",
}

// String returns the lower-case name of the kind.
func (k ObjectKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Handle is a generation-counted reference to a GPU object.
// A slot that is destroyed and reused gets a new generation, so a stale handle never aliases
// the object that replaced it. Generations start at 1; the zero Handle is the null handle.
type Handle struct {
	Kind       ObjectKind
	Index      uint32
	Generation uint32
}

// NullHandle refers to no object.
var NullHandle Handle

// IsNull reports whether h refers to no object.
func (h Handle) IsNull() bool {
	return h.Generation == 0
}

// String formats h as kind#index.generation.
func (h Handle) String() string {
	if h.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%s#%d.%d", h.Kind, h.Index, h.Generation)
}

// PushHandle appends the identity of h to c.
func PushHandle(c *ContentHash, h Handle) {
	Push(c, 8, h.Kind)
	Push(c, 32, h.Index)
	Push(c, 32, h.Generation)
}

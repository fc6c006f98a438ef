package domain

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.trai.ch/zerr"
)

// Format is the pixel format of an image.
type Format uint8

// Supported image formats.
const (
	FormatUndefined Format = iota
	FormatRGBA8
	FormatBGRA8
	FormatRGBA16F
	FormatRGBA32F
	FormatR8
	FormatD32
	FormatD24S8
)

var formatNames = map[Format]string{
	FormatUndefined: "undefined",
	FormatRGBA8:     "rgba8",
	FormatBGRA8:     "bgra8",
	FormatRGBA16F:   "rgba16f",
	FormatRGBA32F:   "rgba32f",
	FormatR8:        "r8",
	FormatD32:       "d32",
	FormatD24S8:     "d24s8",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsDepth reports whether f is a depth or depth-stencil format.
func (f Format) IsDepth() bool {
	return f == FormatD32 || f == FormatD24S8
}

// ParseFormat resolves a lower-case format name such as "rgba8".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if f != FormatUndefined && name == s {
			return f, nil
		}
	}
	return FormatUndefined, zerr.With(ErrUnknownFormat, "format", s)
}

// Extent2D is a size in pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero.
func (e Extent2D) IsZero() bool {
	return e.Width == 0 || e.Height == 0
}

func (e Extent2D) String() string {
	return strconv.FormatUint(uint64(e.Width), 10) + "x" + strconv.FormatUint(uint64(e.Height), 10)
}

// Scale returns e multiplied by s, rounded down and clamped to at least one pixel per axis.
func (e Extent2D) Scale(s mgl32.Vec2) Extent2D {
	scaled := Extent2D{
		Width:  uint32(float32(e.Width) * s.X()),
		Height: uint32(float32(e.Height) * s.Y()),
	}
	scaled.Width = max(scaled.Width, 1)
	scaled.Height = max(scaled.Height, 1)
	return scaled
}

// SizeMode selects how a logical resource's extent is resolved.
type SizeMode uint8

const (
	// SizeRelative scales the output surface extent.
	SizeRelative SizeMode = iota
	// SizeAbsolute uses a fixed pixel extent.
	SizeAbsolute
)

func (m SizeMode) String() string {
	if m == SizeAbsolute {
		return "absolute"
	}
	return "relative"
}

// Usage is how a pass uses a resource.
type Usage uint8

// Resource usages inside a pass.
const (
	UsageInputAttachment Usage = iota
	UsageColorAttachment
	UsageDepthAttachment
)

func (u Usage) String() string {
	switch u {
	case UsageInputAttachment:
		return "input"
	case UsageColorAttachment:
		return "color"
	case UsageDepthAttachment:
		return "depth"
	default:
		return "unknown"
	}
}

// ParseUsage resolves "input", "color" or "depth".
func ParseUsage(s string) (Usage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input":
		return UsageInputAttachment, nil
	case "color":
		return UsageColorAttachment, nil
	case "depth":
		return UsageDepthAttachment, nil
	default:
		return UsageInputAttachment, zerr.With(ErrUnknownUsage, "usage", s)
	}
}

// Access is the read/write mode of a resource use.
type Access uint8

// Access modes.
const (
	AccessRead Access = iota
	AccessWrite
	AccessReadWrite
)

// Reads reports whether the access observes previous contents.
func (a Access) Reads() bool {
	return a != AccessWrite
}

// Writes reports whether the access produces new contents.
func (a Access) Writes() bool {
	return a != AccessRead
}

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessReadWrite:
		return "readwrite"
	default:
		return "unknown"
	}
}

// ParseAccess resolves "read", "write" or "readwrite".
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read":
		return AccessRead, nil
	case "write":
		return AccessWrite, nil
	case "readwrite", "read_write", "rw":
		return AccessReadWrite, nil
	default:
		return AccessRead, zerr.With(ErrUnknownAccess, "access", s)
	}
}

// ClearValue is the value an attachment is cleared to when its pass creates it.
type ClearValue struct {
	Color   mgl32.Vec4
	Depth   float32
	Stencil uint32
}

// ImageUsage is a bit set of the ways an image may be used by the device.
type ImageUsage uint32

// Image usage flags.
const (
	ImageUsageColorAttachment ImageUsage = 1 << iota
	ImageUsageDepthStencilAttachment
	ImageUsageInputAttachment
	ImageUsageSampled
	ImageUsageTransferSrc
	ImageUsageTransferDst
)

// BufferUsage is a bit set of the ways a buffer may be used by the device.
type BufferUsage uint32

// Buffer usage flags.
const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageStorage
	BufferUsageTransferSrc
	BufferUsageTransferDst
)

// MemoryProperty is a bit set of memory heap properties.
type MemoryProperty uint32

// Memory property flags.
const (
	MemoryDeviceLocal MemoryProperty = 1 << iota
	MemoryHostVisible
	MemoryHostCoherent
)

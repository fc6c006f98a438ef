package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFormat is returned when a format name is not recognized.
	ErrUnknownFormat = zerr.New("unknown format")

	// ErrUnknownAccess is returned when an access mode name is not recognized.
	ErrUnknownAccess = zerr.New("unknown access mode")

	// ErrUnknownUsage is returned when a resource usage name is not recognized.
	ErrUnknownUsage = zerr.New("unknown resource usage")

	// ErrInvalidDescriptorSet is returned when a descriptor set number is out of range.
	ErrInvalidDescriptorSet = zerr.New("descriptor set number out of range")

	// ErrInvalidFrameCount is returned when the number of frames in flight is out of range.
	ErrInvalidFrameCount = zerr.New("frames in flight out of range")

	// ErrInvalidExtent is returned when a resource or surface has a zero extent.
	ErrInvalidExtent = zerr.New("invalid extent")

	// ErrDuplicateResource is returned when a resource name is declared twice.
	ErrDuplicateResource = zerr.New("resource already exists")

	// ErrDuplicatePass is returned when a pass name is declared twice.
	ErrDuplicatePass = zerr.New("pass already exists")

	// ErrUnknownResource is returned when a pass references a resource that is not declared.
	ErrUnknownResource = zerr.New("unknown resource")

	// ErrMultipleDepthAttachments is returned when a pass declares a second depth attachment.
	ErrMultipleDepthAttachments = zerr.New("pass already has a depth attachment")

	// ErrDepthFormatMismatch is returned when a depth attachment has a color format or vice versa.
	ErrDepthFormatMismatch = zerr.New("attachment format does not match its usage")

	// ErrForeignResource is returned when a pass uses a resource owned by another graph.
	ErrForeignResource = zerr.New("resource does not belong to this graph")

	// ErrNoOutputPass is returned when no pass declares an output.
	ErrNoOutputPass = zerr.New("no pass declares an output")

	// ErrMultipleOutputPasses is returned when more than one pass declares an output.
	ErrMultipleOutputPasses = zerr.New("more than one pass declares an output")

	// ErrOutputWithoutColor is returned when the output pass has no color attachment to present.
	ErrOutputWithoutColor = zerr.New("output pass has no color attachment")

	// ErrExtentMismatch is returned when the attachments of one pass resolve to different extents.
	ErrExtentMismatch = zerr.New("attachments of a pass have different extents")

	// ErrWriteOnlyOverwrite is returned when a write-only use follows an earlier writer.
	ErrWriteOnlyOverwrite = zerr.New("is write-only but a previous pass already writes to it")

	// ErrMissingWriter is returned when a resource is read before any pass writes it.
	ErrMissingWriter = zerr.New("is not write-only but no previous pass writes to it")

	// ErrGraphClosed is returned when a closed graph is used.
	ErrGraphClosed = zerr.New("frame graph is closed")

	// ErrUnknownHandle is returned when a pool is asked to release a handle it does not hold in use.
	ErrUnknownHandle = zerr.New("handle is not in use by this pool")

	// ErrStaleHandle is returned when a handle refers to a destroyed object.
	ErrStaleHandle = zerr.New("stale handle")

	// ErrWrongHandleKind is returned when a handle of one kind is passed where another is expected.
	ErrWrongHandleKind = zerr.New("wrong handle kind")

	// ErrPoolExhausted is returned by a device when a descriptor pool has no room left.
	// Callers detect it with errors.Is, so devices return it unwrapped.
	ErrPoolExhausted = zerr.New("descriptor pool exhausted")

	// ErrNoProgram is returned when a draw is recorded before a shader program is set.
	ErrNoProgram = zerr.New("no shader program set")

	// ErrNotInRenderPass is returned when a draw is recorded outside a render pass.
	ErrNotInRenderPass = zerr.New("not inside a render pass")

	// ErrConfigReadFailed is returned when a graph file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read graph file")

	// ErrConfigParseFailed is returned when a graph file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse graph file")

	// ErrStoreReadFailed is returned when the pipeline cache store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read pipeline cache")

	// ErrStoreWriteFailed is returned when the pipeline cache store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write pipeline cache")
)

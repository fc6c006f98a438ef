// Package progrock records frame graph progress on a progrock tape.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/framegraph/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu     sync.Mutex
	seq    int
	latest map[string]digest.Digest
}

var _ ports.Telemetry = (*Recorder)(nil)

// New creates a Recorder with a fresh tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		latest: make(map[string]digest.Digest),
	}
}

// Record starts a vertex. Inputs name vertices recorded earlier; unknown names are ignored.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := &ports.VertexConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r.mu.Lock()
	r.seq++
	d := digest.FromString(strconv.Itoa(r.seq) + "/" + name)
	inputs := make([]digest.Digest, 0, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		if dep, ok := r.latest[in]; ok {
			inputs = append(inputs, dep)
		}
	}
	r.latest[name] = d
	r.mu.Unlock()

	v := r.rec.Vertex(d, name, progrock.WithInputs(inputs...))
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the underlying writer.
func (r *Recorder) Close() error {
	return r.w.Close()
}

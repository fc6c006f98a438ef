package cas

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/framegraph/internal/core/ports"
)

// NodeID is the graft identifier of the pipeline cache store.
const NodeID graft.ID = "adapter.pipeline_store"

// DirEnv overrides the directory pipeline caches are saved in.
const DirEnv = "FG_CACHE_DIR"

// DefaultDir returns the directory pipeline caches are saved in.
func DefaultDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	if userCacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(userCacheDir, "framegraph", "pipelines")
	}
	return filepath.Join(".fg", "pipelines")
}

func init() {
	graft.Register(graft.Node[ports.PipelineStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PipelineStore, error) {
			return NewStore(DefaultDir())
		},
	})
}

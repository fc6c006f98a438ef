package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change observed on a watched file.
type WatchOp uint8

// Watch operations, mirroring the file system notification kinds.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent reports one change to the watched graph file.
type WatchEvent struct {
	Path      string // absolute
	Operation WatchOp
}

// Watcher follows a single graph file so that fg run --watch can reload it. Editors often
// replace a file instead of writing it, so implementations watch the parent directory and
// filter by name.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	Start(ctx context.Context, path string) error
	// Stop ends the event stream. Calling it twice is harmless.
	Stop() error
	Events() iter.Seq[WatchEvent]
}

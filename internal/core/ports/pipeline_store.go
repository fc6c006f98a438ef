package ports

import "context"

// PipelineStore persists pipeline cache blobs between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=pipeline_store.go -destination=mocks/mock_pipeline_store.go -package=mocks
type PipelineStore interface {
	// Get returns the blob saved for identity.
	// Returns nil, nil if nothing is saved.
	Get(ctx context.Context, identity DeviceIdentity) ([]byte, error)

	// Put saves the blob for identity, replacing any previous one.
	Put(ctx context.Context, identity DeviceIdentity, data []byte) error
}

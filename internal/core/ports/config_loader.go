package ports

import "go.trai.ch/framegraph/internal/core/domain"

// ConfigLoader defines the interface for loading graph descriptions.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and decodes the graph description at path.
	Load(path string) (*domain.GraphSpec, error)
}

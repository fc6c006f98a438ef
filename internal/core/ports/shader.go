package ports

import "go.trai.ch/framegraph/internal/core/domain"

// ShaderProgram is a linked set of shader stages with reflected resource layouts.
//
//go:generate go run go.uber.org/mock/mockgen -source=shader.go -destination=mocks/mock_shader.go -package=mocks
type ShaderProgram interface {
	// ID uniquely identifies the program for pipeline hashing.
	ID() uint64
	// PipelineLayout returns the pipeline layout object of the program.
	PipelineLayout() domain.Handle
	// ActiveSets returns the descriptor set numbers the program reads, in ascending order.
	ActiveSets() []uint32
	// SetLayout returns the layout of one descriptor set number.
	SetLayout(set uint32) (domain.SetLayout, bool)
}

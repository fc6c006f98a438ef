package headless

import (
	"maps"
	"slices"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Program is a shader program whose descriptor set layouts are given instead of reflected.
type Program struct {
	id      uint64
	layout  domain.Handle
	sets    map[uint32]domain.SetLayout
	active  []uint32
	handles []domain.Handle
	device  *Device
}

var _ ports.ShaderProgram = (*Program)(nil)

// NewProgram creates the set layouts and pipeline layout of a program on device.
func NewProgram(device *Device, id uint64, sets map[uint32][]domain.LayoutBinding) (*Program, error) {
	p := &Program{
		id:     id,
		sets:   make(map[uint32]domain.SetLayout, len(sets)),
		active: slices.Sorted(maps.Keys(sets)),
		device: device,
	}
	for _, set := range p.active {
		if set >= domain.MaxDescriptorSets {
			return nil, zerr.With(domain.ErrInvalidDescriptorSet, "set", set)
		}
		layout, err := device.CreateDescriptorSetLayout(sets[set])
		if err != nil {
			return nil, err
		}
		p.sets[set] = layout
		p.handles = append(p.handles, layout.Handle())
	}
	p.layout = device.CreatePipelineLayout()
	p.handles = append(p.handles, p.layout)
	return p, nil
}

// ID uniquely identifies the program.
func (p *Program) ID() uint64 { return p.id }

// PipelineLayout returns the pipeline layout object.
func (p *Program) PipelineLayout() domain.Handle { return p.layout }

// ActiveSets returns the set numbers the program reads, ascending.
func (p *Program) ActiveSets() []uint32 { return p.active }

// SetLayout returns the layout of set.
func (p *Program) SetLayout(set uint32) (domain.SetLayout, bool) {
	l, ok := p.sets[set]
	return l, ok
}

// Close destroys the layouts of the program.
func (p *Program) Close() error {
	for _, h := range p.handles {
		if err := p.device.Destroy(h); err != nil {
			return err
		}
	}
	p.handles = nil
	return nil
}

package pool

import (
	"go.trai.ch/framegraph/internal/core/domain"
)

// DescriptorSetCache pools descriptor sets by layout for one command buffer.
// Sets are allocated through a shared DescriptorPoolCache. It is not safe for concurrent use.
type DescriptorSetCache struct {
	*Pool[domain.SetLayout]
	layouts map[domain.Handle]domain.SetLayout
}

// NewDescriptorSetCache returns an empty set cache allocating from pools.
func NewDescriptorSetCache(pools *DescriptorPoolCache) *DescriptorSetCache {
	c := &DescriptorSetCache{layouts: make(map[domain.Handle]domain.SetLayout)}
	c.Pool = New(
		domain.SetLayout.Hash,
		func(layout domain.SetLayout) (domain.Handle, error) {
			set, err := pools.Allocate(layout)
			if err != nil {
				return domain.NullHandle, err
			}
			c.layouts[set] = layout
			return set, nil
		},
		func(set domain.Handle) error {
			layout := c.layouts[set]
			delete(c.layouts, set)
			return pools.Free(layout, set)
		},
	)
	return c
}

package pool

import (
	"errors"
	"sync"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMaxSetsPerPool is the number of sets a native descriptor pool is sized for.
const DefaultMaxSetsPerPool = 64

type nativePool struct {
	handle    domain.Handle
	allocated uint32
	full      bool
}

type poolChain struct {
	pools []*nativePool
	owner map[domain.Handle]*nativePool
}

// DescriptorPoolStats reports the native pools and sets of a DescriptorPoolCache.
type DescriptorPoolStats struct {
	Layouts int `json:"layouts"`
	Pools   int `json:"pools"`
	Sets    int `json:"sets"`
}

// DescriptorPoolCache allocates descriptor sets from per-layout lists of native pools.
// When every pool of a layout is full, a new one is created; exhaustion is never visible
// to callers. It is safe for concurrent use.
type DescriptorPoolCache struct {
	mu      sync.Mutex
	device  ports.Device
	logger  ports.Logger
	maxSets uint32
	chains  map[domain.Key]*poolChain
}

// NewDescriptorPoolCache returns an empty cache whose native pools hold maxSetsPerPool sets.
// A zero maxSetsPerPool selects DefaultMaxSetsPerPool.
func NewDescriptorPoolCache(device ports.Device, logger ports.Logger, maxSetsPerPool uint32) *DescriptorPoolCache {
	if maxSetsPerPool == 0 {
		maxSetsPerPool = DefaultMaxSetsPerPool
	}
	return &DescriptorPoolCache{
		device:  device,
		logger:  logger,
		maxSets: maxSetsPerPool,
		chains:  make(map[domain.Key]*poolChain),
	}
}

// Allocate returns a new descriptor set of layout.
func (c *DescriptorPoolCache) Allocate(layout domain.SetLayout) (domain.Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := layout.Key()
	chain, ok := c.chains[k]
	if !ok {
		chain = &poolChain{owner: make(map[domain.Handle]*nativePool)}
		c.chains[k] = chain
	}

	for _, np := range chain.pools {
		if np.full {
			continue
		}
		set, err := c.allocateFrom(np, layout)
		if err != nil {
			return domain.NullHandle, err
		}
		if !set.IsNull() {
			chain.owner[set] = np
			return set, nil
		}
	}

	np, err := c.grow(chain, layout)
	if err != nil {
		return domain.NullHandle, err
	}
	set, err := c.allocateFrom(np, layout)
	if err != nil {
		return domain.NullHandle, err
	}
	if set.IsNull() {
		return domain.NullHandle, zerr.With(domain.ErrPoolExhausted, "pool", np.handle.String())
	}
	chain.owner[set] = np
	return set, nil
}

// allocateFrom returns a null handle without error when np turns out to be full.
func (c *DescriptorPoolCache) allocateFrom(np *nativePool, layout domain.SetLayout) (domain.Handle, error) {
	if np.allocated >= c.maxSets {
		np.full = true
		return domain.NullHandle, nil
	}
	set, err := c.device.AllocateDescriptorSet(np.handle, layout)
	if errors.Is(err, domain.ErrPoolExhausted) {
		np.full = true
		return domain.NullHandle, nil
	}
	if err != nil {
		return domain.NullHandle, zerr.Wrap(err, "failed to allocate descriptor set")
	}
	np.allocated++
	return set, nil
}

func (c *DescriptorPoolCache) grow(chain *poolChain, layout domain.SetLayout) (*nativePool, error) {
	h, err := c.device.CreateDescriptorPool(domain.PoolDescFor(layout, c.maxSets))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create descriptor pool")
	}
	np := &nativePool{handle: h}
	chain.pools = append(chain.pools, np)
	c.logger.Debug("descriptor pool created", "layout", layout.Hash().String(), "pools", len(chain.pools))
	return np, nil
}

// Free returns set to the native pool it was allocated from.
func (c *DescriptorPoolCache) Free(layout domain.SetLayout, set domain.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	chain, ok := c.chains[layout.Key()]
	if !ok {
		return zerr.With(domain.ErrUnknownHandle, "handle", set.String())
	}
	np, ok := chain.owner[set]
	if !ok {
		return zerr.With(domain.ErrUnknownHandle, "handle", set.String())
	}
	if err := c.device.FreeDescriptorSet(np.handle, set); err != nil {
		return zerr.Wrap(err, "failed to free descriptor set")
	}
	delete(chain.owner, set)
	np.allocated--
	np.full = false
	return nil
}

// DeleteAll destroys every native pool, which frees every set allocated from them.
func (c *DescriptorPoolCache) DeleteAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for _, chain := range c.chains {
		for _, np := range chain.pools {
			if err := c.device.Destroy(np.handle); err != nil {
				errs = append(errs, zerr.With(zerr.Wrap(err, "failed to destroy descriptor pool"), "pool", np.handle.String()))
			}
		}
	}
	clear(c.chains)
	return errors.Join(errs...)
}

// Stats returns a snapshot of the cache's contents.
func (c *DescriptorPoolCache) Stats() DescriptorPoolStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := DescriptorPoolStats{Layouts: len(c.chains)}
	for _, chain := range c.chains {
		s.Pools += len(chain.pools)
		s.Sets += len(chain.owner)
	}
	return s
}

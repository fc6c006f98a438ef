// Package pool implements content-addressed caches of device objects.
//
// Every cache maps the content hash of an object description to the handles created for it,
// split into a used set and a free set. Acquire prefers a free handle and only creates a new
// object when the bucket has none. Release and ReleaseAll return handles without destroying
// them; DeleteAll destroys everything.
package pool

import (
	"cmp"
	"errors"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// KeyFunc returns the content hash of a description.
type KeyFunc[D any] func(D) domain.ContentHash

// CreateFunc creates the device object for a description.
type CreateFunc[D any] func(D) (domain.Handle, error)

// DestroyFunc destroys a device object.
type DestroyFunc func(domain.Handle) error

// Stats reports the contents and history of a pool.
type Stats struct {
	Buckets int    `json:"buckets"`
	Used    int    `json:"used"`
	Free    int    `json:"free"`
	Created uint64 `json:"created"`
	Reused  uint64 `json:"reused"`
}

type options struct {
	locked bool
	shared bool
}

// Option configures a Pool.
type Option func(*options)

// WithMutex guards the pool so it can be used from several goroutines.
func WithMutex() Option {
	return func(o *options) { o.locked = true }
}

// Shared makes every acquirer of a key receive the same handle. Handles are reference counted:
// Release decrements the count and the handle becomes free when it reaches zero.
func Shared() Option {
	return func(o *options) { o.shared = true }
}

type bucket struct {
	used    map[domain.Handle]int
	free    []domain.Handle
	pending chan struct{}
}

// Pool is a content-addressed cache of device objects described by D.
type Pool[D any] struct {
	mu      sync.Mutex
	locked  bool
	shared  bool
	key     KeyFunc[D]
	create  CreateFunc[D]
	destroy DestroyFunc

	buckets map[domain.Key]*bucket
	owner   map[domain.Handle]domain.Key
	created uint64
	reused  uint64
}

// New returns an empty pool.
func New[D any](key KeyFunc[D], create CreateFunc[D], destroy DestroyFunc, opts ...Option) *Pool[D] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[D]{
		locked:  o.locked,
		shared:  o.shared,
		key:     key,
		create:  create,
		destroy: destroy,
		buckets: make(map[domain.Key]*bucket),
		owner:   make(map[domain.Handle]domain.Key),
	}
}

func (p *Pool[D]) lock() {
	if p.locked {
		p.mu.Lock()
	}
}

func (p *Pool[D]) unlock() {
	if p.locked {
		p.mu.Unlock()
	}
}

// Acquire returns a handle for desc that is not in use by anyone else, reusing a free one when
// the bucket of desc has one. In shared mode every acquirer of a key gets the same handle.
func (p *Pool[D]) Acquire(desc D) (domain.Handle, error) {
	k := p.key(desc).Key()

	p.lock()
	defer p.unlock()

	b := p.bucketFor(k)
	for b.pending != nil {
		// Another goroutine is creating the shared object for this key.
		wait := b.pending
		p.unlock()
		<-wait
		p.lock()
		// DeleteAll may have dropped the bucket while the lock was released.
		b = p.bucketFor(k)
	}

	if p.shared {
		for h := range b.used {
			b.used[h]++
			p.reused++
			return h, nil
		}
	}

	if n := len(b.free); n > 0 {
		h := b.free[n-1]
		b.free = b.free[:n-1]
		b.used[h] = 1
		p.reused++
		return h, nil
	}

	var done chan struct{}
	if p.shared {
		done = make(chan struct{})
		b.pending = done
	}
	p.unlock()
	h, err := p.create(desc)
	p.lock()
	if done != nil {
		if b.pending == done {
			b.pending = nil
		}
		close(done)
	}
	if err != nil {
		return domain.NullHandle, zerr.With(zerr.Wrap(err, "failed to create pooled object"), "key", k.Digest())
	}

	b = p.bucketFor(k)
	b.used[h] = 1
	p.owner[h] = k
	p.created++
	return h, nil
}

// Release returns h to the free set of its bucket. Releasing a handle the pool does not hold
// in use returns domain.ErrUnknownHandle.
func (p *Pool[D]) Release(h domain.Handle) error {
	p.lock()
	defer p.unlock()

	k, ok := p.owner[h]
	if !ok {
		return zerr.With(domain.ErrUnknownHandle, "handle", h.String())
	}
	b, ok := p.buckets[k]
	if !ok {
		return zerr.With(domain.ErrUnknownHandle, "handle", h.String())
	}
	refs, inUse := b.used[h]
	if !inUse {
		return zerr.With(domain.ErrUnknownHandle, "handle", h.String())
	}
	if refs > 1 {
		b.used[h] = refs - 1
		return nil
	}
	delete(b.used, h)
	b.free = append(b.free, h)
	return nil
}

// ReleaseAll moves every used handle of every bucket to its free set. Nothing is destroyed.
func (p *Pool[D]) ReleaseAll() {
	p.lock()
	defer p.unlock()

	for _, b := range p.buckets {
		if len(b.used) == 0 {
			continue
		}
		handles := slices.SortedFunc(maps.Keys(b.used), compareHandles)
		// Free handles are popped from the end, so the lowest handle is reused first.
		slices.Reverse(handles)
		b.free = append(b.free, handles...)
		clear(b.used)
	}
}

// DeleteAll destroys every object the pool created and empties it.
// Every object is destroyed even if some destructions fail; the failures are joined.
func (p *Pool[D]) DeleteAll() error {
	p.lock()
	defer p.unlock()

	handles := slices.SortedFunc(maps.Keys(p.owner), compareHandles)
	var errs []error
	for _, h := range handles {
		if err := p.destroy(h); err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to destroy pooled object"), "handle", h.String()))
		}
	}
	clear(p.buckets)
	clear(p.owner)
	return errors.Join(errs...)
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[D]) Stats() Stats {
	p.lock()
	defer p.unlock()

	s := Stats{Buckets: len(p.buckets), Created: p.created, Reused: p.reused}
	for _, b := range p.buckets {
		s.Used += len(b.used)
		s.Free += len(b.free)
	}
	return s
}

// InUse reports whether h is currently acquired.
func (p *Pool[D]) InUse(h domain.Handle) bool {
	p.lock()
	defer p.unlock()

	k, ok := p.owner[h]
	if !ok {
		return false
	}
	b, ok := p.buckets[k]
	if !ok {
		return false
	}
	_, inUse := b.used[h]
	return inUse
}

// bucketFor returns the bucket of k, creating it if needed. The caller holds the lock.
func (p *Pool[D]) bucketFor(k domain.Key) *bucket {
	b, ok := p.buckets[k]
	if !ok {
		b = &bucket{used: make(map[domain.Handle]int)}
		p.buckets[k] = b
	}
	return b
}

func compareHandles(a, b domain.Handle) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Index, b.Index); c != 0 {
		return c
	}
	return cmp.Compare(a.Generation, b.Generation)
}

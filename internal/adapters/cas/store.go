// Package cas stores pipeline cache blobs on disk, keyed by device identity.
package cas

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pierrec/lz4"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	blobExt   = ".lz4"
	indexName = "index.json"
)

// Entry describes one saved blob.
type Entry struct {
	Identity   ports.DeviceIdentity `json:"identity"`
	Size       int                  `json:"size"`
	Compressed int64                `json:"compressed"`
	Saved      time.Time            `json:"saved"`
}

// Store implements ports.PipelineStore with one lz4 file per device identity
// and a JSON index describing them.
type Store struct {
	dir   string
	mu    sync.RWMutex
	index map[string]Entry
}

var _ ports.PipelineStore = (*Store)(nil)

// NewStore creates a store rooted at dir. The directory is created on first Put.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:   filepath.Clean(dir),
		index: make(map[string]Entry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Key returns the file stem used for identity.
func Key(identity ports.DeviceIdentity) string {
	var buf [28]byte
	binary.LittleEndian.PutUint32(buf[0:], identity.Vendor)
	binary.LittleEndian.PutUint32(buf[4:], identity.Device)
	binary.LittleEndian.PutUint32(buf[8:], identity.Driver)
	copy(buf[12:], identity.UUID[:])
	return strconv.FormatUint(xxhash.Sum64(buf[:]), 16)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Join(s.dir, indexName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.index); err != nil {
		return zerr.Wrap(err, "failed to unmarshal pipeline cache index")
	}
	return nil
}

// saveIndex must be called with s.mu held.
func (s *Store) saveIndex() error {
	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal pipeline cache index")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Join(s.dir, indexName), data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// Get returns the decompressed blob for identity, or nil if none is saved.
func (s *Store) Get(ctx context.Context, identity ports.DeviceIdentity) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := Key(identity)

	s.mu.RLock()
	defer s.mu.RUnlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Open(filepath.Join(s.dir, key+blobExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return data, nil
}

// Put compresses data and replaces the blob saved for identity.
func (s *Store) Put(ctx context.Context, identity ports.DeviceIdentity, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := Key(identity)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create pipeline cache directory")
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := lz4.NewWriter(tmp)
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := w.Close(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	info, err := tmp.Stat()
	if err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key+blobExt)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	s.index[key] = Entry{
		Identity:   identity,
		Size:       len(data),
		Compressed: info.Size(),
		Saved:      time.Now().UTC(),
	}
	return s.saveIndex()
}

// Entries returns a copy of the index, keyed by Key.
func (s *Store) Entries() map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.index)
}

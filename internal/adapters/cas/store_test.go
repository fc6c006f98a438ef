package cas_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/adapters/cas"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
)

var identity = ports.DeviceIdentity{Vendor: 0x10de, Device: 0x2684, Driver: 535}

func TestStore_GetMissing(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	data, err := store.Get(context.Background(), identity)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_PutAndGet(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStore(dir)
	require.NoError(t, err)

	blob := make([]byte, 4096)
	for i := range blob {
		blob[i] = byte(i % 7)
	}
	require.NoError(t, store.Put(context.Background(), identity, blob))

	got, err := store.Get(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	info, err := os.Stat(filepath.Join(dir, cas.Key(identity)+".lz4"))
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(blob)))

	entry := store.Entries()[cas.Key(identity)]
	assert.Equal(t, identity, entry.Identity)
	assert.Equal(t, len(blob), entry.Size)
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()
	store1, err := cas.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.Put(context.Background(), identity, []byte("pipelines")))

	store2, err := cas.NewStore(dir)
	require.NoError(t, err)
	got, err := store2.Get(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, []byte("pipelines"), got)
	assert.Len(t, store2.Entries(), 1)
}

func TestStore_IdentitiesAreSeparate(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	other := identity
	other.Driver++
	assert.NotEqual(t, cas.Key(identity), cas.Key(other))

	require.NoError(t, store.Put(context.Background(), identity, []byte("a")))
	got, err := store.Get(context.Background(), other)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Replace(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), identity, []byte("first")))
	require.NoError(t, store.Put(context.Background(), identity, []byte("second")))

	got, err := store.Get(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestStore_CorruptIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.json"), []byte("{"), 0o600))

	_, err := cas.NewStore(dir)
	require.ErrorContains(t, err, "failed to unmarshal pipeline cache index")
}

func TestStore_CorruptBlob(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, cas.Key(identity)+".lz4"), []byte("not lz4"), 0o600))

	_, err = store.Get(context.Background(), identity)
	require.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}

func TestStore_CanceledContext(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, identity, []byte("x")), context.Canceled)
	_, err = store.Get(ctx, identity)
	require.ErrorIs(t, err, context.Canceled)
}

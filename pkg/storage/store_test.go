package storage

import (
	"testing"

	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	bolt, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	return map[string]Store{
		"bolt":   bolt,
		"memory": NewMemoryStore(),
	}
}

func TestBenchmarkRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			id := uuid.New()
			profile := types.ResourceProfile{IPC: decimal.RequireFromString("1.75"), Memory: 8 << 30, Network: 1000, Disk: 2000}

			_, err := store.GetBenchmark(id)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.SaveBenchmark(&Benchmark{ServerID: id, Hostname: "node-1", Profile: profile}))

			got, err := store.GetBenchmark(id)
			require.NoError(t, err)
			assert.Equal(t, "node-1", got.Hostname)
			assert.True(t, profile.IPC.Equal(got.Profile.IPC))
			assert.Equal(t, profile.Memory, got.Profile.Memory)
			assert.False(t, got.UpdatedAt.IsZero())

			require.NoError(t, store.DeleteBenchmark(id))
			_, err = store.GetBenchmark(id)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestListBenchmarks(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
			for _, id := range ids {
				require.NoError(t, store.SaveBenchmark(&Benchmark{ServerID: id, Profile: types.OneProfile()}))
			}

			list, err := store.ListBenchmarks()
			require.NoError(t, err)
			require.Len(t, list, 3)
			for i := 1; i < len(list); i++ {
				assert.Less(t, list[i-1].ServerID.String(), list[i].ServerID.String())
			}
		})
	}
}

func TestBoltStoreReopen(t *testing.T) {
	dir := t.TempDir()
	id := uuid.New()

	store, err := NewBoltStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveBenchmark(&Benchmark{ServerID: id, Hostname: "persisted", Profile: types.OneProfile()}))
	require.NoError(t, store.Close())

	store, err = NewBoltStore(dir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetBenchmark(id)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Hostname)
}

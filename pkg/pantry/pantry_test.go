package pantry

import (
	"errors"
	"testing"

	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestEmptyPantry(t *testing.T) {
	s := newTestService(t)

	items, err := s.List(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddDeduplicatesByExactName(t *testing.T) {
	s := newTestService(t)

	added, err := s.Add(1, "eggs", " milk ", "eggs", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "milk"}, added)

	added, err = s.Add(1, "milk", "Eggs")
	require.NoError(t, err)
	// "Eggs" differs from "eggs" by case, so it is kept.
	assert.Equal(t, []string{"Eggs"}, added)

	items, err := s.List(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "milk", "Eggs"}, items)
}

func TestAddNothingNew(t *testing.T) {
	s := newTestService(t)
	_, err := s.Add(1, "rice")
	require.NoError(t, err)

	added, err := s.Add(1, "rice", "  ")
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestPantriesAreIsolatedPerChat(t *testing.T) {
	s := newTestService(t)

	_, err := s.Add(1, "eggs")
	require.NoError(t, err)
	_, err = s.Add(2, "tofu")
	require.NoError(t, err)

	items, err := s.List(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"tofu"}, items)
}

func TestRemoveAndClear(t *testing.T) {
	s := newTestService(t)
	_, err := s.Add(1, "eggs", "milk", "flour")
	require.NoError(t, err)

	removed, err := s.Remove(1, "milk")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(1, "butter")
	require.NoError(t, err)
	assert.False(t, removed)

	items, err := s.List(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "flour"}, items)

	require.NoError(t, s.Clear(1))
	items, err = s.List(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

type brokenStore struct{ storage.KV }

func (brokenStore) Get(string, interface{}) error { return errors.New("disk on fire") }

func TestGetPropagatesStorageErrors(t *testing.T) {
	s := New(brokenStore{})

	_, err := s.List(1)
	assert.ErrorContains(t, err, "disk on fire")
}

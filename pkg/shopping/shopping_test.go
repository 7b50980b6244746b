package shopping

import (
	"testing"

	"github.com/korjavin/pantrychef/pkg/models"
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

func names(items []models.ShoppingItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestAddSkipsPendingDuplicates(t *testing.T) {
	s := newTestService(t)

	added, err := s.Add(1, "Milk", "bread", "milk", " ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "bread"}, names(added))
	assert.Equal(t, "Dairy", added[0].Category)

	added, err = s.Add(1, "BREAD")
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestAddAgainAfterCheckingOff(t *testing.T) {
	s := newTestService(t)

	added, err := s.Add(1, "eggs")
	require.NoError(t, err)
	_, err = s.Toggle(1, added[0].ID)
	require.NoError(t, err)

	again, err := s.Add(1, "eggs")
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestAddMissing(t *testing.T) {
	s := newTestService(t)
	recipe := models.Recipe{
		ID:          "1",
		Ingredients: []string{"6 large eggs", "1/4 cup milk", "1 cup shredded cheddar"},
	}

	added, err := s.AddMissing(1, recipe, []string{"eggs"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1/4 cup milk", "1 cup shredded cheddar"}, names(added))

	added, err = s.AddMissing(1, recipe, []string{"eggs", "milk", "cheddar"})
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestToggleOrdersCheckedLast(t *testing.T) {
	s := newTestService(t)

	added, err := s.Add(1, "a", "b", "c")
	require.NoError(t, err)

	item, err := s.Toggle(1, added[0].ID)
	require.NoError(t, err)
	assert.True(t, item.Checked)

	list, err := s.List(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, names(list))

	item, err = s.Toggle(1, added[0].ID)
	require.NoError(t, err)
	assert.False(t, item.Checked)

	_, err = s.Toggle(1, "nope")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveAndClearChecked(t *testing.T) {
	s := newTestService(t)

	added, err := s.Add(1, "a", "b", "c", "d")
	require.NoError(t, err)
	_, err = s.Toggle(1, added[1].ID)
	require.NoError(t, err)
	_, err = s.Toggle(1, added[3].ID)
	require.NoError(t, err)

	require.NoError(t, s.Remove(1, added[0].ID))
	assert.ErrorIs(t, s.Remove(1, added[0].ID), ErrItemNotFound)

	removed, err := s.ClearChecked(1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	list, err := s.List(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, names(list))

	removed, err = s.ClearChecked(1)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

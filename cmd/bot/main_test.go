package main

import (
	"testing"

	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DATA_DIR", t.TempDir())

	assert.Equal(t, 1, run())
}

func TestRunClosesStoreWhenStartupFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOT_TOKEN", "invalid")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("CATALOG_PATH", "")
	t.Setenv("OPENAI_API_KEY", "")

	// The token is rejected (or Telegram is unreachable) after storage opened.
	assert.Equal(t, 1, run())

	// Badger holds a directory lock until Close, so reopening proves cleanup ran.
	store, err := storage.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

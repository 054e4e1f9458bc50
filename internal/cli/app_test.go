package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/scheme"
	"github.com/SeamusWaldron/lettercube/internal/storage"
)

func TestCheckSchemeRecordsFirstScheme(t *testing.T) {
	db, err := storage.OpenMigrated(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, checkScheme(db, scheme.M2))

	settings := storage.NewSettingsRepository(db)
	saved, ok, err := settings.Get(storage.SettingScheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, scheme.M2.Name, saved)

	// A different scheme later only warns and leaves the record alone.
	require.NoError(t, checkScheme(db, scheme.OldPochmann))
	saved, _, err = settings.Get(storage.SettingScheme)
	require.NoError(t, err)
	assert.Equal(t, scheme.M2.Name, saved)
}

func TestGetDBPath(t *testing.T) {
	oldFlag, oldCfg := dbPath, cfg
	t.Cleanup(func() { dbPath, cfg = oldFlag, oldCfg })

	dbPath, cfg = "", nil
	assert.Empty(t, getDBPath())

	dbPath = "/tmp/flag.db"
	assert.Equal(t, "/tmp/flag.db", getDBPath())
}

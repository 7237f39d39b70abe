package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesEmbeddedMigrations(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "nested", "pomodoro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	applied, err := AppliedMigrations(database)
	require.NoError(t, err)
	assert.Contains(t, applied, "001_kv_store.sql")

	_, err = database.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', x'00', 'now')`)
	assert.NoError(t, err)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	migrationsFS := fstest.MapFS{
		"001_a.sql":  {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"002_b.sql":  {Data: []byte(`CREATE TABLE b (id INTEGER PRIMARY KEY);`)},
		"README.txt": {Data: []byte(`not a migration`)},
	}

	require.NoError(t, RunMigrations(database, migrationsFS))
	require.NoError(t, RunMigrations(database, migrationsFS))

	applied, err := AppliedMigrations(database)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, applied)
}

func TestRunMigrationsReportsBrokenSQL(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	err = RunMigrations(database, fstest.MapFS{
		"001_bad.sql": {Data: []byte(`CREATE TABLE (`)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_bad.sql")

	applied, err := AppliedMigrations(database)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRun_AppliesAll(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, All[len(All)-1].Version, version)

	_, err = db.Exec("INSERT INTO hidden_paths (path) VALUES (?)", "/tmp/a.txt")
	assert.NoError(t, err)
}

func TestRun_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, len(All), count)
}

func TestAll_Ordered(t *testing.T) {
	for i := 1; i < len(All); i++ {
		assert.Greater(t, All[i].Version, All[i-1].Version)
	}
}

func TestRun_PartiallyMigratedDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))
	_, err := db.Exec("DELETE FROM schema_migrations WHERE version > 1")
	require.NoError(t, err)

	require.NoError(t, Run(db), "later steps must be safe to re-apply")

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, All[len(All)-1].Version, version)
}

func TestRun_FailedStepIsNotRecorded(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))

	saved := All
	t.Cleanup(func() { All = saved })
	All = append(append([]Migration{}, saved...), Migration{
		Version: saved[len(saved)-1].Version + 1,
		Name:    "broken",
		SQL:     "CREATE TABLE broken (",
	})

	err := Run(db)
	assert.ErrorContains(t, err, "broken")

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, saved[len(saved)-1].Version, version)
}

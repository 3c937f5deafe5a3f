package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	versions, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "001_initial.sql", versions[0])
	assert.IsNonDecreasing(t, versions)

	sql, err := migrationsFS.ReadFile("migrations/" + versions[0])
	require.NoError(t, err)
	for _, table := range []string{"listings", "sales", "fingerprints", "opportunities", "alert_log", "job_runs"} {
		assert.Contains(t, string(sql), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, string(sql), "dedup_key    TEXT NOT NULL UNIQUE")
	assert.Contains(t, string(sql), "UNIQUE (source_type, source_listing_id)")
}

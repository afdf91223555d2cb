package store

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"migrations/003_scheduler.sql": {Data: []byte("CREATE TABLE job_runs ();")},
		"migrations/001_catalog.sql":   {Data: []byte("CREATE TABLE stores ();")},
		"migrations/002_inventory.sql": {Data: []byte("CREATE TABLE inventory_status ();")},
		"migrations/README.md":         {Data: []byte("notes")},
	}

	tests := []struct {
		name    string
		applied map[string]bool
		want    []string
	}{
		{
			name: "fresh database gets every file in order",
			want: []string{"001_catalog.sql", "002_inventory.sql", "003_scheduler.sql"},
		},
		{
			name:    "applied files are skipped",
			applied: map[string]bool{"001_catalog.sql": true, "002_inventory.sql": true},
			want:    []string{"003_scheduler.sql"},
		},
		{
			name: "up to date",
			applied: map[string]bool{
				"001_catalog.sql": true, "002_inventory.sql": true, "003_scheduler.sql": true,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pendingMigrations(fsys, "migrations", tt.applied)
			require.NoError(t, err)

			var versions []string
			for _, m := range got {
				versions = append(versions, m.version)
				assert.NotEmpty(t, m.sql)
			}
			assert.Equal(t, tt.want, versions)
		})
	}
}

func TestPendingMigrations_EmptyFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"migrations/004_scores.sql": {Data: []byte("  \n")},
	}

	_, err := pendingMigrations(fsys, "migrations", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "004_scores.sql is empty")
}

func TestPendingMigrations_EmbeddedSchema(t *testing.T) {
	t.Parallel()

	got, err := pendingMigrations(migrationsFS, "migrations", nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "001_catalog.sql", got[0].version)
	assert.Contains(t, got[1].sql, "inventory_check_logs")
	assert.Contains(t, got[2].sql, "job_runs")
}

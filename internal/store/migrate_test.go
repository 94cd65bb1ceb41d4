package store

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clark-Hu/movie-catalog/db"
)

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection(" UP ")
	require.NoError(t, err)
	assert.Equal(t, Up, dir)

	dir, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, Down, dir)

	_, err = ParseDirection("sideways")
	assert.ErrorContains(t, err, "sideways")
}

func TestMigrationFilesOrdering(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_add_index.up.sql":       {Data: []byte("SELECT 2")},
		"migrations/0001_create_movies.up.sql":   {Data: []byte("SELECT 1")},
		"migrations/0001_create_movies.down.sql": {Data: []byte("SELECT -1")},
		"migrations/0002_add_index.down.sql":     {Data: []byte("SELECT -2")},
		"migrations/README.md":                   {Data: []byte("docs")},
	}

	up, err := MigrationFiles(fsys, "migrations", Up)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/0001_create_movies.up.sql",
		"migrations/0002_add_index.up.sql",
	}, up)

	down, err := MigrationFiles(fsys, "migrations", Down)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/0002_add_index.down.sql",
		"migrations/0001_create_movies.down.sql",
	}, down)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	up, err := MigrationFiles(db.Migrations, "migrations", Up)
	require.NoError(t, err)
	require.NotEmpty(t, up)

	down, err := MigrationFiles(db.Migrations, "migrations", Down)
	require.NoError(t, err)
	assert.Len(t, down, len(up))
}

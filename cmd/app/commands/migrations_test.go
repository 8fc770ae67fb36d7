package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/binbot/internal/testutil"
)

func TestMigrationsSource(t *testing.T) {
	t.Run("Success_Postgres", func(t *testing.T) {
		source, err := migrationsSource("migrations", "postgres")
		require.NoError(t, err)
		assert.Equal(t, "file://migrations/postgresql", source)
	})

	t.Run("Success_MySQL", func(t *testing.T) {
		source, err := migrationsSource("/srv/binbot/migrations", "mysql")
		require.NoError(t, err)
		assert.Equal(t, "file:///srv/binbot/migrations/mysql", source)
	})

	t.Run("Error_UnsupportedDriver", func(t *testing.T) {
		_, err := migrationsSource("migrations", "sqlite3")
		assert.ErrorContains(t, err, `unsupported database driver "sqlite3"`)
	})
}

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Error_UnsupportedDriver", func(t *testing.T) {
		err := RunMigrations(logger, "sqlite3", "file:binbot.db")
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("Error_InvalidConnectionString", func(t *testing.T) {
		root := migrationsRoot(t)
		err := applyMigrations(logger, root, "postgres", "invalid-connection-string")
		assert.ErrorContains(t, err, "failed to create migrate instance")
	})

	t.Run("Success_RepeatedRunIsNoOp", func(t *testing.T) {
		testutil.SkipIfNoPostgres(t)
		root := migrationsRoot(t)

		require.NoError(t, applyMigrations(logger, root, "postgres", testutil.GetPostgresTestDSN()))
		require.NoError(t, applyMigrations(logger, root, "postgres", testutil.GetPostgresTestDSN()))
	})
}

// Both drivers must ship the same versions, each with an up and a down file.
func TestMigrationFiles(t *testing.T) {
	root := migrationsRoot(t)

	versionsByDriver := map[string][]string{}
	for driver, dir := range migrationDirs {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		require.NoError(t, err)

		ups := map[string]bool{}
		downs := map[string]bool{}
		for _, entry := range entries {
			name := entry.Name()
			switch {
			case strings.HasSuffix(name, ".up.sql"):
				ups[strings.TrimSuffix(name, ".up.sql")] = true
			case strings.HasSuffix(name, ".down.sql"):
				downs[strings.TrimSuffix(name, ".down.sql")] = true
			}
		}
		assert.Equal(t, ups, downs, "%s: every up migration needs a down", driver)

		var versions []string
		for name := range ups {
			versions = append(versions, name)
		}
		sort.Strings(versions)
		versionsByDriver[driver] = versions
	}

	assert.NotEmpty(t, versionsByDriver["postgres"])
	assert.Equal(t, versionsByDriver["postgres"], versionsByDriver["mysql"])
}

func migrationsRoot(t *testing.T) string {
	t.Helper()
	path, err := testutil.GetMigrationsPath("postgresql")
	require.NoError(t, err)
	return filepath.Dir(path)
}

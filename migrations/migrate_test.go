package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_BothDialectsPresent(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoError(t, err, "missing migration dir %s", dir)
		require.NotEmpty(t, entries, "no migrations embedded for %s", dir)

		for _, e := range entries {
			assert.Regexp(t, `^\d{5}_.+\.sql$`, e.Name())
		}
	}
}

func TestEmbeddedMigrations_DialectDirsMatch(t *testing.T) {
	pg, err := embedMigrations.ReadDir("postgres")
	require.NoError(t, err)
	lite, err := embedMigrations.ReadDir("sqlite")
	require.NoError(t, err)

	// every migration must exist for both engines
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i].Name(), lite[i].Name())
	}
}

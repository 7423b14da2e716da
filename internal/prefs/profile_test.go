package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/gitdeck/internal/service"
)

func TestExportImport(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "profile.json")
	p := &service.Profile{
		Name:        "Ada",
		Affiliation: "Engines",
		ProfileURL:  "https://example.com/ada",
		SavedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, Export(path, p))
	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	got, err := Import(path)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestImportMissingAndMalformed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	got, err := Import(filepath.Join(dir, "none.json"))
	require.NoError(t, err)
	require.Nil(t, got)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = Import(bad)
	require.Error(t, err)

	require.Error(t, Export(filepath.Join(dir, "x.json"), nil))
}

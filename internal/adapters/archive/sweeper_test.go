package archive_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/archive"
	"go.trai.ch/stamp/internal/core/domain"
)

func writeArchive(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("archive"), 0o600))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestSweeper_Sweep(t *testing.T) {
	tmpDir := t.TempDir()
	writeArchive(t, tmpDir, "old.zip", 10*24*time.Hour)
	writeArchive(t, tmpDir, "fresh.zip", 24*time.Hour)
	writeArchive(t, tmpDir, "old.tar", 10*24*time.Hour)

	removed, err := archive.NewSweeper().Sweep(tmpDir, domain.SweepOptions{
		MaxAge: domain.RetentionWindow,
		Suffix: ".zip",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"old.zip"}, removed)

	assert.NoFileExists(t, filepath.Join(tmpDir, "old.zip"))
	assert.FileExists(t, filepath.Join(tmpDir, "fresh.zip"))
	assert.FileExists(t, filepath.Join(tmpDir, "old.tar"), "other suffixes must be left alone")
}

func TestSweeper_Sweep_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	writeArchive(t, tmpDir, "old.zip", 10*24*time.Hour)

	removed, err := archive.NewSweeper().Sweep(tmpDir, domain.SweepOptions{
		MaxAge: domain.RetentionWindow,
		Suffix: ".zip",
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"old.zip"}, removed)
	assert.FileExists(t, filepath.Join(tmpDir, "old.zip"), "dry run must not delete")
}

func TestSweeper_Sweep_MissingDirectory(t *testing.T) {
	removed, err := archive.NewSweeper().Sweep(filepath.Join(t.TempDir(), "absent"), domain.SweepOptions{
		MaxAge: domain.RetentionWindow,
		Suffix: ".zip",
	})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestSweeper_Sweep_SkipsDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested.zip"), 0o750))

	removed, err := archive.NewSweeper().Sweep(tmpDir, domain.SweepOptions{
		MaxAge: domain.RetentionWindow,
		Suffix: ".zip",
	})
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.DirExists(t, filepath.Join(tmpDir, "nested.zip"))
}

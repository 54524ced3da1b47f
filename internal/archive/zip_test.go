package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

func TestUnzip(t *testing.T) {
	src := writeZip(t, map[string]string{
		"Payload/App.app/Info.plist":  "<plist/>",
		"Payload/App.app/AppIcon.png": "fake png",
		"META-INF/note.txt":           "hello",
	})
	dest := t.TempDir()

	require.NoError(t, Unzip(src, dest))

	data, err := os.ReadFile(filepath.Join(dest, "Payload", "App.app", "Info.plist"))
	require.NoError(t, err)
	assert.Equal(t, "<plist/>", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "META-INF", "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestUnzipPreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "modes.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	hdr := &zip.FileHeader{Name: "bin/tool", Method: zip.Deflate}
	hdr.SetMode(0755)
	w, err := zw.CreateHeader(hdr)
	require.NoError(t, err)
	_, err = w.Write([]byte("#!/bin/sh\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dest := t.TempDir()
	require.NoError(t, Unzip(path, dest))

	fi, err := os.Stat(filepath.Join(dest, "bin", "tool"))
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&0111)
}

func TestUnzipRejectsTraversal(t *testing.T) {
	src := writeZip(t, map[string]string{
		"../evil.txt": "escape",
	})
	dest := t.TempDir()

	err := Unzip(src, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path in archive")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUnzipMissingArchive(t *testing.T) {
	err := Unzip(filepath.Join(t.TempDir(), "absent.zip"), t.TempDir())
	assert.Error(t, err)
}

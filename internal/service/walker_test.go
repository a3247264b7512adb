package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bnema/framepick/internal/domain"
)

func writeTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestWalker_SingleFile(t *testing.T) {
	w := NewWalker(zap.NewNop())
	path := writeTestFile(t, t.TempDir(), "clip.mp4")

	files, isDir, err := w.Walk(path, false)

	require.NoError(t, err)
	assert.False(t, isDir)
	assert.Equal(t, []string{path}, files)
}

func TestWalker_SingleFileUnsupported(t *testing.T) {
	w := NewWalker(zap.NewNop())
	path := writeTestFile(t, t.TempDir(), "notes.txt")

	_, _, err := w.Walk(path, false)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestWalker_SingleFileAllowAny(t *testing.T) {
	w := NewWalker(zap.NewNop())
	path := writeTestFile(t, t.TempDir(), "capture.raw")

	files, isDir, err := w.Walk(path, true)

	require.NoError(t, err)
	assert.False(t, isDir)
	assert.Equal(t, []string{path}, files)
}

func TestWalker_MissingPath(t *testing.T) {
	w := NewWalker(zap.NewNop())

	_, _, err := w.Walk(filepath.Join(t.TempDir(), "nope.mp4"), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access")
}

func TestWalker_Directory(t *testing.T) {
	w := NewWalker(zap.NewNop())
	dir := t.TempDir()

	first := writeTestFile(t, dir, "a_first.mp4")
	second := writeTestFile(t, dir, "b_second.MOV")
	writeTestFile(t, dir, "notes.txt")

	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeTestFile(t, nested, "inner.mp4")

	files, isDir, err := w.Walk(dir, false)

	require.NoError(t, err)
	assert.True(t, isDir)
	assert.Equal(t, []string{first, second}, files, "supported files in name order, no recursion")
}

func TestWalker_DirectoryAllowAny(t *testing.T) {
	w := NewWalker(zap.NewNop())
	dir := t.TempDir()

	video := writeTestFile(t, dir, "clip.mp4")
	notes := writeTestFile(t, dir, "notes.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))

	files, _, err := w.Walk(dir, true)

	require.NoError(t, err)
	assert.Equal(t, []string{video, notes}, files)
}

func TestWalker_EmptyDirectory(t *testing.T) {
	w := NewWalker(zap.NewNop())

	files, isDir, err := w.Walk(t.TempDir(), false)

	require.NoError(t, err)
	assert.True(t, isDir)
	assert.Empty(t, files)
}

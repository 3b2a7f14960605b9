package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstepanov/docvault/internal/logger"
)

func newTestFileStorage(t *testing.T) (DocumentFileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	return NewDocumentFileStorage(dir, logger.Nop()), dir
}

func TestSaveFile_CreatesSubdirectoryLazily(t *testing.T) {
	fs, dir := newTestFileStorage(t)
	ctx := context.Background()

	// the PDFs subdirectory must not exist before the first write
	_, err := os.Stat(filepath.Join(dir, "PDFs"))
	require.True(t, os.IsNotExist(err))

	payload := []byte("%PDF-1.4 test payload")
	size, err := fs.SaveFile(ctx, filepath.Join("PDFs", "doc.pdf"), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)

	written, err := os.ReadFile(filepath.Join(dir, "PDFs", "doc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestReadFile_RoundTrip(t *testing.T) {
	fs, _ := newTestFileStorage(t)
	ctx := context.Background()

	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF}
	_, err := fs.SaveFile(ctx, filepath.Join("PDFs", "bin.pdf"), payload)
	require.NoError(t, err)

	got, err := fs.ReadFile(ctx, filepath.Join("PDFs", "bin.pdf"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestReadFile_Missing(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	_, err := fs.ReadFile(context.Background(), filepath.Join("PDFs", "nope.pdf"))
	require.Error(t, err)
}

func TestRemoveFile(t *testing.T) {
	fs, dir := newTestFileStorage(t)
	ctx := context.Background()

	rel := filepath.Join("PDFs", "gone.pdf")
	_, err := fs.SaveFile(ctx, rel, []byte("x"))
	require.NoError(t, err)

	require.NoError(t, fs.RemoveFile(ctx, rel))

	_, err = os.Stat(filepath.Join(dir, rel))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveFile_MissingReturnsError(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	err := fs.RemoveFile(context.Background(), filepath.Join("PDFs", "never.pdf"))
	require.Error(t, err)
}

func TestSaveFile_CancelledContext(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.SaveFile(ctx, filepath.Join("PDFs", "x.pdf"), []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

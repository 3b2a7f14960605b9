package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avstepanov/docvault/internal/logger"
)

// documentFileStorage is the filesystem implementation of
// [DocumentFileStorage]. It persists PDF payloads under the vault base
// directory so that the database only holds lightweight metadata, and it is
// the only component that writes to that directory.
type documentFileStorage struct {
	baseDir string
	logger  *logger.Logger
}

// NewDocumentFileStorage constructs a [DocumentFileStorage] rooted at
// baseDir. The directory itself (and any subdirectories referenced by a
// relative path) are created lazily on the first write.
func NewDocumentFileStorage(baseDir string, logger *logger.Logger) DocumentFileStorage {
	return &documentFileStorage{baseDir: baseDir, logger: logger}
}

func (s *documentFileStorage) SaveFile(ctx context.Context, relPath string, data []byte) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	absPath := s.AbsPath(relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		s.logger.Err(err).
			Str("func", "documentFileStorage.SaveFile").
			Str("path", relPath).
			Msg("failed to create vault directory")
		return 0, fmt.Errorf("create vault directory: %w", err)
	}

	if err := os.WriteFile(absPath, data, 0o600); err != nil {
		s.logger.Err(err).
			Str("func", "documentFileStorage.SaveFile").
			Str("path", relPath).
			Msg("failed to write document file")
		return 0, fmt.Errorf("write document file: %w", err)
	}

	// measure the file as written, not the buffer that was handed in
	info, err := os.Stat(absPath)
	if err != nil {
		return 0, fmt.Errorf("stat document file: %w", err)
	}

	return info.Size(), nil
}

func (s *documentFileStorage) ReadFile(ctx context.Context, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.AbsPath(relPath))
	if err != nil {
		return nil, fmt.Errorf("read document file: %w", err)
	}

	return data, nil
}

func (s *documentFileStorage) RemoveFile(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.AbsPath(relPath)); err != nil {
		return fmt.Errorf("remove document file: %w", err)
	}

	return nil
}

func (s *documentFileStorage) AbsPath(relPath string) string {
	return filepath.Join(s.baseDir, relPath)
}

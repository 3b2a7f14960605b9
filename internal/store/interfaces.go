package store

import (
	"context"

	"github.com/avstepanov/docvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is the low-level persistence layer for document
// records. It never touches the PDF files themselves; file lifecycle is
// owned by the service layer through [DocumentFileStorage].
type DocumentRepository interface {
	SaveDocument(ctx context.Context, doc models.Document) error
	GetDocument(ctx context.Context, id string) (models.Document, error)
	GetAllDocuments(ctx context.Context) ([]models.Document, error)
	UpdateDocument(ctx context.Context, doc models.Document) error
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFileStorage persists the binary PDF payloads side-by-side with
// the document records. Files are addressed by their path relative to the
// vault base directory.
type DocumentFileStorage interface {
	// SaveFile writes data to relPath (creating parent directories lazily)
	// and returns the number of bytes written as measured on disk.
	SaveFile(ctx context.Context, relPath string, data []byte) (int64, error)

	// ReadFile returns the content of the file at relPath.
	ReadFile(ctx context.Context, relPath string) ([]byte, error)

	// RemoveFile deletes the file at relPath.
	RemoveFile(ctx context.Context, relPath string) error

	// AbsPath resolves relPath against the vault base directory.
	AbsPath(relPath string) string
}

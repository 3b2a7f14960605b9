// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package service

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/internal/pdf"
	"github.com/avstepanov/docvault/internal/store"
	"github.com/avstepanov/docvault/internal/utils"
	"github.com/avstepanov/docvault/models"
)

// pdfDirName is the subdirectory of the vault base directory holding the
// stored PDF files.
const pdfDirName = "PDFs"

type documentManager struct {
	repository  store.DocumentRepository
	fileStorage store.DocumentFileStorage
	uuid        *utils.UUIDGenerator

	logger *logger.Logger

	// mu guards the in-memory view below. I/O happens outside the lock;
	// list replacement is atomic under it.
	mu        sync.Mutex
	documents []models.Document
	loading   bool
	lastErr   error
}

func NewDocumentService(repository store.DocumentRepository, fileStorage store.DocumentFileStorage, logger *logger.Logger) DocumentService {
	return &documentManager{
		repository:  repository,
		fileStorage: fileStorage,
		uuid:        utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Refresh implements DocumentService. The record store returns documents
// newest first, so the loaded slice is stored as-is.
func (d *documentManager) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.loading = true
	d.lastErr = nil
	d.mu.Unlock()

	docs, err := d.repository.GetAllDocuments(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		d.logger.Err(err).Str("func", "Refresh").Msg("document list reload failed")
		d.lastErr = err
		return
	}
	d.documents = docs
}

func (d *documentManager) Documents() []models.Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	return copyDocuments(d.documents)
}

func (d *documentManager) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.loading
}

func (d *documentManager) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastErr
}

// CreateFromBytes implements DocumentService. The PDF bytes are written
// under the vault's PDFs directory with a generated unique filename before
// the record is saved. A failure after the file write leaves the file on
// disk; the next successful create is unaffected.
func (d *documentManager) CreateFromBytes(ctx context.Context, name string, data []byte, tags []string) (models.Document, error) {
	if len(data) == 0 {
		return models.Document{}, ErrNoDocumentData
	}

	id := d.uuid.Generate()
	relPath := filepath.Join(pdfDirName, id+".pdf")

	size, err := d.fileStorage.SaveFile(ctx, relPath, data)
	if err != nil {
		return models.Document{}, fmt.Errorf("save document file: %w", err)
	}

	pageCount, err := pdf.PageCount(data)
	if err != nil {
		return models.Document{}, fmt.Errorf("derive page count: %w", err)
	}

	// Thumbnail extraction is best-effort: documents without a renderable
	// first-page image simply carry no thumbnail.
	thumbnail, err := pdf.Thumbnail(data)
	if err != nil {
		d.logger.Debug().Str("func", "CreateFromBytes").Str("document_id", id).Msg("no thumbnail extracted: " + err.Error())
		thumbnail = nil
	}

	now := time.Now().UTC()
	doc := models.Document{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		FileSize:  size,
		PageCount: pageCount,
		Tags:      tags,
		FilePath:  relPath,
		Thumbnail: thumbnail,
	}

	if err = d.repository.SaveDocument(ctx, doc); err != nil {
		return models.Document{}, fmt.Errorf("save document record: %w", err)
	}

	d.mu.Lock()
	d.documents = append([]models.Document{doc}, d.documents...)
	d.mu.Unlock()

	return doc, nil
}

// CreateFromImages implements DocumentService. Each image becomes one
// letter-size page, scaled to fit and centered, then the composed PDF goes
// through the regular byte-level create path.
func (d *documentManager) CreateFromImages(ctx context.Context, name string, images []image.Image, tags []string) (models.Document, error) {
	if len(images) == 0 {
		return models.Document{}, ErrNoImages
	}

	data, err := pdf.ComposeImages(images)
	if err != nil {
		return models.Document{}, fmt.Errorf("compose pdf from images: %w", err)
	}

	return d.CreateFromBytes(ctx, name, data, tags)
}

// Update implements DocumentService. Only non-nil fields of update are
// applied; updated_at is re-stamped on every call. The list is fully
// reloaded afterwards so ordering follows the new timestamp.
func (d *documentManager) Update(ctx context.Context, id string, update models.UpdateDocumentRequest) (models.Document, error) {
	doc, err := d.repository.GetDocument(ctx, id)
	if err != nil {
		return models.Document{}, err
	}

	if update.Name != nil {
		doc.Name = *update.Name
	}
	if update.Tags != nil {
		doc.Tags = *update.Tags
	}
	if update.Favorite != nil {
		doc.Favorite = *update.Favorite
	}
	doc.UpdatedAt = time.Now().UTC()

	if err = d.repository.UpdateDocument(ctx, doc); err != nil {
		return models.Document{}, err
	}

	d.Refresh(ctx)

	return doc, nil
}

// Rename implements DocumentService.
func (d *documentManager) Rename(ctx context.Context, id string, name string) (models.Document, error) {
	return d.Update(ctx, id, models.UpdateDocumentRequest{Name: &name})
}

// Delete implements DocumentService. File removal is best-effort: a missing
// or stuck file never blocks record removal.
func (d *documentManager) Delete(ctx context.Context, id string) error {
	doc, err := d.repository.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	if err = d.fileStorage.RemoveFile(ctx, doc.FilePath); err != nil {
		d.logger.Warn().Str("func", "Delete").Str("document_id", id).Msg("file removal failed: " + err.Error())
	}

	if err = d.repository.DeleteDocument(ctx, id); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.documents {
		if d.documents[i].ID == id {
			d.documents = append(d.documents[:i], d.documents[i+1:]...)
			break
		}
	}

	return nil
}

// DeleteBatch implements DocumentService. Deletion proceeds one document at
// a time; the first failure aborts the remainder and is returned. Documents
// deleted before the failure stay deleted.
func (d *documentManager) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNoDocumentIDs
	}

	for _, id := range ids {
		if err := d.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete document %s: %w", id, err)
		}
	}

	return nil
}

// Search implements DocumentService. Matching is a case-insensitive
// substring test on the name or any tag; an empty or blank query returns
// the full list. Surrounding whitespace is significant in a non-blank
// query, only case is normalized.
func (d *documentManager) Search(query string) []models.Document {
	docs := d.Documents()

	if strings.TrimSpace(query) == "" {
		return docs
	}
	query = strings.ToLower(query)

	matched := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if matchesQuery(doc, query) {
			matched = append(matched, doc)
		}
	}

	return matched
}

// FilterByTag implements DocumentService. Tag membership is exact and
// case-sensitive, unlike Search.
func (d *documentManager) FilterByTag(tag string) []models.Document {
	docs := d.Documents()

	matched := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.HasTag(tag) {
			matched = append(matched, doc)
		}
	}

	return matched
}

func (d *documentManager) Favorites() []models.Document {
	docs := d.Documents()

	favorites := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Favorite {
			favorites = append(favorites, doc)
		}
	}

	return favorites
}

// TotalStorageUsed implements DocumentService. The sum runs over the loaded
// in-memory list, not a storage scan.
func (d *documentManager) TotalStorageUsed() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var total int64
	for i := range d.documents {
		total += d.documents[i].FileSize
	}

	return total
}

func (d *documentManager) Summary() models.VaultSummary {
	d.mu.Lock()
	defer d.mu.Unlock()

	summary := models.VaultSummary{DocumentCount: len(d.documents)}
	for i := range d.documents {
		summary.TotalStorageBytes += d.documents[i].FileSize
		if d.documents[i].Favorite {
			summary.FavoriteCount++
		}
	}

	return summary
}

// DocumentFile implements DocumentService.
func (d *documentManager) DocumentFile(ctx context.Context, id string) (models.Document, []byte, error) {
	doc, err := d.repository.GetDocument(ctx, id)
	if err != nil {
		return models.Document{}, nil, err
	}

	data, err := d.fileStorage.ReadFile(ctx, doc.FilePath)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("read document file: %w", err)
	}

	return doc, data, nil
}

func matchesQuery(doc models.Document, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(doc.Name), loweredQuery) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}

	return false
}

func copyDocuments(docs []models.Document) []models.Document {
	out := make([]models.Document, len(docs))
	copy(out, docs)

	return out
}

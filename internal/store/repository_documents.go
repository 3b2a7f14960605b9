// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

// documentColumns is the canonical column order used by every SELECT.
var documentColumns = []string{
	"id", "name", "created_at", "updated_at",
	"file_size", "page_count", "tags", "favorite",
	"file_path", "thumbnail",
}

type documentRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger,
	}
}

func (r *documentRepository) SaveDocument(ctx context.Context, doc models.Document) error {
	log := logger.FromContext(ctx)

	tags, err := encodeTags(doc.Tags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.builder.
		Insert(doc.TableName()).
		Columns(documentColumns...).
		Values(
			doc.ID, doc.Name, doc.CreatedAt, doc.UpdatedAt,
			doc.FileSize, doc.PageCount, tags, doc.Favorite,
			doc.FilePath, doc.Thumbnail,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.SaveDocument").
			Str("document_id", doc.ID).
			Msg("failed to execute insert for document")
		return fmt.Errorf("failed to save document (id=%s): %w", doc.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", doc.ID, err)
	}
	if rowsAffected == 0 {
		return ErrDocumentNotSaved
	}

	return nil
}

func (r *documentRepository) GetDocument(ctx context.Context, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).
			Str("func", "documentRepository.GetDocument").
			Str("document_id", id).
			Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

func (r *documentRepository) GetAllDocuments(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(documentColumns...).
		From("documents").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.GetAllDocuments").
			Msg("failed to execute query for getting all documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var docs []models.Document

	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.GetAllDocuments").
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.GetAllDocuments").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating document rows: %w", rowsErr)
	}

	return docs, nil
}

func (r *documentRepository) UpdateDocument(ctx context.Context, doc models.Document) error {
	log := logger.FromContext(ctx)

	tags, err := encodeTags(doc.Tags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// id, created_at and file_path are immutable after creation and are
	// deliberately absent from the SET clause.
	query, args, err := r.builder.
		Update(doc.TableName()).
		Set("name", doc.Name).
		Set("updated_at", doc.UpdatedAt).
		Set("tags", tags).
		Set("favorite", doc.Favorite).
		Set("thumbnail", doc.Thumbnail).
		Where(sq.Eq{"id": doc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.UpdateDocument").
			Str("document_id", doc.ID).
			Msg("failed to execute update for document")
		return fmt.Errorf("failed to update document (id=%s): %w", doc.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", doc.ID, err)
	}
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "documentRepository.UpdateDocument").
			Str("document_id", doc.ID).
			Msg("no rows affected during update: record not found")
		return ErrDocumentNotFound
	}

	return nil
}

func (r *documentRepository) DeleteDocument(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("documents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.DeleteDocument").
			Str("document_id", id).
			Msg("failed to execute delete for document")
		return fmt.Errorf("failed to delete document (id=%s): %w", id, err)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanDocument.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var doc models.Document
	var tags string

	err := row.Scan(
		&doc.ID,
		&doc.Name,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&doc.FileSize,
		&doc.PageCount,
		&tags,
		&doc.Favorite,
		&doc.FilePath,
		&doc.Thumbnail,
	)
	if err != nil {
		return models.Document{}, err
	}

	doc.Tags, err = decodeTags(tags)
	if err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// Tags are stored as a JSON array in a TEXT column. The database treats the
// value as opaque; ordering and duplicates survive the round trip.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

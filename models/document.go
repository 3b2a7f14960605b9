// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package models

import "time"

// Document represents a single scanned document in the vault.
// It is the primary persistence model: one record maps to exactly one PDF
// file on disk, addressed by joining the configured base directory with
// FilePath. The record never owns the file's lifecycle directly: only the
// document service may create or remove the underlying file, and file
// removal happens in the same operation as record removal.
type Document struct {
	// ID is the opaque unique identifier of the document.
	// Generated at creation time and immutable afterwards.
	ID string `json:"id"`

	// Name is the human-readable display name of the document.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the document was created. Immutable.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	// Every mutation (rename, tag edit, favorite toggle) bumps this value.
	UpdatedAt time.Time `json:"updated_at"`

	// FileSize is the size in bytes of the associated PDF file,
	// measured after the file was written.
	FileSize int64 `json:"file_size"`

	// PageCount is the number of pages of the associated PDF file,
	// derived by opening the written file.
	PageCount int `json:"page_count"`

	// Tags is a free-form tag list. Unordered, duplicates permitted.
	Tags []string `json:"tags"`

	// Favorite marks the document as a user favorite.
	Favorite bool `json:"favorite"`

	// FilePath is the path of the PDF file relative to the vault base
	// directory. Set once at creation and never changed.
	FilePath string `json:"file_path"`

	// Thumbnail holds optional cached JPEG bytes rendered from the first
	// page. Absence of a thumbnail is not an error.
	Thumbnail []byte `json:"thumbnail,omitempty"`
}

// HasTag reports whether tag is present in the document's tag list.
// The comparison is exact and case-sensitive.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TableName returns the name of the database table
// associated with the Document model.
func (d *Document) TableName() string {
	return "documents"
}

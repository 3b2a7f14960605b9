// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

// maxUploadBytes bounds a single multipart upload held in memory.
const maxUploadBytes = 64 << 20

// documentListResponse is the envelope of every list-shaped endpoint. The
// error field carries the last background refresh failure, if any.
type documentListResponse struct {
	Documents []models.Document `json:"documents"`
	Loading   bool              `json:"loading"`
	LastError string            `json:"last_error,omitempty"`
}

func (h *Handler) listResponse(docs []models.Document) documentListResponse {
	resp := documentListResponse{
		Documents: docs,
		Loading:   h.services.DocumentService.Loading(),
	}
	if err := h.services.DocumentService.LastError(); err != nil {
		resp.LastError = err.Error()
	}

	return resp
}

// listDocuments serves the loaded list, optionally narrowed by the q
// (case-insensitive search), tag (exact filter), or favorite query
// parameters. Narrowing parameters are mutually exclusive; q wins over tag,
// tag over favorite.
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docSvc := h.services.DocumentService

	var docs []models.Document
	switch {
	case r.URL.Query().Has("q"):
		docs = docSvc.Search(r.URL.Query().Get("q"))
	case r.URL.Query().Has("tag"):
		docs = docSvc.FilterByTag(r.URL.Query().Get("tag"))
	case r.URL.Query().Get("favorite") == "true":
		docs = docSvc.Favorites()
	default:
		docs = docSvc.Documents()
	}

	writeJSON(w, r, http.StatusOK, h.listResponse(docs))
}

func (h *Handler) refreshDocuments(w http.ResponseWriter, r *http.Request) {
	h.services.DocumentService.Refresh(r.Context())

	writeJSON(w, r, http.StatusOK, h.listResponse(h.services.DocumentService.Documents()))
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.listResponse(h.services.DocumentService.Favorites()))
}

// createDocument accepts a multipart form holding either a ready PDF in the
// "file" part or one or more scanned page images in "images" parts, plus
// "name" and repeated "tags" fields.
func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	tags := r.Form["tags"]

	var (
		doc models.Document
		err error
	)
	switch {
	case hasFormFile(r, "file"):
		var data []byte
		if data, err = readFormFile(r, "file"); err != nil {
			log.Err(err).Str("func", "*Handler.createDocument").Msg("error reading uploaded file")
			http.Error(w, "error reading uploaded file", http.StatusBadRequest)
			return
		}
		doc, err = h.services.DocumentService.CreateFromBytes(r.Context(), name, data, tags)

	case hasFormFile(r, "images"):
		var pages []image.Image
		if pages, err = readFormImages(r, "images"); err != nil {
			log.Err(err).Str("func", "*Handler.createDocument").Msg("error decoding uploaded images")
			http.Error(w, "error decoding uploaded images", http.StatusBadRequest)
			return
		}
		doc, err = h.services.DocumentService.CreateFromImages(r.Context(), name, pages, tags)

	default:
		http.Error(w, "either a file or images part is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("error creating document")
		http.Error(w, "error creating document", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, doc)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, doc := range h.services.DocumentService.Documents() {
		if doc.ID == id {
			writeJSON(w, r, http.StatusOK, doc)
			return
		}
	}

	http.Error(w, "document not found", http.StatusNotFound)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var update models.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	doc, err := h.services.DocumentService.Update(r.Context(), id, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("error updating document")
		http.Error(w, "error updating document", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, doc)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDocument").Msg("error deleting document")
		http.Error(w, "error deleting document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDocumentsBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeleteDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDocumentsBatch").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.DeleteBatch(r.Context(), req.IDs); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDocumentsBatch").Msg("error deleting documents")
		http.Error(w, "error deleting documents", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// downloadDocument streams the stored PDF bytes, the export surface of the
// vault.
func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	doc, data, err := h.services.DocumentService.DocumentFile(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadDocument").Msg("error reading document file")
		http.Error(w, "error reading document file", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err = w.Write(data); err != nil {
		log.Err(err).Str("func", "*Handler.downloadDocument").Msg("error writing document body")
	}
}

func (h *Handler) vaultSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.DocumentService.Summary())
}

func hasFormFile(r *http.Request, field string) bool {
	return r.MultipartForm != nil && len(r.MultipartForm.File[field]) > 0
}

func readFormFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return io.ReadAll(file)
}

// readFormImages decodes every uploaded part of the field as an image, in
// upload order. JPEG and PNG are supported.
func readFormImages(r *http.Request, field string) ([]image.Image, error) {
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, errors.New("no image parts")
	}

	images := make([]image.Image, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		img, _, err := image.Decode(file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", header.Filename, err)
		}

		images = append(images, img)
	}

	return images, nil
}

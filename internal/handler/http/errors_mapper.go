package http

import (
	"errors"
	"net/http"

	"github.com/avstepanov/docvault/internal/service"
	"github.com/avstepanov/docvault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoDocumentData: http.StatusBadRequest,
	service.ErrNoImages:       http.StatusBadRequest,
	service.ErrNoDocumentIDs:  http.StatusBadRequest,
	service.ErrUnknownProduct: http.StatusBadRequest,

	store.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrDocumentNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

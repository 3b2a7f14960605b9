package http

import (
	"net/http"
)

// getServerVersion reports the build version as plain text so deployment
// checks can compare it without parsing JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(version))
}

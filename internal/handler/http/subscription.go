package http

import (
	"encoding/json"
	"net/http"

	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

// productsResponse is the paywall catalog payload. The error field carries
// the last catalog load failure; prices may still be present from the
// fallback table in that case.
type productsResponse struct {
	Products     []models.Product `json:"products"`
	CatalogError string           `json:"catalog_error,omitempty"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	subSvc := h.services.SubscriptionService

	products := subSvc.Products()
	if len(products) == 0 {
		// First hit loads the catalog; fallback pricing guarantees a
		// non-empty result.
		subSvc.LoadCatalogWithRetry(r.Context())
		products = subSvc.Products()
	}

	resp := productsResponse{Products: products}
	if err := subSvc.CatalogError(); err != nil {
		resp.CatalogError = err.Error()
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.purchase").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.SubscriptionService.Purchase(r.Context(), req.ProductID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.purchase").Msg("error purchasing product")
		http.Error(w, "error purchasing product", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.SubscriptionService.Restore(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.restore").Msg("error restoring purchases")
		http.Error(w, "error restoring purchases", statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, h.services.SubscriptionService.Entitlement())
}

func (h *Handler) subscriptionStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.SubscriptionService.Entitlement())
}

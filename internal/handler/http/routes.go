package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/documents", func(r chi.Router) {
		r.Get("/", h.listDocuments)
		r.Post("/", h.createDocument)
		r.Post("/refresh", h.refreshDocuments)
		r.Post("/delete", h.deleteDocumentsBatch)
		r.Get("/favorites", h.listFavorites)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getDocument)
			r.Patch("/", h.updateDocument)
			r.Delete("/", h.deleteDocument)
			r.Get("/file", h.downloadDocument)
		})
	})

	router.Get("/api/vault/summary", h.vaultSummary)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/subscription", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Post("/purchase", h.purchase)
		r.Post("/restore", h.restore)
		r.Get("/status", h.subscriptionStatus)
	})

	return router
}

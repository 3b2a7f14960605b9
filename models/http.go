package models

// CreateDocumentRequest carries the fields accompanying an uploaded PDF.
// The binary content itself travels as a multipart file part.
type CreateDocumentRequest struct {
	// Name is the display name for the new document.
	Name string `json:"name"`

	// Tags is the optional initial tag list.
	Tags []string `json:"tags,omitempty"`
}

// UpdateDocumentRequest represents a partial update of a document record.
// Only non-nil fields are applied.
type UpdateDocumentRequest struct {
	// Name replaces the display name when set.
	Name *string `json:"name,omitempty"`

	// Tags replaces the tag list when set.
	Tags *[]string `json:"tags,omitempty"`

	// Favorite replaces the favorite flag when set.
	Favorite *bool `json:"favorite,omitempty"`
}

// DeleteDocumentsRequest represents a batch deletion request.
type DeleteDocumentsRequest struct {
	// IDs contains the identifiers of the documents to delete.
	IDs []string `json:"ids"`
}

// PurchaseRequest identifies the product the user chose on the paywall.
type PurchaseRequest struct {
	// ProductID is one of the fixed product identifiers.
	ProductID string `json:"product_id"`
}

// PurchaseResponse reports the outcome of a purchase submission.
type PurchaseResponse struct {
	// Outcome is one of "success", "cancelled" or "pending".
	Outcome string `json:"outcome"`

	// Message is an optional informational message, set for the
	// pending outcome.
	Message string `json:"message,omitempty"`

	// Entitlement is the recomputed status after a successful purchase.
	Entitlement *Entitlement `json:"entitlement,omitempty"`
}

// VaultSummary aggregates the home-screen numbers of the vault.
type VaultSummary struct {
	// DocumentCount is the number of currently loaded documents.
	DocumentCount int `json:"document_count"`

	// TotalStorageBytes is the sum of file sizes across all loaded
	// documents. Computed from the in-memory list, not a storage scan.
	TotalStorageBytes int64 `json:"total_storage_bytes"`

	// FavoriteCount is the number of documents marked favorite.
	FavoriteCount int `json:"favorite_count"`
}

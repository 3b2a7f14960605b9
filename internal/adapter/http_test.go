package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) BillingAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.Nop()
	billing, err := NewHTTPBillingAdapter(config.Billing{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	return billing
}

func signedTransaction(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return signed
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://billing.example.com/", want: "https://billing.example.com"},
		{name: "bare host gets https", raw: "billing.example.com", want: "https://billing.example.com"},
		{name: "http preserved", raw: "http://127.0.0.1:8099", want: "http://127.0.0.1:8099"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "scheme only", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPBillingAdapter_InvalidBaseURL(t *testing.T) {
	log := logger.Nop()

	_, err := NewHTTPBillingAdapter(config.Billing{BaseURL: ""}, log)
	assert.Error(t, err)
}

func TestFetchProducts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalog/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "app.docvault.pro.weekly,app.docvault.pro.yearly", r.URL.Query().Get("ids"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []map[string]any{
				{"id": "app.docvault.pro.weekly", "display_price": "$4.99", "price": 4.99},
				{"id": "app.docvault.pro.yearly", "display_price": "$59.99", "price": 59.99},
			},
		})
	})

	billing := newTestAdapter(t, mux)

	products, err := billing.FetchProducts(context.Background(),
		[]string{"app.docvault.pro.weekly", "app.docvault.pro.yearly"})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "app.docvault.pro.weekly", products[0].ID)
	assert.Equal(t, "$4.99", products[0].DisplayPrice)
	assert.Equal(t, models.OriginStore, products[0].Origin)
	assert.Equal(t, models.OriginStore, products[1].Origin)
}

func TestFetchProducts_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalog/products", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
	})

	billing := newTestAdapter(t, mux)

	_, err := billing.FetchProducts(context.Background(), models.ProductIDs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPurchase_Success(t *testing.T) {
	expiresAt := time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/purchases", func(w http.ResponseWriter, r *http.Request) {
		var req models.PurchaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "app.docvault.pro.weekly", req.ProductID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"outcome": "success",
			"signed_transaction": signedTransaction(t, jwt.MapClaims{
				"transaction_id": "txn-100",
				"product_id":     "app.docvault.pro.weekly",
				"type":           "auto_renewable",
				"expires_at":     expiresAt.Format(time.RFC3339),
			}),
		})
	})

	billing := newTestAdapter(t, mux)

	txn, err := billing.Purchase(context.Background(), "app.docvault.pro.weekly")
	require.NoError(t, err)

	assert.Equal(t, "txn-100", txn.ID)
	assert.Equal(t, "app.docvault.pro.weekly", txn.ProductID)
	assert.Equal(t, models.AutoRenewable, txn.Type)
	require.NotNil(t, txn.ExpiresAt)
	assert.True(t, txn.ExpiresAt.Equal(expiresAt))
	assert.Nil(t, txn.RevokedAt)
}

func TestPurchase_Cancelled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/purchases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"outcome": "cancelled"})
	})

	billing := newTestAdapter(t, mux)

	_, err := billing.Purchase(context.Background(), "app.docvault.pro.weekly")
	assert.ErrorIs(t, err, ErrPurchaseCancelled)
}

func TestPurchase_Pending(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/purchases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"outcome": "pending"})
	})

	billing := newTestAdapter(t, mux)

	_, err := billing.Purchase(context.Background(), "app.docvault.pro.yearly")
	assert.ErrorIs(t, err, ErrPurchasePending)
}

func TestPurchase_UnknownOutcome(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/purchases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"outcome": "deferred"})
	})

	billing := newTestAdapter(t, mux)

	_, err := billing.Purchase(context.Background(), "app.docvault.pro.yearly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deferred")
}

func TestSyncPurchases(t *testing.T) {
	var called bool

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/purchases/sync", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	billing := newTestAdapter(t, mux)

	require.NoError(t, billing.SyncPurchases(context.Background()))
	assert.True(t, called)
}

func TestCurrentTransactions(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	revokedAt := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions/current", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"signed_transactions": []string{
				signedTransaction(t, jwt.MapClaims{
					"transaction_id": "txn-1",
					"product_id":     "app.docvault.pro.weekly",
					"type":           "auto_renewable",
					"expires_at":     expiresAt.Format(time.RFC3339),
				}),
				signedTransaction(t, jwt.MapClaims{
					"transaction_id": "txn-2",
					"product_id":     "app.docvault.pro.yearly",
					"type":           "auto_renewable",
					"expires_at":     expiresAt.Format(time.RFC3339),
					"revoked_at":     revokedAt.Format(time.RFC3339),
				}),
			},
		})
	})

	billing := newTestAdapter(t, mux)

	transactions, err := billing.CurrentTransactions(context.Background())
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "txn-1", transactions[0].ID)
	assert.Nil(t, transactions[0].RevokedAt)
	require.NotNil(t, transactions[1].RevokedAt)
	assert.True(t, transactions[1].RevokedAt.Equal(revokedAt))
}

func TestTransactionUpdates_SendsSince(t *testing.T) {
	since := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions/updates", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01T12:00:00Z", r.URL.Query().Get("since"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"signed_transactions": []string{}})
	})

	billing := newTestAdapter(t, mux)

	transactions, err := billing.TransactionUpdates(context.Background(), since)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestFinishTransaction(t *testing.T) {
	var gotPath string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/transactions/{id}/finish", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	billing := newTestAdapter(t, mux)

	require.NoError(t, billing.FinishTransaction(context.Background(), "txn-42"))
	assert.Equal(t, "/api/transactions/txn-42/finish", gotPath)
}

func TestFinishTransaction_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/transactions/{id}/finish", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown transaction", http.StatusNotFound)
	})

	billing := newTestAdapter(t, mux)

	err := billing.FinishTransaction(context.Background(), "txn-missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

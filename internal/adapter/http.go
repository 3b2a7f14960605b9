// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/models"
)

// Purchase outcome values on the wire.
const (
	outcomeSuccess   = "success"
	outcomeCancelled = "cancelled"
	outcomePending   = "pending"
)

type httpBillingAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// catalogResponse is the platform's product catalog payload.
type catalogResponse struct {
	Products []struct {
		ID           string  `json:"id"`
		DisplayPrice string  `json:"display_price"`
		Price        float64 `json:"price"`
	} `json:"products"`
}

// purchaseResponse reports the outcome of a purchase submission. The
// transaction, when present, arrives as a JWS-signed payload.
type purchaseResponse struct {
	Outcome           string `json:"outcome"`
	SignedTransaction string `json:"signed_transaction,omitempty"`
}

// transactionsResponse carries a batch of JWS-signed transactions.
type transactionsResponse struct {
	SignedTransactions []string `json:"signed_transactions"`
}

// NewHTTPBillingAdapter constructs the HTTP/REST implementation of
// [BillingAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying resty client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPBillingAdapter(cfg config.Billing, logger *logger.Logger) (BillingAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid billing base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpBillingAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchProducts implements [BillingAdapter]. It GETs the catalog entries
// for the requested identifiers and marks every returned product with
// [models.OriginStore].
func (h *httpBillingAdapter) FetchProducts(ctx context.Context, ids []string) ([]models.Product, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		Get("/api/catalog/products")
	if err != nil {
		return nil, fmt.Errorf("fetch products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var catalog catalogResponse
	if err = json.Unmarshal(resp.Body(), &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	products := make([]models.Product, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		products = append(products, models.Product{
			ID:           p.ID,
			DisplayPrice: p.DisplayPrice,
			Price:        p.Price,
			Origin:       models.OriginStore,
		})
	}

	return products, nil
}

// Purchase implements [BillingAdapter]. It POSTs the purchase request and
// maps the platform's outcome field onto the adapter's sentinel errors:
// cancelled and pending are surfaced as [ErrPurchaseCancelled] and
// [ErrPurchasePending], any unknown outcome is an error.
func (h *httpBillingAdapter) Purchase(ctx context.Context, productID string) (models.Transaction, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PurchaseRequest{ProductID: productID}).
		Post("/api/purchases")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("purchase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	var outcome purchaseResponse
	if err = json.Unmarshal(resp.Body(), &outcome); err != nil {
		return models.Transaction{}, fmt.Errorf("decode purchase response: %w", err)
	}

	switch outcome.Outcome {
	case outcomeSuccess:
		txn, decodeErr := decodeSignedTransaction(outcome.SignedTransaction)
		if decodeErr != nil {
			return models.Transaction{}, fmt.Errorf("decode purchase transaction: %w", decodeErr)
		}
		return txn, nil
	case outcomeCancelled:
		return models.Transaction{}, ErrPurchaseCancelled
	case outcomePending:
		return models.Transaction{}, ErrPurchasePending
	default:
		return models.Transaction{}, fmt.Errorf("unexpected purchase outcome %q", outcome.Outcome)
	}
}

// SyncPurchases implements [BillingAdapter].
func (h *httpBillingAdapter) SyncPurchases(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/purchases/sync")
	if err != nil {
		return fmt.Errorf("sync purchases request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentTransactions implements [BillingAdapter]. It fetches the full set
// of currently valid transactions and decodes each JWS payload.
func (h *httpBillingAdapter) CurrentTransactions(ctx context.Context) ([]models.Transaction, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/transactions/current")
	if err != nil {
		return nil, fmt.Errorf("current transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeTransactionBatch(resp.Body())
}

// TransactionUpdates implements [BillingAdapter]. It fetches the platform's
// update feed entries recorded after since.
func (h *httpBillingAdapter) TransactionUpdates(ctx context.Context, since time.Time) ([]models.Transaction, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("since", since.UTC().Format(time.RFC3339)).
		Get("/api/transactions/updates")
	if err != nil {
		return nil, fmt.Errorf("transaction updates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeTransactionBatch(resp.Body())
}

// FinishTransaction implements [BillingAdapter].
func (h *httpBillingAdapter) FinishTransaction(ctx context.Context, transactionID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/transactions/" + url.PathEscape(transactionID) + "/finish")
	if err != nil {
		return fmt.Errorf("finish transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

func decodeTransactionBatch(body []byte) ([]models.Transaction, error) {
	var batch transactionsResponse
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, fmt.Errorf("decode transactions response: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(batch.SignedTransactions))
	for _, signed := range batch.SignedTransactions {
		txn, err := decodeSignedTransaction(signed)
		if err != nil {
			return nil, fmt.Errorf("decode signed transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

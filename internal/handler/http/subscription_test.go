package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avstepanov/docvault/internal/service"
	"github.com/avstepanov/docvault/models"
)

func TestListProducts_AlreadyLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	products := []models.Product{
		{ID: models.ProductWeeklyTrial, DisplayPrice: "$4.99", Price: 4.99, Origin: models.OriginStore},
	}
	mockSubs.EXPECT().Products().Return(products)
	mockSubs.EXPECT().CatalogError().Return(nil)

	rec := doRequest(t, h, http.MethodGet, "/api/subscription/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, models.ProductWeeklyTrial, resp.Products[0].ID)
	assert.Empty(t, resp.CatalogError)
}

func TestListProducts_LoadsOnFirstHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	fallback := []models.Product{
		{ID: models.ProductWeeklyTrial, DisplayPrice: "$4.99", Price: 4.99, Origin: models.OriginFallback},
		{ID: models.ProductWeekly, DisplayPrice: "$6.99", Price: 6.99, Origin: models.OriginFallback},
		{ID: models.ProductYearly, DisplayPrice: "$49.99", Price: 49.99, Origin: models.OriginFallback},
	}

	gomock.InOrder(
		mockSubs.EXPECT().Products().Return(nil),
		mockSubs.EXPECT().LoadCatalogWithRetry(gomock.Any()),
		mockSubs.EXPECT().Products().Return(fallback),
	)
	mockSubs.EXPECT().CatalogError().Return(assert.AnError)

	rec := doRequest(t, h, http.MethodGet, "/api/subscription/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 3)
	assert.NotEmpty(t, resp.CatalogError)
	for _, p := range resp.Products {
		assert.Equal(t, models.OriginFallback, p.Origin)
	}
}

func TestPurchase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	expiry := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
	entitlement := models.SubscribedUntil(expiry)

	mockSubs.EXPECT().Purchase(gomock.Any(), models.ProductWeekly).Return(models.PurchaseResponse{
		Outcome:     "success",
		Entitlement: &entitlement,
	}, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/subscription/purchase",
		encodeBody(t, models.PurchaseRequest{ProductID: models.ProductWeekly}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PurchaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Outcome)
	require.NotNil(t, resp.Entitlement)
	assert.True(t, resp.Entitlement.Subscribed)
}

func TestPurchase_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	mockSubs.EXPECT().Purchase(gomock.Any(), models.ProductYearly).
		Return(models.PurchaseResponse{Outcome: "cancelled"}, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/subscription/purchase",
		encodeBody(t, models.PurchaseRequest{ProductID: models.ProductYearly}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PurchaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Outcome)
	assert.Nil(t, resp.Entitlement)
}

func TestPurchase_UnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	mockSubs.EXPECT().Purchase(gomock.Any(), "bogus").
		Return(models.PurchaseResponse{}, service.ErrUnknownProduct)

	rec := doRequest(t, h, http.MethodPost, "/api/subscription/purchase",
		encodeBody(t, models.PurchaseRequest{ProductID: "bogus"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPurchase_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/api/subscription/purchase", bytes.NewReader([]byte("{broken")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	expiry := time.Date(2027, 8, 30, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		mockSubs.EXPECT().Restore(gomock.Any()).Return(nil),
		mockSubs.EXPECT().Entitlement().Return(models.SubscribedUntil(expiry)),
	)

	rec := doRequest(t, h, http.MethodPost, "/api/subscription/restore", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entitlement models.Entitlement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entitlement))
	assert.True(t, entitlement.Subscribed)
}

func TestRestore_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	mockSubs.EXPECT().Restore(gomock.Any()).Return(assert.AnError)

	rec := doRequest(t, h, http.MethodPost, "/api/subscription/restore", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubscriptionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockSubs := newTestHandler(t, ctrl)

	mockSubs.EXPECT().Entitlement().Return(models.NotSubscribed())

	rec := doRequest(t, h, http.MethodGet, "/api/subscription/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entitlement models.Entitlement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entitlement))
	assert.False(t, entitlement.Subscribed)
}

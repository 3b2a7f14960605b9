package service

import (
	"sort"

	"github.com/avstepanov/docvault/models"
)

// fallbackPrices maps every purchasable tier to its hardcoded price data.
// Used only when the live catalog stays unreachable after the retry ceiling;
// the paywall must never be left without a price to display.
var fallbackPrices = map[string]models.Product{
	models.ProductWeeklyTrial: {
		ID:           models.ProductWeeklyTrial,
		DisplayPrice: "$4.99",
		Price:        4.99,
		Origin:       models.OriginFallback,
	},
	models.ProductWeekly: {
		ID:           models.ProductWeekly,
		DisplayPrice: "$6.99",
		Price:        6.99,
		Origin:       models.OriginFallback,
	},
	models.ProductYearly: {
		ID:           models.ProductYearly,
		DisplayPrice: "$49.99",
		Price:        49.99,
		Origin:       models.OriginFallback,
	},
}

// fallbackCatalog returns the full fallback price list sorted ascending by
// price, matching the ordering contract of a live catalog load.
func fallbackCatalog() []models.Product {
	products := make([]models.Product, 0, len(fallbackPrices))
	for _, id := range models.ProductIDs() {
		products = append(products, fallbackPrices[id])
	}
	sortProductsByPrice(products)

	return products
}

func sortProductsByPrice(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price < products[j].Price
	})
}

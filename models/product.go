// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package models

// Fixed product identifiers of the three subscription tiers offered by the
// billing platform. These strings are a wire contract and must match the
// catalog configured on the platform side.
const (
	// ProductWeeklyTrial is the short-duration tier with an introductory
	// free trial.
	ProductWeeklyTrial = "app.docvault.pro.weekly.trial"

	// ProductWeekly is the short-duration tier without a trial.
	ProductWeekly = "app.docvault.pro.weekly"

	// ProductYearly is the long-duration tier.
	ProductYearly = "app.docvault.pro.yearly"
)

// ProductIDs lists all purchasable product identifiers in catalog order.
func ProductIDs() []string {
	return []string{ProductWeeklyTrial, ProductWeekly, ProductYearly}
}

// ProductOrigin tells where a product's price data came from.
type ProductOrigin string

const (
	// OriginStore marks a product fetched from the live platform catalog.
	OriginStore ProductOrigin = "store"

	// OriginFallback marks a product resolved from the hardcoded fallback
	// price table after the live catalog could not be loaded.
	OriginFallback ProductOrigin = "fallback"
)

// Product is a single purchasable catalog entry. Products are transient:
// they are loaded from the platform (or the fallback table) and never
// persisted.
type Product struct {
	// ID is one of the fixed product identifiers.
	ID string `json:"id"`

	// DisplayPrice is the localized price string shown to the user,
	// e.g. "$4.99".
	DisplayPrice string `json:"display_price"`

	// Price is the numeric price used for sorting the catalog.
	Price float64 `json:"price"`

	// Origin reports whether the entry came from the live catalog or the
	// fallback table.
	Origin ProductOrigin `json:"origin"`
}

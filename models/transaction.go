// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package models

import "time"

// TransactionType identifies the billing model of a purchased product.
type TransactionType string

const (
	// AutoRenewable marks an auto-renewing subscription transaction.
	// Only transactions of this type count toward entitlement.
	AutoRenewable TransactionType = "auto_renewable"

	// NonRenewing marks a one-off or non-renewing purchase.
	NonRenewing TransactionType = "non_renewing"
)

// Transaction is a single entry of the platform's transaction ledger,
// decoded from the JWS payload the billing platform signs. The ledger is
// the authoritative record: entitlement is always recomputed from the full
// set of currently valid transactions and never patched incrementally.
type Transaction struct {
	// ID is the platform-assigned transaction identifier.
	ID string `json:"transaction_id"`

	// ProductID is the purchased product identifier.
	ProductID string `json:"product_id"`

	// Type is the billing model of the purchased product.
	Type TransactionType `json:"type"`

	// ExpiresAt is the subscription expiry. Nil for non-expiring purchases.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// RevokedAt is set when the platform revoked the transaction
	// (refund, family-sharing removal). A revoked transaction never
	// counts toward entitlement, regardless of expiry.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Valid reports whether the transaction counts toward an active
// subscription at instant now: it must be auto-renewing, not revoked,
// and carry an expiry strictly in the future.
func (t *Transaction) Valid(now time.Time) bool {
	if t.Type != AutoRenewable {
		return false
	}
	if t.RevokedAt != nil {
		return false
	}
	return t.ExpiresAt != nil && t.ExpiresAt.After(now)
}

// Entitlement is the derived subscription status. It is recomputed from the
// transaction ledger and never persisted directly.
type Entitlement struct {
	// Subscribed reports whether at least one valid auto-renewing
	// transaction with a future expiry exists.
	Subscribed bool `json:"subscribed"`

	// ExpiresAt is the furthest-future expiry across all valid
	// transactions. Nil when Subscribed is false.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NotSubscribed returns the zero entitlement status.
func NotSubscribed() Entitlement {
	return Entitlement{}
}

// SubscribedUntil returns an active entitlement expiring at expiry.
func SubscribedUntil(expiry time.Time) Entitlement {
	return Entitlement{Subscribed: true, ExpiresAt: &expiry}
}

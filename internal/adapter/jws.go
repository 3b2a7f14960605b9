package adapter

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avstepanov/docvault/models"
)

// decodeSignedTransaction extracts the transaction fields from a JWS-signed
// payload. The payload is decoded without signature verification: the
// platform already authenticates the channel, and no verification key is
// distributed to clients.
func decodeSignedTransaction(signed string) (models.Transaction, error) {
	if signed == "" {
		return models.Transaction{}, fmt.Errorf("empty signed transaction")
	}

	token, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("parse signed transaction: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Transaction{}, fmt.Errorf("unexpected claims type: %T", token.Claims)
	}

	txn := models.Transaction{
		ID:        claimString(claims, "transaction_id"),
		ProductID: claimString(claims, "product_id"),
	}
	if txn.ID == "" {
		return models.Transaction{}, fmt.Errorf("signed transaction missing transaction_id")
	}
	if txn.ProductID == "" {
		return models.Transaction{}, fmt.Errorf("signed transaction missing product_id")
	}

	switch claimString(claims, "type") {
	case "auto_renewable", "":
		txn.Type = models.AutoRenewable
	case "non_renewing":
		txn.Type = models.NonRenewing
	default:
		return models.Transaction{}, fmt.Errorf("unknown transaction type %q", claimString(claims, "type"))
	}

	if expiresAt, err := claimTime(claims, "expires_at"); err != nil {
		return models.Transaction{}, err
	} else if expiresAt != nil {
		txn.ExpiresAt = expiresAt
	}

	if revokedAt, err := claimTime(claims, "revoked_at"); err != nil {
		return models.Transaction{}, err
	} else if revokedAt != nil {
		txn.RevokedAt = revokedAt
	}

	return txn, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}

// claimTime reads an optional RFC 3339 timestamp claim. A missing or empty
// claim yields a nil time without error.
func claimTime(claims jwt.MapClaims, key string) (*time.Time, error) {
	raw := claimString(claims, key)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s claim: %w", key, err)
	}

	return &parsed, nil
}

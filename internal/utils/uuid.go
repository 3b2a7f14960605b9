// Package utils holds small shared helpers with no domain logic.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for document records and
// generated PDF filenames. UUIDv7 is preferred for its time-ordered
// prefix; v4 is the fallback when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

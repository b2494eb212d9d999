package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for stored artifacts. Version 7 uuids are
// preferred for their timestamp prefix (blob locators sort roughly by
// creation time); if v7 generation fails the random v4 form is used instead.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

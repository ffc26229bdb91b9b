package service

import "github.com/google/uuid"

// UUIDGenerator implements ports.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates the default id generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new collision-resistant opaque identifier.
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}

package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
)

// Generator produces post ids. It prefers time-ordered v7 UUIDs so new posts
// land at the end of the _id index.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID returns a v7 UUID, or a random v4 one if the clock source fails.
func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)

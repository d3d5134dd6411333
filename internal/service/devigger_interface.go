package service

import (
	"github.com/cypherlabdev/odds-devig-service/internal/models"
)

// Devigger is an interface that abstracts overround removal operations
// This allows for easier testing and mocking
type Devigger interface {
	DevigQuote(quote *models.MarketQuote) (*models.DevigResult, error)
	DevigBatch(quotes []*models.MarketQuote) ([]*models.DevigResult, error)
}

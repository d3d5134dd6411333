package service

import (
	"context"

	"github.com/cypherlabdev/odds-devig-service/internal/models"
)

// Cache is an interface that abstracts cache operations
// This allows for easier testing and mocking
type Cache interface {
	Set(ctx context.Context, result *models.DevigResult) error
	Get(ctx context.Context, eventID, market, book string) (*models.DevigResult, error)
	SetBatch(ctx context.Context, results []*models.DevigResult) error
	GetByEvent(ctx context.Context, eventID string) ([]*models.DevigResult, error)
	Ping(ctx context.Context) error
	Close() error
}

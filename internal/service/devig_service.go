package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-devig-service/internal/models"
)

// DevigService orchestrates overround removal with caching
type DevigService struct {
	devigger Devigger
	cache    Cache
	logger   zerolog.Logger
}

// NewDevigService creates a new devig service
func NewDevigService(
	devigger Devigger,
	cache Cache,
	logger zerolog.Logger,
) *DevigService {
	return &DevigService{
		devigger: devigger,
		cache:    cache,
		logger:   logger.With().Str("component", "devig_service").Logger(),
	}
}

// GetDevigResult retrieves a fair-price result with cache-first strategy
func (s *DevigService) GetDevigResult(ctx context.Context, eventID, market, book string) (*models.DevigResult, error) {
	// Try cache first
	cached, err := s.cache.Get(ctx, eventID, market, book)
	if err == nil && cached != nil {
		s.logger.Debug().
			Str("event_id", eventID).
			Str("market", market).
			Str("book", book).
			Msg("cache hit for devig result")
		return cached, nil
	}

	// Log cache miss (but don't fail on cache errors)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("event_id", eventID).
			Str("market", market).
			Str("book", book).
			Msg("cache error, will need a fresh quote to devig")
	}

	// Cache miss - caller needs to provide a market quote to devig
	return nil, fmt.Errorf("devig result not found in cache for event=%s market=%s book=%s", eventID, market, book)
}

// DevigQuote removes the overround from a market quote and caches the result
func (s *DevigService) DevigQuote(ctx context.Context, quote *models.MarketQuote) (*models.DevigResult, error) {
	result, err := s.devigger.DevigQuote(quote)
	if err != nil {
		return nil, fmt.Errorf("devig failed: %w", err)
	}

	// Cache the fair prices
	if err := s.cache.Set(ctx, result); err != nil {
		s.logger.Warn().
			Err(err).
			Str("event_id", result.EventID).
			Str("market", result.Market).
			Str("book", result.Book).
			Msg("failed to cache devig result")
		// Don't fail the request on cache errors
	}

	s.logger.Info().
		Str("event_id", result.EventID).
		Str("market", result.Market).
		Str("book", result.Book).
		Str("vig_percent", result.VigPercent.String()).
		Int("outcomes", len(result.Outcomes)).
		Msg("devigged and cached market quote")

	return result, nil
}

// DevigBatch removes the overround from a batch of quotes and caches results
func (s *DevigService) DevigBatch(ctx context.Context, quotes []*models.MarketQuote) ([]*models.DevigResult, error) {
	if len(quotes) == 0 {
		return nil, nil
	}

	results, err := s.devigger.DevigBatch(quotes)
	if err != nil {
		return nil, fmt.Errorf("batch devig failed: %w", err)
	}

	// Cache all fair prices in batch
	if err := s.cache.SetBatch(ctx, results); err != nil {
		s.logger.Warn().
			Err(err).
			Int("count", len(results)).
			Msg("failed to cache batch of devig results")
		// Don't fail the request on cache errors
	}

	s.logger.Info().
		Int("input_count", len(quotes)).
		Int("output_count", len(results)).
		Msg("devigged and cached batch")

	return results, nil
}

// GetDevigResultsByEvent retrieves all cached fair prices for an event
func (s *DevigService) GetDevigResultsByEvent(ctx context.Context, eventID string) ([]*models.DevigResult, error) {
	results, err := s.cache.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve devig results for event: %w", err)
	}

	s.logger.Debug().
		Str("event_id", eventID).
		Int("count", len(results)).
		Msg("retrieved devig results by event")

	return results, nil
}

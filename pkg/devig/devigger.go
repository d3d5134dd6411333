package devig

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-devig-service/internal/models"
	"github.com/cypherlabdev/odds-devig-service/pkg/odds"
)

// Devigger removes the bookmaker overround from raw market quotes
type Devigger struct {
	method odds.Method
	logger zerolog.Logger
}

// NewDevigger creates a new market devigger
func NewDevigger(method odds.Method, logger zerolog.Logger) *Devigger {
	return &Devigger{
		method: method,
		logger: logger.With().Str("component", "devigger").Logger(),
	}
}

// DevigQuote removes the overround from a single market quote
func (d *Devigger) DevigQuote(quote *models.MarketQuote) (*models.DevigResult, error) {
	americanOdds := make([]int, len(quote.Outcomes))
	for i, outcome := range quote.Outcomes {
		americanOdds[i] = outcome.AmericanOdds
	}

	vigPercent, fairOdds, err := odds.DevigNWay(americanOdds, d.method)
	if err != nil {
		return nil, fmt.Errorf("devig failed for market %s/%s: %w", quote.EventID, quote.Market, err)
	}

	outcomes := make([]models.FairOutcome, len(quote.Outcomes))
	for i, outcome := range quote.Outcomes {
		// Both conversions were already validated inside DevigNWay.
		quotedProb, _ := odds.AmericanToImplied(outcome.AmericanOdds)
		fairProb, _ := odds.AmericanToImplied(fairOdds[i])

		outcomes[i] = models.FairOutcome{
			Selection:         outcome.Selection,
			QuotedOdds:        outcome.AmericanOdds,
			FairOdds:          fairOdds[i],
			QuotedProbability: decimal.NewFromFloat(quotedProb).Round(6),
			FairProbability:   decimal.NewFromFloat(fairProb).Round(6),
		}
	}

	return &models.DevigResult{
		ID:         uuid.New(),
		EventID:    quote.EventID,
		EventName:  quote.EventName,
		Sport:      quote.Sport,
		Market:     quote.Market,
		Book:       quote.Book,
		Method:     d.method.String(),
		VigPercent: decimal.NewFromFloat(vigPercent).Round(4),
		Outcomes:   outcomes,
		Timestamp:  quote.Timestamp,
		DeviggedAt: time.Now().UTC(),
	}, nil
}

// DevigBatch removes the overround from a batch of market quotes, skipping
// quotes the conversion layer rejects
func (d *Devigger) DevigBatch(quotes []*models.MarketQuote) ([]*models.DevigResult, error) {
	results := make([]*models.DevigResult, 0, len(quotes))

	for _, quote := range quotes {
		result, err := d.DevigQuote(quote)
		if err != nil {
			d.logger.Warn().
				Err(err).
				Str("event_id", quote.EventID).
				Str("market", quote.Market).
				Str("book", quote.Book).
				Msg("failed to devig market quote")
			continue
		}
		results = append(results, result)
	}

	d.logger.Info().
		Int("input_count", len(quotes)).
		Int("output_count", len(results)).
		Msg("batch devig complete")

	return results, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OutcomeQuote is a single priced outcome inside a market, quoted in
// American odds. Outcome order is significant and preserved through
// de-vigging.
type OutcomeQuote struct {
	Selection    string `json:"selection"`
	AmericanOdds int    `json:"american_odds"`
}

// MarketQuote represents a raw market as quoted by a book (from the odds
// ingestion pipeline), before overround removal.
type MarketQuote struct {
	ID        uuid.UUID      `json:"id"`
	EventID   string         `json:"event_id"`
	EventName string         `json:"event_name"`
	Sport     string         `json:"sport"`
	Market    string         `json:"market"`
	Book      string         `json:"book"`
	Outcomes  []OutcomeQuote `json:"outcomes"`
	Timestamp time.Time      `json:"timestamp"`
}

// FairOutcome is a single outcome after de-vigging: the quoted price, the
// fair price, and the probabilities both encode.
type FairOutcome struct {
	Selection         string          `json:"selection"`
	QuotedOdds        int             `json:"quoted_odds"`
	FairOdds          int             `json:"fair_odds"`
	QuotedProbability decimal.Decimal `json:"quoted_probability"`
	FairProbability   decimal.Decimal `json:"fair_probability"`
}

// DevigResult represents a market after overround removal. Outcomes appear
// in the same order as the source quote.
type DevigResult struct {
	ID         uuid.UUID       `json:"id"`
	EventID    string          `json:"event_id"`
	EventName  string          `json:"event_name"`
	Sport      string          `json:"sport"`
	Market     string          `json:"market"`
	Book       string          `json:"book"`
	Method     string          `json:"method"`
	VigPercent decimal.Decimal `json:"vig_percent"`
	Outcomes   []FairOutcome   `json:"outcomes"`
	Timestamp  time.Time       `json:"timestamp"`
	DeviggedAt time.Time       `json:"devigged_at"`
}

// KafkaMarketQuotesMessage represents the Kafka message carrying a batch of
// raw market quotes from the ingestion pipeline.
type KafkaMarketQuotesMessage struct {
	Quotes    []MarketQuote `json:"quotes"`
	Timestamp time.Time     `json:"timestamp"`
	BatchID   string        `json:"batch_id"`
}

package domain

import "github.com/shopspring/decimal"

// RequestStatus is the play state of a request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusQueue     RequestStatus = "queue"
	StatusPlaying   RequestStatus = "playing"
	StatusCompleted RequestStatus = "completed"
)

// Valid reports whether s is one of the four play states.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusQueue, StatusPlaying, StatusCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks the externally confirmed payment of a request.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Relevance is the demand tier of a song.
type Relevance string

const (
	RelevanceLow    Relevance = "low"
	RelevanceMedium Relevance = "medium"
	RelevanceHigh   Relevance = "high"
)

// Valid reports whether r is a known tier.
func (r Relevance) Valid() bool {
	switch r {
	case RelevanceLow, RelevanceMedium, RelevanceHigh:
		return true
	}
	return false
}

var tierPrices = map[Relevance]decimal.Decimal{
	RelevanceLow:    decimal.RequireFromString("3.00"),
	RelevanceMedium: decimal.RequireFromString("5.00"),
	RelevanceHigh:   decimal.RequireFromString("8.00"),
}

// PriceFor returns the request price of a relevance tier. Unknown or empty
// tiers are priced as medium.
func PriceFor(r Relevance) decimal.Decimal {
	if p, ok := tierPrices[r]; ok {
		return p
	}
	return tierPrices[RelevanceMedium]
}

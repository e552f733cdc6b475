package services

import "github.com/tbourn/go-songrequest-backend/internal/domain"

// Pricing is the outcome of the eligibility check for one submission.
type Pricing struct {
	IsFree        bool
	Price         float64
	PaymentStatus domain.PaymentStatus
}

// PriceFor returns the request price of a relevance tier: low 3.00,
// medium 5.00, high 8.00, anything else 5.00.
func PriceFor(r domain.Relevance) float64 {
	return domain.PriceFor(r).InexactFloat64()
}

// ComputePricing decides how a submission is charged. The first request of
// an identity is free and needs no payment; later ones pay the song price
// and wait for payment confirmation.
func ComputePricing(first bool, song domain.Song) Pricing {
	if first {
		return Pricing{IsFree: true, Price: 0, PaymentStatus: domain.PaymentCompleted}
	}
	return Pricing{IsFree: false, Price: song.Price(), PaymentStatus: domain.PaymentPending}
}

// ComputePriority counts the recognized platforms the requester follows.
// Zero follows is rejected with ErrNoFollows.
func ComputePriority(p domain.SocialPlatforms) (int, error) {
	n := p.Follows()
	if n == 0 {
		return 0, ErrNoFollows
	}
	return n, nil
}

func applyPricing(r *domain.Request, p Pricing) {
	r.IsFree = p.IsFree
	r.PricePaid = p.Price
	r.PaymentStatus = p.PaymentStatus
}

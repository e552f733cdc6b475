// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate query behind the
// statistics endpoint.
package repo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

const statsQuery = `
SELECT
	COUNT(*) AS total_requests,
	COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_requests,
	COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_requests,
	COALESCE(SUM(priority), 0) AS new_followers,
	COUNT(DISTINCT user_social) AS active_users,
	COALESCE(SUM(CASE WHEN payment_status = ? THEN price_paid ELSE 0 END), 0) AS total_revenue,
	COALESCE(SUM(CASE WHEN is_free THEN 0 ELSE 1 END), 0) AS paid_requests,
	COALESCE(SUM(CASE WHEN is_free THEN 1 ELSE 0 END), 0) AS free_requests
FROM requests`

// RequestStats computes the request summary in a single pass over the
// requests table. An empty table yields all zeros.
//
// total_revenue sums price_paid over payment-completed rows and is rounded
// to two decimals.
func RequestStats(ctx context.Context, db *gorm.DB) (domain.Stats, error) {
	var st domain.Stats
	err := db.WithContext(ctx).
		Raw(statsQuery, string(domain.StatusPending), string(domain.StatusCompleted), string(domain.PaymentCompleted)).
		Scan(&st).Error
	if err != nil {
		return domain.Stats{}, err
	}
	st.TotalRevenue = roundMoney(st.TotalRevenue)
	return st, nil
}

func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

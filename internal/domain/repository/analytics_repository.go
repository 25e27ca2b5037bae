package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/enum"
)

// TypeTotalsResult represents donations aggregated by donation type
type TypeTotalsResult struct {
	DonationType  enum.DonationType
	TotalAmount   int64
	DonationCount int
	Percentage    float64
}

// TopDonorResult represents a donor's cumulative giving
type TopDonorResult struct {
	DonorID       uuid.UUID
	DonorName     string
	TotalAmount   int64
	DonationCount int
}

// DailyTotalsResult represents donation totals for a single day
type DailyTotalsResult struct {
	Date        time.Time
	TotalAmount int64
	Count       int
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetTotalsByType returns donation totals grouped by type with percentages
	GetTotalsByType(ctx context.Context) ([]TypeTotalsResult, error)

	// GetTopDonors returns the biggest donors by cumulative amount
	GetTopDonors(ctx context.Context, limit int) ([]TopDonorResult, error)

	// GetDailyTotals returns per-day donation totals for the last N days
	GetDailyTotals(ctx context.Context, days int) ([]DailyTotalsResult, error)

	// GetTotalCollected returns the all-time donation total
	GetTotalCollected(ctx context.Context) (int64, error)

	// GetMonthlyCollected returns the donation total for the current month
	GetMonthlyCollected(ctx context.Context) (int64, error)

	// GetDonorCount returns the number of registered donors
	GetDonorCount(ctx context.Context) (int64, error)

	// GetDonationCount returns the number of recorded donations
	GetDonationCount(ctx context.Context) (int64, error)
}

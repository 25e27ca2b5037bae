package service

import (
	"context"

	"github.com/ashramseva/donation-api/internal/domain/repository"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalDonors      int64             `json:"total_donors"`
	TotalDonations   int64             `json:"total_donations"`
	TotalCollected   int64             `json:"total_collected"`
	MonthlyCollected int64             `json:"monthly_collected"`
	TotalsByType     []TypeTotalsPoint `json:"totals_by_type"`
	TopDonors        []TopDonorPoint   `json:"top_donors"`
	DailyTotals      []DailyTotalPoint `json:"daily_totals"`
}

// TypeTotalsPoint represents totals for one donation type
type TypeTotalsPoint struct {
	DonationType string  `json:"donation_type"`
	TotalAmount  int64   `json:"total_amount"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// TopDonorPoint represents a donor's cumulative giving
type TopDonorPoint struct {
	DonorID     string `json:"donor_id"`
	DonorName   string `json:"donor_name"`
	TotalAmount int64  `json:"total_amount"`
	Count       int    `json:"count"`
}

// DailyTotalPoint represents one day's donations
type DailyTotalPoint struct {
	Date        string `json:"date"`
	TotalAmount int64  `json:"total_amount"`
	Count       int    `json:"count"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	donorCount, err := s.analyticsRepo.GetDonorCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalDonors = donorCount

	donationCount, err := s.analyticsRepo.GetDonationCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalDonations = donationCount

	totalCollected, err := s.analyticsRepo.GetTotalCollected(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCollected = totalCollected

	monthlyCollected, err := s.analyticsRepo.GetMonthlyCollected(ctx)
	if err != nil {
		return nil, err
	}
	stats.MonthlyCollected = monthlyCollected

	byType, err := s.analyticsRepo.GetTotalsByType(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalsByType = make([]TypeTotalsPoint, 0, len(byType))
	for _, t := range byType {
		stats.TotalsByType = append(stats.TotalsByType, TypeTotalsPoint{
			DonationType: string(t.DonationType),
			TotalAmount:  t.TotalAmount,
			Count:        t.DonationCount,
			Percentage:   t.Percentage,
		})
	}

	topDonors, err := s.analyticsRepo.GetTopDonors(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopDonors = make([]TopDonorPoint, 0, len(topDonors))
	for _, d := range topDonors {
		stats.TopDonors = append(stats.TopDonors, TopDonorPoint{
			DonorID:     d.DonorID.String(),
			DonorName:   d.DonorName,
			TotalAmount: d.TotalAmount,
			Count:       d.DonationCount,
		})
	}

	daily, err := s.analyticsRepo.GetDailyTotals(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailyTotals = make([]DailyTotalPoint, 0, len(daily))
	for _, d := range daily {
		stats.DailyTotals = append(stats.DailyTotals, DailyTotalPoint{
			Date:        d.Date.Format("Jan 02"),
			TotalAmount: d.TotalAmount,
			Count:       d.Count,
		})
	}

	return stats, nil
}

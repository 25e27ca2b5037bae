package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	domainRepo "github.com/ashramseva/donation-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTotalsByType(ctx context.Context) ([]domainRepo.TypeTotalsResult, error) {
	var results []domainRepo.TypeTotalsResult

	// Grand total first, for percentage calculation
	var grandTotal sql.NullInt64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE deleted_at IS NULL
	`).Scan(&grandTotal).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			donation_type,
			COALESCE(SUM(amount), 0) as total_amount,
			COUNT(id) as donation_count
		FROM donations
		WHERE deleted_at IS NULL
		GROUP BY donation_type
		ORDER BY total_amount DESC
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for i := range results {
		if grandTotal.Valid && grandTotal.Int64 > 0 {
			results[i].Percentage = float64(results[i].TotalAmount) / float64(grandTotal.Int64) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetTopDonors(ctx context.Context, limit int) ([]domainRepo.TopDonorResult, error) {
	var results []domainRepo.TopDonorResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			dn.id as donor_id,
			dn.name as donor_name,
			COALESCE(SUM(d.amount), 0) as total_amount,
			COUNT(d.id) as donation_count
		FROM donations d
		JOIN donors dn ON dn.id = d.donor_id
		WHERE d.deleted_at IS NULL AND d.donor_id IS NOT NULL
		GROUP BY dn.id, dn.name
		ORDER BY total_amount DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailyTotals(ctx context.Context, days int) ([]domainRepo.DailyTotalsResult, error) {
	results := make([]domainRepo.DailyTotalsResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Total sql.NullInt64
			Count int
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(amount), 0) as total, COUNT(id) as count
			FROM donations
			WHERE deleted_at IS NULL
			AND created_at >= ? AND created_at < ?
		`, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		total := int64(0)
		if row.Total.Valid {
			total = row.Total.Int64
		}

		results = append(results, domainRepo.DailyTotalsResult{
			Date:        startOfDay,
			TotalAmount: total,
			Count:       row.Count,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalCollected(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE deleted_at IS NULL
	`).Scan(&total).Error

	return total, err
}

func (r *analyticsRepository) GetMonthlyCollected(ctx context.Context) (int64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE deleted_at IS NULL AND created_at >= ?
	`, startOfMonth).Scan(&total).Error

	return total, err
}

func (r *analyticsRepository) GetDonorCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Donor{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetDonationCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Donation{}).Count(&count).Error
	return count, err
}

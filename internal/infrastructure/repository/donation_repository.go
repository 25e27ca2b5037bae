package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	domainRepo "github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) domainRepo.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donation entity.Donation
	err := r.db.WithContext(ctx).Preload("Donor").First(&donation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &donation, err
}

func (r *donationRepository) GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.Donation, error) {
	var donation entity.Donation
	err := r.db.WithContext(ctx).Preload("Donor").First(&donation, "receipt_number = ?", receiptNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &donation, err
}

func (r *donationRepository) Update(ctx context.Context, donation *entity.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

func (r *donationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Donation{}, "id = ?", id).Error
}

func applyDonationFilter(query *gorm.DB, filter domainRepo.DonationFilter) *gorm.DB {
	if filter.DonorID != nil {
		query = query.Where("donor_id = ?", *filter.DonorID)
	}
	if filter.DonationType != nil {
		query = query.Where("donation_type = ?", *filter.DonationType)
	}
	if filter.PaymentMode != nil {
		query = query.Where("payment_mode = ?", *filter.PaymentMode)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	if filter.Search != "" {
		query = query.Where("receipt_number ILIKE ? OR donor_name ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return query
}

func (r *donationRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.DonationFilter) ([]entity.Donation, int64, error) {
	var donations []entity.Donation
	var total int64

	query := applyDonationFilter(r.db.WithContext(ctx).Model(&entity.Donation{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Donor").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&donations).Error

	return donations, total, err
}

func (r *donationRepository) ListAll(ctx context.Context, filter domainRepo.DonationFilter) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := applyDonationFilter(r.db.WithContext(ctx).Model(&entity.Donation{}), filter).
		Preload("Donor").
		Order("created_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *donationRepository) MarkEmailed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Donation{}).
		Where("id = ?", id).
		Update("emailed_at", at).Error
}

func (r *donationRepository) ReceiptNumberExists(ctx context.Context, receiptNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Donation{}).
		Where("receipt_number = ?", receiptNumber).
		Count(&count).Error
	return count > 0, err
}

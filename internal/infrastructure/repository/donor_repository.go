package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	domainRepo "github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) domainRepo.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	var donor entity.Donor
	err := r.db.WithContext(ctx).First(&donor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &donor, err
}

func (r *donorRepository) GetByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	var donor entity.Donor
	err := r.db.WithContext(ctx).First(&donor, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &donor, err
}

func (r *donorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	return r.db.WithContext(ctx).Save(donor).Error
}

func (r *donorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Donor{}, "id = ?", id).Error
}

func (r *donorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Donor, int64, error) {
	var donors []entity.Donor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Donor{})

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&donors).Error

	return donors, total, err
}

// ListWithCursor returns donors using cursor-based pagination
// Fetches limit+1 items to detect if there are more results
func (r *donorRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Donor, error) {
	var donors []entity.Donor

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Donor{})

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&donors).Error

	return donors, err
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/apperror"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

// DonorService handles donor-related operations
type DonorService struct {
	donorRepo repository.DonorRepository
}

// NewDonorService creates a new donor service
func NewDonorService(donorRepo repository.DonorRepository) *DonorService {
	return &DonorService{donorRepo: donorRepo}
}

// CreateDonorInput represents the create donor input
type CreateDonorInput struct {
	UserID     uuid.UUID
	Name       string
	NameNepali *string
	Email      *string
	Phone      *string
	Address    *string
	PANNumber  *string
	Notes      *string
}

// CreateDonor creates a new donor
func (s *DonorService) CreateDonor(ctx context.Context, input *CreateDonorInput) (*entity.Donor, error) {
	donor := &entity.Donor{
		UserID:     input.UserID,
		Name:       input.Name,
		NameNepali: input.NameNepali,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		PANNumber:  input.PANNumber,
		Notes:      input.Notes,
	}

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, err
	}

	return donor, nil
}

// GetDonor retrieves a donor by ID
func (s *DonorService) GetDonor(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, apperror.NewNotFoundError("Donor")
	}
	return donor, nil
}

// ListDonors lists donors with page-based pagination
func (s *DonorService) ListDonors(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Donor], error) {
	donors, total, err := s.donorRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(donors, pag), nil
}

// ListDonorsWithCursor lists donors using cursor-based pagination
func (s *DonorService) ListDonorsWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Donor], error) {
	donors, err := s.donorRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(donors, params.Limit,
		func(d entity.Donor) string { return d.ID.String() },
		func(d entity.Donor) time.Time { return d.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateDonorInput represents the update donor input
type UpdateDonorInput struct {
	ID         uuid.UUID
	Name       *string
	NameNepali *string
	Email      *string
	Phone      *string
	Address    *string
	PANNumber  *string
	Notes      *string
}

// UpdateDonor updates a donor
func (s *DonorService) UpdateDonor(ctx context.Context, input *UpdateDonorInput) (*entity.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, apperror.NewNotFoundError("Donor")
	}

	if input.Name != nil {
		donor.Name = *input.Name
	}
	if input.NameNepali != nil {
		donor.NameNepali = input.NameNepali
	}
	if input.Email != nil {
		donor.Email = input.Email
	}
	if input.Phone != nil {
		donor.Phone = input.Phone
	}
	if input.Address != nil {
		donor.Address = input.Address
	}
	if input.PANNumber != nil {
		donor.PANNumber = input.PANNumber
	}
	if input.Notes != nil {
		donor.Notes = input.Notes
	}

	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, err
	}

	return donor, nil
}

// DeleteDonor deletes a donor
func (s *DonorService) DeleteDonor(ctx context.Context, id uuid.UUID) error {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if donor == nil {
		return apperror.NewNotFoundError("Donor")
	}

	return s.donorRepo.Delete(ctx, id)
}

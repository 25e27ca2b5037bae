package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/internal/domain/enum"
	"github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/apperror"
	"github.com/ashramseva/donation-api/pkg/pagination"
	"github.com/ashramseva/donation-api/pkg/utils"
)

// receiptNumberAttempts bounds retries when a generated number collides.
const receiptNumberAttempts = 5

// DonationService handles donation-related operations
type DonationService struct {
	donationRepo repository.DonationRepository
	donorRepo    repository.DonorRepository
}

// NewDonationService creates a new donation service
func NewDonationService(donationRepo repository.DonationRepository, donorRepo repository.DonorRepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		donorRepo:    donorRepo,
	}
}

// CreateDonationInput represents the create donation input
type CreateDonationInput struct {
	UserID         uuid.UUID
	DonorID        *uuid.UUID
	DonorName      string
	Amount         int64
	DonationType   string
	PaymentMode    string
	DateOfDonation *time.Time
	StartDate      *time.Time
	EndDate        *time.Time
	StartDateBS    *string
	EndDateBS      *string
	Notes          *string
	CreatedBy      string
}

// CreateDonation validates and stores a new donation, minting a unique
// receipt number for it.
func (s *DonationService) CreateDonation(ctx context.Context, input *CreateDonationInput) (*entity.Donation, error) {
	if input.DonorName == "" {
		return nil, apperror.NewBadRequestError("Donor name is required")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	donationType := enum.DonationType(input.DonationType)
	if input.DonationType == "" {
		donationType = enum.DonationGeneral
	}

	paymentMode := enum.PaymentMode(input.PaymentMode)
	if input.PaymentMode == "" {
		paymentMode = enum.DefaultPaymentMode
	}
	if !paymentMode.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment mode: " + input.PaymentMode)
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = "System"
	}

	// Resolve the donor when linked, and fall back to their registered
	// name when no name override was given.
	if input.DonorID != nil {
		donor, err := s.donorRepo.GetByID(ctx, *input.DonorID)
		if err != nil {
			return nil, err
		}
		if donor == nil {
			return nil, apperror.NewNotFoundError("Donor")
		}
	}

	receiptNumber, err := s.mintReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		ReceiptNumber:  receiptNumber,
		DonorID:        input.DonorID,
		UserID:         input.UserID,
		DonorName:      input.DonorName,
		Amount:         input.Amount,
		DonationType:   donationType,
		PaymentMode:    paymentMode,
		DateOfDonation: input.DateOfDonation,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		StartDateBS:    input.StartDateBS,
		EndDateBS:      input.EndDateBS,
		Notes:          input.Notes,
		CreatedBy:      createdBy,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// mintReceiptNumber generates a receipt number not yet used by any donation.
func (s *DonationService) mintReceiptNumber(ctx context.Context) (string, error) {
	for i := 0; i < receiptNumberAttempts; i++ {
		candidate := utils.GenerateReceiptNumber()
		exists, err := s.donationRepo.ReceiptNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", apperror.NewInternalError("Could not allocate a unique receipt number")
}

// GetDonation retrieves a donation by ID
func (s *DonationService) GetDonation(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperror.NewNotFoundError("Donation")
	}
	return donation, nil
}

// GetDonationByReceiptNumber retrieves a donation by its receipt number
func (s *DonationService) GetDonationByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.Donation, error) {
	donation, err := s.donationRepo.GetByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperror.NewNotFoundError("Donation")
	}
	return donation, nil
}

// ListDonations lists donations with page-based pagination
func (s *DonationService) ListDonations(ctx context.Context, params *pagination.PaginationParams, filter repository.DonationFilter) (*pagination.PaginatedResult[entity.Donation], error) {
	donations, total, err := s.donationRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(donations, pag), nil
}

// UpdateDonationInput represents the update donation input
type UpdateDonationInput struct {
	ID             uuid.UUID
	DonorName      *string
	Amount         *int64
	DonationType   *string
	PaymentMode    *string
	DateOfDonation *time.Time
	StartDate      *time.Time
	EndDate        *time.Time
	StartDateBS    *string
	EndDateBS      *string
	Notes          *string
}

// UpdateDonation updates a donation. The receipt number never changes.
func (s *DonationService) UpdateDonation(ctx context.Context, input *UpdateDonationInput) (*entity.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperror.NewNotFoundError("Donation")
	}

	if input.DonorName != nil {
		if *input.DonorName == "" {
			return nil, apperror.NewBadRequestError("Donor name is required")
		}
		donation.DonorName = *input.DonorName
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperror.NewBadRequestError("Amount cannot be negative")
		}
		donation.Amount = *input.Amount
	}
	if input.DonationType != nil {
		donation.DonationType = enum.DonationType(*input.DonationType)
	}
	if input.PaymentMode != nil {
		mode := enum.PaymentMode(*input.PaymentMode)
		if !mode.Valid() {
			return nil, apperror.NewBadRequestError("Unknown payment mode: " + *input.PaymentMode)
		}
		donation.PaymentMode = mode
	}
	if input.DateOfDonation != nil {
		donation.DateOfDonation = input.DateOfDonation
	}
	if input.StartDate != nil {
		donation.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		donation.EndDate = input.EndDate
	}
	if input.StartDateBS != nil {
		donation.StartDateBS = input.StartDateBS
	}
	if input.EndDateBS != nil {
		donation.EndDateBS = input.EndDateBS
	}
	if input.Notes != nil {
		donation.Notes = input.Notes
	}

	if err := s.donationRepo.Update(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// DeleteDonation deletes a donation
func (s *DonationService) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if donation == nil {
		return apperror.NewNotFoundError("Donation")
	}

	return s.donationRepo.Delete(ctx, id)
}

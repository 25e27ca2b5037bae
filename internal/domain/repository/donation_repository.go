package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/internal/domain/enum"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

// DonationFilter narrows donation listings and exports.
type DonationFilter struct {
	DonorID      *uuid.UUID
	DonationType *enum.DonationType
	PaymentMode  *enum.PaymentMode
	From         *time.Time
	To           *time.Time
	Search       string
}

// DonationRepository defines the interface for donation data operations
type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)
	GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.Donation, error)
	Update(ctx context.Context, donation *entity.Donation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns donations with page-based pagination, newest first.
	List(ctx context.Context, params *pagination.PaginationParams, filter DonationFilter) ([]entity.Donation, int64, error)
	// ListAll returns every donation matching the filter, for exports.
	ListAll(ctx context.Context, filter DonationFilter) ([]entity.Donation, error)
	// MarkEmailed records when the receipt was last emailed to the donor.
	MarkEmailed(ctx context.Context, id uuid.UUID, at time.Time) error
	// ReceiptNumberExists reports whether a receipt number is already taken.
	ReceiptNumberExists(ctx context.Context, receiptNumber string) (bool, error)
}

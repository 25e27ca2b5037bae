package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

// DonorRepository defines the interface for donor data operations
type DonorRepository interface {
	Create(ctx context.Context, donor *entity.Donor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Donor, error)
	Update(ctx context.Context, donor *entity.Donor) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns donors with page-based pagination, matched against
	// name, email and phone when search is non-empty.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Donor, int64, error)
	// ListWithCursor returns donors using cursor-based pagination.
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Donor, error)
}

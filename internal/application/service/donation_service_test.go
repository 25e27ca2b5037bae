package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/internal/domain/enum"
	"github.com/ashramseva/donation-api/pkg/apperror"
	"github.com/ashramseva/donation-api/pkg/pagination"
	"github.com/ashramseva/donation-api/pkg/utils"
)

type fakeDonorStore struct {
	donors map[uuid.UUID]*entity.Donor
}

func newFakeDonorStore() *fakeDonorStore {
	return &fakeDonorStore{donors: make(map[uuid.UUID]*entity.Donor)}
}

func (f *fakeDonorStore) Create(ctx context.Context, d *entity.Donor) error {
	f.donors[d.ID] = d
	return nil
}

func (f *fakeDonorStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	return f.donors[id], nil
}

func (f *fakeDonorStore) GetByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	for _, d := range f.donors {
		if d.Email != nil && *d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDonorStore) Update(ctx context.Context, d *entity.Donor) error {
	f.donors[d.ID] = d
	return nil
}

func (f *fakeDonorStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.donors, id)
	return nil
}

func (f *fakeDonorStore) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Donor, int64, error) {
	out := make([]entity.Donor, 0, len(f.donors))
	for _, d := range f.donors {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDonorStore) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Donor, error) {
	out := make([]entity.Donor, 0, len(f.donors))
	for _, d := range f.donors {
		out = append(out, *d)
	}
	return out, nil
}

func newTestDonationService() (*DonationService, *fakeDonationStore, *fakeDonorStore) {
	donations := newFakeDonationStore()
	donors := newFakeDonorStore()
	return NewDonationService(donations, donors), donations, donors
}

func TestCreateDonationDefaults(t *testing.T) {
	svc, _, _ := newTestDonationService()

	donation, err := svc.CreateDonation(context.Background(), &CreateDonationInput{
		UserID:    uuid.New(),
		DonorName: "Ram Bahadur",
		Amount:    1000,
	})
	if err != nil {
		t.Fatalf("CreateDonation() error = %v", err)
	}

	if donation.DonationType != enum.DonationGeneral {
		t.Errorf("DonationType = %q, want default general", donation.DonationType)
	}
	if donation.PaymentMode != enum.PaymentOffline {
		t.Errorf("PaymentMode = %q, want default offline", donation.PaymentMode)
	}
	if donation.CreatedBy != "System" {
		t.Errorf("CreatedBy = %q, want System", donation.CreatedBy)
	}
	if !utils.IsReceiptNumber(donation.ReceiptNumber) {
		t.Errorf("ReceiptNumber = %q, want generated number", donation.ReceiptNumber)
	}
}

func TestCreateDonationValidation(t *testing.T) {
	svc, _, _ := newTestDonationService()

	tests := []struct {
		name  string
		input CreateDonationInput
	}{
		{"missing donor name", CreateDonationInput{Amount: 100}},
		{"negative amount", CreateDonationInput{DonorName: "Ram", Amount: -5}},
		{"unknown payment mode", CreateDonationInput{DonorName: "Ram", Amount: 100, PaymentMode: "Barter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDonation(context.Background(), &tt.input)
			if err == nil {
				t.Fatal("CreateDonation() expected error")
			}
			if appErr := apperror.GetAppError(err); appErr.Code != 400 {
				t.Errorf("status = %d, want 400", appErr.Code)
			}
		})
	}
}

func TestCreateDonationZeroAmount(t *testing.T) {
	svc, _, _ := newTestDonationService()

	if _, err := svc.CreateDonation(context.Background(), &CreateDonationInput{
		DonorName: "Ram Bahadur",
		Amount:    0,
	}); err != nil {
		t.Fatalf("CreateDonation() error = %v, zero amount is valid", err)
	}
}

func TestCreateDonationUnknownDonor(t *testing.T) {
	svc, _, _ := newTestDonationService()

	missing := uuid.New()
	_, err := svc.CreateDonation(context.Background(), &CreateDonationInput{
		DonorID:   &missing,
		DonorName: "Ram Bahadur",
		Amount:    100,
	})
	if err == nil {
		t.Fatal("CreateDonation() expected error for unknown donor")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("status = %d, want 404", appErr.Code)
	}
}

func TestCreateDonationLinkedDonor(t *testing.T) {
	svc, _, donors := newTestDonationService()

	donor := &entity.Donor{ID: uuid.New(), Name: "Sita Sharma"}
	_ = donors.Create(context.Background(), donor)

	donation, err := svc.CreateDonation(context.Background(), &CreateDonationInput{
		DonorID:   &donor.ID,
		DonorName: donor.Name,
		Amount:    500,
	})
	if err != nil {
		t.Fatalf("CreateDonation() error = %v", err)
	}
	if donation.DonorID == nil || *donation.DonorID != donor.ID {
		t.Errorf("DonorID = %v, want linked donor", donation.DonorID)
	}
}

func TestCreateDonationMintsUniqueReceiptNumbers(t *testing.T) {
	svc, _, _ := newTestDonationService()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		donation, err := svc.CreateDonation(context.Background(), &CreateDonationInput{
			DonorName: "Ram Bahadur",
			Amount:    100,
		})
		if err != nil {
			t.Fatalf("CreateDonation() error = %v", err)
		}
		if seen[donation.ReceiptNumber] {
			t.Fatalf("duplicate receipt number minted: %s", donation.ReceiptNumber)
		}
		seen[donation.ReceiptNumber] = true
	}
}

func TestUpdateDonationKeepsReceiptNumber(t *testing.T) {
	svc, donations, _ := newTestDonationService()

	d := &entity.Donation{
		ID:            uuid.New(),
		ReceiptNumber: "ASH111111",
		DonorName:     "Ram Bahadur",
		Amount:        100,
		DonationType:  enum.DonationGeneral,
		PaymentMode:   enum.PaymentOffline,
	}
	_ = donations.Create(context.Background(), d)

	newName := "Shyam Bahadur"
	newAmount := int64(2000)
	updated, err := svc.UpdateDonation(context.Background(), &UpdateDonationInput{
		ID:        d.ID,
		DonorName: &newName,
		Amount:    &newAmount,
	})
	if err != nil {
		t.Fatalf("UpdateDonation() error = %v", err)
	}
	if updated.ReceiptNumber != "ASH111111" {
		t.Errorf("ReceiptNumber = %q, must never change", updated.ReceiptNumber)
	}
	if updated.DonorName != newName || updated.Amount != newAmount {
		t.Errorf("updated fields = %q/%d", updated.DonorName, updated.Amount)
	}
}

func TestUpdateDonationInvalidPaymentMode(t *testing.T) {
	svc, donations, _ := newTestDonationService()

	d := &entity.Donation{
		ID:            uuid.New(),
		ReceiptNumber: "ASH222222",
		DonorName:     "Ram Bahadur",
		Amount:        100,
		DonationType:  enum.DonationGeneral,
		PaymentMode:   enum.PaymentOffline,
	}
	_ = donations.Create(context.Background(), d)

	bad := "Barter"
	if _, err := svc.UpdateDonation(context.Background(), &UpdateDonationInput{ID: d.ID, PaymentMode: &bad}); err == nil {
		t.Fatal("UpdateDonation() expected error for unknown payment mode")
	}
}

func TestDeleteDonationNotFound(t *testing.T) {
	svc, _, _ := newTestDonationService()

	err := svc.DeleteDonation(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("DeleteDonation() expected not found error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("status = %d, want 404", appErr.Code)
	}
}

func TestGetDonationByReceiptNumber(t *testing.T) {
	svc, donations, _ := newTestDonationService()

	d := &entity.Donation{
		ID:            uuid.New(),
		ReceiptNumber: "ASH333333",
		DonorName:     "Ram Bahadur",
		Amount:        100,
	}
	_ = donations.Create(context.Background(), d)

	got, err := svc.GetDonationByReceiptNumber(context.Background(), "ASH333333")
	if err != nil {
		t.Fatalf("GetDonationByReceiptNumber() error = %v", err)
	}
	if got.ID != d.ID {
		t.Errorf("got donation %v, want %v", got.ID, d.ID)
	}

	if _, err := svc.GetDonationByReceiptNumber(context.Background(), "ASH999999"); err == nil {
		t.Fatal("GetDonationByReceiptNumber() expected not found error")
	}
}

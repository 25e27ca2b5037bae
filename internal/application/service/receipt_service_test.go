package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/internal/domain/enum"
	"github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/apperror"
	"github.com/ashramseva/donation-api/pkg/pagination"
	"github.com/ashramseva/donation-api/pkg/receiptdoc"
	"github.com/ashramseva/donation-api/pkg/renderer"
)

// stubRenderer records its invocations and returns a canned result.
type stubRenderer struct {
	name  string
	buf   []byte
	err   error
	calls *[]string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "application/pdf" }

func (s *stubRenderer) Render(ctx context.Context, doc *receiptdoc.Document) ([]byte, error) {
	if s.calls != nil {
		*s.calls = append(*s.calls, s.name)
	}
	return s.buf, s.err
}

type fakeDonationStore struct {
	donations map[uuid.UUID]*entity.Donation
	emailedAt map[uuid.UUID]time.Time
}

func newFakeDonationStore() *fakeDonationStore {
	return &fakeDonationStore{
		donations: make(map[uuid.UUID]*entity.Donation),
		emailedAt: make(map[uuid.UUID]time.Time),
	}
}

func (f *fakeDonationStore) Create(ctx context.Context, d *entity.Donation) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.donations[d.ID] = d
	return nil
}

func (f *fakeDonationStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	return f.donations[id], nil
}

func (f *fakeDonationStore) GetByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.Donation, error) {
	for _, d := range f.donations {
		if d.ReceiptNumber == receiptNumber {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDonationStore) Update(ctx context.Context, d *entity.Donation) error {
	f.donations[d.ID] = d
	return nil
}

func (f *fakeDonationStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.donations, id)
	return nil
}

func (f *fakeDonationStore) List(ctx context.Context, params *pagination.PaginationParams, filter repository.DonationFilter) ([]entity.Donation, int64, error) {
	out := make([]entity.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDonationStore) ListAll(ctx context.Context, filter repository.DonationFilter) ([]entity.Donation, error) {
	out := make([]entity.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDonationStore) MarkEmailed(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.emailedAt[id] = at
	return nil
}

func (f *fakeDonationStore) ReceiptNumberExists(ctx context.Context, receiptNumber string) (bool, error) {
	d, _ := f.GetByReceiptNumber(ctx, receiptNumber)
	return d != nil, nil
}

func testOrg() receiptdoc.OrgProfile {
	return receiptdoc.OrgProfile{
		NameEN: "Shree Ashram Seva Samiti",
		NameNE: "श्री आश्रम सेवा समिति",
	}
}

func testRecord() receiptdoc.Record {
	return receiptdoc.Record{
		ReceiptNumber: "ASH123456",
		DonorName:     "Test Donor",
		Amount:        5000,
		CreatedAt:     time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newTestReceiptService(store *fakeDonationStore, renderers ...renderer.Renderer) *ReceiptService {
	return NewReceiptService(renderers, nil, testOrg(), false, store, nil)
}

func TestGenerateUsesFirstBackend(t *testing.T) {
	var calls []string
	svc := newTestReceiptService(nil,
		&stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF-pdf"), calls: &calls},
		&stubRenderer{name: renderer.NameBrowser, buf: []byte("%PDF-browser"), calls: &calls},
	)

	buf, contentType, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(buf) != "%PDF-pdf" {
		t.Errorf("Generate() buf = %q, want first backend output", buf)
	}
	if contentType != "application/pdf" {
		t.Errorf("Generate() contentType = %q", contentType)
	}
	if len(calls) != 1 || calls[0] != renderer.NamePDF {
		t.Errorf("backend calls = %v, want only %q", calls, renderer.NamePDF)
	}
}

func TestGenerateFallsBackOnFailure(t *testing.T) {
	var calls []string
	svc := newTestReceiptService(nil,
		&stubRenderer{name: renderer.NamePDF, err: errors.New("font missing"), calls: &calls},
		&stubRenderer{name: renderer.NameBrowser, buf: []byte("%PDF-browser"), calls: &calls},
	)

	buf, _, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(buf) != "%PDF-browser" {
		t.Errorf("Generate() buf = %q, want fallback output", buf)
	}
	if len(calls) != 2 {
		t.Errorf("backend calls = %v, want both backends attempted", calls)
	}
}

func TestGenerateEmptyBufferIsFailure(t *testing.T) {
	svc := newTestReceiptService(nil,
		&stubRenderer{name: renderer.NamePDF, buf: nil},
		&stubRenderer{name: renderer.NameBrowser, buf: []byte("%PDF-browser")},
	)

	buf, _, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(buf) != "%PDF-browser" {
		t.Errorf("Generate() buf = %q, empty first backend must not count as success", buf)
	}
}

func TestGenerateAllBackendsFail(t *testing.T) {
	svc := newTestReceiptService(nil,
		&stubRenderer{name: renderer.NamePDF, err: errors.New("font missing")},
		&stubRenderer{name: renderer.NameBrowser, err: errors.New("chrome not found")},
	)

	_, _, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{})
	if err == nil {
		t.Fatal("Generate() expected error when all backends fail")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error type = %T, want *GenerationError", err)
	}
	if len(genErr.Attempted) != 2 {
		t.Errorf("Attempted = %v, want both backends listed", genErr.Attempted)
	}
	msg := err.Error()
	if !strings.Contains(msg, "pdf: font missing") || !strings.Contains(msg, "browser: chrome not found") {
		t.Errorf("error message %q missing per-backend causes", msg)
	}
}

func TestGenerateBackendHint(t *testing.T) {
	var calls []string
	svc := newTestReceiptService(nil,
		&stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF-pdf"), calls: &calls},
		&stubRenderer{name: renderer.NameBrowser, buf: []byte("%PDF-browser"), calls: &calls},
	)

	buf, _, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{BackendHint: renderer.NameBrowser})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(buf) != "%PDF-browser" {
		t.Errorf("Generate() buf = %q, want hinted backend output", buf)
	}
}

func TestGenerateHintedBackendStillFallsBack(t *testing.T) {
	var calls []string
	svc := newTestReceiptService(nil,
		&stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF-pdf"), calls: &calls},
		&stubRenderer{name: renderer.NameBrowser, err: errors.New("chrome not found"), calls: &calls},
	)

	buf, _, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{BackendHint: renderer.NameBrowser})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(buf) != "%PDF-pdf" {
		t.Errorf("Generate() buf = %q, hint must not remove fallbacks", buf)
	}
	if len(calls) != 2 || calls[0] != renderer.NameBrowser {
		t.Errorf("backend calls = %v, want browser first then pdf", calls)
	}
}

func TestGenerateNoBackendsConfigured(t *testing.T) {
	svc := newTestReceiptService(nil)

	_, _, err := svc.Generate(context.Background(), testRecord(), GenerateOptions{})
	if err == nil {
		t.Fatal("Generate() expected error with no backends")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 500 {
		t.Errorf("status = %d, want 500", appErr.Code)
	}
}

func TestGenerateValidation(t *testing.T) {
	svc := newTestReceiptService(nil, &stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF")})

	tests := []struct {
		name   string
		mutate func(*receiptdoc.Record)
	}{
		{"missing receipt number", func(r *receiptdoc.Record) { r.ReceiptNumber = "" }},
		{"missing donor name", func(r *receiptdoc.Record) { r.DonorName = "" }},
		{"negative amount", func(r *receiptdoc.Record) { r.Amount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testRecord()
			tt.mutate(&rec)

			_, _, err := svc.Generate(context.Background(), rec, GenerateOptions{})
			if err == nil {
				t.Fatal("Generate() expected validation error")
			}
			if appErr := apperror.GetAppError(err); appErr.Code != 400 {
				t.Errorf("status = %d, want 400", appErr.Code)
			}
		})
	}
}

func TestGenerateZeroAmountSucceeds(t *testing.T) {
	svc := newTestReceiptService(nil, &stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF")})

	rec := testRecord()
	rec.Amount = 0
	if _, _, err := svc.Generate(context.Background(), rec, GenerateOptions{}); err != nil {
		t.Fatalf("Generate() error = %v, zero amount is valid", err)
	}
}

func TestNormalizeRecordDefaults(t *testing.T) {
	rec := receiptdoc.Record{ReceiptNumber: "ASH000001", DonorName: "Donor"}
	normalizeRecord(&rec)

	if rec.CreatedBy != "System" {
		t.Errorf("CreatedBy = %q, want System", rec.CreatedBy)
	}
	if rec.PaymentMode != string(enum.PaymentOffline) {
		t.Errorf("PaymentMode = %q, want %q", rec.PaymentMode, enum.PaymentOffline)
	}
	if rec.DonationType != string(enum.DonationGeneral) {
		t.Errorf("DonationType = %q, want %q", rec.DonationType, enum.DonationGeneral)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not defaulted")
	}
	if rec.PeriodBased {
		t.Error("general donation must not be period based")
	}

	seva := receiptdoc.Record{DonationType: string(enum.DonationSeva)}
	normalizeRecord(&seva)
	if !seva.PeriodBased {
		t.Error("seva donation must be period based")
	}
}

func TestBuildDisplayStrings(t *testing.T) {
	rec := testRecord()
	normalizeRecord(&rec)

	disp := BuildDisplayStrings(rec)
	if disp.DonationTypeLabel != "साधारण दान" {
		t.Errorf("DonationTypeLabel = %q", disp.DonationTypeLabel)
	}
	if disp.AmountFigures != "Rs. 5,000" {
		t.Errorf("AmountFigures = %q", disp.AmountFigures)
	}
	if disp.AmountWordsEN != "Rupees 5,000 Only" {
		t.Errorf("AmountWordsEN = %q", disp.AmountWordsEN)
	}
	if disp.AmountWordsNE == "" {
		t.Error("AmountWordsNE is empty")
	}
	if disp.DonationDateText == "" || disp.IssuedOnText == "" || disp.GeneratedAtText == "" {
		t.Error("date display strings must never be empty")
	}
}

func TestBuildDisplayStringsZeroAmount(t *testing.T) {
	rec := testRecord()
	rec.Amount = 0
	normalizeRecord(&rec)

	disp := BuildDisplayStrings(rec)
	if disp.AmountWordsEN != "Rupees Zero Only" {
		t.Errorf("AmountWordsEN = %q", disp.AmountWordsEN)
	}
	if disp.AmountWordsNE != "शून्य" {
		t.Errorf("AmountWordsNE = %q", disp.AmountWordsNE)
	}
}

func TestDonationDateText(t *testing.T) {
	start := time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rec  receiptdoc.Record
		want string
	}{
		{
			name: "period with stored nepali dates",
			rec: receiptdoc.Record{
				DonationType:    string(enum.DonationSeva),
				StartDateNepali: "२०८१/०१/०१",
				EndDateNepali:   "२०८२/०१/०१",
			},
			want: "२०८१/०१/०१ देखि २०८२/०१/०१ सम्म",
		},
		{
			name: "period with only start stored",
			rec: receiptdoc.Record{
				DonationType:    string(enum.DonationSeva),
				StartDateNepali: "२०८१/०१/०१",
			},
			want: "२०८१/०१/०१ देखि N/A सम्म",
		},
		{
			name: "period with no dates at all",
			rec:  receiptdoc.Record{DonationType: string(enum.DonationSeva)},
			want: "N/A",
		},
		{
			name: "non-period without donation date",
			rec: receiptdoc.Record{
				DonationType: string(enum.DonationGeneral),
				CreatedAt:    time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			},
			want: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizeRecord(&tt.rec)
			if got := donationDateText(tt.rec); got != tt.want {
				t.Errorf("donationDateText() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("stored nepali dates win over derived ones", func(t *testing.T) {
		rec := receiptdoc.Record{
			DonationType:    string(enum.DonationSeva),
			StartDate:       &start,
			EndDate:         &end,
			StartDateNepali: "२०८१/०१/०१",
			EndDateNepali:   "२०८२/०१/०१",
		}
		normalizeRecord(&rec)
		if got := donationDateText(rec); got != "२०८१/०१/०१ देखि २०८२/०१/०१ सम्म" {
			t.Errorf("donationDateText() = %q, stored strings must win", got)
		}
	})

	t.Run("period derives from gregorian dates when strings absent", func(t *testing.T) {
		rec := receiptdoc.Record{
			DonationType: string(enum.DonationSeva),
			StartDate:    &start,
			EndDate:      &end,
		}
		normalizeRecord(&rec)
		got := donationDateText(rec)
		if !strings.Contains(got, "देखि") || !strings.Contains(got, "सम्म") || strings.Contains(got, "N/A") {
			t.Errorf("donationDateText() = %q, want derived range", got)
		}
	})

	t.Run("single date donation uses donation date", func(t *testing.T) {
		donated := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
		rec := testRecord()
		rec.DateOfDonation = &donated
		normalizeRecord(&rec)
		if got := donationDateText(rec); got == "" || strings.Contains(got, "देखि") {
			t.Errorf("donationDateText() = %q, want single date", got)
		}
	})
}

func TestRecordFromDonation(t *testing.T) {
	donorID := uuid.New()
	startBS := "२०८१/०१/०१"
	notes := "In memory of late grandfather"
	donated := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	d := &entity.Donation{
		ID:             uuid.New(),
		ReceiptNumber:  "ASH654321",
		DonorID:        &donorID,
		DonorName:      "Hari Prasad",
		Amount:         15000,
		DonationType:   enum.DonationSeva,
		PaymentMode:    enum.PaymentOnline,
		DateOfDonation: &donated,
		StartDateBS:    &startBS,
		Notes:          &notes,
		CreatedBy:      "admin@ashramseva.org",
	}

	rec := RecordFromDonation(d)
	if rec.ReceiptNumber != "ASH654321" || rec.DonorName != "Hari Prasad" || rec.Amount != 15000 {
		t.Errorf("RecordFromDonation() core fields = %+v", rec)
	}
	if rec.DonorID != donorID.String() {
		t.Errorf("DonorID = %q", rec.DonorID)
	}
	if rec.StartDateNepali != startBS {
		t.Errorf("StartDateNepali = %q", rec.StartDateNepali)
	}
	if rec.Notes != notes {
		t.Errorf("Notes = %q", rec.Notes)
	}
	if rec.PaymentMode != string(enum.PaymentOnline) {
		t.Errorf("PaymentMode = %q", rec.PaymentMode)
	}
}

func TestGenerateForDonationNotFound(t *testing.T) {
	store := newFakeDonationStore()
	svc := newTestReceiptService(store, &stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF")})

	_, _, _, err := svc.GenerateForDonation(context.Background(), uuid.New(), GenerateOptions{})
	if err == nil {
		t.Fatal("GenerateForDonation() expected not found error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("status = %d, want 404", appErr.Code)
	}
}

func TestGenerateForDonation(t *testing.T) {
	store := newFakeDonationStore()
	d := &entity.Donation{
		ID:            uuid.New(),
		ReceiptNumber: "ASH777777",
		DonorName:     "Sita Sharma",
		Amount:        2500,
		DonationType:  enum.DonationGeneral,
		PaymentMode:   enum.PaymentOffline,
		CreatedAt:     time.Now(),
	}
	_ = store.Create(context.Background(), d)

	svc := newTestReceiptService(store, &stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF")})

	buf, contentType, got, err := svc.GenerateForDonation(context.Background(), d.ID, GenerateOptions{})
	if err != nil {
		t.Fatalf("GenerateForDonation() error = %v", err)
	}
	if len(buf) == 0 || contentType != "application/pdf" {
		t.Errorf("GenerateForDonation() buf len=%d contentType=%q", len(buf), contentType)
	}
	if got.ReceiptNumber != d.ReceiptNumber {
		t.Errorf("returned donation = %+v", got)
	}
}

func TestEmailReceiptRequiresDonorEmail(t *testing.T) {
	store := newFakeDonationStore()
	d := &entity.Donation{
		ID:            uuid.New(),
		ReceiptNumber: "ASH888888",
		DonorName:     "Anonymous",
		Amount:        100,
		DonationType:  enum.DonationGeneral,
		PaymentMode:   enum.PaymentOffline,
		CreatedAt:     time.Now(),
	}
	_ = store.Create(context.Background(), d)

	svc := newTestReceiptService(store, &stubRenderer{name: renderer.NamePDF, buf: []byte("%PDF")})

	err := svc.EmailReceipt(context.Background(), d.ID, GenerateOptions{})
	if err == nil {
		t.Fatal("EmailReceipt() expected error for donor without email")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 400 {
		t.Errorf("status = %d, want 400", appErr.Code)
	}
	if _, emailed := store.emailedAt[d.ID]; emailed {
		t.Error("EmailReceipt() must not mark emailed on failure")
	}
}

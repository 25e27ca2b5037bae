package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/domain/entity"
	"github.com/ashramseva/donation-api/internal/domain/enum"
	"github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/apperror"
	"github.com/ashramseva/donation-api/pkg/email"
	"github.com/ashramseva/donation-api/pkg/nepali"
	"github.com/ashramseva/donation-api/pkg/receiptdoc"
	"github.com/ashramseva/donation-api/pkg/renderer"
)

// GenerationError reports that every render backend failed for a request.
type GenerationError struct {
	Attempted []string
	Errs      []error
}

func (e *GenerationError) Error() string {
	parts := make([]string, 0, len(e.Errs))
	for i, err := range e.Errs {
		parts = append(parts, fmt.Sprintf("%s: %v", e.Attempted[i], err))
	}
	return "receipt generation failed on all backends: " + strings.Join(parts, "; ")
}

// ReceiptService orchestrates the receipt pipeline: it normalizes the
// record, precomputes every display string, composes the document and
// walks the configured backends in order until one produces a PDF.
type ReceiptService struct {
	renderers    []renderer.Renderer
	resources    receiptdoc.Provider
	org          receiptdoc.OrgProfile
	includeLogos bool

	donationRepo repository.DonationRepository
	emailService *email.EmailService
}

// NewReceiptService creates a new receipt service. Renderers are attempted
// in the order given.
func NewReceiptService(
	renderers []renderer.Renderer,
	resources receiptdoc.Provider,
	org receiptdoc.OrgProfile,
	includeLogos bool,
	donationRepo repository.DonationRepository,
	emailService *email.EmailService,
) *ReceiptService {
	return &ReceiptService{
		renderers:    renderers,
		resources:    resources,
		org:          org,
		includeLogos: includeLogos,
		donationRepo: donationRepo,
		emailService: emailService,
	}
}

// GenerateOptions tweaks a single generation request.
type GenerateOptions struct {
	// BackendHint names the backend to try first ("pdf" or "browser").
	// The remaining backends still serve as fallbacks.
	BackendHint string
	// IncludeLogos overrides the service default when non-nil.
	IncludeLogos *bool
}

// Generate runs the full pipeline for a normalized record and returns the
// PDF bytes and their content type.
func (s *ReceiptService) Generate(ctx context.Context, rec receiptdoc.Record, opts GenerateOptions) ([]byte, string, error) {
	normalizeRecord(&rec)

	if rec.ReceiptNumber == "" {
		return nil, "", apperror.NewBadRequestError("Receipt number is required")
	}
	if rec.DonorName == "" {
		return nil, "", apperror.NewBadRequestError("Donor name is required")
	}
	if rec.Amount < 0 {
		return nil, "", apperror.NewBadRequestError("Amount cannot be negative")
	}

	disp := BuildDisplayStrings(rec)

	includeLogos := s.includeLogos
	if opts.IncludeLogos != nil {
		includeLogos = *opts.IncludeLogos
	}

	doc := receiptdoc.Compose(rec, disp, s.org, s.resources, receiptdoc.Options{
		IncludeLogos: includeLogos,
	})

	genErr := &GenerationError{}
	for _, r := range s.orderedRenderers(opts.BackendHint) {
		buf, err := r.Render(ctx, doc)
		if err == nil && len(buf) == 0 {
			err = fmt.Errorf("backend returned an empty document")
		}
		if err != nil {
			log.Printf("Render backend %s failed for %s: %v", r.Name(), rec.ReceiptNumber, err)
			genErr.Attempted = append(genErr.Attempted, r.Name())
			genErr.Errs = append(genErr.Errs, err)
			continue
		}
		return buf, r.ContentType(), nil
	}

	if len(genErr.Attempted) == 0 {
		return nil, "", apperror.NewInternalError("No render backends configured")
	}
	return nil, "", genErr
}

// GenerateForDonation loads a stored donation and renders its receipt.
func (s *ReceiptService) GenerateForDonation(ctx context.Context, donationID uuid.UUID, opts GenerateOptions) ([]byte, string, *entity.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, "", nil, err
	}
	if donation == nil {
		return nil, "", nil, apperror.NewNotFoundError("Donation")
	}

	buf, contentType, err := s.Generate(ctx, RecordFromDonation(donation), opts)
	if err != nil {
		return nil, "", nil, err
	}
	return buf, contentType, donation, nil
}

// EmailReceipt renders a stored donation's receipt and mails it to the
// donor as a PDF attachment.
func (s *ReceiptService) EmailReceipt(ctx context.Context, donationID uuid.UUID, opts GenerateOptions) error {
	buf, _, donation, err := s.GenerateForDonation(ctx, donationID, opts)
	if err != nil {
		return err
	}

	toEmail := ""
	if donation.Donor != nil && donation.Donor.Email != nil {
		toEmail = *donation.Donor.Email
	}
	if toEmail == "" {
		return apperror.NewBadRequestError("Donor has no email address on file")
	}

	if err := s.emailService.SendReceiptEmail(toEmail, donation.DonorName, donation.ReceiptNumber, buf); err != nil {
		return apperror.NewInternalError("Failed to send receipt email: " + err.Error())
	}

	if err := s.donationRepo.MarkEmailed(ctx, donation.ID, time.Now()); err != nil {
		log.Printf("Failed to record email timestamp for donation %s: %v", donation.ID, err)
	}

	return nil
}

// orderedRenderers puts the hinted backend first, keeping the rest as
// fallbacks in their configured order.
func (s *ReceiptService) orderedRenderers(hint string) []renderer.Renderer {
	if hint == "" {
		return s.renderers
	}
	ordered := make([]renderer.Renderer, 0, len(s.renderers))
	for _, r := range s.renderers {
		if r.Name() == hint {
			ordered = append(ordered, r)
		}
	}
	for _, r := range s.renderers {
		if r.Name() != hint {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// normalizeRecord fills the defaults every receipt carries.
func normalizeRecord(rec *receiptdoc.Record) {
	if rec.CreatedBy == "" {
		rec.CreatedBy = "System"
	}
	if rec.PaymentMode == "" {
		rec.PaymentMode = string(enum.DefaultPaymentMode)
	}
	if rec.DonationType == "" {
		rec.DonationType = string(enum.DonationGeneral)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.PeriodBased = enum.DonationType(rec.DonationType).IsPeriodBased()
}

// BuildDisplayStrings precomputes every date-, numeral- and label-derived
// string for a record. The composer performs placement only.
func BuildDisplayStrings(rec receiptdoc.Record) receiptdoc.DisplayStrings {
	disp := receiptdoc.DisplayStrings{
		DonationTypeLabel: enum.DonationType(rec.DonationType).Label(),
		PaymentMode:       enum.PaymentMode(rec.PaymentMode).Display(),
		IssuedOnText:      nepali.ToNepaliFormatted(rec.CreatedAt),
		AmountFigures:     nepali.GroupedCurrency(rec.Amount, nepali.LocaleEnglish),
		AmountWordsEN:     nepali.ToWords(rec.Amount, nepali.LocaleEnglish),
		AmountWordsNE:     nepali.ToWords(rec.Amount, nepali.LocaleNepali),
		GeneratedAtText:   nepali.ToNepaliDateTime(rec.CreatedAt),
	}
	disp.DonationDateText = donationDateText(rec)
	return disp
}

// donationDateText resolves the date line. Period donations show a range
// and prefer the stored Nepali date strings verbatim over derived ones.
func donationDateText(rec receiptdoc.Record) string {
	if rec.PeriodBased {
		start := rec.StartDateNepali
		if start == "" && rec.StartDate != nil {
			start = nepali.ToNepaliFormatted(*rec.StartDate)
		}
		end := rec.EndDateNepali
		if end == "" && rec.EndDate != nil {
			end = nepali.ToNepaliFormatted(*rec.EndDate)
		}
		if start == "" && end == "" {
			return "N/A"
		}
		if start == "" {
			start = "N/A"
		}
		if end == "" {
			end = "N/A"
		}
		return start + " देखि " + end + " सम्म"
	}

	if rec.DateOfDonation != nil {
		return nepali.ToNepaliFormatted(*rec.DateOfDonation)
	}
	return "N/A"
}

// RecordFromDonation maps a stored donation to the renderer input.
func RecordFromDonation(d *entity.Donation) receiptdoc.Record {
	rec := receiptdoc.Record{
		ReceiptNumber:  d.ReceiptNumber,
		DonorName:      d.DonorName,
		Amount:         d.Amount,
		DonationType:   string(d.DonationType),
		PaymentMode:    string(d.PaymentMode),
		CreatedAt:      d.CreatedAt,
		DateOfDonation: d.DateOfDonation,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		CreatedBy:      d.CreatedBy,
	}
	if d.DonorID != nil {
		rec.DonorID = d.DonorID.String()
	}
	if d.StartDateBS != nil {
		rec.StartDateNepali = *d.StartDateBS
	}
	if d.EndDateBS != nil {
		rec.EndDateNepali = *d.EndDateBS
	}
	if d.Notes != nil {
		rec.Notes = *d.Notes
	}
	return rec
}

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/pkg/nepali"
)

// ExportService produces spreadsheet exports of donation data
type ExportService struct {
	donationRepo repository.DonationRepository
}

// NewExportService creates a new export service
func NewExportService(donationRepo repository.DonationRepository) *ExportService {
	return &ExportService{donationRepo: donationRepo}
}

// ExportDonationsXLSX writes all donations matching the filter into an
// XLSX workbook and returns its bytes.
func (s *ExportService) ExportDonationsXLSX(ctx context.Context, filter repository.DonationFilter) ([]byte, error) {
	donations, err := s.donationRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Donations"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Receipt No", "Donor", "Amount (Rs.)", "Amount in Words",
		"Donation Type", "Payment Mode", "Date (BS)", "Notes",
		"Recorded By", "Recorded At",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FBF7F0"}},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, d := range donations {
		row := i + 2
		notes := ""
		if d.Notes != nil {
			notes = *d.Notes
		}
		values := []interface{}{
			d.ReceiptNumber,
			d.DonorName,
			d.Amount,
			nepali.ToWords(d.Amount, nepali.LocaleEnglish),
			string(d.DonationType),
			string(d.PaymentMode),
			nepali.ToNepaliFormatted(d.CreatedAt),
			notes,
			d.CreatedBy,
			d.CreatedAt.Format("2006-01-02 15:04"),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Widen the text-heavy columns
	f.SetColWidth(sheet, "A", "B", 18)
	f.SetColWidth(sheet, "D", "D", 40)
	f.SetColWidth(sheet, "E", "G", 20)
	f.SetColWidth(sheet, "H", "H", 30)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

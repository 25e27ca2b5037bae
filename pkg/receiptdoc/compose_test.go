package receiptdoc

import (
	"testing"
	"time"
)

func sampleRecord() Record {
	issued := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	donated := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	return Record{
		ReceiptNumber:  "ASH123456",
		DonorName:      "Test Donor",
		Amount:         5000,
		DonationType:   "General Donation",
		PaymentMode:    "Online",
		CreatedAt:      issued,
		DateOfDonation: &donated,
		CreatedBy:      "System",
	}
}

func sampleStrings() DisplayStrings {
	return DisplayStrings{
		DonationTypeLabel: "साधारण दान",
		PaymentMode:       "🌐 Online",
		DonationDateText:  "Date of Donation: 15 भदौ 2081",
		IssuedOnText:      "15 भदौ 2081",
		AmountFigures:     "Rs. 5,000 (रु ५,०००)",
		AmountWordsEN:     "Rupees 5,000 Only",
		AmountWordsNE:     "पाँच हजार रुपैयाँ मात्र",
		GeneratedAtText:   "16 भदौ 2081, 9:00 AM",
	}
}

func sampleOrg() OrgProfile {
	return OrgProfile{
		NameEN:       "Shree Ashram Seva Samiti",
		NameNE:       "श्री आश्रम सेवा समिति",
		SacredSymbol: "ॐ",
		Address:      "Pashupati, Kathmandu",
		Phone:        "+977-1-4470000",
		Email:        "info@ashramseva.org",
		RegLeft:      "दर्ता नं. 123/2060",
		RegRight:     "PAN: 600123456",
	}
}

type stubProvider struct {
	font []byte
	left []byte
}

func (s *stubProvider) Font(FontWeight) ([]byte, error) { return s.font, nil }
func (s *stubProvider) Logo(slot LogoSlot) []byte {
	if slot == LogoLeft {
		return s.left
	}
	return nil
}

func TestComposeSectionOrder(t *testing.T) {
	doc := Compose(sampleRecord(), sampleStrings(), sampleOrg(), &stubProvider{}, Options{IncludeLogos: true})

	want := []string{
		SectionRegistration,
		SectionHeader,
		SectionReceiptCallout,
		SectionInfoCards,
		SectionDonationDetails,
		SectionAmountInWords,
		SectionSignature,
	}
	if len(doc.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(doc.Sections), len(want))
	}
	for i, name := range want {
		if doc.Sections[i].Name != name {
			t.Errorf("section %d = %q, want %q", i, doc.Sections[i].Name, name)
		}
	}
}

func TestComposeContainsRecordText(t *testing.T) {
	doc := Compose(sampleRecord(), sampleStrings(), sampleOrg(), nil, Options{})

	for _, s := range []string{"ASH123456", "Test Donor", "Rs. 5,000", "साधारण दान", "Rupees 5,000 Only"} {
		if !doc.ContainsText(s) {
			t.Errorf("document missing %q", s)
		}
	}
}

// Notes must be structurally absent, not an empty box, when the record has
// no notes.
func TestComposeNotesAbsent(t *testing.T) {
	doc := Compose(sampleRecord(), sampleStrings(), sampleOrg(), nil, Options{})
	if doc.Section(SectionNotes) != nil {
		t.Fatal("notes section present for a record without notes")
	}

	rec := sampleRecord()
	rec.Notes = "In memory of late grandfather"
	doc = Compose(rec, sampleStrings(), sampleOrg(), nil, Options{})
	notes := doc.Section(SectionNotes)
	if notes == nil {
		t.Fatal("notes section missing for a record with notes")
	}
	if !doc.ContainsText("“In memory of late grandfather”") {
		t.Error("notes text not quote-wrapped")
	}
}

// Without a donor ID the donor card has one fewer line and a shorter row.
func TestComposeDonorIDCollapses(t *testing.T) {
	withoutID := Compose(sampleRecord(), sampleStrings(), sampleOrg(), nil, Options{})

	rec := sampleRecord()
	rec.DonorID = "DON-0042"
	withID := Compose(rec, sampleStrings(), sampleOrg(), nil, Options{})

	a := withoutID.Section(SectionInfoCards)
	b := withID.Section(SectionInfoCards)
	if len(a.Rows[0].Cells[0].Lines) != 2 || len(b.Rows[0].Cells[0].Lines) != 3 {
		t.Errorf("donor card lines = %d/%d, want 2/3",
			len(a.Rows[0].Cells[0].Lines), len(b.Rows[0].Cells[0].Lines))
	}
	if a.Rows[0].Height >= b.Rows[0].Height {
		t.Errorf("donor card without ID should be shorter: %v vs %v", a.Rows[0].Height, b.Rows[0].Height)
	}
}

func TestComposeLogos(t *testing.T) {
	res := &stubProvider{left: []byte{0x89, 'P', 'N', 'G'}}

	doc := Compose(sampleRecord(), sampleStrings(), sampleOrg(), res, Options{IncludeLogos: true})
	header := doc.Section(SectionHeader)
	cells := header.Rows[0].Cells
	if cells[0].Image == nil {
		t.Error("left logo missing despite provider bytes")
	}
	// Missing right logo renders as empty space, not a failure.
	if cells[2].Image != nil {
		t.Error("right logo present despite nil provider bytes")
	}

	doc = Compose(sampleRecord(), sampleStrings(), sampleOrg(), res, Options{IncludeLogos: false})
	if doc.Section(SectionHeader).Rows[0].Cells[0].Image != nil {
		t.Error("logo present despite IncludeLogos=false")
	}
}

func TestDonationTypeEmphasis(t *testing.T) {
	doc := Compose(sampleRecord(), sampleStrings(), sampleOrg(), nil, Options{})
	details := doc.Section(SectionDonationDetails)
	if details == nil {
		t.Fatal("donation details section missing")
	}
	amountCell := details.Rows[1].Cells[2]
	line := amountCell.Lines[1]
	if !line.Style.Bold || line.Style.Color == nil || *line.Style.Color != Accent {
		t.Error("amount line is not emphasized with bold accent styling")
	}
}

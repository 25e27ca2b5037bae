package receiptdoc

import "time"

// Record is the normalized receipt input, built fresh per generation
// request and treated as read-only by the composer.
type Record struct {
	ReceiptNumber string
	DonorName     string
	DonorID       string
	Amount        int64

	DonationType string
	PeriodBased  bool
	PaymentMode  string

	CreatedAt      time.Time
	DateOfDonation *time.Time

	StartDate       *time.Time
	EndDate         *time.Time
	StartDateNepali string
	EndDateNepali   string

	Notes     string
	CreatedBy string
}

// DisplayStrings carries every date-, number-, and label-derived string,
// precomputed by the caller. The composer does placement only; it contains
// no calendar, numeral, or label logic.
type DisplayStrings struct {
	DonationTypeLabel string
	PaymentMode       string
	DonationDateText  string
	IssuedOnText      string
	AmountFigures     string
	AmountWordsEN     string
	AmountWordsNE     string
	GeneratedAtText   string
}

// OrgProfile is the static organization identity printed on every receipt.
type OrgProfile struct {
	NameEN       string
	NameNE       string
	Subtitle     string
	SacredSymbol string
	Address      string
	Phone        string
	Email        string
	RegLeft      string
	RegRight     string
	LogoCaptionL string
	LogoCaptionR string
}

// Options tweaks composition per request.
type Options struct {
	IncludeLogos bool
}

// Compose transforms a record plus precomputed display strings into the
// backend-agnostic draw program. All regions are appended top to bottom;
// optional regions collapse structurally when their data is absent.
func Compose(rec Record, disp DisplayStrings, org OrgProfile, res Provider, opts Options) *Document {
	doc := &Document{Title: "Receipt-" + rec.ReceiptNumber}

	doc.Sections = append(doc.Sections, registrationStrip(org))
	doc.Sections = append(doc.Sections, headerBlock(org, res, opts))
	doc.Sections = append(doc.Sections, receiptCallout(rec, disp))
	doc.Sections = append(doc.Sections, infoCards(rec, disp))
	doc.Sections = append(doc.Sections, donationDetails(disp))
	if rec.Notes != "" {
		doc.Sections = append(doc.Sections, notesCard(rec))
	}
	doc.Sections = append(doc.Sections, amountInWords(disp))
	doc.Sections = append(doc.Sections, signatureBlock(disp))

	return doc
}

// registrationStrip holds the static multilingual registration numbers at
// the left and right page margins.
func registrationStrip(org OrgProfile) Section {
	return Section{
		Name: SectionRegistration,
		Rows: []Row{{
			Height: 6,
			Cells: []Cell{
				{Span: 6, Align: AlignLeft, Lines: []TextLine{
					{Text: org.RegLeft, Style: TextStyle{SizePt: 8, Color: &InkGray, Script: ScriptMixed}},
				}},
				{Span: 6, Align: AlignRight, Lines: []TextLine{
					{Text: org.RegRight, Style: TextStyle{SizePt: 8, Color: &InkGray, Script: ScriptMixed}},
				}},
			},
		}},
	}
}

// headerBlock is the centered bilingual organization identity flanked by
// the two logos. A missing logo leaves its cell as empty space.
func headerBlock(org OrgProfile, res Provider, opts Options) Section {
	left := Cell{Span: 2, Align: AlignCenter}
	right := Cell{Span: 2, Align: AlignCenter}

	if opts.IncludeLogos && res != nil {
		if b := res.Logo(LogoLeft); b != nil {
			left.Image = &Image{Bytes: b, Ext: "png", Caption: org.LogoCaptionL}
		}
		if b := res.Logo(LogoRight); b != nil {
			right.Image = &Image{Bytes: b, Ext: "png", Caption: org.LogoCaptionR}
		}
	}

	var centerLines []TextLine
	top := 0.0
	if org.SacredSymbol != "" {
		centerLines = append(centerLines, TextLine{
			Text:  org.SacredSymbol,
			Top:   top,
			Style: TextStyle{SizePt: 14, Color: &Accent, Script: ScriptDevanagari},
		})
		top += 7
	}
	centerLines = append(centerLines,
		TextLine{Text: org.NameNE, Top: top, Style: TextStyle{SizePt: 16, Bold: true, Script: ScriptDevanagari}},
		TextLine{Text: org.NameEN, Top: top + 8, Style: TextStyle{SizePt: 12, Bold: true, Script: ScriptLatin}},
	)
	top += 16
	if org.Subtitle != "" {
		centerLines = append(centerLines, TextLine{
			Text:  org.Subtitle,
			Top:   top,
			Style: TextStyle{SizePt: 9, Color: &InkGray, Script: ScriptMixed},
		})
		top += 5
	}
	centerLines = append(centerLines,
		TextLine{Text: org.Address + " | " + org.Phone, Top: top, Style: TextStyle{SizePt: 9, Color: &InkGray, Script: ScriptMixed}},
		TextLine{Text: org.Email, Top: top + 5, Style: TextStyle{SizePt: 9, Color: &Accent, Script: ScriptLatin}},
	)

	return Section{
		Name: SectionHeader,
		Rows: []Row{{
			Height: top + 14,
			Cells: []Cell{
				left,
				{Span: 8, Align: AlignCenter, Lines: centerLines},
				right,
			},
		}},
	}
}

// receiptCallout is the centered bordered box carrying the receipt number
// and the issuance date.
func receiptCallout(rec Record, disp DisplayStrings) Section {
	return Section{
		Name: SectionReceiptCallout,
		Box:  BoxStyle{Border: true, Rounded: true},
		Rows: []Row{{
			Height: 16,
			Cells: []Cell{{
				Span:  12,
				Align: AlignCenter,
				Lines: []TextLine{
					{Text: "Receipt No: " + rec.ReceiptNumber, Style: TextStyle{SizePt: 14, Bold: true, Color: &Accent, Script: ScriptLatin}},
					{Text: "Issued on " + disp.IssuedOnText, Top: 8, Style: TextStyle{SizePt: 9, Color: &InkGray, Script: ScriptMixed}},
				},
			}},
		}},
	}
}

// infoCards is the two-column donor / receipt-details row. The donor ID
// line is present only when the record carries a donor ID, so the card is
// shorter without it rather than blank-padded.
func infoCards(rec Record, disp DisplayStrings) Section {
	donorLines := []TextLine{
		{Text: "Donor Information", Style: TextStyle{SizePt: 10, Bold: true, Script: ScriptLatin}},
		{Text: rec.DonorName, Top: 6, Style: TextStyle{SizePt: 11, Script: ScriptMixed}},
	}
	height := 18.0
	if rec.DonorID != "" {
		donorLines = append(donorLines, TextLine{
			Text:  "Donor ID: " + rec.DonorID,
			Top:   12,
			Style: TextStyle{SizePt: 8, Mono: true, Color: &InkGray, Script: ScriptLatin},
		})
		height = 23
	}

	detailLines := []TextLine{
		{Text: "Receipt Details", Style: TextStyle{SizePt: 10, Bold: true, Script: ScriptLatin}},
		{Text: disp.DonationDateText, Top: 6, Style: TextStyle{SizePt: 10, Script: ScriptMixed}},
		{Text: "Issued by: " + rec.CreatedBy, Top: 12, Style: TextStyle{SizePt: 9, Color: &InkGray, Script: ScriptLatin}},
	}

	return Section{
		Name: SectionInfoCards,
		Rows: []Row{{
			Height: height,
			Cells: []Cell{
				{Span: 6, Align: AlignLeft, Lines: donorLines},
				{Span: 6, Align: AlignLeft, Lines: detailLines},
			},
		}},
	}
}

// donationDetails is the tinted three-cell grid: type, payment mode, and
// emphasized amount.
func donationDetails(disp DisplayStrings) Section {
	return Section{
		Name: SectionDonationDetails,
		Box:  BoxStyle{Border: true, Fill: &PanelTint},
		Rows: []Row{
			{
				Height: 8,
				Cells: []Cell{{
					Span:  12,
					Align: AlignCenter,
					Lines: []TextLine{
						{Text: "Donation Details", Style: TextStyle{SizePt: 11, Bold: true, Script: ScriptLatin}},
					},
				}},
			},
			{
				Height: 16,
				Cells: []Cell{
					{Span: 4, Align: AlignCenter, Lines: []TextLine{
						{Text: "Donation Type", Style: TextStyle{SizePt: 8, Color: &InkGray, Script: ScriptLatin}},
						{Text: disp.DonationTypeLabel, Top: 5, Style: TextStyle{SizePt: 10, Bold: true, Script: ScriptMixed}},
					}},
					{Span: 4, Align: AlignCenter, Lines: []TextLine{
						{Text: "Payment Mode", Style: TextStyle{SizePt: 8, Color: &InkGray, Script: ScriptLatin}},
						{Text: disp.PaymentMode, Top: 5, Style: TextStyle{SizePt: 10, Script: ScriptMixed}},
					}},
					{Span: 4, Align: AlignCenter, Lines: []TextLine{
						{Text: "Amount", Style: TextStyle{SizePt: 8, Color: &InkGray, Script: ScriptLatin}},
						{Text: disp.AmountFigures, Top: 5, Style: TextStyle{SizePt: 13, Bold: true, Color: &Accent, Script: ScriptMixed}},
					}},
				},
			},
		},
	}
}

// notesCard renders the optional free-text notes, quote-wrapped in italic.
// It is only composed when notes are non-empty.
func notesCard(rec Record) Section {
	return Section{
		Name: SectionNotes,
		Box:  BoxStyle{Border: true},
		Rows: []Row{{
			Height: 12,
			Cells: []Cell{{
				Span:  12,
				Align: AlignLeft,
				Lines: []TextLine{
					{Text: "Notes", Style: TextStyle{SizePt: 8, Color: &InkGray, Script: ScriptLatin}},
					{Text: "“" + rec.Notes + "”", Top: 5, Style: TextStyle{SizePt: 9, Italic: true, Script: ScriptMixed}},
				},
			}},
		}},
	}
}

// amountInWords is the dashed box with the spelled-out amount in both
// languages, each on its own centered line.
func amountInWords(disp DisplayStrings) Section {
	return Section{
		Name: SectionAmountInWords,
		Box:  BoxStyle{Border: true, Dashed: true},
		Rows: []Row{{
			Height: 14,
			Cells: []Cell{{
				Span:  12,
				Align: AlignCenter,
				Lines: []TextLine{
					{Text: disp.AmountWordsEN, Style: TextStyle{SizePt: 9, Script: ScriptLatin}},
					{Text: disp.AmountWordsNE, Top: 6, Style: TextStyle{SizePt: 9, Script: ScriptDevanagari}},
				},
			}},
		}},
	}
}

// signatureBlock is right-aligned: the signature rule, its label, and the
// render-time stamp. The stamp records when the document was generated,
// which is deliberately distinct from the receipt's issuance time.
func signatureBlock(disp DisplayStrings) Section {
	return Section{
		Name: SectionSignature,
		Rows: []Row{{
			Height: 20,
			Cells: []Cell{
				{Span: 7},
				{Span: 5, Align: AlignRight, Lines: []TextLine{
					{Text: "____________________", Top: 4, Style: TextStyle{SizePt: 10, Script: ScriptLatin}},
					{Text: "Authorized Signature", Top: 10, Style: TextStyle{SizePt: 9, Color: &InkGray, Script: ScriptLatin}},
					{Text: "Generated on " + disp.GeneratedAtText, Top: 15, Style: TextStyle{SizePt: 7, Color: &InkGray, Script: ScriptMixed}},
				}},
			},
		}},
	}
}

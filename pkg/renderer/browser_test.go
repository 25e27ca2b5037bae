package renderer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

type fakeProvider struct {
	regular []byte
	bold    []byte
}

func (p *fakeProvider) Font(w receiptdoc.FontWeight) ([]byte, error) {
	if w == receiptdoc.FontBold && p.bold != nil {
		return p.bold, nil
	}
	return p.regular, nil
}

func (p *fakeProvider) Logo(receiptdoc.LogoSlot) []byte { return nil }

func sampleDocument() *receiptdoc.Document {
	rec := receiptdoc.Record{
		ReceiptNumber: "ASH123456",
		DonorName:     "Test Donor",
		Amount:        5000,
		DonationType:  "General Donation",
		PaymentMode:   "Offline",
		CreatedAt:     time.Date(2024, 8, 15, 10, 30, 0, 0, time.UTC),
	}
	disp := receiptdoc.DisplayStrings{
		DonationTypeLabel: "साधारण दान",
		PaymentMode:       "Offline",
		DonationDateText:  "30 साउन 2081",
		IssuedOnText:      "30 साउन 2081",
		AmountFigures:     "Rs. 5,000",
		AmountWordsEN:     "Rupees 5,000 Only",
		AmountWordsNE:     "पाँच हजार",
		GeneratedAtText:   "30 साउन 2081, 10:30 AM",
	}
	org := receiptdoc.OrgProfile{
		NameEN: "Shree Ashram Seva Samiti",
		NameNE: "श्री आश्रम सेवा समिति",
	}
	return receiptdoc.Compose(rec, disp, org, &fakeProvider{regular: []byte("font")}, receiptdoc.Options{})
}

func TestBuildHTMLContainsReceiptContent(t *testing.T) {
	doc := sampleDocument()
	html, err := buildHTML(doc, &fakeProvider{regular: []byte("font")})
	if err != nil {
		t.Fatalf("buildHTML: %v", err)
	}

	for _, want := range []string{
		"ASH123456",
		"Test Donor",
		"Rs. 5,000",
		"साधारण दान",
		"Rupees 5,000 Only",
		"Shree Ashram Seva Samiti",
		"@font-face",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
	for _, section := range []string{
		receiptdoc.SectionHeader,
		receiptdoc.SectionDonationDetails,
		receiptdoc.SectionAmountInWords,
		receiptdoc.SectionSignature,
	} {
		if !strings.Contains(html, `data-section="`+section+`"`) {
			t.Errorf("rendered HTML missing section %q", section)
		}
	}
}

func TestBuildHTMLEmbedsFontData(t *testing.T) {
	doc := sampleDocument()
	html, err := buildHTML(doc, &fakeProvider{regular: []byte("font"), bold: []byte("fontb")})
	if err != nil {
		t.Fatalf("buildHTML: %v", err)
	}

	// base64("font") and base64("fontb"); the data URLs must reach the
	// page verbatim, not entity-escaped.
	for _, want := range []string{
		`url(data:font/ttf;base64,Zm9udA==) format("truetype")`,
		`url(data:font/ttf;base64,Zm9udGI=) format("truetype")`,
		"font-weight: normal",
		"font-weight: bold",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestBuildHTMLPageGeometry(t *testing.T) {
	html, err := buildHTML(sampleDocument(), nil)
	if err != nil {
		t.Fatalf("buildHTML: %v", err)
	}

	wantPage := fmt.Sprintf("size: %.0fmm %.0fmm", receiptdoc.PageWidthMM, receiptdoc.PageHeightMM)
	if !strings.Contains(html, wantPage) {
		t.Errorf("rendered HTML missing page size %q", wantPage)
	}
	wantBody := fmt.Sprintf("width: %.0fmm", receiptdoc.PageWidthMM-2*pageMarginHMM)
	if !strings.Contains(html, wantBody) {
		t.Errorf("rendered HTML missing body width %q", wantBody)
	}
}

func TestBuildHTMLWithoutFonts(t *testing.T) {
	doc := sampleDocument()
	html, err := buildHTML(doc, nil)
	if err != nil {
		t.Fatalf("buildHTML without fonts: %v", err)
	}
	if strings.Contains(html, "@font-face") {
		t.Error("expected no @font-face block when no fonts are bundled")
	}
	if !strings.Contains(html, "Noto Sans Devanagari") {
		t.Error("fallback font stack missing")
	}
}

func TestBrowserLaunchesExactlyOnce(t *testing.T) {
	r := NewBrowserRenderer(&fakeProvider{regular: []byte("font")}, time.Second)

	var launches int64
	r.launch = func() (context.Context, context.CancelFunc, error) {
		atomic.AddInt64(&launches, 1)
		ctx, cancel := context.WithCancel(context.Background())
		return ctx, cancel, nil
	}
	defer r.Shutdown()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.ensureBrowser(); err != nil {
				t.Errorf("ensureBrowser: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&launches); got != 1 {
		t.Fatalf("browser launched %d times, want exactly 1", got)
	}
}

func TestBrowserRelaunchesAfterShutdown(t *testing.T) {
	r := NewBrowserRenderer(&fakeProvider{regular: []byte("font")}, time.Second)

	var launches int64
	r.launch = func() (context.Context, context.CancelFunc, error) {
		atomic.AddInt64(&launches, 1)
		ctx, cancel := context.WithCancel(context.Background())
		return ctx, cancel, nil
	}

	if _, err := r.ensureBrowser(); err != nil {
		t.Fatalf("first launch: %v", err)
	}
	r.Shutdown()
	if _, err := r.ensureBrowser(); err != nil {
		t.Fatalf("relaunch: %v", err)
	}
	r.Shutdown()

	if got := atomic.LoadInt64(&launches); got != 2 {
		t.Fatalf("browser launched %d times, want 2", got)
	}
}

package renderer

import (
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"

	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

func TestFamilySelection(t *testing.T) {
	cases := []struct {
		name          string
		style         receiptdoc.TextStyle
		hasDevanagari bool
		want          string
	}{
		{"devanagari", receiptdoc.TextStyle{Script: receiptdoc.ScriptDevanagari}, true, devanagariFamily},
		{"mixed uses devanagari family", receiptdoc.TextStyle{Script: receiptdoc.ScriptMixed}, true, devanagariFamily},
		{"devanagari without font falls back", receiptdoc.TextStyle{Script: receiptdoc.ScriptDevanagari}, false, fontfamily.Helvetica},
		{"latin", receiptdoc.TextStyle{Script: receiptdoc.ScriptLatin}, true, fontfamily.Helvetica},
		{"mono", receiptdoc.TextStyle{Script: receiptdoc.ScriptLatin, Mono: true}, true, fontfamily.Courier},
	}
	for _, tc := range cases {
		if got := family(tc.style, tc.hasDevanagari); got != tc.want {
			t.Errorf("%s: family = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStyleOf(t *testing.T) {
	if got := styleOf(receiptdoc.TextStyle{Bold: true}); got != fontstyle.Bold {
		t.Errorf("bold: got %v", got)
	}
	if got := styleOf(receiptdoc.TextStyle{Bold: true, Italic: true}); got != fontstyle.BoldItalic {
		t.Errorf("bold italic: got %v", got)
	}
	if got := styleOf(receiptdoc.TextStyle{Italic: true}); got != fontstyle.Italic {
		t.Errorf("italic: got %v", got)
	}
	if got := styleOf(receiptdoc.TextStyle{}); got != fontstyle.Normal {
		t.Errorf("normal: got %v", got)
	}
}

func TestAlignOf(t *testing.T) {
	if got := alignOf(receiptdoc.AlignCenter); got != align.Center {
		t.Errorf("center: got %v", got)
	}
	if got := alignOf(receiptdoc.AlignRight); got != align.Right {
		t.Errorf("right: got %v", got)
	}
	if got := alignOf(receiptdoc.AlignLeft); got != align.Left {
		t.Errorf("left: got %v", got)
	}
}

func TestSectionStyle(t *testing.T) {
	if sectionStyle(receiptdoc.BoxStyle{}) != nil {
		t.Error("plain box should map to no cell style")
	}

	dashed := sectionStyle(receiptdoc.BoxStyle{Border: true, Dashed: true})
	if dashed == nil || dashed.BorderType != border.Full || dashed.LineStyle != linestyle.Dashed {
		t.Errorf("dashed border mapped incorrectly: %+v", dashed)
	}

	tint := receiptdoc.PanelTint
	filled := sectionStyle(receiptdoc.BoxStyle{Fill: &tint})
	if filled == nil || filled.BackgroundColor == nil || filled.BackgroundColor.Red != int(tint.R) {
		t.Errorf("fill mapped incorrectly: %+v", filled)
	}
}

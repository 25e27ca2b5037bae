package receiptdoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFSProviderSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	// Regular font only in the second directory; bold nowhere.
	if err := os.WriteFile(filepath.Join(second, "NotoSansDevanagari-Regular.ttf"), []byte("font-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFSProvider([]string{first, second})

	regular, err := p.Font(FontRegular)
	if err != nil {
		t.Fatalf("Font(regular): %v", err)
	}
	if string(regular) != "font-bytes" {
		t.Errorf("unexpected font bytes %q", regular)
	}

	// Bold degrades to the regular weight.
	bold, err := p.Font(FontBold)
	if err != nil {
		t.Fatalf("Font(bold): %v", err)
	}
	if string(bold) != "font-bytes" {
		t.Errorf("bold did not degrade to regular, got %q", bold)
	}
}

func TestFSProviderMissingFont(t *testing.T) {
	p := NewFSProvider([]string{t.TempDir()})
	if _, err := p.Font(FontRegular); err == nil {
		t.Fatal("expected error for missing font")
	}
}

func TestFSProviderLogo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo-left.png"), []byte{0x89, 'P'}, 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFSProvider([]string{dir})
	if p.Logo(LogoLeft) == nil {
		t.Error("left logo should load")
	}
	if p.Logo(LogoRight) != nil {
		t.Error("missing right logo should be nil, not an error")
	}
}

func TestFSProviderCachesBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo-left.png")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewFSProvider([]string{dir})
	if string(p.Logo(LogoLeft)) != "v1" {
		t.Fatal("first load failed")
	}

	// Resource bytes are immutable once loaded; a file change is not seen.
	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if string(p.Logo(LogoLeft)) != "v1" {
		t.Error("cache returned refreshed bytes")
	}
}

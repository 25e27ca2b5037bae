package receiptdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FontWeight selects a font variant from the resource provider.
type FontWeight string

const (
	FontRegular FontWeight = "regular"
	FontBold    FontWeight = "bold"
)

// LogoSlot selects one of the two header logos.
type LogoSlot string

const (
	LogoLeft  LogoSlot = "left"
	LogoRight LogoSlot = "right"
)

// Provider supplies font and logo bytes by logical name. It is a pure read
// interface; where the bytes come from (filesystem, bundle, network) is the
// provider's concern. Implementations must be safe for concurrent use.
type Provider interface {
	// Font returns the font bytes for the weight. When the bold variant is
	// unavailable the regular bytes are returned instead (a known visual
	// degradation, not an error). An error means no usable font at all.
	Font(weight FontWeight) ([]byte, error)
	// Logo returns the logo bytes for the slot, or nil when the logo is
	// missing. A missing logo is rendered as empty space, never an error.
	Logo(slot LogoSlot) []byte
}

// FSProvider loads resources from the first matching file across a
// prioritized list of directories. Bytes are loaded once and cached; they
// are immutable afterwards and shared across concurrent generations.
type FSProvider struct {
	searchPaths []string
	fontNames   map[FontWeight]string
	logoNames   map[LogoSlot]string

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewFSProvider creates a filesystem provider. searchPaths are tried in
// order for every resource; the default file names can be overridden per
// logical name via WithFontFile / WithLogoFile.
func NewFSProvider(searchPaths []string) *FSProvider {
	return &FSProvider{
		searchPaths: searchPaths,
		fontNames: map[FontWeight]string{
			FontRegular: "NotoSansDevanagari-Regular.ttf",
			FontBold:    "NotoSansDevanagari-Bold.ttf",
		},
		logoNames: map[LogoSlot]string{
			LogoLeft:  "logo-left.png",
			LogoRight: "logo-right.png",
		},
		cache: make(map[string][]byte),
	}
}

// WithFontFile overrides the file name for a font weight.
func (p *FSProvider) WithFontFile(weight FontWeight, name string) *FSProvider {
	p.fontNames[weight] = name
	return p
}

// WithLogoFile overrides the file name for a logo slot.
func (p *FSProvider) WithLogoFile(slot LogoSlot, name string) *FSProvider {
	p.logoNames[slot] = name
	return p
}

func (p *FSProvider) load(name string) []byte {
	p.mu.RLock()
	data, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return data
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if data, ok := p.cache[name]; ok {
		return data
	}
	for _, dir := range p.searchPaths {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil && len(b) > 0 {
			p.cache[name] = b
			return b
		}
	}
	// Negative result is cached too; resources do not appear mid-process.
	p.cache[name] = nil
	return nil
}

// Font implements Provider.
func (p *FSProvider) Font(weight FontWeight) ([]byte, error) {
	if b := p.load(p.fontNames[weight]); b != nil {
		return b, nil
	}
	if weight == FontBold {
		// Degrade to the regular weight.
		if b := p.load(p.fontNames[FontRegular]); b != nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("receiptdoc: font %q not found in %s",
		p.fontNames[weight], strings.Join(p.searchPaths, ", "))
}

// Logo implements Provider.
func (p *FSProvider) Logo(slot LogoSlot) []byte {
	return p.load(p.logoNames[slot])
}

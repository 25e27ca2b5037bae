// Package renderer turns a receipt draw program into document bytes.
// Backends are interchangeable: each consumes the same receiptdoc.Document
// and must honor its layout, differing only in how the page is produced.
package renderer

import (
	"context"

	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

// Renderer is a render backend.
type Renderer interface {
	// Name identifies the backend for selection hints and error reporting.
	Name() string
	// ContentType is the MIME type of the produced bytes.
	ContentType() string
	// Render produces the final document bytes. It must return a non-empty
	// buffer or an error, never both empty.
	Render(ctx context.Context, doc *receiptdoc.Document) ([]byte, error)
}

// Backend names.
const (
	NamePDF     = "pdf"
	NameBrowser = "browser"
)

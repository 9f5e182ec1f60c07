// Package pdf extracts text from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/lawpack-cli/internal/core/domain"
	"github.com/custodia-labs/lawpack-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lawpack-cli/internal/logger"
)

// minPlausibleLen is the extracted-text length below which a PDF is likely
// a scanned image needing OCR. There is no OCR fallback: the text is still
// returned and the condition is only logged.
const minPlausibleLen = 50

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles .pdf files.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract returns the non-empty page texts joined by newlines.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %w", domain.ErrExtractionFailed, path, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			logger.Warn("pdf %s: page %d unreadable: %v", path, i, err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	result := strings.Join(pages, "\n")
	if len(strings.TrimSpace(result)) < minPlausibleLen {
		logger.Warn("pdf %s: extracted only %d characters, likely requires OCR", path, len(result))
	}
	return result, nil
}

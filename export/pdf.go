package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginMM   = 15
	pdfLineHeight = 5.5
	pdfBodySize   = 11
	pdfTitleSize  = 15
)

// PDF renders the page's visible text into a paginated A4 document.
// Empty text still produces a valid single-page document carrying the title.
func PDF(title, text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	doc.SetAutoPageBreak(true, pdfMarginMM)
	doc.AddPage()

	// Core fonts are cp1252; translate so non-ASCII text degrades instead
	// of corrupting the output stream.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	if title != "" {
		doc.SetFont("Helvetica", "B", pdfTitleSize)
		doc.MultiCell(0, pdfLineHeight+2, tr(title), "", "L", false)
		doc.Ln(pdfLineHeight / 2)
	}

	doc.SetFont("Helvetica", "", pdfBodySize)
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			doc.Ln(pdfLineHeight)
			continue
		}
		doc.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package certificate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/testiq/backend/internal/models"
)

// Render produces the A4 certificate PDF for a stored result: a double
// border, the recipient's name, and the score front and center.
func Render(result *models.TestResult, name string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()

	// Outer border, brand purple.
	pdf.SetDrawColor(124, 58, 237)
	pdf.SetLineWidth(1.0)
	pdf.Rect(14, 14, pageWidth-28, pageHeight-28, "D")

	// Inner border, pink accent.
	pdf.SetDrawColor(236, 72, 153)
	pdf.SetLineWidth(0.3)
	pdf.Rect(18, 18, pageWidth-36, pageHeight-36, "D")

	centered := func(y float64, text string) {
		pdf.SetXY(0, y)
		pdf.CellFormat(0, 10, tr(text), "", 0, "C", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 36)
	centered(40, "Certificate of Achievement")

	pdf.SetFont("Helvetica", "", 16)
	centered(56, "TestIQ Intelligence Test")

	pdf.SetFont("Helvetica", "B", 28)
	centered(96, name)

	pdf.SetFont("Helvetica", "", 14)
	centered(118, "has successfully completed the TestIQ assessment")

	pdf.SetFont("Helvetica", "", 16)
	centered(136, "IQ Score")

	pdf.SetTextColor(124, 58, 237)
	pdf.SetFont("Helvetica", "B", 40)
	centered(152, fmt.Sprintf("%d", result.IQScore))

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	centered(pageHeight-30, "TestIQ - Intelligence Testing Platform")
	centered(pageHeight-24, fmt.Sprintf("Test ID: %s", shortID(result.TestID)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the download name from the recipient, with spaces made
// header-safe.
func Filename(name string) string {
	return fmt.Sprintf("TestIQ_Certificate_%s.pdf", strings.ReplaceAll(name, " ", "_"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

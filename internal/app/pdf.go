package app

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ErrNoPDFFont indicates the prompt contains non-Latin text and no UTF-8
// font was configured, so a readable PDF cannot be produced.
var ErrNoPDFFont = errors.New("pdf: prompt needs a UTF-8 font (set out.pdfFont)")

// writePromptPDF renders the assembled prompt as a simple PDF, one line at a
// time, with larger headings for '#' lines. The built-in core fonts only
// cover Latin text, so Japanese prompts require a TTF supplied via fontPath.
func writePromptPDF(prompt, outPath, fontPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")

	family := "Helvetica"
	if fontPath != "" {
		if _, err := os.Stat(fontPath); err != nil {
			return err
		}
		family = "prompt"
		pdf.AddUTF8Font(family, "", fontPath)
		pdf.AddUTF8Font(family, "B", fontPath)
	} else if !isLatin(prompt) {
		return ErrNoPDFFont
	}

	pdf.SetFont(family, "", 10)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(prompt))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), " \t")
		if strings.TrimSpace(s) == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 13.0
			if i >= 2 {
				size = 11.0
			}
			pdf.SetFont(family, "B", size)
			pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
			pdf.SetFont(family, "", 10)
			continue
		}
		pdf.MultiCell(0, 5, s, "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(outPath)
}

func isLatin(s string) bool {
	for _, r := range s {
		if r > 0x024F {
			return false
		}
	}
	return true
}

package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLoader extracts text from PDF files, page by page.
type PDFLoader struct{}

// NewPDFLoader creates a loader that reads text directly from PDF content
// streams. Scanned PDFs without a text layer yield empty output.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// GetFileText opens the PDF at path, walks its pages in order and returns
// the concatenated page texts with no separator. A file that cannot be
// opened or parsed as a PDF results in an error.
func (l *PDFLoader) GetFileText(ctx context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %q: %w", path, err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	var text strings.Builder

	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d of %q: %w", i, path, err)
		}
		text.WriteString(pageText)
	}

	return text.String(), nil
}

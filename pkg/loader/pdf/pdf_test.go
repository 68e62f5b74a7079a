package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixturePDF builds a minimal uncompressed PDF with one text run per
// page and writes it to path. Object offsets in the xref table are
// computed from the generated body so the file is well-formed.
func writeFixturePDF(t *testing.T, path string, pages []string) {
	t.Helper()

	type object struct {
		num  int
		body string
	}

	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	objects := []object{
		{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		{2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))},
		{3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"},
	}
	for i, text := range pages {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		objects = append(objects, object{
			pageNum,
			fmt.Sprintf(
				"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
				contentNum,
			),
		})
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects, object{
			contentNum,
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		})
	}

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")

	offsets := make(map[int]int, len(objects))
	for _, obj := range objects {
		offsets[obj.num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", obj.num, obj.body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	if err := os.WriteFile(path, []byte(buf.String()), 0o600); err != nil {
		t.Fatalf("failed to write fixture PDF: %v", err)
	}
}

func TestGetFileTextSinglePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.pdf")
	writeFixturePDF(t, path, []string{"Alice knows Bob."})

	got, err := NewPDFLoader().GetFileText(context.Background(), path)
	if err != nil {
		t.Fatalf("GetFileText() error = %v", err)
	}
	if got != "Alice knows Bob." {
		t.Fatalf("GetFileText() = %q, want %q", got, "Alice knows Bob.")
	}
}

func TestGetFileTextConcatenatesPagesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.pdf")
	pages := []string{"Alice knows Bob.", "Bob likes Carol.", "Carol met Alice."}
	writeFixturePDF(t, path, pages)

	got, err := NewPDFLoader().GetFileText(context.Background(), path)
	if err != nil {
		t.Fatalf("GetFileText() error = %v", err)
	}
	want := strings.Join(pages, "")
	if got != want {
		t.Fatalf("GetFileText() = %q, want %q", got, want)
	}
}

func TestGetFileTextRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewPDFLoader().GetFileText(context.Background(), path); err == nil {
		t.Fatal("GetFileText() expected error for non-PDF content")
	}
}

func TestGetFileTextMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")
	if _, err := NewPDFLoader().GetFileText(context.Background(), path); err == nil {
		t.Fatal("GetFileText() expected error for missing file")
	}
}

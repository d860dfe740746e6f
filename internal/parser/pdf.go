package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/tocgest/internal/pdfdoc"
	"github.com/dgallion1/tocgest/internal/toc"
)

// PDFParser extracts the ToC from a PDF's outline data. It applies the
// full pipeline: page location, destination resolution, book filtering
// and page-range inference.
type PDFParser struct{}

func (p *PDFParser) ParseToC(r io.Reader, filename string) (*toc.Tree, error) {
	// pdfcpu requires a ReadSeeker, so we write to a temp file.
	tmp, err := os.CreateTemp("", "tocgest-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	defer tmp.Close()

	if _, err := io.Copy(tmp, r); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := pdfdoc.Read(tmp)
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}
	return toc.FromDocument(doc)
}

package toc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/dgallion1/tocgest/internal/pdfdoc"
)

// ResolveOutline resolves each raw outline item to a start page, trying
// the primary destination, the action and the structure element in that
// order; the first candidate that resolves wins. Items with no
// resolvable destination are silently dropped.
func ResolveOutline(items []pdfdoc.OutlineItem, r *Resolver) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		page := 0
		for _, ref := range []types.Object{item.Dest, item.Action, item.StructElem} {
			if ref == nil {
				continue
			}
			if n, ok := r.Resolve(ref); ok {
				page = n
				break
			}
		}
		if page == 0 {
			continue
		}
		entries = append(entries, Entry{
			Level:     item.Level,
			Title:     item.Title,
			StartPage: page,
		})
	}
	return entries
}

// FromDocument runs the full extraction pipeline over an open document:
// page locator, destination resolution, book filtering, interval
// inference and tree assembly. A document without an outline yields an
// empty tree.
func FromDocument(doc *pdfdoc.Document) (*Tree, error) {
	objNrs, err := doc.PageObjectNumbers()
	if err != nil {
		return nil, fmt.Errorf("page tree: %w", err)
	}
	locator := NewPageLocator(objNrs)

	items, err := doc.Outlines()
	if errors.Is(err, pdfdoc.ErrNoOutline) {
		return NewTree(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("outlines: %w", err)
	}

	entries := ResolveOutline(items, NewResolver(doc, locator))
	return NewBookBuilder().Build(entries, locator.TotalPages()), nil
}

// ExtractFile extracts the ToC of the PDF at pdfPath and writes it as
// indented JSON to outputPath. The file handle and parser are scoped to
// this call and released on every exit path. A malformed PDF returns an
// error and leaves any existing output untouched; a missing or fully
// filtered outline writes {}.
func ExtractFile(pdfPath, outputPath string, log *slog.Logger) error {
	f, err := os.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc, err := pdfdoc.Read(f)
	if err != nil {
		return fmt.Errorf("invalid or corrupted pdf: %w", err)
	}

	objNrs, err := doc.PageObjectNumbers()
	if err != nil {
		return fmt.Errorf("page tree: %w", err)
	}
	locator := NewPageLocator(objNrs)

	items, err := doc.Outlines()
	if errors.Is(err, pdfdoc.ErrNoOutline) {
		log.Info("no outline found, writing empty toc", "output", outputPath)
		return writeJSON(outputPath, NewTree())
	}
	if err != nil {
		return fmt.Errorf("outlines: %w", err)
	}

	entries := ResolveOutline(items, NewResolver(doc, locator))
	tree := NewBookBuilder().Build(entries, locator.TotalPages())
	if tree.Len() == 0 {
		log.Info("no toc entries with resolvable pages, writing empty toc", "output", outputPath)
		return writeJSON(outputPath, tree)
	}

	if err := writeJSON(outputPath, tree); err != nil {
		return err
	}
	log.Info("toc written",
		"output", outputPath,
		"sections", tree.Len(),
		"pages", locator.TotalPages(),
	)
	return nil
}

// writeJSON serializes the tree with 4-space indentation. Serialization
// happens fully in memory, so a failure never leaves partial output.
func writeJSON(path string, tree *Tree) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshal toc: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "    "); err != nil {
		return fmt.Errorf("indent toc: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write toc: %w", err)
	}
	return nil
}

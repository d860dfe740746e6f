package pdfdoc

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document wraps a parsed PDF and exposes the object-model operations the
// ToC pipeline consumes: page-tree enumeration, outline enumeration,
// named-destination lookup and raw object dereference.
type Document struct {
	ctx *model.Context
}

// Read parses a PDF from rs. A structural syntax failure surfaces here;
// callers treat it as the corrupt-PDF case and write no output.
func Read(rs io.ReadSeeker) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("validate pdf: %w", err)
	}
	return &Document{ctx: ctx}, nil
}

// Dereference resolves o if it is an indirect reference, returning the
// referenced object. Non-reference objects come back unchanged.
func (d *Document) Dereference(o types.Object) (types.Object, error) {
	return d.ctx.Dereference(o)
}

func (d *Document) catalog() (types.Dict, error) {
	return d.ctx.Catalog()
}

// dict dereferences o and asserts a dictionary.
func (d *Document) dict(o types.Object) (types.Dict, error) {
	resolved, err := d.ctx.Dereference(o)
	if err != nil {
		return nil, err
	}
	dict, ok := resolved.(types.Dict)
	if !ok {
		return nil, fmt.Errorf("expected dict, got %T", resolved)
	}
	return dict, nil
}

// array dereferences o and asserts an array.
func (d *Document) array(o types.Object) (types.Array, error) {
	resolved, err := d.ctx.Dereference(o)
	if err != nil {
		return nil, err
	}
	arr, ok := resolved.(types.Array)
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", resolved)
	}
	return arr, nil
}

package pdfdoc

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PageObjectNumbers walks the page tree and returns the object number of
// every page leaf in document order. A missing or degenerate tree yields
// an empty result, never an error for that case alone.
func (d *Document) PageObjectNumbers() ([]int, error) {
	catalog, err := d.catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	rootObj, found := catalog.Find("Pages")
	if !found {
		return nil, nil
	}
	rootRef, ok := rootObj.(types.IndirectRef)
	if !ok {
		return nil, nil
	}

	var objNrs []int
	visited := map[int]bool{}

	var walk func(ref types.IndirectRef) error
	walk = func(ref types.IndirectRef) error {
		objNr := int(ref.ObjectNumber)
		if visited[objNr] {
			return nil // malformed tree, refuse to loop
		}
		visited[objNr] = true

		node, err := d.dict(ref)
		if err != nil {
			return err
		}
		if typeName(node) == "Page" {
			objNrs = append(objNrs, objNr)
			return nil
		}
		kidsObj, found := node.Find("Kids")
		if !found {
			return nil
		}
		kids, err := d.array(kidsObj)
		if err != nil {
			return err
		}
		for _, kid := range kids {
			kidRef, ok := kid.(types.IndirectRef)
			if !ok {
				continue
			}
			if err := walk(kidRef); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(rootRef); err != nil {
		return nil, fmt.Errorf("page tree: %w", err)
	}
	return objNrs, nil
}

// typeName returns the /Type name of a dict, or "".
func typeName(d types.Dict) string {
	obj, found := d.Find("Type")
	if !found {
		return ""
	}
	if n, ok := obj.(types.Name); ok {
		return string(n)
	}
	return ""
}

package pdfdoc

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ErrNoOutline reports a document whose catalog carries no outline
// hierarchy at all. Callers treat it as a normal empty result, distinct
// from a parse failure.
var ErrNoOutline = errors.New("pdf: document has no outline")

// OutlineItem is one raw outline entry: nesting level (1 = top), decoded
// title, and up to three destination candidates in resolution priority
// order. Destination payloads are returned exactly as stored; the
// resolver classifies them.
type OutlineItem struct {
	Level      int
	Title      string
	Dest       types.Object
	Action     types.Object
	StructElem types.Object
}

const maxOutlineDepth = 64

// Outlines flattens the outline tree into document order by walking the
// First/Next sibling chains depth-first.
func (d *Document) Outlines() ([]OutlineItem, error) {
	catalog, err := d.catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	rootObj, found := catalog.Find("Outlines")
	if !found {
		return nil, ErrNoOutline
	}
	root, err := d.dict(rootObj)
	if err != nil {
		return nil, ErrNoOutline
	}

	first, found := root.Find("First")
	if !found {
		return nil, nil
	}

	var items []OutlineItem
	visited := map[int]bool{}

	var walk func(cur types.Object, level int)
	walk = func(cur types.Object, level int) {
		if level > maxOutlineDepth {
			return
		}
		for cur != nil {
			if ref, ok := cur.(types.IndirectRef); ok {
				objNr := int(ref.ObjectNumber)
				if visited[objNr] {
					return // cycle in sibling chain
				}
				visited[objNr] = true
			}
			node, err := d.dict(cur)
			if err != nil {
				return // skip unreadable tail
			}

			item := OutlineItem{Level: level}
			if titleObj, found := node.Find("Title"); found {
				if raw, err := d.Dereference(titleObj); err == nil {
					item.Title = DecodeTextString(raw)
				}
			}
			if o, found := node.Find("Dest"); found {
				item.Dest = o
			}
			if o, found := node.Find("A"); found {
				item.Action = o
			}
			if o, found := node.Find("SE"); found {
				item.StructElem = o
			}
			items = append(items, item)

			if kid, found := node.Find("First"); found {
				walk(kid, level+1)
			}
			next, found := node.Find("Next")
			if !found {
				return
			}
			cur = next
		}
	}

	walk(first, 1)
	return items, nil
}

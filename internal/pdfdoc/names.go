package pdfdoc

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const maxNameTreeDepth = 32

// NamedDestination looks up name in the document's named-destination
// table: the /Names name tree first, then the legacy catalog /Dests
// dictionary. ok is false for an unknown name.
func (d *Document) NamedDestination(name string) (types.Object, bool) {
	catalog, err := d.catalog()
	if err != nil {
		return nil, false
	}

	if namesObj, found := catalog.Find("Names"); found {
		if names, err := d.dict(namesObj); err == nil {
			if destsObj, found := names.Find("Dests"); found {
				if obj, ok := d.lookupNameTree(destsObj, name, 0); ok {
					return obj, true
				}
			}
		}
	}

	// PDF 1.1 style: a plain catalog /Dests dictionary keyed by name.
	if destsObj, found := catalog.Find("Dests"); found {
		if dests, err := d.dict(destsObj); err == nil {
			if obj, found := dests.Find(name); found {
				return obj, true
			}
		}
	}

	return nil, false
}

// lookupNameTree scans a name-tree node: leaf nodes carry a /Names array
// of alternating key/value pairs, interior nodes carry /Kids.
func (d *Document) lookupNameTree(nodeObj types.Object, name string, depth int) (types.Object, bool) {
	if depth > maxNameTreeDepth {
		return nil, false
	}
	node, err := d.dict(nodeObj)
	if err != nil {
		return nil, false
	}

	if pairsObj, found := node.Find("Names"); found {
		pairs, err := d.array(pairsObj)
		if err != nil {
			return nil, false
		}
		for i := 0; i+1 < len(pairs); i += 2 {
			key, ok := ByteString(pairs[i])
			if !ok {
				continue
			}
			if key == name {
				return pairs[i+1], true
			}
		}
	}

	if kidsObj, found := node.Find("Kids"); found {
		kids, err := d.array(kidsObj)
		if err != nil {
			return nil, false
		}
		for _, kid := range kids {
			if obj, ok := d.lookupNameTree(kid, name, depth+1); ok {
				return obj, true
			}
		}
	}

	return nil, false
}

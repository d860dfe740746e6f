package toc

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/dgallion1/tocgest/internal/pdfdoc"
)

// RefKind classifies the shape of an outline destination payload.
type RefKind int

const (
	KindObjectRef RefKind = iota
	KindDictionary
	KindList
	KindNamed
	KindUnknown
)

// ClassifyRef inspects structure only: an indirect reference, a dict
// carrying key "D", a list containing at least one indirect reference,
// or a byte string naming a destination. Everything else is unknown.
func ClassifyRef(o types.Object) RefKind {
	switch v := o.(type) {
	case types.IndirectRef:
		return KindObjectRef
	case types.Dict:
		if _, found := v.Find("D"); found {
			return KindDictionary
		}
	case types.Array:
		for _, e := range v {
			if _, ok := e.(types.IndirectRef); ok {
				return KindList
			}
		}
	case types.StringLiteral, types.HexLiteral:
		return KindNamed
	}
	return KindUnknown
}

// Dereferencer is the slice of the document collaborator the resolver
// needs: raw dereference plus named-destination lookup.
type Dereferencer interface {
	Dereference(o types.Object) (types.Object, error)
	NamedDestination(name string) (types.Object, bool)
}

// maxResolveDepth bounds recursion so cyclic (malformed) reference
// graphs degrade to an unresolved entry instead of overflowing.
const maxResolveDepth = 64

// Resolver resolves outline destination payloads to page numbers.
type Resolver struct {
	doc     Dereferencer
	locator *PageLocator
}

func NewResolver(doc Dereferencer, locator *PageLocator) *Resolver {
	return &Resolver{doc: doc, locator: locator}
}

// Resolve unwraps ref until a page object is reached and returns its
// 1-based page number. ok is false for anything that cannot be
// resolved: missing key, empty list, unknown name, dereference failure.
func (r *Resolver) Resolve(ref types.Object) (int, bool) {
	return r.resolve(ref, 0)
}

func (r *Resolver) resolve(ref types.Object, depth int) (int, bool) {
	if depth > maxResolveDepth {
		return 0, false
	}

	switch ClassifyRef(ref) {
	case KindObjectRef:
		ir := ref.(types.IndirectRef)
		resolved, err := r.doc.Dereference(ir)
		if err != nil {
			return 0, false
		}
		if isPageDict(resolved) {
			return r.locator.PageNumber(int(ir.ObjectNumber))
		}
		return r.resolve(resolved, depth+1)

	case KindDictionary:
		target, found := ref.(types.Dict).Find("D")
		if !found {
			return 0, false
		}
		return r.resolve(target, depth+1)

	case KindList:
		for _, e := range ref.(types.Array) {
			if _, ok := e.(types.IndirectRef); ok {
				return r.resolve(e, depth+1)
			}
		}
		return 0, false

	case KindNamed:
		name, ok := pdfdoc.ByteString(ref)
		if !ok {
			return 0, false
		}
		target, ok := r.doc.NamedDestination(name)
		if !ok {
			return 0, false
		}
		return r.resolve(target, depth+1)

	default:
		return 0, false
	}
}

// isPageDict reports whether o is a page object: a dict whose declared
// /Type is the page marker.
func isPageDict(o types.Object) bool {
	d, ok := o.(types.Dict)
	if !ok {
		return false
	}
	t, found := d.Find("Type")
	if !found {
		return false
	}
	name, ok := t.(types.Name)
	return ok && name == "Page"
}

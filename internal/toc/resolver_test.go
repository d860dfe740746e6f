package toc

import (
	"fmt"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/dgallion1/tocgest/internal/pdfdoc"
)

// fakeDoc serves objects from maps, standing in for a parsed document.
type fakeDoc struct {
	objects map[int]types.Object
	named   map[string]types.Object
}

func (f *fakeDoc) Dereference(o types.Object) (types.Object, error) {
	ir, ok := o.(types.IndirectRef)
	if !ok {
		return o, nil
	}
	obj, ok := f.objects[int(ir.ObjectNumber)]
	if !ok {
		return nil, fmt.Errorf("object %d not found", int(ir.ObjectNumber))
	}
	return obj, nil
}

func (f *fakeDoc) NamedDestination(name string) (types.Object, bool) {
	o, ok := f.named[name]
	return o, ok
}

func pageDict() types.Dict {
	return types.Dict{"Type": types.Name("Page")}
}

func TestClassifyRef(t *testing.T) {
	tests := []struct {
		name string
		in   types.Object
		want RefKind
	}{
		{"indirect ref", *types.NewIndirectRef(3, 0), KindObjectRef},
		{"dict with D", types.Dict{"D": types.Array{}}, KindDictionary},
		{"dict without D", types.Dict{"S": types.Name("GoTo")}, KindUnknown},
		{"array with ref", types.Array{*types.NewIndirectRef(3, 0), types.Name("Fit")}, KindList},
		{"array without ref", types.Array{types.Name("Fit"), types.Integer(0)}, KindUnknown},
		{"empty array", types.Array{}, KindUnknown},
		{"string literal", types.StringLiteral("chapter1"), KindNamed},
		{"hex literal", types.HexLiteral("636861707465723"), KindNamed},
		{"integer", types.Integer(7), KindUnknown},
		{"name", types.Name("XYZ"), KindUnknown},
	}
	for _, tt := range tests {
		if got := ClassifyRef(tt.in); got != tt.want {
			t.Errorf("%s: ClassifyRef = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolver_ObjectRefToPage(t *testing.T) {
	doc := &fakeDoc{objects: map[int]types.Object{3: pageDict()}}
	r := NewResolver(doc, NewPageLocator([]int{3, 4}))

	n, ok := r.Resolve(*types.NewIndirectRef(3, 0))
	if !ok || n != 1 {
		t.Errorf("Resolve = (%d, %v), want (1, true)", n, ok)
	}
}

func TestResolver_ObjectRefChased(t *testing.T) {
	// The referenced object is not a page but resolves to a destination
	// array whose first reference is.
	doc := &fakeDoc{objects: map[int]types.Object{
		3: pageDict(),
		7: types.Array{*types.NewIndirectRef(3, 0), types.Name("Fit")},
	}}
	r := NewResolver(doc, NewPageLocator([]int{3}))

	n, ok := r.Resolve(*types.NewIndirectRef(7, 0))
	if !ok || n != 1 {
		t.Errorf("Resolve = (%d, %v), want (1, true)", n, ok)
	}
}

func TestResolver_DictionaryDestination(t *testing.T) {
	doc := &fakeDoc{objects: map[int]types.Object{4: pageDict()}}
	r := NewResolver(doc, NewPageLocator([]int{3, 4}))

	action := types.Dict{
		"S": types.Name("GoTo"),
		"D": types.Array{*types.NewIndirectRef(4, 0), types.Name("Fit")},
	}
	n, ok := r.Resolve(action)
	if !ok || n != 2 {
		t.Errorf("Resolve = (%d, %v), want (2, true)", n, ok)
	}
}

func TestResolver_ListSkipsNonRefs(t *testing.T) {
	doc := &fakeDoc{objects: map[int]types.Object{3: pageDict()}}
	r := NewResolver(doc, NewPageLocator([]int{3}))

	dest := types.Array{types.Integer(0), types.Name("XYZ"), *types.NewIndirectRef(3, 0)}
	n, ok := r.Resolve(dest)
	if !ok || n != 1 {
		t.Errorf("Resolve = (%d, %v), want (1, true)", n, ok)
	}
}

func TestResolver_NamedDestination(t *testing.T) {
	doc := &fakeDoc{
		objects: map[int]types.Object{5: pageDict()},
		named: map[string]types.Object{
			"section.2": types.Array{*types.NewIndirectRef(5, 0), types.Name("Fit")},
		},
	}
	r := NewResolver(doc, NewPageLocator([]int{4, 5}))

	n, ok := r.Resolve(types.StringLiteral("section.2"))
	if !ok || n != 2 {
		t.Errorf("Resolve = (%d, %v), want (2, true)", n, ok)
	}

	if _, ok := r.Resolve(types.StringLiteral("no.such.name")); ok {
		t.Error("expected unknown name to be unresolved")
	}
}

func TestResolver_UnresolvableInputs(t *testing.T) {
	doc := &fakeDoc{objects: map[int]types.Object{}}
	r := NewResolver(doc, NewPageLocator(nil))

	inputs := []types.Object{
		types.Integer(7),
		types.Name("Fit"),
		types.Array{types.Name("Fit")},
		types.Dict{"S": types.Name("GoTo")},       // action without D
		*types.NewIndirectRef(99, 0),              // dangling reference
		nil,
	}
	for _, in := range inputs {
		if _, ok := r.Resolve(in); ok {
			t.Errorf("expected %v to be unresolved", in)
		}
	}
}

func TestResolver_PageNotInLocator(t *testing.T) {
	// A real page object that the page-tree walk never visited.
	doc := &fakeDoc{objects: map[int]types.Object{8: pageDict()}}
	r := NewResolver(doc, NewPageLocator([]int{3, 4}))

	if _, ok := r.Resolve(*types.NewIndirectRef(8, 0)); ok {
		t.Error("expected page outside locator to be unresolved")
	}
}

func TestResolveOutline_FallthroughPriority(t *testing.T) {
	doc := &fakeDoc{objects: map[int]types.Object{
		3: pageDict(),
		4: pageDict(),
	}}
	r := NewResolver(doc, NewPageLocator([]int{3, 4}))

	gotoPage := func(objNr int) types.Dict {
		return types.Dict{
			"S": types.Name("GoTo"),
			"D": types.Array{*types.NewIndirectRef(objNr, 0), types.Name("Fit")},
		}
	}

	items := []pdfdoc.OutlineItem{
		// A broken destination must not mask the working action.
		{Level: 1, Title: "1. Chapter", Dest: *types.NewIndirectRef(99, 0), Action: gotoPage(3)},
		// Structure element as the only candidate.
		{Level: 1, Title: "2. Annex", StructElem: *types.NewIndirectRef(4, 0)},
		// A working destination wins over an action pointing elsewhere.
		{Level: 1, Title: "3. Primary", Dest: *types.NewIndirectRef(3, 0), Action: gotoPage(4)},
		// No candidates at all: dropped.
		{Level: 1, Title: "4. Ghost"},
		// All candidates broken: dropped.
		{Level: 1, Title: "5. Broken", Dest: types.Integer(0), Action: types.Dict{"S": types.Name("GoTo")}},
	}

	entries := ResolveOutline(items, r)
	if len(entries) != 3 {
		t.Fatalf("expected 3 resolved entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Title != "1. Chapter" || entries[0].StartPage != 1 {
		t.Errorf("action fallback: got %+v, want page 1", entries[0])
	}
	if entries[1].Title != "2. Annex" || entries[1].StartPage != 2 {
		t.Errorf("structure-element fallback: got %+v, want page 2", entries[1])
	}
	if entries[2].Title != "3. Primary" || entries[2].StartPage != 1 {
		t.Errorf("dest priority: got %+v, want page 1", entries[2])
	}
}

func TestResolver_CyclicReferences(t *testing.T) {
	// Object 9's destination points back at object 9.
	doc := &fakeDoc{objects: map[int]types.Object{
		9: types.Dict{"D": types.Array{*types.NewIndirectRef(9, 0)}},
	}}
	r := NewResolver(doc, NewPageLocator([]int{1}))

	if _, ok := r.Resolve(*types.NewIndirectRef(9, 0)); ok {
		t.Error("expected cyclic reference graph to be unresolved")
	}
}

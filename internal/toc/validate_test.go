package toc

import "testing"

func buildTestTree(entries []Entry, total int) *Tree {
	return NewBookBuilder().Build(entries, total)
}

func TestValidateTree_WellFormed(t *testing.T) {
	tree := buildTestTree([]Entry{
		{Level: 1, Title: "1. Introduction", StartPage: 1},
		{Level: 2, Title: "1.1 Background", StartPage: 2},
		{Level: 1, Title: "2. Methods", StartPage: 5},
	}, 10)

	if v := ValidateTree(tree); len(v) != 0 {
		t.Errorf("expected no violations, got %v", v)
	}
}

func TestValidateTree_ZeroSpanSection(t *testing.T) {
	// Consecutive entries on the same page yield end = start - 1, which
	// is allowed.
	tree := buildTestTree([]Entry{
		{Level: 1, Title: "1. First", StartPage: 3},
		{Level: 1, Title: "2. Second", StartPage: 3},
	}, 8)

	if v := ValidateTree(tree); len(v) != 0 {
		t.Errorf("expected no violations for zero-span section, got %v", v)
	}
}

func TestValidateTree_DetectsChildOutsideParent(t *testing.T) {
	end5 := 5
	end9 := 9
	child := NewTree()
	child.Insert("Child", &Node{PageStart: 2, PageEnd: &end9, Subsections: NewTree()})
	tree := NewTree()
	tree.Insert("Parent", &Node{PageStart: 1, PageEnd: &end5, Subsections: child})

	v := ValidateTree(tree)
	if len(v) == 0 {
		t.Fatal("expected violation for child ending after parent")
	}
}

func TestValidateTree_DetectsSiblingOverlap(t *testing.T) {
	end6 := 6
	end9 := 9
	tree := NewTree()
	tree.Insert("A", &Node{PageStart: 1, PageEnd: &end6, Subsections: NewTree()})
	tree.Insert("B", &Node{PageStart: 4, PageEnd: &end9, Subsections: NewTree()})

	v := ValidateTree(tree)
	if len(v) == 0 {
		t.Fatal("expected violation for overlapping siblings")
	}
}

func TestSummarize(t *testing.T) {
	tree := buildTestTree([]Entry{
		{Level: 1, Title: "1. Introduction", StartPage: 1},
		{Level: 2, Title: "1.1 Background", StartPage: 2},
		{Level: 3, Title: "1.1.1 History", StartPage: 3},
		{Level: 1, Title: "2. Methods", StartPage: 5},
	}, 10)

	s := Summarize(tree)
	if s.Sections != 4 {
		t.Errorf("Sections = %d, want 4", s.Sections)
	}
	if s.TopLevel != 2 {
		t.Errorf("TopLevel = %d, want 2", s.TopLevel)
	}
	if s.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", s.MaxDepth)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewTree())
	if s.Sections != 0 || s.TopLevel != 0 || s.MaxDepth != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

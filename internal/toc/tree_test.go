package toc

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTree_PreservesInsertionOrder(t *testing.T) {
	tree := NewTree()
	titles := []string{"Zebra", "Alpha", "Middle"}
	for i, title := range titles {
		tree.Insert(title, &Node{PageStart: i + 1, Subsections: NewTree()})
	}

	got := tree.Titles()
	for i, title := range titles {
		if got[i] != title {
			t.Fatalf("title order %v, want %v", got, titles)
		}
	}

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if strings.Index(s, "Zebra") > strings.Index(s, "Alpha") {
		t.Errorf("JSON key order not preserved: %s", s)
	}
}

func TestTree_DuplicateTitleKeepsPosition(t *testing.T) {
	tree := NewTree()
	tree.Insert("A", &Node{PageStart: 1, Subsections: NewTree()})
	tree.Insert("B", &Node{PageStart: 2, Subsections: NewTree()})
	tree.Insert("A", &Node{PageStart: 9, Subsections: NewTree()})

	if tree.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tree.Len())
	}
	if got := tree.Titles(); got[0] != "A" || got[1] != "B" {
		t.Errorf("title order %v, want [A B]", got)
	}
	n, _ := tree.Get("A")
	if n.PageStart != 9 {
		t.Errorf("duplicate insert should replace node, got start %d", n.PageStart)
	}
}

func TestTree_MarshalNesting(t *testing.T) {
	end := 4
	child := NewTree()
	child.Insert("Child", &Node{PageStart: 2, PageEnd: &end, Subsections: NewTree()})
	tree := NewTree()
	tree.Insert("Parent", &Node{PageStart: 1, PageEnd: &end, Subsections: child})

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"Parent":{"page_start":1,"page_end":4,"subsections":{"Child":{"page_start":2,"page_end":4,"subsections":{}}}}}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}
}

func TestTree_NullPageEnd(t *testing.T) {
	tree := NewTree()
	tree.Insert("Open", &Node{PageStart: 1, Subsections: NewTree()})
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"page_end":null`) {
		t.Errorf("expected null page_end, got %s", data)
	}
}

package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `# Book

## Part One

Text here.

### Detail

## Part Two

End.
`
	p := &MarkdownParser{}
	tree, err := p.ParseToC(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Len() != 1 {
		t.Fatalf("expected 1 top-level section, got %v", tree.Titles())
	}

	book, _ := tree.Get("Book")
	if book == nil {
		t.Fatal("expected Book section")
	}
	if book.PageStart != 1 {
		t.Errorf("Book start line = %d, want 1", book.PageStart)
	}
	if book.PageEnd == nil || *book.PageEnd != 11 {
		t.Errorf("Book end line = %v, want 11", book.PageEnd)
	}
	if book.Subsections.Len() != 2 {
		t.Fatalf("expected 2 parts, got %v", book.Subsections.Titles())
	}

	partOne, _ := book.Subsections.Get("Part One")
	if partOne == nil {
		t.Fatal("expected Part One")
	}
	if partOne.PageStart != 3 {
		t.Errorf("Part One start line = %d, want 3", partOne.PageStart)
	}
	if partOne.PageEnd == nil || *partOne.PageEnd != 8 {
		t.Errorf("Part One end line = %v, want 8", partOne.PageEnd)
	}

	detail, _ := partOne.Subsections.Get("Detail")
	if detail == nil {
		t.Fatal("expected Detail under Part One")
	}
	if detail.PageStart != 7 {
		t.Errorf("Detail start line = %d, want 7", detail.PageStart)
	}

	partTwo, _ := book.Subsections.Get("Part Two")
	if partTwo == nil {
		t.Fatal("expected Part Two")
	}
	if partTwo.PageStart != 9 {
		t.Errorf("Part Two start line = %d, want 9", partTwo.PageStart)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	p := &MarkdownParser{}
	tree, err := p.ParseToC(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("expected empty toc for headingless markdown, got %v", tree.Titles())
	}
}

func TestMarkdownParser_CodeBlocksIgnored(t *testing.T) {
	input := "# API Reference\n\n```\n# not a heading\n```\n\n## Endpoints\n"

	p := &MarkdownParser{}
	tree, err := p.ParseToC(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref, _ := tree.Get("API Reference")
	if ref == nil {
		t.Fatal("expected API Reference section")
	}
	if ref.Subsections.Len() != 1 {
		t.Fatalf("expected 1 subsection, got %v", ref.Subsections.Titles())
	}
	if _, ok := ref.Subsections.Get("not a heading"); ok {
		t.Error("heading inside code block should be ignored")
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.ParseToC(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", tree.Len())
	}
}

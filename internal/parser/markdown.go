package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/tocgest/internal/toc"
)

// MarkdownParser derives a ToC from Markdown headings using goldmark.
// Positions are 1-based source lines, so section ranges cover lines
// rather than pages.
type MarkdownParser struct{}

func (p *MarkdownParser) ParseToC(r io.Reader, filename string) (*toc.Tree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var entries []toc.Entry
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := string(h.Text(src))
		if strings.TrimSpace(title) == "" {
			continue
		}
		entries = append(entries, toc.Entry{
			Level:     h.Level,
			Title:     title,
			StartPage: headingLine(src, h),
		})
	}

	// Heading-derived outlines skip the book filter; every heading is
	// real content.
	builder := &toc.Builder{}
	return builder.Build(entries, countLines(src)), nil
}

// headingLine returns the 1-based source line of a heading.
func headingLine(src []byte, h *ast.Heading) int {
	if h.Lines().Len() == 0 {
		return 1
	}
	seg := h.Lines().At(0)
	return 1 + bytes.Count(src[:seg.Start], []byte{'\n'})
}

func countLines(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	n := bytes.Count(src, []byte{'\n'})
	if src[len(src)-1] != '\n' {
		n++
	}
	return n
}

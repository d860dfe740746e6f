package toc

import (
	"regexp"
	"strings"
)

// numberedPattern matches a leading dot-separated numeric section prefix
// such as "2.3.1 " at the start of a title.
var numberedPattern = regexp.MustCompile(`^\d+(\.\d+)*\s`)

// defaultExcludedTitles is boilerplate front and back matter dropped
// from level-1 entries of book outlines.
var defaultExcludedTitles = map[string]struct{}{
	"Contents":         {},
	"Preface":          {},
	"References":       {},
	"Index":            {},
	"Blank Page":       {},
	"Glossary":         {},
	"Appendix":         {},
	"Acknowledgments":  {},
	"About the Author": {},
}

// CleanTitle strips the numeric section prefix from a title if present:
// "2.3.1 Overview" becomes "Overview". Already-clean titles come back
// unchanged apart from a whitespace trim.
func CleanTitle(title string) string {
	t := strings.TrimSpace(title)
	if loc := numberedPattern.FindStringIndex(t); loc != nil {
		return strings.TrimSpace(t[loc[1]:])
	}
	return t
}

// Entry is one outline entry with its resolved start position.
type Entry struct {
	Level     int    // nesting level, 1 = top
	Title     string // raw title as found in the outline
	StartPage int    // resolved 1-based start position
	EndPage   int    // filled by interval inference
}

// Builder filters outline entries and assembles the nested ToC tree.
// The zero value keeps every resolved entry; NewBookBuilder applies the
// book outline heuristic.
type Builder struct {
	// ExcludedTitles drops level-1 entries whose cleaned title matches.
	ExcludedTitles map[string]struct{}
	// RequireNumberedSubsections keeps deeper entries only when their
	// title carries a numeric section prefix.
	RequireNumberedSubsections bool
}

// NewBookBuilder returns a builder tuned for book outlines: level-1
// boilerplate (Contents, Index, ...) is dropped and deeper levels must
// be numbered sections. The exact boundary conditions of this heuristic
// are part of the observable contract; do not loosen them.
func NewBookBuilder() *Builder {
	return &Builder{
		ExcludedTitles:             defaultExcludedTitles,
		RequireNumberedSubsections: true,
	}
}

// keep applies the filtering heuristic to a single entry.
func (b *Builder) keep(e Entry) bool {
	if e.StartPage <= 0 {
		return false
	}
	if e.Level == 1 {
		_, excluded := b.ExcludedTitles[CleanTitle(e.Title)]
		return !excluded
	}
	if b.RequireNumberedSubsections {
		return numberedPattern.MatchString(strings.TrimSpace(e.Title))
	}
	return true
}

// Build filters entries, infers end positions and assembles the nested
// tree. total is the document's last valid position (its page count);
// entries still open at the end are closed against it.
func (b *Builder) Build(entries []Entry, total int) *Tree {
	kept := make([]*Entry, 0, len(entries))
	for i := range entries {
		if b.keep(entries[i]) {
			e := entries[i]
			kept = append(kept, &e)
		}
	}

	inferEndPages(kept, total)

	root := NewTree()
	type frame struct {
		container *Tree
		level     int
	}
	// Root container sits at level 0 and is never popped.
	stack := []frame{{container: root, level: 0}}
	for _, e := range kept {
		for len(stack) > 1 && stack[len(stack)-1].level >= e.Level {
			stack = stack[:len(stack)-1]
		}
		node := &Node{
			PageStart:   e.StartPage,
			PageEnd:     intPtr(e.EndPage),
			Subsections: NewTree(),
		}
		stack[len(stack)-1].container.Insert(CleanTitle(e.Title), node)
		stack = append(stack, frame{container: node.Subsections, level: e.Level})
	}
	return root
}

// inferEndPages closes intervals with a stack walk over entries in
// outline order: each incoming entry closes every open entry at the same
// or deeper level, setting its end to the incoming start minus one. A
// synthetic terminal at level 0 with start total+1 flushes whatever is
// still open, so trailing entries end at the last page.
func inferEndPages(entries []*Entry, total int) {
	var stack []*Entry
	closeAgainst := func(level, start int) {
		for len(stack) > 0 && stack[len(stack)-1].Level >= level {
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			open.EndPage = start - 1
		}
	}
	for _, e := range entries {
		closeAgainst(e.Level, e.StartPage)
		stack = append(stack, e)
	}
	closeAgainst(0, total+1)
}

func intPtr(v int) *int { return &v }

package toc

import "fmt"

// ValidateTree checks the structural invariants of an assembled tree:
// each node's end is no earlier than its start minus one (zero-span
// sections happen when two entries share a start page), child ranges are
// contained in their parent's range, and sibling ranges are disjoint and
// ordered by start. It returns human-readable violations, empty for a
// well-formed tree.
func ValidateTree(t *Tree) []string {
	var out []string
	validateLevel(t, nil, "", &out)
	return out
}

func validateLevel(t *Tree, parent *Node, path string, out *[]string) {
	prevStart, prevEnd := 0, 0
	for _, title := range t.Titles() {
		n, _ := t.Get(title)
		p := path + "/" + title

		end := n.PageStart
		if n.PageEnd != nil {
			end = *n.PageEnd
			if end < n.PageStart-1 {
				*out = append(*out, fmt.Sprintf("%s: end %d precedes start %d", p, end, n.PageStart))
			}
		}

		if parent != nil {
			if n.PageStart < parent.PageStart {
				*out = append(*out, fmt.Sprintf("%s: starts before parent (%d < %d)", p, n.PageStart, parent.PageStart))
			}
			if parent.PageEnd != nil && end > *parent.PageEnd {
				*out = append(*out, fmt.Sprintf("%s: ends after parent (%d > %d)", p, end, *parent.PageEnd))
			}
		}

		if n.PageStart < prevStart {
			*out = append(*out, fmt.Sprintf("%s: siblings out of order (%d after %d)", p, n.PageStart, prevStart))
		}
		if prevEnd > 0 && n.PageStart <= prevEnd {
			*out = append(*out, fmt.Sprintf("%s: overlaps previous sibling ending at %d", p, prevEnd))
		}
		prevStart, prevEnd = n.PageStart, end

		if n.Subsections != nil {
			validateLevel(n.Subsections, n, p, out)
		}
	}
}

// Summary condenses a tree for job status reporting.
type Summary struct {
	Sections int `json:"sections"`
	TopLevel int `json:"top_level"`
	MaxDepth int `json:"max_depth"`
}

// Summarize counts the tree's sections and measures its depth.
func Summarize(t *Tree) Summary {
	s := Summary{TopLevel: t.Len()}
	var walk func(t *Tree, depth int)
	walk = func(t *Tree, depth int) {
		if t.Len() > 0 && depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		for _, title := range t.Titles() {
			n, _ := t.Get(title)
			s.Sections++
			if n.Subsections != nil {
				walk(n.Subsections, depth+1)
			}
		}
	}
	walk(t, 1)
	return s
}

package toc

import (
	"bytes"
	"encoding/json"
)

// Node is one assembled ToC section with its inferred page range.
type Node struct {
	PageStart   int   `json:"page_start"`
	PageEnd     *int  `json:"page_end"`
	Subsections *Tree `json:"subsections"`
}

// Tree maps cleaned section titles to nodes and preserves document order
// when serialized. An empty tree marshals to {}.
type Tree struct {
	titles []string
	nodes  map[string]*Node
}

func NewTree() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

// Insert adds or replaces a node. A duplicate title keeps its original
// position, matching insertion-ordered map semantics.
func (t *Tree) Insert(title string, n *Node) {
	if _, exists := t.nodes[title]; !exists {
		t.titles = append(t.titles, title)
	}
	t.nodes[title] = n
}

// Get returns the node for title.
func (t *Tree) Get(title string) (*Node, bool) {
	n, ok := t.nodes[title]
	return n, ok
}

// Len returns the number of direct children.
func (t *Tree) Len() int { return len(t.titles) }

// Titles returns direct-child titles in document order.
func (t *Tree) Titles() []string {
	out := make([]string, len(t.titles))
	copy(out, t.titles)
	return out
}

// MarshalJSON emits a JSON object with keys in insertion order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, title := range t.titles {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(title)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(t.nodes[title])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

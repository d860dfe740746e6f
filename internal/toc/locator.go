package toc

// PageLocator maps page object numbers to 1-based page numbers. It is
// built once per document from the ordered page-tree traversal and is
// immutable afterwards.
type PageLocator struct {
	pageNum map[int]int
	total   int
}

// NewPageLocator builds the mapping from page object numbers in document
// order. An empty traversal yields zero pages; every lookup then misses
// and downstream resolution reports all entries unresolved.
func NewPageLocator(pageObjNrs []int) *PageLocator {
	m := make(map[int]int, len(pageObjNrs))
	for i, objNr := range pageObjNrs {
		m[objNr] = i + 1
	}
	return &PageLocator{pageNum: m, total: len(m)}
}

// PageNumber returns the 1-based page number of a page object number.
func (l *PageLocator) PageNumber(objNr int) (int, bool) {
	n, ok := l.pageNum[objNr]
	return n, ok
}

// TotalPages returns the document's page count.
func (l *PageLocator) TotalPages() int { return l.total }

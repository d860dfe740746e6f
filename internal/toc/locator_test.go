package toc

import "testing"

func TestPageLocator_Mapping(t *testing.T) {
	// Object numbers arrive in document order but are not themselves
	// ordered.
	l := NewPageLocator([]int{12, 3, 47})

	tests := []struct {
		objNr int
		want  int
		ok    bool
	}{
		{12, 1, true},
		{3, 2, true},
		{47, 3, true},
		{99, 0, false},
	}
	for _, tt := range tests {
		got, ok := l.PageNumber(tt.objNr)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PageNumber(%d) = (%d, %v), want (%d, %v)", tt.objNr, got, ok, tt.want, tt.ok)
		}
	}

	if l.TotalPages() != 3 {
		t.Errorf("TotalPages() = %d, want 3", l.TotalPages())
	}
}

func TestPageLocator_Empty(t *testing.T) {
	l := NewPageLocator(nil)
	if l.TotalPages() != 0 {
		t.Errorf("TotalPages() = %d, want 0", l.TotalPages())
	}
	if _, ok := l.PageNumber(1); ok {
		t.Error("expected miss on empty locator")
	}
}

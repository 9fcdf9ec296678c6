package services

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		number     int
		size       int
		wantPages  int
		wantFirst  bool
		wantLast   bool
	}{
		{"empty", 0, 0, 10, 0, true, true},
		{"single partial page", 7, 0, 10, 1, true, true},
		{"exact boundary", 20, 1, 10, 2, false, true},
		{"middle page", 35, 1, 10, 4, false, false},
		{"last partial page", 35, 3, 10, 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, tt.total, tt.number, tt.size)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.First != tt.wantFirst {
				t.Errorf("First = %v, want %v", p.First, tt.wantFirst)
			}
			if p.Last != tt.wantLast {
				t.Errorf("Last = %v, want %v", p.Last, tt.wantLast)
			}
		})
	}
}

func TestNewPage_NilContentBecomesEmptySlice(t *testing.T) {
	p := NewPage[int](nil, 0, 0, 10)
	if p.Content == nil {
		t.Error("expected non-nil content slice")
	}
}

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 10, 0, 10},
		{-1, 10, 0, 10},
		{2, 0, 2, 10},
		{2, 500, 2, 10},
		{1, 25, 1, 25},
	}

	for _, tt := range tests {
		gotPage, gotSize := normalizePaging(tt.page, tt.size)
		if gotPage != tt.wantPage || gotSize != tt.wantSize {
			t.Errorf("normalizePaging(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.size, gotPage, gotSize, tt.wantPage, tt.wantSize)
		}
	}
}

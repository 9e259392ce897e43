package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page defaults", 0, 10, 0, 10},
		{"zero size defaults", 2, 0, 10, 10},
		{"oversized limit clamps", 2, 500, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("got (%d, %d), want (%d, %d)", offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestNewPaginationInfoEchoesPagePastEnd(t *testing.T) {
	info := NewPaginationInfo(5, 4, 2)
	if info.Current != 4 || info.Pages != 3 || info.Total != 5 || info.Limit != 2 {
		t.Errorf("unexpected pagination %+v", info)
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		offset, limit, total int
		wantStart, wantEnd   int
	}{
		{0, 10, 25, 0, 10},
		{20, 10, 25, 20, 25},
		{30, 10, 25, 25, 25},
		{0, 0, 5, 0, 5},
	}
	for _, tt := range tests {
		start, end := CalculateSliceIndices(tt.offset, tt.limit, tt.total)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("CalculateSliceIndices(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.offset, tt.limit, tt.total, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

package elementpager

import (
	"math"
	"testing"
)

func Test_IsNormalizedItemsPerPage(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		want     int
		isStrict bool
	}{
		{"zero uses default", 0, DefaultItemsPerPage, false},
		{"negative uses default", -4, DefaultItemsPerPage, false},
		{"positive unchanged", 6, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strict := IsNormalizedItemsPerPage(tt.in)
			if got != tt.want || strict != tt.isStrict {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, strict, tt.want, tt.isStrict)
			}
		})
	}
}

func Test_PageCount(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		itemsPerPage int
		want         int
	}{
		{"ten by three", 10, 3, 4},
		{"exact multiple", 9, 3, 3},
		{"single page", 5, 5, 1},
		{"no elements", 0, 3, 0},
		{"negative count", -2, 3, 0},
		{"invalid page size uses default", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageCount(tt.count, tt.itemsPerPage); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_IsNormalizedPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageCount int
		want      int
		isStrict  bool
	}{
		{"in range", 2, 4, 2, true},
		{"first", 0, 4, 0, true},
		{"last", 3, 4, 3, true},
		{"below range", -1, 4, 0, false},
		{"above range", 4, 4, 3, false},
		{"single page", 5, 1, 0, false},
		{"no pages", 3, 0, 0, false},
		{"no pages zero", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strict := IsNormalizedPage(tt.page, tt.pageCount)
			if got != tt.want || strict != tt.isStrict {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, strict, tt.want, tt.isStrict)
			}
		})
	}
}

func Test_LimitPageNumber(t *testing.T) {
	type pageAlias int

	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int in range", 2, 2},
		{"negative int", -1, 0},
		{"int above range", 10, 3},
		{"int64 max", int64(math.MaxInt64), 3},
		{"int8", int8(1), 1},
		{"named int", pageAlias(3), 3},
		{"uint above range", uint(7), 3},
		{"uint8", uint8(2), 2},
		{"float truncated", 2.9, 2},
		{"negative float", -0.5, 0},
		{"float above range", float32(12.5), 3},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 3},
		{"numeric string", "3", 0},
		{"nil", nil, 0},
		{"struct", struct{}{}, 0},
		{"pointer", new(int), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LimitPageNumber(tt.in, 4); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}

	if got := LimitPageNumber(2, 0); got != 0 {
		t.Errorf("no pages: got %d want 0", got)
	}
}

func Test_PageBounds(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		itemsPerPage int
		count        int
		start, end   int
	}{
		{"first page", 0, 3, 10, 0, 3},
		{"short last page", 3, 3, 10, 9, 10},
		{"clamped page", 7, 3, 10, 9, 10},
		{"negative page", -2, 3, 10, 0, 3},
		{"empty sequence", 0, 3, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.page, tt.itemsPerPage, tt.count)
			if start != tt.start || end != tt.end {
				t.Errorf("%s: got [%d,%d) want [%d,%d)", tt.name, start, end, tt.start, tt.end)
			}
		})
	}
}

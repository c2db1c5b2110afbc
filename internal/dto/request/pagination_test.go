package request

import "testing"

func TestPageRequestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantTake   int
		wantOffset int
	}{
		{"defaults", 1, 0, 10, 0},
		{"mid page", 3, 20, 20, 40},
		{"limit above cap", 2, 200, 100, 100},
		{"limit at cap", 2, 100, 100, 100},
		{"page below one", 0, 10, 10, 0},
		{"negative limit", 1, -5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PageRequest{Page: tt.page, Limit: tt.limit}
			if got := p.Take(); got != tt.wantTake {
				t.Errorf("Take() = %d, want %d", got, tt.wantTake)
			}
			if got := p.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", got, tt.wantOffset)
			}
		})
	}
}

package utils

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		value        string
		defaultValue int
		want         int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-3", 10, 10},
		{"100", 10, 100},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.value, tt.defaultValue); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
		}
	}
}

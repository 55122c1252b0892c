package feed

import (
	"math"
	"testing"
)

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"3", 3},
		{" 2 ", 2},
		{"0", 0},
		{"-5", -5},
		{"abc", 1},
		{"2.0", 1},
		{"1e3", 1},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParsePageNumber(tt.raw); got != tt.want {
				t.Errorf("ParsePageNumber(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
	}

	for _, tt := range tests {
		if got := NumPages(tt.count); got != tt.want {
			t.Errorf("NumPages(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		number, numPages, want int
	}{
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{0, 3, 1},
		{-1, 3, 1},
		{math.MaxInt, 3, 3},
		{math.MinInt, 3, 1},
		{5, 1, 1},
	}

	for _, tt := range tests {
		if got := ClampPage(tt.number, tt.numPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.number, tt.numPages, got, tt.want)
		}
	}
}

package bitutil

import (
	"math"
	"testing"
)

func TestNLZ32(t *testing.T) {
	tests := []struct {
		x    uint32
		want int
	}{
		{0, 32},
		{1, 31},
		{0x80000000, 0},
	}
	for _, tt := range tests {
		if got := NLZ32(tt.x); got != tt.want {
			t.Errorf("NLZ32(%#x) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestRoundUpPow2(t *testing.T) {
	tests := []struct {
		x    uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{5, 8},
		{1 << 31, 1 << 31},
	}
	for _, tt := range tests {
		if got := RoundUpPow2(tt.x); got != tt.want {
			t.Errorf("RoundUpPow2(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0.5, 1},
		{-0.5, -1},
		{1.5, 2},
		{-1.5, -2},
		{0.49, 0},
		{2.5, 3},
	}
	for _, tt := range tests {
		if got := RoundHalfAwayFromZero(tt.d); got != tt.want {
			t.Errorf("RoundHalfAwayFromZero(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{1.0, 0.0},
		{2.0, 1.0},
		{8.0, 3.0},
		{0.5, -1.0},
	}
	for _, tt := range tests {
		if got := Log2(tt.d); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Log2(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

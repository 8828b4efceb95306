package types

import (
	"math"
	"testing"
)

func TestFurnitureVolume(t *testing.T) {
	cases := []struct {
		name     string
		l, w, h  float64
		quantity int
		want     float64
	}{
		{"sofa", 200, 80, 85, 1, 1.36},
		{"four chairs", 45, 45, 90, 4, 0.729},
		{"zero quantity", 100, 100, 100, 0, 0},
	}
	for _, tc := range cases {
		got := FurnitureVolume(tc.l, tc.w, tc.h, tc.quantity)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidMoveStatus(t *testing.T) {
	for _, s := range []string{"draft", "confirmed", "completed", "cancelled"} {
		if !ValidMoveStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "Draft", "shipped", "done"} {
		if ValidMoveStatus(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

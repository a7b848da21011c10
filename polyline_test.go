package glyphforge

import (
	"math"
	"testing"
)

func TestPolyline_Length(t *testing.T) {
	tests := []struct {
		name string
		pl   Polyline
		want float64
	}{
		{"empty", Polyline{}, 0},
		{"single point", Polyline{Pt(3, 3)}, 0},
		{"two points", Polyline{Pt(0, 0), Pt(3, 4)}, 5},
		{"L shape", Polyline{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, 20},
		{"duplicate points", Polyline{Pt(1, 1), Pt(1, 1), Pt(4, 5)}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pl.Length(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolyline_LengthReversalInvariant(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(3, 7), Pt(-2, 4), Pt(8, 8), Pt(1, -5)}
	forward := pl.Length()
	backward := pl.Reverse().Length()
	if math.Abs(forward-backward) > epsilon {
		t.Errorf("length changed under reversal: %v vs %v", forward, backward)
	}
}

func TestPolyline_Reverse(t *testing.T) {
	pl := Polyline{Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	got := pl.Reverse()
	want := Polyline{Pt(3, 3), Pt(2, 2), Pt(1, 1)}
	for i := range want {
		if !pointsEqual(got[i], want[i], epsilon) {
			t.Fatalf("Reverse() = %v, want %v", got, want)
		}
	}
	// Input must not be mutated.
	if !pointsEqual(pl[0], Pt(1, 1), epsilon) {
		t.Error("Reverse mutated its input")
	}
}

func TestPolyline_Clone(t *testing.T) {
	pl := Polyline{Pt(1, 2), Pt(3, 4)}
	dup := pl.Clone()
	dup[0] = Pt(9, 9)
	if !pointsEqual(pl[0], Pt(1, 2), epsilon) {
		t.Error("Clone shares backing storage with the original")
	}
	if Polyline(nil).Clone() != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestPolyline_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		pl       Polyline
		min, max Point
	}{
		{"empty", Polyline{}, Pt(0, 0), Pt(0, 0)},
		{"single", Polyline{Pt(2, 3)}, Pt(2, 3), Pt(2, 3)},
		{"mixed", Polyline{Pt(5, -1), Pt(-2, 8), Pt(3, 3)}, Pt(-2, -1), Pt(5, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.pl.Bounds()
			if !pointsEqual(min, tt.min, epsilon) || !pointsEqual(max, tt.max, epsilon) {
				t.Errorf("Bounds() = %v, %v, want %v, %v", min, max, tt.min, tt.max)
			}
		})
	}
}

func TestPolyline_IsClosed(t *testing.T) {
	tests := []struct {
		name string
		pl   Polyline
		eps  float64
		want bool
	}{
		{"closed triangle", Polyline{Pt(0, 0), Pt(10, 0), Pt(5, 5), Pt(0, 0)}, epsilon, true},
		{"open line", Polyline{Pt(0, 0), Pt(10, 0), Pt(5, 5)}, epsilon, false},
		{"nearly closed within eps", Polyline{Pt(0, 0), Pt(10, 0), Pt(5, 5), Pt(0.4, 0)}, 0.5, true},
		{"two points", Polyline{Pt(0, 0), Pt(0, 0)}, epsilon, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pl.IsClosed(tt.eps); got != tt.want {
				t.Errorf("IsClosed(%v) = %v, want %v", tt.eps, got, tt.want)
			}
		})
	}
}

package rip

import "testing"

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range Directions() {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v, want %v", d, d.Opposite().Opposite(), d)
		}
		if d.Opposite() == d {
			t.Errorf("Opposite(%v) == %v, want a different direction", d, d)
		}
	}
}

func TestDirection_PerpendicularTo(t *testing.T) {
	for _, d := range Directions() {
		for _, e := range Directions() {
			got := d.PerpendicularTo(e)
			want := d.axis() != e.axis()
			if got != want {
				t.Errorf("PerpendicularTo(%v, %v) = %v, want %v", d, e, got, want)
			}
			if d == e && got {
				t.Errorf("PerpendicularTo(%v, %v) should be false for equal directions", d, e)
			}
			if d.Opposite() == e && got {
				t.Errorf("PerpendicularTo(%v, %v) should be false for opposite directions", d, e)
			}
		}
	}
}

func TestDirection_PerpendicularSymmetric(t *testing.T) {
	for _, d := range Directions() {
		for _, e := range Directions() {
			if d.PerpendicularTo(e) != e.PerpendicularTo(d) {
				t.Errorf("PerpendicularTo is not symmetric for %v, %v", d, e)
			}
		}
	}
}

func TestDirection_Vector(t *testing.T) {
	cases := map[Direction][3]float32{
		XPos: {1, 0, 0},
		XNeg: {-1, 0, 0},
		YPos: {0, 1, 0},
		YNeg: {0, -1, 0},
		ZPos: {0, 0, 1},
		ZNeg: {0, 0, -1},
	}
	for d, want := range cases {
		v := d.Vector()
		if v.X() != want[0] || v.Y() != want[1] || v.Z() != want[2] {
			t.Errorf("%v.Vector() = %v, want %v", d, v, want)
		}
	}
}

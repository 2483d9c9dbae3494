package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTravelDirection(t *testing.T) {
	cases := []struct {
		from, to mgl32.Vec3
		want     mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{3, 0, 3}, mgl32.Vec3{3, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 4, 4}, mgl32.Vec3{0, 1, 1}},
	}
	for _, c := range cases {
		got := TravelDirection(c.from, c.to)
		if !Vec3ApproxEq(got, c.want) {
			t.Fatalf("TravelDirection(%v, %v) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCardinalAngle(t *testing.T) {
	angle, err := CardinalAngle("West")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Float32ApproxEq(angle, CardinalDirections["west"]) {
		t.Fatalf("expected west angle, got %v", angle)
	}
	if _, err := CardinalAngle("up"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}

package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq compares two vectors component-wise with Float32ApproxEq.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a[0], b[0]) && Float32ApproxEq(a[1], b[1]) && Float32ApproxEq(a[2], b[2])
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// AbsVec32 returns the absolute value of each component of the vector.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec[0]), math32.Abs(vec[1]), math32.Abs(vec[2])}
}

// TravelDirection snaps the movement from one position to another onto a unit step
// in the y/z plane. The x component is always zero. A zero movement yields a step
// along +y.
func TravelDirection(from, to mgl32.Vec3) mgl32.Vec3 {
	angle := math32.Atan2(to.Z()-from.Z(), to.Y()-from.Y())
	return mgl32.Vec3{0, math32.Round(math32.Cos(angle)), math32.Round(math32.Sin(angle))}
}

package game

import (
	"math"
	"strings"

	"github.com/oomph-ac/platsim/oerror"
)

// CardinalDirections maps compass names to facing angles in radians. North faces
// up the screen, which is -z.
var CardinalDirections = map[string]float32{
	"north": float32(math.Pi * 1.5),
	"east":  0,
	"south": float32(math.Pi / 2),
	"west":  float32(math.Pi),
}

// CardinalAngle returns the facing angle for a compass name.
func CardinalAngle(name string) (float32, error) {
	angle, ok := CardinalDirections[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, oerror.New("unknown cardinal direction %q", name)
	}
	return angle, nil
}

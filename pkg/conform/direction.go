package conform

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction selects one of the six axis-aligned cast directions.
type Direction int

const (
	DirDown Direction = iota // -Z, the default
	DirUp                    // +Z
	DirNegX
	DirPosX
	DirNegY
	DirPosY
)

// Vec returns the unit vector for the direction.
func (d Direction) Vec() mgl64.Vec3 {
	switch d {
	case DirUp:
		return mgl64.Vec3{0, 0, 1}
	case DirNegX:
		return mgl64.Vec3{-1, 0, 0}
	case DirPosX:
		return mgl64.Vec3{1, 0, 0}
	case DirNegY:
		return mgl64.Vec3{0, -1, 0}
	case DirPosY:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, -1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "+z"
	case DirNegX:
		return "-x"
	case DirPosX:
		return "+x"
	case DirNegY:
		return "-y"
	case DirPosY:
		return "+y"
	default:
		return "-z"
	}
}

// ParseDirection converts a direction name ("down", "-z", "+x", ...) to a
// Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down", "-z":
		return DirDown, nil
	case "up", "+z", "z":
		return DirUp, nil
	case "-x":
		return DirNegX, nil
	case "+x", "x":
		return DirPosX, nil
	case "-y":
		return DirNegY, nil
	case "+y", "y":
		return DirPosY, nil
	default:
		return DirDown, fmt.Errorf("unknown cast direction %q", s)
	}
}

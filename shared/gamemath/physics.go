package gamemath

import "math"

// ApplyFriction decays speed multiplicatively. A friction of 1 leaves the
// speed unchanged, 0 stops it outright.
func ApplyFriction(speed, friction float64) float64 {
	return speed * friction
}

// ClampSpeed limits the magnitude of speed to max while keeping its sign.
func ClampSpeed(speed, max float64) float64 {
	if math.Abs(speed) > max {
		return max * sign(speed)
	}
	return speed
}

// TileIndex converts a world coordinate to a grid index for tiles of the
// given size.
func TileIndex(coord, tileSize float64) int {
	return int(math.Floor(coord / tileSize))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

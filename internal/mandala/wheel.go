// Package mandala maps ecliptic longitudes onto the 64-gate wheel and
// its sub-divisions (line, color, tone, base).
package mandala

import "math"

// #region wheel

// IChingOffset synchronizes the I-Ching circle with the zodiac: the
// wheel starts at gate 41, 58 degrees into the zodiac (Ra Uru Hu).
const IChingOffset = 58.0

// GateWidth is the arc covered by one gate: 360/64 degrees.
const GateWidth = 360.0 / 64.0

// Wheel is the gate order around the bodygraph wheel, starting at the
// synchronized zero point.
var Wheel = [64]int{
	41, 19, 13, 49, 30, 55, 37, 63, 22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35, 45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64, 47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5, 26, 11, 10, 58, 38, 54, 61, 60,
}

// #endregion wheel

// #region position

// Position is a longitude resolved into the wheel's nested divisions:
// gate (1-64 wheel order), line (1-6), color (1-6), tone (1-6),
// base (1-5).
type Position struct {
	Longitude float64
	Gate      int
	Line      int
	Color     int
	Tone      int
	Base      int
}

// At resolves an ecliptic longitude in degrees to its wheel position.
// Intervals are half-open: a longitude exactly on a boundary belongs to
// the higher division.
func At(lon float64) Position {
	angle := norm360(lon + IChingOffset)
	frac := angle / 360

	idx := int(frac * 64)
	if idx > 63 {
		idx = 63
	}

	return Position{
		Longitude: norm360(lon),
		Gate:      Wheel[idx],
		Line:      int(math.Mod(frac*64*6, 6)) + 1,
		Color:     int(math.Mod(frac*64*6*6, 6)) + 1,
		Tone:      int(math.Mod(frac*64*6*6*6, 6)) + 1,
		Base:      int(math.Mod(frac*64*6*6*6*5, 5)) + 1,
	}
}

// Opposite returns the longitude 180 degrees across the wheel. Earth
// mirrors the Sun; the South Node mirrors the North Node.
func Opposite(lon float64) float64 {
	return norm360(lon + 180)
}

// #endregion position

func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

package ephem

import "fmt"

// #region sun-longitude

// SunLongitude returns the apparent geocentric ecliptic longitude of the
// Sun in degrees for a Julian day, per Meeus' lower-accuracy solar
// theory (about 0.01 degrees).
func SunLongitude(jd float64) float64 {
	t := centuries(jd)

	// Geometric mean longitude and mean anomaly.
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t

	// Equation of center.
	c := (1.914602-0.004817*t-0.000014*t*t)*sinDeg(m) +
		(0.019993-0.000101*t)*sinDeg(2*m) +
		0.000289*sinDeg(3*m)

	trueLon := l0 + c

	// Apparent longitude: aberration and nutation.
	omega := 125.04 - 1934.136*t
	apparent := trueLon - 0.00569 - 0.00478*sinDeg(omega)

	return norm360(apparent)
}

// #endregion sun-longitude

// #region crossing

// SunCrossing finds the earliest Julian day at or after start when the
// Sun's apparent longitude reaches target (degrees). The search brackets
// the crossing with daily steps, then bisects to sub-second precision.
func SunCrossing(target, start float64) (float64, error) {
	const maxDays = 400

	delta := func(jd float64) float64 {
		return norm180(SunLongitude(jd) - target)
	}

	lo := start
	dLo := delta(lo)
	for i := 1; i <= maxDays; i++ {
		hi := start + float64(i)
		dHi := delta(hi)
		// The Sun advances ~1 degree/day, so the signed offset passes
		// through zero from below exactly once per crossing.
		if dLo < 0 && dHi >= 0 {
			for iter := 0; iter < 60; iter++ {
				mid := (lo + hi) / 2
				if delta(mid) < 0 {
					lo = mid
				} else {
					hi = mid
				}
			}
			return (lo + hi) / 2, nil
		}
		lo, dLo = hi, dHi
	}
	return 0, errNoCrossing(target, start)
}

// DesignJD returns the Julian day of the design moment: the Sun 88
// degrees of solar arc before birth, roughly three months earlier.
func DesignJD(birthJD float64) (float64, error) {
	target := norm360(SunLongitude(birthJD) - 88)
	return SunCrossing(target, birthJD-100)
}

func errNoCrossing(target, start float64) error {
	return fmt.Errorf("no solar crossing of %.4f deg within 400 days of jd %.4f", target, start)
}

// #endregion crossing

package ephem

import (
	"fmt"
	"math"
)

// #region bodies

// Body identifies a celestial body the chart pipeline samples.
type Body int

const (
	Sun Body = iota
	Moon
	TrueNode
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// Longitude returns the apparent geocentric ecliptic longitude of a
// body in degrees for a Julian day.
func Longitude(jd float64, body Body) (float64, error) {
	switch body {
	case Sun:
		return SunLongitude(jd), nil
	case Moon:
		return MoonLongitude(jd), nil
	case TrueNode:
		return TrueNodeLongitude(jd), nil
	case Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto:
		return planetLongitude(jd, body)
	default:
		return 0, fmt.Errorf("unknown body %d", body)
	}
}

// #endregion bodies

// #region elements

// elements holds J2000 Keplerian orbital elements and their rates per
// Julian century: semi-major axis (au), eccentricity, inclination,
// mean longitude, longitude of perihelion, longitude of the ascending
// node (degrees).
type elements struct {
	a, e, i, l, lp, o     float64
	da, de, di, dl, dp, do float64
}

// JPL approximate elements for 1800-2050 (Standish, "Approximate
// Positions of the Planets", table 1). emBary is the Earth-Moon
// barycenter used as the observer.
var (
	emBary = elements{
		1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0,
	}

	planetElements = map[Body]elements{
		Mercury: {
			0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
			0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
		},
		Venus: {
			0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
			0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
		},
		Mars: {
			1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
			0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
		},
		Jupiter: {
			5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
			-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
		},
		Saturn: {
			9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
			-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
		},
		Uranus: {
			19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
			-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589,
		},
		Neptune: {
			30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
			0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664,
		},
		Pluto: {
			39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684,
			-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482,
		},
	}
)

// #endregion elements

// #region kepler

// heliocentric computes the J2000-ecliptic heliocentric position (au)
// of a body from its osculating elements at time t (centuries).
func heliocentric(el elements, t float64) (x, y, z float64) {
	a := el.a + el.da*t
	e := el.e + el.de*t
	i := el.i + el.di*t
	l := el.l + el.dl*t
	lp := el.lp + el.dp*t
	o := el.o + el.do*t

	// Argument of perihelion and mean anomaly.
	w := lp - o
	m := norm180(l - lp)

	ecc := solveKepler(m, e)

	// Position in the orbital plane, perihelion on the x axis.
	xp := a * (cosDeg(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * sinDeg(ecc)

	cw, sw := cosDeg(w), sinDeg(w)
	co, so := cosDeg(o), sinDeg(o)
	ci, si := cosDeg(i), sinDeg(i)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

// solveKepler solves M = E - e*sin(E) by Newton iteration. Angles in
// degrees.
func solveKepler(m, e float64) float64 {
	eDeg := e * 180 / math.Pi
	ecc := m + eDeg*sinDeg(m)
	for iter := 0; iter < 20; iter++ {
		dm := m - (ecc - eDeg*sinDeg(ecc))
		dE := dm / (1 - e*cosDeg(ecc))
		ecc += dE
		if math.Abs(dE) < 1e-9 {
			break
		}
	}
	return ecc
}

// planetLongitude computes the geocentric ecliptic-of-date longitude of
// a planet: heliocentric vectors for the planet and the Earth-Moon
// barycenter, differenced and precessed from the J2000 frame.
func planetLongitude(jd float64, body Body) (float64, error) {
	el, ok := planetElements[body]
	if !ok {
		return 0, fmt.Errorf("no elements for body %d", body)
	}
	t := centuries(jd)

	px, py, _ := heliocentric(el, t)
	ex, ey, _ := heliocentric(emBary, t)

	lon := math.Atan2(py-ey, px-ex) * 180 / math.Pi

	// General precession in longitude from J2000 to the date, plus the
	// principal nutation term, so longitudes are tropical of date.
	omega := 125.04452 - 1934.136261*t
	lon += 1.39697*t - 0.00478*sinDeg(omega)

	return norm360(lon), nil
}

// #endregion kepler

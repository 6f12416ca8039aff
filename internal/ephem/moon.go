package ephem

// #region lunar-args

// lunarArgs holds the fundamental arguments of the lunar theory in
// degrees: mean longitude, mean elongation, solar mean anomaly, lunar
// mean anomaly, argument of latitude, and the eccentricity factor E.
type lunarArgs struct {
	lp, d, m, mp, f, e float64
}

func lunarArgsAt(t float64) lunarArgs {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	return lunarArgs{
		lp: norm360(218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000),
		d:  norm360(297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000),
		m:  norm360(357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000),
		mp: norm360(134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000),
		f:  norm360(93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000),
		e:  1 - 0.002516*t - 0.0000074*t2,
	}
}

// #endregion lunar-args

// #region lunar-series

// lunarTerm is one periodic term of the longitude series: multiples of
// D, M, M', F and the sine coefficient in 1e-6 degrees.
type lunarTerm struct {
	d, m, mp, f int
	coeff       float64
}

// Principal terms of the ELP longitude series (Meeus table 47.A).
// Truncated below 2000e-6 deg; worst-case error is a few millidegrees,
// far inside the 0.9375 deg line width.
var lunarLonTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
}

// MoonLongitude returns the apparent geocentric ecliptic longitude of
// the Moon in degrees for a Julian day.
func MoonLongitude(jd float64) float64 {
	t := centuries(jd)
	a := lunarArgsAt(t)

	var sum float64
	for _, term := range lunarLonTerms {
		arg := float64(term.d)*a.d + float64(term.m)*a.m +
			float64(term.mp)*a.mp + float64(term.f)*a.f
		c := term.coeff
		// Terms involving the solar anomaly scale with eccentricity.
		switch term.m {
		case 1, -1:
			c *= a.e
		case 2, -2:
			c *= a.e * a.e
		}
		sum += c * sinDeg(arg)
	}

	// Additive terms: Venus and Jupiter perturbations, flattening.
	a1 := norm360(119.75 + 131.849*t)
	a2 := norm360(53.09 + 479264.290*t)
	sum += 3958*sinDeg(a1) + 1962*sinDeg(a.lp-a.f) + 318*sinDeg(a2)

	lon := a.lp + sum/1e6

	// Nutation in longitude (principal term).
	omega := 125.04452 - 1934.136261*t
	lon += -0.00478 * sinDeg(omega)

	return norm360(lon)
}

// #endregion lunar-series

// #region true-node

// TrueNodeLongitude returns the longitude of the Moon's true ascending
// node in degrees: the mean node plus the principal periodic
// corrections. The node regresses through the zodiac (~0.053 deg/day).
func TrueNodeLongitude(jd float64) float64 {
	t := centuries(jd)
	a := lunarArgsAt(t)

	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	mean := 125.0445479 - 1934.1362891*t + 0.0020754*t2 + t3/467441 - t4/60616000

	node := mean -
		1.4979*sinDeg(2*(a.d-a.f)) -
		0.1500*sinDeg(a.m) -
		0.1226*sinDeg(2*a.d) +
		0.1176*sinDeg(2*a.f) -
		0.0801*sinDeg(2*(a.mp-a.f))

	return norm360(node)
}

// #endregion true-node

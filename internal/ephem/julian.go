// Package ephem computes the planetary ecliptic longitudes and the date
// arithmetic the chart pipeline needs. It replaces the Swiss Ephemeris
// with a self-contained planetary theory: Meeus' solar series, a
// truncated ELP lunar series, and the JPL Keplerian-element
// approximation for the planets (valid 1800-2050).
package ephem

import (
	"fmt"
	"math"
	"time"
)

// J2000 is the Julian day of the standard epoch 2000 January 1.5 TT.
const J2000 = 2451545.0

// #region julian-day

// JulianDay converts a Gregorian calendar date plus a fractional day in
// UTC to a Julian day number.
func JulianDay(year, month, day int, dayFrac float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + b - 1524.5
	return jd + dayFrac
}

// FromUTC converts a UTC civil timestamp to a Julian day.
func FromUTC(year, month, day, hour, minute int, second float64) float64 {
	frac := (float64(hour) + float64(minute)/60 + second/3600) / 24
	return JulianDay(year, month, day, frac)
}

// FromLocal converts a local civil timestamp with a UTC offset in
// decimal hours (e.g. 5.5 for UTC+5:30) to a Julian day.
func FromLocal(year, month, day, hour, minute int, second, offsetHours float64) float64 {
	return FromUTC(year, month, day, hour, minute, second) - offsetHours/24
}

// #endregion julian-day

// #region civil

// Civil converts a Julian day back to a Gregorian UTC timestamp.
func Civil(jd float64) (year, month, day, hour, minute int, second float64) {
	z, f := math.Modf(jd + 0.5)
	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	dayF := b - d - math.Floor(30.6001*e) + f
	day = int(dayF)

	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}

	frac := dayF - float64(day)
	secs := frac * 86400
	hour = int(secs / 3600)
	minute = int(math.Mod(secs, 3600) / 60)
	second = math.Mod(secs, 60)
	return year, month, day, hour, minute, second
}

// #endregion civil

// #region zone-offset

// ZoneOffsetHours resolves an IANA zone name to the UTC offset in decimal
// hours in effect at the given local time. DST is respected.
func ZoneOffsetHours(zone string, year, month, day, hour, minute, second int) (float64, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0, fmt.Errorf("load zone %s: %w", zone, err)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	_, offsetSec := t.Zone()
	return float64(offsetSec) / 3600, nil
}

// #endregion zone-offset

// #region angle-helpers

// norm360 wraps an angle in degrees to [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// norm180 wraps an angle in degrees to (-180, 180].
func norm180(deg float64) float64 {
	deg = norm360(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

// centuries returns Julian centuries since J2000 for a Julian day.
func centuries(jd float64) float64 {
	return (jd - J2000) / 36525
}

// #endregion angle-helpers

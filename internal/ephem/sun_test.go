package ephem

import (
	"math"
	"testing"
)

func TestSunLongitudeAtJ2000(t *testing.T) {
	// Early January: Sun near 280 degrees (Capricorn).
	lon := SunLongitude(J2000)
	if math.Abs(lon-280.46) > 0.1 {
		t.Fatalf("expected ~280.46, got %f", lon)
	}
}

func TestSunLongitudeMarchEquinox(t *testing.T) {
	// 2000 March 20, 07:35 UTC.
	jd := FromUTC(2000, 3, 20, 7, 35, 0)
	lon := SunLongitude(jd)
	// Near the equinox the longitude wraps through 0.
	if lon > 0.1 && lon < 359.9 {
		t.Fatalf("expected longitude near 0 at equinox, got %f", lon)
	}
}

func TestSunAdvancesAboutOneDegreePerDay(t *testing.T) {
	jd := FromUTC(1975, 10, 1, 0, 0, 0)
	for i := 0; i < 30; i++ {
		d := norm180(SunLongitude(jd+1) - SunLongitude(jd))
		if d < 0.9 || d > 1.1 {
			t.Fatalf("daily solar motion %f deg at day %d", d, i)
		}
		jd++
	}
}

func TestSunCrossingHitsTarget(t *testing.T) {
	start := FromUTC(1968, 1, 1, 0, 0, 0)
	target := 45.0
	jd, err := SunCrossing(target, start)
	if err != nil {
		t.Fatalf("SunCrossing: %v", err)
	}
	if jd < start {
		t.Fatalf("crossing %f before start %f", jd, start)
	}
	if got := norm180(SunLongitude(jd) - target); math.Abs(got) > 1e-4 {
		t.Fatalf("crossing off target by %f deg", got)
	}
}

func TestDesignJDPrecedesBirth(t *testing.T) {
	birth := FromUTC(1968, 2, 21, 8, 15, 0)
	design, err := DesignJD(birth)
	if err != nil {
		t.Fatalf("DesignJD: %v", err)
	}
	days := birth - design
	if days < 86 || days > 92 {
		t.Fatalf("design offset %f days, expected ~88-89", days)
	}
	want := norm360(SunLongitude(birth) - 88)
	if got := norm180(SunLongitude(design) - want); math.Abs(got) > 1e-3 {
		t.Fatalf("design sun off by %f deg", got)
	}
}

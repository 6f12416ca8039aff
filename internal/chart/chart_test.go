package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/dturkuler/humandesign-1/internal/mandala"
)

func calc(t *testing.T, in BirthInput) *Chart {
	t.Helper()
	c, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return c
}

func TestCalculateFullChartShape(t *testing.T) {
	c := calc(t, BirthInput{Year: 1968, Month: 2, Day: 21, Hour: 11, Minute: 15, OffsetHours: 3})

	if c.BirthDate != "1968-02-21 11:15:00" {
		t.Fatalf("birth date: %s", c.BirthDate)
	}
	if len(c.Activations) != 26 {
		t.Fatalf("expected 26 activations, got %d", len(c.Activations))
	}
	if len(c.PersonalityGates) != 13 || len(c.DesignGates) != 13 {
		t.Fatalf("expected 13 gates per side, got %d/%d", len(c.PersonalityGates), len(c.DesignGates))
	}
	if len(c.DefinedCenters)+len(c.UndefinedCenters) != 9 {
		t.Fatalf("centers do not partition")
	}
	validTypes := map[string]bool{
		"GENERATOR": true, "MANIFESTING GENERATOR": true, "PROJECTOR": true,
		"MANIFESTOR": true, "REFLECTOR": true,
	}
	if !validTypes[c.EnergyType] {
		t.Fatalf("unexpected energy type %q", c.EnergyType)
	}
	if c.Strategy == "" {
		t.Fatal("empty strategy")
	}
	if c.AuthorityName == "" {
		t.Fatal("empty authority name")
	}
	if len(c.Profile) != 3 || c.Profile[1] != '/' {
		t.Fatalf("unexpected profile %q", c.Profile)
	}
}

func TestCalculateKnownCharts(t *testing.T) {
	cases := []struct {
		name          string
		in            BirthInput
		wantType      string
		wantAuthority string
	}{
		{
			name:          "manifesting generator with emotional authority",
			in:            BirthInput{Year: 1968, Month: 2, Day: 21, Hour: 11, Minute: 15, OffsetHours: 3},
			wantType:      "MANIFESTING GENERATOR",
			wantAuthority: "SP",
		},
		{
			name:          "generator with sacral authority",
			in:            BirthInput{Year: 1973, Month: 1, Day: 19, Hour: 11, Minute: 15, OffsetHours: 3},
			wantType:      "GENERATOR",
			wantAuthority: "SL",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := calc(t, tc.in)
			if c.EnergyType != tc.wantType {
				t.Errorf("energy type: got %s, want %s", c.EnergyType, tc.wantType)
			}
			if c.Authority != tc.wantAuthority {
				t.Errorf("authority: got %s, want %s", c.Authority, tc.wantAuthority)
			}
		})
	}
}

func TestCalculateEarthOppositeSun(t *testing.T) {
	c := calc(t, BirthInput{Year: 1973, Month: 1, Day: 19, Hour: 11, Minute: 15, OffsetHours: 3})

	for _, side := range []string{SidePersonality, SideDesign} {
		var sun, earth Activation
		for _, a := range c.Activations {
			if a.Side != side {
				continue
			}
			switch a.Planet {
			case "Sun":
				sun = a
			case "Earth":
				earth = a
			}
		}
		want := mandala.At(mandala.Opposite(sun.Longitude))
		if earth.Gate != want.Gate || earth.Line != want.Line {
			t.Fatalf("%s earth %d.%d, want %d.%d", side, earth.Gate, earth.Line, want.Gate, want.Line)
		}
		diff := math.Abs(math.Mod(earth.Longitude-sun.Longitude+360, 360) - 180)
		if diff > 1e-9 {
			t.Fatalf("%s earth not opposite sun: %f", side, diff)
		}
	}
}

func TestCalculateProfileComesFromSunLines(t *testing.T) {
	c := calc(t, BirthInput{Year: 1935, Month: 7, Day: 6, Hour: 4, Minute: 48, OffsetHours: 8})

	pSun := findActivation(c.Activations[:13], "Sun")
	dSun := findActivation(c.Activations[13:], "Sun")
	want := fmt.Sprintf("%d/%d", pSun.Line, dSun.Line)
	if c.Profile != want {
		t.Fatalf("profile %s, want %s", c.Profile, want)
	}
}

func TestCalculateCrossEndsWithType(t *testing.T) {
	c := calc(t, BirthInput{Year: 1968, Month: 2, Day: 21, Hour: 11, Minute: 15, OffsetHours: 3})
	if c.CrossType != "" {
		if !strings.HasSuffix(c.IncarnationCross, "-"+c.CrossType) {
			t.Fatalf("cross %q does not end with type %q", c.IncarnationCross, c.CrossType)
		}
	}
}

func TestCalculateActiveChannelsHaveBothGates(t *testing.T) {
	c := calc(t, BirthInput{Year: 1990, Month: 11, Day: 2, Hour: 6, Minute: 30, OffsetHours: -5})

	gates := make(map[int]bool)
	for _, g := range c.ActiveGates {
		gates[g] = true
	}
	for _, ch := range c.ActiveChannels {
		parts := strings.Split(ch, "/")
		if len(parts) != 2 {
			t.Fatalf("malformed channel %q", ch)
		}
		if !gates[atoi(t, parts[0])] || !gates[atoi(t, parts[1])] {
			t.Fatalf("channel %s gate not in active set", ch)
		}
	}
}

func TestCalculateWithZoneName(t *testing.T) {
	byZone := calc(t, BirthInput{Year: 1968, Month: 2, Day: 21, Hour: 11, Minute: 15, Zone: "Europe/Istanbul"})
	byOffset := calc(t, BirthInput{Year: 1968, Month: 2, Day: 21, Hour: 11, Minute: 15, OffsetHours: 2})

	// Istanbul was UTC+2 in February 1968; both paths must agree.
	if byZone.Profile != byOffset.Profile || byZone.EnergyType != byOffset.EnergyType {
		t.Fatalf("zone path diverged: %s/%s vs %s/%s",
			byZone.EnergyType, byZone.Profile, byOffset.EnergyType, byOffset.Profile)
	}
}

func TestCalculateUnknownZone(t *testing.T) {
	_, err := Calculate(BirthInput{Year: 2000, Month: 1, Day: 1, Hour: 0, Minute: 0, Zone: "Nowhere/Atlantis"})
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name string
		in   BirthInput
	}{
		{"month", BirthInput{Year: 2000, Month: 13, Day: 1}},
		{"day", BirthInput{Year: 2000, Month: 1, Day: 0}},
		{"hour", BirthInput{Year: 2000, Month: 1, Day: 1, Hour: 24}},
		{"minute", BirthInput{Year: 2000, Month: 1, Day: 1, Minute: 60}},
		{"second", BirthInput{Year: 2000, Month: 1, Day: 1, Second: 61}},
	}
	for _, tc := range cases {
		err := tc.in.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		ve, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
		if ve.Field != tc.name {
			t.Fatalf("expected field %s, got %s", tc.name, ve.Field)
		}
	}

	good := BirthInput{Year: 2000, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 5}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("not a number: %q", s)
	}
	return n
}

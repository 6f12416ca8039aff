package chart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// #region fixture-types

type fixtureFile struct {
	Cases []fixtureCase `json:"cases"`
}

type fixtureCase struct {
	Description string               `json:"description"`
	Personality []fixtureActivation  `json:"personality"`
	Design      []fixtureActivation  `json:"design"`
	Expected    fixtureExpectedChart `json:"expected"`
}

type fixtureActivation struct {
	Planet string `json:"planet"`
	Gate   int    `json:"gate"`
	Line   int    `json:"line"`
	Tone   int    `json:"tone"`
}

type fixtureExpectedChart struct {
	EnergyType       string    `json:"energy_type"`
	Authority        string    `json:"authority"`
	Profile          string    `json:"profile"`
	Split            int       `json:"split"`
	CrossType        string    `json:"cross_type"`
	IncarnationCross string    `json:"incarnation_cross"`
	DefinedCenters   []string  `json:"defined_centers"`
	Variables        Variables `json:"variables"`
}

func (fa fixtureActivation) toActivation(side string) Activation {
	return Activation{
		Side:   side,
		Planet: fa.Planet,
		Gate:   fa.Gate,
		Line:   fa.Line,
		Tone:   fa.Tone,
	}
}

// #endregion fixture-types

func loadFixture(t *testing.T, name string) fixtureFile {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return f
}

func TestAssembleDerivationFixtures(t *testing.T) {
	fixture := loadFixture(t, "derivations.json")
	if len(fixture.Cases) == 0 {
		t.Fatal("no fixture cases")
	}

	for _, tc := range fixture.Cases {
		t.Run(tc.Description, func(t *testing.T) {
			var personality, design []Activation
			for _, fa := range tc.Personality {
				personality = append(personality, fa.toActivation(SidePersonality))
			}
			for _, fa := range tc.Design {
				design = append(design, fa.toActivation(SideDesign))
			}

			c := assemble("1990-01-01 00:00:00", "1989-10-03 12:00:00", personality, design)

			if c.EnergyType != tc.Expected.EnergyType {
				t.Errorf("energy type: got %s, want %s", c.EnergyType, tc.Expected.EnergyType)
			}
			if c.Authority != tc.Expected.Authority {
				t.Errorf("authority: got %s, want %s", c.Authority, tc.Expected.Authority)
			}
			if c.Profile != tc.Expected.Profile {
				t.Errorf("profile: got %s, want %s", c.Profile, tc.Expected.Profile)
			}
			if c.Split != tc.Expected.Split {
				t.Errorf("split: got %d, want %d", c.Split, tc.Expected.Split)
			}
			if c.CrossType != tc.Expected.CrossType {
				t.Errorf("cross type: got %s, want %s", c.CrossType, tc.Expected.CrossType)
			}
			if c.IncarnationCross != tc.Expected.IncarnationCross {
				t.Errorf("cross: got %s, want %s", c.IncarnationCross, tc.Expected.IncarnationCross)
			}
			gotDefined := c.DefinedCenters
			if gotDefined == nil {
				gotDefined = []string{}
			}
			wantDefined := tc.Expected.DefinedCenters
			if wantDefined == nil {
				wantDefined = []string{}
			}
			if !reflect.DeepEqual(gotDefined, wantDefined) {
				t.Errorf("defined centers: got %v, want %v", gotDefined, wantDefined)
			}
			if c.Variables != tc.Expected.Variables {
				t.Errorf("variables: got %+v, want %+v", c.Variables, tc.Expected.Variables)
			}
			if len(c.DefinedCenters)+len(c.UndefinedCenters) != 9 {
				t.Errorf("centers do not partition: %v / %v", c.DefinedCenters, c.UndefinedCenters)
			}
		})
	}
}

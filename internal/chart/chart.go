// Package chart runs the full calculation: birth input to the complete
// Human Design chart.
package chart

import (
	"fmt"
	"sort"

	"github.com/dturkuler/humandesign-1/internal/bodygraph"
	"github.com/dturkuler/humandesign-1/internal/ephem"
	"github.com/dturkuler/humandesign-1/internal/mandala"
)

// #region calculate

// Calculate validates the birth input, samples both sides of the chart
// and assembles the result.
func Calculate(in BirthInput) (*Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	offset := in.OffsetHours
	if in.Zone != "" {
		var err error
		offset, err = ephem.ZoneOffsetHours(in.Zone, in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
		if err != nil {
			return nil, &ValidationError{Field: "timezone", Reason: err.Error()}
		}
	}

	birthJD := ephem.FromLocal(in.Year, in.Month, in.Day, in.Hour, in.Minute, float64(in.Second), offset)
	designJD, err := ephem.DesignJD(birthJD)
	if err != nil {
		return nil, fmt.Errorf("design date: %w", err)
	}

	personality, err := sample(birthJD, SidePersonality)
	if err != nil {
		return nil, fmt.Errorf("personality side: %w", err)
	}
	design, err := sample(designJD, SideDesign)
	if err != nil {
		return nil, fmt.Errorf("design side: %w", err)
	}

	birthDate := fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
	dy, dmo, dd, dh, dmi, ds := ephem.Civil(designJD)
	designDate := fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d", dy, dmo, dd, dh, dmi, int(ds))

	return assemble(birthDate, designDate, personality, design), nil
}

// #endregion calculate

// #region sampling

// bodyFor maps a planet label to the ephemeris body it is sampled from
// and whether it sits opposite that body on the wheel.
func bodyFor(planet string) (ephem.Body, bool, error) {
	switch planet {
	case "Sun":
		return ephem.Sun, false, nil
	case "Earth":
		return ephem.Sun, true, nil
	case "Moon":
		return ephem.Moon, false, nil
	case "North_Node":
		return ephem.TrueNode, false, nil
	case "South_Node":
		return ephem.TrueNode, true, nil
	case "Mercury":
		return ephem.Mercury, false, nil
	case "Venus":
		return ephem.Venus, false, nil
	case "Mars":
		return ephem.Mars, false, nil
	case "Jupiter":
		return ephem.Jupiter, false, nil
	case "Saturn":
		return ephem.Saturn, false, nil
	case "Uranus":
		return ephem.Uranus, false, nil
	case "Neptune":
		return ephem.Neptune, false, nil
	case "Pluto":
		return ephem.Pluto, false, nil
	default:
		return 0, false, fmt.Errorf("unknown planet %s", planet)
	}
}

// activationFrom resolves one longitude to a wheel activation.
func activationFrom(side, planet string, lon float64) Activation {
	pos := mandala.At(lon)
	return Activation{
		Side:      side,
		Planet:    planet,
		Longitude: pos.Longitude,
		Gate:      pos.Gate,
		Line:      pos.Line,
		Color:     pos.Color,
		Tone:      pos.Tone,
		Base:      pos.Base,
	}
}

// sample computes the thirteen activations of one chart side.
func sample(jd float64, side string) ([]Activation, error) {
	out := make([]Activation, 0, len(PlanetOrder))
	for _, planet := range PlanetOrder {
		body, opposite, err := bodyFor(planet)
		if err != nil {
			return nil, err
		}
		lon, err := ephem.Longitude(jd, body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", planet, err)
		}
		if opposite {
			lon = mandala.Opposite(lon)
		}
		out = append(out, activationFrom(side, planet, lon))
	}
	return out, nil
}

// #endregion sampling

// #region assemble

// assemble derives every chart trait from the two activation sets.
func assemble(birthDate, designDate string, personality, design []Activation) *Chart {
	activations := make([]Activation, 0, len(personality)+len(design))
	activations = append(activations, personality...)
	activations = append(activations, design...)

	gates := make(map[int]bool, len(activations))
	for _, a := range activations {
		gates[a.Gate] = true
	}

	channels := bodygraph.ActiveChannels(gates)
	for i := range activations {
		activations[i].ChannelGate = bodygraph.ChannelPartner(activations[i].Gate, gates)
	}

	energyType := bodygraph.EnergyType(channels)
	authority := bodygraph.Authority(channels)

	pSun := findActivation(personality, "Sun")
	pEarth := findActivation(personality, "Earth")
	dSun := findActivation(design, "Sun")
	dEarth := findActivation(design, "Earth")
	pNode := findActivation(personality, "North_Node")
	dNode := findActivation(design, "North_Node")

	crossType := bodygraph.CrossType(pSun.Line, dSun.Line)
	cross := fmt.Sprintf("(%d/%d)-(%d/%d)", pSun.Gate, pEarth.Gate, dSun.Gate, dEarth.Gate)
	if crossType != "" {
		cross = cross + "-" + crossType
	}

	c := &Chart{
		BirthDate:        birthDate,
		DesignDate:       designDate,
		EnergyType:       energyType,
		Strategy:         bodygraph.Strategy(energyType),
		Authority:        authority,
		AuthorityName:    bodygraph.AuthorityName(authority),
		Profile:          fmt.Sprintf("%d/%d", pSun.Line, dSun.Line),
		IncarnationCross: cross,
		CrossType:        crossType,
		DefinedCenters:   centerCodes(bodygraph.DefinedCenters(channels)),
		UndefinedCenters: centerCodes(bodygraph.UndefinedCenters(channels)),
		Split:            bodygraph.Split(channels),
		Variables: Variables{
			RightUp:   arrow(pSun.Tone),
			RightDown: arrow(pNode.Tone),
			LeftUp:    arrow(dSun.Tone),
			LeftDown:  arrow(dNode.Tone),
		},
		ActiveGates:      sortedGates(gates),
		ActiveChannels:   channelStrings(channels),
		PersonalityGates: gateActivations(personality),
		DesignGates:      gateActivations(design),
		Activations:      activations,
	}
	return c
}

// #endregion assemble

// #region helpers

func findActivation(acts []Activation, planet string) Activation {
	for _, a := range acts {
		if a.Planet == planet {
			return a
		}
	}
	return Activation{}
}

// arrow maps a tone to its arrow orientation: tones 1-3 point left,
// 4-6 point right.
func arrow(tone int) string {
	if tone <= 3 {
		return "left"
	}
	return "right"
}

func centerCodes(centers []bodygraph.Center) []string {
	out := make([]string, len(centers))
	for i, c := range centers {
		out[i] = string(c)
	}
	return out
}

func sortedGates(gates map[int]bool) []int {
	out := make([]int, 0, len(gates))
	for g := range gates {
		if g != 0 {
			out = append(out, g)
		}
	}
	sort.Ints(out)
	return out
}

func channelStrings(channels []bodygraph.Channel) []string {
	out := make([]string, len(channels))
	for i, ch := range channels {
		out[i] = fmt.Sprintf("%d/%d", ch.GateA, ch.GateB)
	}
	return out
}

func gateActivations(acts []Activation) []GateActivation {
	out := make([]GateActivation, len(acts))
	for i, a := range acts {
		out[i] = GateActivation{Gate: a.Gate, Line: a.Line, Planet: a.Planet}
	}
	return out
}

// #endregion helpers

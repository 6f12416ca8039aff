// Package bodygraph holds the fixed tables of the bodygraph (centers,
// channels, circuits, streams) and the derivations built on them:
// active channels, defined centers, definition components, energy type
// and authority.
package bodygraph

// #region center

// Center is one of the nine energy centers, identified by its
// two-letter code.
type Center string

const (
	Head        Center = "HD"
	Ajna        Center = "AA"
	Throat      Center = "TT"
	GCenter     Center = "GC"
	Heart       Center = "HT"
	SolarPlexus Center = "SP"
	Spleen      Center = "SN"
	Sacral      Center = "SL"
	Root        Center = "RT"
)

// Centers returns all nine centers in canonical order.
func Centers() []Center {
	return []Center{Head, Ajna, Throat, GCenter, Heart, SolarPlexus, Spleen, Sacral, Root}
}

// motorCenters are the energy-generating centers relevant to type
// derivation.
var motorCenters = []Center{Sacral, SolarPlexus, Heart, Root}

// #endregion center

// #region channel

// Channel is a gate pair in table order.
type Channel struct {
	GateA int
	GateB int
}

// Meaning is the traditional name and keynote of a channel.
type Meaning struct {
	Name        string
	Description string
}

// #endregion channel

// #region energy-type

// Energy types, upper-cased as the original calculator reports them.
const (
	TypeGenerator            = "GENERATOR"
	TypeManifestingGenerator = "MANIFESTING GENERATOR"
	TypeProjector            = "PROJECTOR"
	TypeManifestor           = "MANIFESTOR"
	TypeReflector            = "REFLECTOR"
)

// Authority codes. The codes (including the historical misspelling of
// the outer-authority code) are wire-stable output values.
const (
	AuthorityEmotional     = "SP"
	AuthoritySacral        = "SL"
	AuthoritySplenic       = "SN"
	AuthorityEgo           = "HT"
	AuthoritySelfProjected = "GC"
	AuthorityEgoProjected  = "HT_GC"
	AuthorityOuter         = "outher_auth"
	AuthorityLunar         = "lunar"
)

// #endregion energy-type

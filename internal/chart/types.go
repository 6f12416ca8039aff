package chart

// #region input

// BirthInput is a local birth timestamp plus its UTC offset, given
// either as decimal hours or as an IANA zone name. A non-empty Zone
// wins over OffsetHours.
type BirthInput struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	OffsetHours float64
	Zone        string
}

// #endregion input

// #region sides

// Side labels for the two halves of the chart, wire-stable.
const (
	SidePersonality = "prs"
	SideDesign      = "des"
)

// PlanetOrder is the fixed sampling order of the thirteen bodies.
var PlanetOrder = []string{
	"Sun", "Earth", "Moon", "North_Node", "South_Node",
	"Mercury", "Venus", "Mars", "Jupiter", "Saturn",
	"Uranus", "Neptune", "Pluto",
}

// #endregion sides

// #region activation

// Activation is one planet resolved onto the wheel for one side of the
// chart. ChannelGate is the partner gate when the activation completes
// a channel, 0 otherwise.
type Activation struct {
	Side        string  `json:"label"`
	Planet      string  `json:"planet"`
	Longitude   float64 `json:"lon"`
	Gate        int     `json:"gate"`
	Line        int     `json:"line"`
	Color       int     `json:"color"`
	Tone        int     `json:"tone"`
	Base        int     `json:"base"`
	ChannelGate int     `json:"ch_gate"`
}

// GateActivation is the compact gate/line/planet triple reported per
// side.
type GateActivation struct {
	Gate   int    `json:"gate"`
	Line   int    `json:"line"`
	Planet string `json:"planet"`
}

// Variables are the four arrows, each "left" or "right", derived from
// the tones of Sun and North Node on each side.
type Variables struct {
	RightUp   string `json:"right_up"`
	RightDown string `json:"right_down"`
	LeftUp    string `json:"left_up"`
	LeftDown  string `json:"left_down"`
}

// #endregion activation

// #region chart

// Chart is the complete calculation result. Field names and value
// formats follow the original calculator's response shape.
type Chart struct {
	BirthDate        string           `json:"birth_date"`
	DesignDate       string           `json:"design_date"`
	EnergyType       string           `json:"energy_type"`
	Strategy         string           `json:"strategy"`
	Authority        string           `json:"authority"`
	AuthorityName    string           `json:"authority_name"`
	Profile          string           `json:"profile"`
	IncarnationCross string           `json:"incarnation_cross"`
	CrossType        string           `json:"cross_type"`
	DefinedCenters   []string         `json:"defined_centers"`
	UndefinedCenters []string         `json:"undefined_centers"`
	Split            int              `json:"split"`
	Variables        Variables        `json:"variables"`
	ActiveGates      []int            `json:"active_gates"`
	ActiveChannels   []string         `json:"active_channels"`
	PersonalityGates []GateActivation `json:"personality_gates"`
	DesignGates      []GateActivation `json:"design_gates"`
	Activations      []Activation     `json:"activations"`
}

// #endregion chart

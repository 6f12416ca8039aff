package bodygraph

// #region channel-table

// channelEntry pairs a channel with the centers its two gates sit in:
// GateA belongs to CenterA, GateB to CenterB.
type channelEntry struct {
	ch      Channel
	centerA Center
	centerB Center
}

// channelTable lists all 36 channels. Order matters: derived output
// (active channel strings, center scans) follows it.
var channelTable = []channelEntry{
	{Channel{64, 47}, Head, Ajna},
	{Channel{61, 24}, Head, Ajna},
	{Channel{63, 4}, Head, Ajna},
	{Channel{17, 62}, Ajna, Throat},
	{Channel{43, 23}, Ajna, Throat},
	{Channel{11, 56}, Ajna, Throat},
	{Channel{16, 48}, Throat, Spleen},
	{Channel{20, 57}, Throat, Spleen},
	{Channel{20, 34}, Throat, Sacral},
	{Channel{20, 10}, Throat, GCenter},
	{Channel{31, 7}, Throat, GCenter},
	{Channel{8, 1}, Throat, GCenter},
	{Channel{33, 13}, Throat, GCenter},
	{Channel{45, 21}, Throat, Heart},
	{Channel{35, 36}, Throat, SolarPlexus},
	{Channel{12, 22}, Throat, SolarPlexus},
	{Channel{32, 54}, Spleen, Root},
	{Channel{28, 38}, Spleen, Root},
	{Channel{57, 34}, Spleen, Sacral},
	{Channel{50, 27}, Spleen, Sacral},
	{Channel{18, 58}, Spleen, Root},
	{Channel{10, 34}, GCenter, Sacral},
	{Channel{15, 5}, GCenter, Sacral},
	{Channel{2, 14}, GCenter, Sacral},
	{Channel{46, 29}, GCenter, Sacral},
	{Channel{10, 57}, GCenter, Spleen},
	{Channel{25, 51}, GCenter, Heart},
	{Channel{59, 6}, Sacral, SolarPlexus},
	{Channel{42, 53}, Sacral, Root},
	{Channel{3, 60}, Sacral, Root},
	{Channel{9, 52}, Sacral, Root},
	{Channel{26, 44}, Heart, Spleen},
	{Channel{40, 37}, Heart, SolarPlexus},
	{Channel{49, 19}, SolarPlexus, Root},
	{Channel{55, 39}, SolarPlexus, Root},
	{Channel{30, 41}, SolarPlexus, Root},
}

// gateCenter maps every gate to its center, derived from channelTable.
var gateCenter = func() map[int]Center {
	m := make(map[int]Center, 64)
	for _, e := range channelTable {
		m[e.ch.GateA] = e.centerA
		m[e.ch.GateB] = e.centerB
	}
	return m
}()

// #endregion channel-table

// #region meanings

// channelMeanings carries the traditional channel names and keynotes,
// verbatim from the source tables.
var channelMeanings = map[Channel]Meaning{
	{64, 47}: {"Abstraction", "D. of mental activity and clarity"},
	{61, 24}: {"Awereness", "D. of a thinker"},
	{63, 4}:  {"Logic", "D. of mental muse? mixed with doubt"},
	{17, 62}: {"Acceptance", "D. of an organizational being"},
	{43, 23}: {"Structuring", "D. of individuality"},
	{11, 56}: {"Curiosity", "D. of a searcher"},
	{16, 48}: {"The Wave Length", "D. of a talent"},
	{20, 57}: {"The Brain Wave", "D. of penetrating awareness"},
	{20, 34}: {"Charisma", "D. where thoughts must become deeds"},
	{32, 54}: {"Transformation", "D. of being driven"},
	{28, 38}: {"Struggle", "D. of stubbornness "},
	{18, 58}: {"Judgment", "D. of insatiability"},
	{20, 10}: {"Awakening", "D. of commitment to higher principles"},
	{31, 7}:  {"The Alpha", "For 'good' or 'bad', a d. of leadership"},
	{8, 1}:   {"Inspiration", "The creative role model"},
	{33, 13}: {"The Prodigal", "The d. of witness"},
	{10, 34}: {"Exploration", "A d. of following one's convictions"},
	{15, 5}:  {"Rythm", "A d. of being in the flow"},
	{2, 14}:  {"The Beat", "A d. of being the keeper of keys"},
	{46, 29}: {"Discovery", "A d. of succeding where others fail"},
	{10, 57}: {"Perfected Form", "A d. of survival"},
	{57, 34}: {"Power", "A d. of an archetype"},
	{50, 27}: {"Preservation", "A. d. of custodianship"},
	{45, 21}: {"Money", "A d. of a materialist"},
	{59, 6}:  {"Mating", "A d. focused on reproduction"},
	{42, 53}: {"Maturation", "A d. of balanced developement,cyclic"},
	{3, 60}:  {"Mutation", "Energy which fluctuates and initiates, pulse"},
	{9, 52}:  {"Concentration", "A d. of determination, focused"},
	{26, 44}: {"Surrender", "A d. of a transmitter"},
	{25, 51}: {"Initiation", "A d. of needing to be first"},
	{40, 37}: {"Community", "A d. of being part, seeking a whole"},
	{35, 36}: {"Transitoriness", "A d. of a 'Jack of all Trades'"},
	{12, 22}: {"Openness", "A d, of a social being"},
	{49, 19}: {"Synthesis", "A d. of being sensitive"},
	{55, 39}: {"Emoting", "A d. of moodiness"},
	{30, 41}: {"Recognition", "A d. of focused energy"},
}

// #endregion meanings

// #region circuits

// circuitTypes classifies channels into circuits; keys are gate pairs
// in ascending order.
var circuitTypes = map[Channel]string{
	{24, 61}: "Knowledge",
	{23, 43}: "Knowledge",
	{1, 8}:   "Knowledge",
	{2, 14}:  "Knowledge",
	{3, 60}:  "Knowledge",
	{39, 55}: "Knowledge",
	{12, 22}: "Knowledge",
	{28, 38}: "Knowledge",
	{20, 57}: "Knowledge",
	{10, 34}: "Centre",
	{25, 51}: "Centre",
	{4, 63}:  "Realize",
	{17, 62}: "Realize",
	{7, 31}:  "Realize",
	{5, 15}:  "Realize",
	{9, 52}:  "Realize",
	{18, 58}: "Realize",
	{16, 48}: "Realize",
	{47, 64}: "Sense",
	{11, 56}: "Sense",
	{13, 33}: "Sense",
	{29, 46}: "Sense",
	{42, 53}: "Sense",
	{30, 41}: "Sense",
	{35, 36}: "Sense",
	{32, 54}: "Ego",
	{26, 44}: "Ego",
	{19, 49}: "Ego",
	{37, 40}: "Ego",
	{21, 45}: "Ego",
	{6, 59}:  "Protect",
	{27, 50}: "Protect",
	{10, 20}: "Integration",
	{20, 34}: "Integration",
	{34, 57}: "Integration",
	{10, 57}: "Integration",
}

// circuitGroups maps circuits to their group.
var circuitGroups = map[string]string{
	"Knowledge":   "Individual",
	"Centre":      "Individual",
	"Realize":     "Collective",
	"Sense":       "Collective",
	"Ego":         "Tribal",
	"Protect":     "Tribal",
	"Integration": "Integration",
}

// #endregion circuits

// #region streams

// Stream is a four-gate awareness stream and its group.
type Stream struct {
	Gates [4]int
	Name  string
	Group string
}

var streams = []Stream{
	{[4]int{58, 18, 48, 16}, "Taste", "Spleen"},
	{[4]int{38, 28, 57, 20}, "Intuition", "Spleen"},
	{[4]int{54, 32, 44, 26}, "Instinct", "Spleen"},
	{[4]int{41, 30, 36, 35}, "Feel", "SolarPlexus"},
	{[4]int{39, 55, 22, 12}, "Emotion", "SolarPlexus"},
	{[4]int{19, 49, 37, 40}, "Sensitivity", "SolarPlexus"},
	{[4]int{64, 47, 11, 56}, "Realize/Meaning", "Ajna"},
	{[4]int{61, 24, 43, 23}, "Knowledge", "Ajna"},
	{[4]int{63, 4, 17, 62}, "Understand", "Ajna"},
}

// #endregion streams

// #region cross-types

// crossTypes maps (personality Sun line, design Sun line) to the
// incarnation cross type: right angle, juxtaposition, or left angle.
// The twelve keys are exactly the valid profiles.
var crossTypes = map[[2]int]string{
	{1, 3}: "RAC",
	{1, 4}: "RAC",
	{2, 4}: "RAC",
	{2, 5}: "RAC",
	{3, 5}: "RAC",
	{3, 6}: "RAC",
	{4, 6}: "RAC",
	{4, 1}: "JXP",
	{5, 1}: "LAC",
	{5, 2}: "LAC",
	{6, 2}: "LAC",
	{6, 3}: "LAC",
}

// #endregion cross-types

// #region strategies

// strategies maps the energy type to its strategy line.
var strategies = map[string]string{
	TypeGenerator:            "Wait to respond",
	TypeManifestingGenerator: "Wait to respond, then inform",
	TypeProjector:            "Wait for invitation",
	TypeManifestor:           "Inform before action",
	TypeReflector:            "Wait 28 days for clarity",
}

// authorityNames maps authority codes to display names.
var authorityNames = map[string]string{
	AuthorityEmotional:     "Emotional Authority",
	AuthoritySacral:        "Sacral Authority",
	AuthoritySplenic:       "Splenic Authority",
	AuthorityEgo:           "Ego-Manifested Authority",
	AuthoritySelfProjected: "Self-Projected Authority",
	AuthorityEgoProjected:  "Ego-Projected Authority",
	AuthorityOuter:         "No Inner Authority",
	AuthorityLunar:         "Lunar Authority",
}

// #endregion strategies

package bodygraph

// #region active-channels

// ActiveChannels returns the channels whose two gates are both in the
// activation set, in table order.
func ActiveChannels(gates map[int]bool) []Channel {
	var active []Channel
	for _, e := range channelTable {
		if gates[e.ch.GateA] && gates[e.ch.GateB] {
			active = append(active, e.ch)
		}
	}
	return active
}

// ChannelPartner returns the gate that completes a channel with the
// given gate under the activation set, or 0 when the gate completes no
// channel. When a gate sits in several channels the first completed
// one in table order wins.
func ChannelPartner(gate int, gates map[int]bool) int {
	for _, e := range channelTable {
		if e.ch.GateA == gate && gates[e.ch.GateB] {
			return e.ch.GateB
		}
		if e.ch.GateB == gate && gates[e.ch.GateA] {
			return e.ch.GateA
		}
	}
	return 0
}

// #endregion active-channels

// #region defined-centers

// centersOf returns the two centers a channel connects.
func centersOf(ch Channel) (Center, Center) {
	for _, e := range channelTable {
		if e.ch == ch {
			return e.centerA, e.centerB
		}
	}
	return "", ""
}

// DefinedCenters returns the centers defined by the active channels, in
// canonical order.
func DefinedCenters(channels []Channel) []Center {
	set := definedSet(channels)
	var out []Center
	for _, c := range Centers() {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

// UndefinedCenters returns the complement of the defined centers, in
// canonical order.
func UndefinedCenters(channels []Channel) []Center {
	set := definedSet(channels)
	var out []Center
	for _, c := range Centers() {
		if !set[c] {
			out = append(out, c)
		}
	}
	return out
}

func definedSet(channels []Channel) map[Center]bool {
	set := make(map[Center]bool)
	for _, ch := range channels {
		a, b := centersOf(ch)
		if a != "" {
			set[a] = true
			set[b] = true
		}
	}
	return set
}

// GateCenter returns the center a gate belongs to.
func GateCenter(gate int) (Center, bool) {
	c, ok := gateCenter[gate]
	return c, ok
}

// #endregion defined-centers

// #region lookups

// ChannelMeaning returns the traditional name and keynote of a channel,
// checking both gate orders.
func ChannelMeaning(ch Channel) (Meaning, bool) {
	if m, ok := channelMeanings[ch]; ok {
		return m, true
	}
	m, ok := channelMeanings[Channel{ch.GateB, ch.GateA}]
	return m, ok
}

// Circuit returns the circuit and circuit group of a channel.
func Circuit(ch Channel) (circuit, group string, ok bool) {
	key := Channel{ch.GateA, ch.GateB}
	if key.GateA > key.GateB {
		key = Channel{ch.GateB, ch.GateA}
	}
	circuit, ok = circuitTypes[key]
	if !ok {
		return "", "", false
	}
	return circuit, circuitGroups[circuit], true
}

// ActiveStreams returns the awareness streams whose four gates are all
// activated.
func ActiveStreams(gates map[int]bool) []Stream {
	var out []Stream
	for _, s := range streams {
		all := true
		for _, g := range s.Gates {
			if !gates[g] {
				all = false
				break
			}
		}
		if all {
			out = append(out, s)
		}
	}
	return out
}

// CrossType returns the incarnation cross type for a personality/design
// Sun line pair: RAC, JXP or LAC.
func CrossType(personalityLine, designLine int) string {
	return crossTypes[[2]int{personalityLine, designLine}]
}

// Strategy returns the strategy line for an energy type.
func Strategy(energyType string) string {
	return strategies[energyType]
}

// AuthorityName returns the display name for an authority code, falling
// back to the code itself.
func AuthorityName(code string) string {
	if name, ok := authorityNames[code]; ok {
		return name
	}
	return code
}

// #endregion lookups

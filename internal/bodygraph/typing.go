package bodygraph

// #region energy-type

// EnergyType derives the energy type from the active channels.
//
// No definition at all makes a Reflector. A defined Sacral makes a
// Generator, upgraded to Manifesting Generator when a motor reaches the
// Throat. Without the Sacral, a motor reaching the Throat makes a
// Manifestor; everything else is a Projector. Motor-to-Throat
// connection is transitive across active channels.
func EnergyType(channels []Channel) string {
	if len(channels) == 0 {
		return TypeReflector
	}

	defined := definedSet(channels)
	adj := adjacency(channels)

	motorToThroat := false
	for _, motor := range motorCenters {
		if defined[motor] && connected(adj, motor, Throat) {
			motorToThroat = true
			break
		}
	}

	if defined[Sacral] {
		if motorToThroat {
			return TypeManifestingGenerator
		}
		return TypeGenerator
	}
	if motorToThroat {
		return TypeManifestor
	}
	return TypeProjector
}

// #endregion energy-type

// #region authority

// Authority derives the inner-authority code from the active channels,
// by the fixed precedence: Solar Plexus, Sacral, Spleen, Heart to
// Throat, G to Throat, Heart with G, outer authority. A chart with no
// definition has lunar authority.
func Authority(channels []Channel) string {
	if len(channels) == 0 {
		return AuthorityLunar
	}

	defined := definedSet(channels)
	adj := adjacency(channels)

	switch {
	case defined[SolarPlexus]:
		return AuthorityEmotional
	case defined[Sacral]:
		return AuthoritySacral
	case defined[Spleen]:
		return AuthoritySplenic
	case defined[Heart] && connected(adj, Heart, Throat):
		return AuthorityEgo
	case defined[GCenter] && connected(adj, GCenter, Throat):
		return AuthoritySelfProjected
	case defined[Heart] && defined[GCenter]:
		return AuthorityEgoProjected
	default:
		return AuthorityOuter
	}
}

// #endregion authority

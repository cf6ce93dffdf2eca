package edss

// Compute returns the scale value for one assessment. Pure function: equal
// inputs always produce equal output.
func Compute(s Scores) ScaleValue {
	return Evaluate(s).Value
}

// Evaluate computes the scale value together with the ranking trace used to
// reach it. An ambulation score of 3 or above decides the value directly
// (Phase 1); otherwise the seven functional system scores are ranked and
// tie-broken (Phase 2), with the ambulation score (0-2) consulted as a
// tie-break input.
func Evaluate(s Scores) Result {
	if v, ok := ambulationValue(s.Ambulation); ok {
		return Result{Value: v, Phase: PhaseAmbulation, Scores: s}
	}
	vec := normalize(s)
	max, maxCount := maxAndCount(vec)
	return Result{
		Value:      functionalValue(vec, s.Ambulation),
		Phase:      PhaseFunctional,
		Scores:     s,
		Normalized: vec,
		Max:        max,
		MaxCount:   maxCount,
	}
}

// ambulationValue is the Phase-1 lookup: ambulation scores from 3 to 16 map
// directly onto the upper half of the scale. Below 3 there is no direct value
// and the functional ranking decides.
func ambulationValue(amb int) (ScaleValue, bool) {
	switch amb {
	case 16:
		return Scale10, true
	case 15:
		return Scale9_5, true
	case 14:
		return Scale9, true
	case 13:
		return Scale8_5, true
	case 12:
		return Scale8, true
	case 11:
		return Scale7_5, true
	case 10:
		return Scale7, true
	case 9, 8:
		return Scale6_5, true
	case 7, 6, 5:
		return Scale6, true
	case 4:
		return Scale5_5, true
	case 3:
		return Scale5, true
	}
	return "", false
}

// functionalValue is the Phase-2 decision tree over the normalized seven-slot
// vector. The guards below are NOT mutually exclusive: they encode a
// clinically validated rule table and must be evaluated top to bottom,
// returning on first match. Do not reorder or merge branches.
func functionalValue(vec []int, amb int) ScaleValue {
	max, maxCount := maxAndCount(vec)

	if max >= 5 {
		return Scale5
	}

	if max == 4 {
		if maxCount >= 2 {
			return Scale5
		}
		second, secondCount := secondMaxAndCount(vec, max)
		switch {
		case second == 3 && secondCount > 2:
			return Scale5
		case second == 3 || second == 2:
			return Scale4_5
		case amb < 2 && second < 2:
			return Scale4
		}
		// A single 4 with nothing above 1 beneath it and amb == 2 is not
		// settled here; the amb == 2 guard below catches it.
	}

	if max == 3 && maxCount >= 6 {
		return Scale5
	}

	if amb == 2 {
		return Scale4_5
	}

	if max == 3 {
		if maxCount == 5 {
			return Scale4_5
		}
		if maxCount >= 2 {
			if maxCount == 2 {
				if second, _ := secondMaxAndCount(vec, max); second <= 1 {
					return Scale3_5
				}
			}
			return Scale4
		}
		second, secondCount := secondMaxAndCount(vec, max)
		if second == 2 {
			if secondCount >= 3 {
				return Scale4
			}
			return Scale3_5
		}
		return Scale3
	}

	if max == 2 {
		switch {
		case maxCount >= 6:
			return Scale4
		case maxCount == 5:
			return Scale3_5
		case maxCount >= 3:
			return Scale3
		case maxCount == 2:
			return Scale2_5
		default:
			return Scale2
		}
	}

	if amb == 1 {
		return Scale2
	}

	if max == 1 {
		if maxCount >= 2 {
			return Scale1_5
		}
		return Scale1
	}

	return Scale0
}

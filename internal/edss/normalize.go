package edss

// compressVisual maps a raw visual score (clinically 0-6) onto the reduced
// 0-4 range the decision table ranks over. Conditions are evaluated in order,
// first match wins; integers outside the clinical range are not rejected
// (negatives fall through unchanged).
func compressVisual(raw int) int {
	switch {
	case raw == 6:
		return 4
	case raw >= 4:
		return 3
	case raw >= 2:
		return 2
	default:
		return raw
	}
}

// compressBowelBladder maps a raw bowel/bladder score (clinically 0-6) onto
// the reduced 0-5 range. Same ordered, permissive evaluation as
// compressVisual.
func compressBowelBladder(raw int) int {
	switch {
	case raw == 6:
		return 5
	case raw == 5:
		return 4
	case raw >= 3:
		return 3
	default:
		return raw
	}
}

// normalize builds the seven-slot ranking vector from the non-ambulation
// scores. Compression must be applied exactly once, to exactly these two
// slots.
func normalize(s Scores) []int {
	return []int{
		compressVisual(s.Visual),
		s.Brainstem,
		s.Pyramidal,
		s.Cerebellar,
		s.Sensory,
		compressBowelBladder(s.BowelBladder),
		s.Cerebral,
	}
}

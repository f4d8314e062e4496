package internal

// Two boundary lines around Octans cannot be derived from the polygon data
// alone: at dec -85 the line is a full circle, and at dec -82.5 it runs from
// 7h40m across the seam to 3h30m. Both are forced here.
//
// These are properties of the IAU boundary data, not of the algorithm.
var spanOverrides = map[int16][2]int32{
	300: {0, FullCircle},
	450: {(7*60 + 40) * 60, (27*60 + 30) * 60},
}

func applyOverride(s Segment) Segment {
	if span, ok := spanOverrides[s.SPD]; ok {
		s.MinRA, s.MaxRA = span[0], span[1]
	}
	return s
}

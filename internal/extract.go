package internal

// ExtractSegments returns the horizontal boundary segments traced by a single
// constellation polygon.
//
// Every horizontal boundary is present twice in the catalogue, once in each
// adjoining polygon and in opposite directions. Only edges running west to
// east are kept, which leaves exactly one copy, belonging to the
// constellation south of the line.
//
// Each kept edge is then extended over the vertical edges of the same polygon
// that cross its SPD: west up to the nearest northbound edge at or before its
// start, east up to the nearest southbound edge after it. In the figure below
// CD is stretched to run from H to E, so that a point south of HE is found to
// be in Joe by the first boundary a lookup meets.
//
//	   ---A--------B    |
//	      |        |    |
//	      H        C----D--E----
//	      |                |
//	      |   Joe          |
//	  ----F-------+--------G----+
func ExtractSegments(points []Vertex, constellation int) []Segment {
	var out []Segment
	for i := 0; i+1 < len(points); i++ {
		from, to := points[i], points[i+1]
		if from.Y != to.Y || from.X >= to.X {
			continue
		}

		seg := extendEdge(points, from, to)
		seg.Constellation = int8(constellation)
		seg = applyOverride(seg.canonicalize())
		out = append(out, seg.Split()...)
	}
	return out
}

func extendEdge(points []Vertex, from, to Vertex) Segment {
	spd0, ra0 := from.Y, from.X
	minRA, maxRA := ra0-extensionReach, ra0+extensionReach

	for j := 0; j+1 < len(points); j++ {
		a, b := points[j], points[j+1]
		if a.X != b.X {
			continue
		}
		ra1 := nearestTurn(a.X, ra0)
		switch {
		case a.Y < spd0 && b.Y >= spd0: // northbound
			if ra1 <= ra0 && ra1 > minRA {
				minRA = ra1
			}
		case a.Y >= spd0 && b.Y < spd0: // southbound
			if ra1 > ra0 && ra1 < maxRA {
				maxRA = ra1
			}
		}
	}

	// An open chain may lack the vertical edge closing one side. The edge
	// itself is always a valid segment, so fall back to its own end points.
	if minRA == ra0-extensionReach {
		minRA = ra0
	}
	if maxRA == ra0+extensionReach {
		maxRA = to.X
	}

	return Segment{SPD: int16(spd0), MinRA: minRA, MaxRA: maxRA}
}

// nearestTurn moves ra by whole turns until it is at most half a turn away
// from ref.
func nearestTurn(ra, ref int32) int32 {
	for ra+HalfCircle < ref {
		ra += FullCircle
	}
	for ra-HalfCircle > ref {
		ra -= FullCircle
	}
	return ra
}

package geom

// windingNumber casts a horizontal ray from pt towards +x and returns the
// signed winding number and the unsigned number of crossings.
//
// Edges are treated as half-open in y: an edge covers [min y, max y), so a
// ray through a shared vertex counts exactly one of the two edges, and
// horizontal edges are never counted.
func windingNumber(edges []Line, pt Point) (winding, crossings int) {
	for _, e := range edges {
		a, b := e.P0, e.P1
		var sign int
		switch {
		case a.Y <= pt.Y && b.Y > pt.Y:
			sign = 1
		case b.Y <= pt.Y && a.Y > pt.Y:
			sign = -1
		default:
			continue
		}
		// Side of pt relative to the upward-oriented edge.
		lo, hi := a, b
		if sign < 0 {
			lo, hi = b, a
		}
		if hi.Sub(lo).Cross(pt.Sub(lo)) > 0 {
			// pt is left of the edge, so the ray crosses it.
			winding += sign
			crossings++
		}
	}
	return winding, crossings
}

// polygonContains reports whether pt lies in the polygon with the given
// vertices under rule, with the polygon implicitly closed.
func polygonContains(vs []Point, pt Point, rule WindingRule) bool {
	if len(vs) < 3 {
		return false
	}
	edges := make([]Line, len(vs))
	for i := range vs {
		edges[i] = Line{vs[i], vs[(i+1)%len(vs)]}
	}
	return rule.encloses(windingNumber(edges, pt))
}

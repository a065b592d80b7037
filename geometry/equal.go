package geometry

// Equal reports whether a and b are structurally the same: same variant,
// coordinates in order (NaN equals NaN), same rings and reversed flags, same
// children and the same locally set SRID. Object ids and SRS identifiers are
// not compared.
func Equal(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	as, aok := LocalSRID(a)
	bs, bok := LocalSRID(b)
	if aok != bok || as != bs {
		return false
	}

	switch x := a.(type) {
	case *Point:
		return x.coordinate.Equal(b.(*Point).coordinate)
	case *LineString:
		return coordinatesEqual(x.coordinates, b.(*LineString).coordinates)
	case *Polygon:
		return polygonEqual(x, b.(*Polygon))
	case *MultiPoint:
		y := b.(*MultiPoint)
		if len(x.points) != len(y.points) {
			return false
		}
		for i := range x.points {
			if !Equal(x.points[i], y.points[i]) {
				return false
			}
		}
		return true
	case *MultiLineString:
		y := b.(*MultiLineString)
		if len(x.lineStrings) != len(y.lineStrings) {
			return false
		}
		for i := range x.lineStrings {
			if !Equal(x.lineStrings[i], y.lineStrings[i]) {
				return false
			}
		}
		return true
	case SurfaceCollection:
		return polygonsEqual(x.Polygons(), b.(SurfaceCollection).Polygons())
	case *Solid:
		return Equal(x.shell, b.(*Solid).shell)
	case SolidCollection:
		xs, ys := x.Solids(), b.(SolidCollection).Solids()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func coordinatesEqual(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func ringEqual(a, b *LinearRing) bool {
	if a == nil || b == nil {
		return a == b
	}
	return coordinatesEqual(a.coordinates, b.coordinates)
}

func polygonEqual(a, b *Polygon) bool {
	if a.reversed != b.reversed || !ringEqual(a.exterior, b.exterior) {
		return false
	}
	if len(a.interiors) != len(b.interiors) {
		return false
	}
	for i := range a.interiors {
		if !ringEqual(a.interiors[i], b.interiors[i]) {
			return false
		}
	}
	return true
}

func polygonsEqual(a, b []*Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

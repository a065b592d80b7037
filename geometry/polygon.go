package geometry

// LinearRing is a closed coordinate sequence bounding a polygon face or a
// hole. Closure (first == last) is a convention and not enforced. A ring only
// exists inside a Polygon, so it has no SRID of its own.
type LinearRing struct {
	objectID    string
	coordinates []Coordinate
	parent      *Polygon
}

func NewLinearRing(coords []Coordinate) *LinearRing {
	return &LinearRing{coordinates: coords}
}

func EmptyLinearRing() *LinearRing {
	return &LinearRing{}
}

func (r *LinearRing) ObjectID() string          { return r.objectID }
func (r *LinearRing) SetObjectID(id string)     { r.objectID = id }
func (r *LinearRing) Coordinates() []Coordinate { return r.coordinates }
func (r *LinearRing) Parent() *Polygon          { return r.parent }
func (r *LinearRing) IsEmpty() bool             { return len(r.coordinates) == 0 }

// SRID is always inherited from the owning polygon.
func (r *LinearRing) SRID() (int, bool) {
	if r.parent == nil {
		return 0, false
	}
	return r.parent.SRID()
}

func (r *LinearRing) VertexDimension() int {
	if len(r.coordinates) == 0 {
		return 2
	}
	for _, c := range r.coordinates {
		if c.Dimension() == 2 {
			return 2
		}
	}
	return 3
}

func (r *LinearRing) IsClosed() bool {
	n := len(r.coordinates)
	return n > 0 && r.coordinates[0].Equal(r.coordinates[n-1])
}

// Polygon is an exterior ring with optional holes. A nil interior ring list
// and an empty one are different values. Reversed marks a face whose winding
// is opposite to the stored coordinate order.
type Polygon struct {
	base
	exterior  *LinearRing
	interiors []*LinearRing
	reversed  bool
}

// NewPolygon builds a polygon. Without interior rings the interior list
// stays nil.
func NewPolygon(exterior *LinearRing, interiors ...*LinearRing) *Polygon {
	p := &Polygon{}
	p.SetExteriorRing(exterior)
	for _, r := range interiors {
		p.AddInteriorRing(r)
	}
	return p
}

func EmptyPolygon() *Polygon {
	return NewPolygon(EmptyLinearRing())
}

func (p *Polygon) ExteriorRing() *LinearRing    { return p.exterior }
func (p *Polygon) InteriorRings() []*LinearRing { return p.interiors }
func (p *Polygon) HasInteriorRings() bool       { return len(p.interiors) > 0 }
func (p *Polygon) IsReversed() bool             { return p.reversed }

func (p *Polygon) SetReversed(reversed bool) *Polygon {
	p.reversed = reversed
	return p
}

func (p *Polygon) SetExteriorRing(r *LinearRing) {
	if r == nil {
		r = EmptyLinearRing()
	}
	r.parent = p
	p.exterior = r
}

func (p *Polygon) AddInteriorRing(r *LinearRing) {
	r.parent = p
	p.interiors = append(p.interiors, r)
}

// SetInteriorRings replaces the holes; an empty non-nil slice is kept as is.
func (p *Polygon) SetInteriorRings(rings []*LinearRing) {
	for _, r := range rings {
		r.parent = p
	}
	p.interiors = rings
}

// Rings returns the exterior ring followed by the interior rings.
func (p *Polygon) Rings() []*LinearRing {
	rings := make([]*LinearRing, 0, 1+len(p.interiors))
	rings = append(rings, p.exterior)
	return append(rings, p.interiors...)
}

// OrientedRings returns the coordinates of every ring in the winding the
// polygon actually has: reversed copies when the polygon is reversed, the
// stored slices otherwise. Codecs write these.
func (p *Polygon) OrientedRings() [][]Coordinate {
	rings := p.Rings()
	out := make([][]Coordinate, len(rings))
	for i, r := range rings {
		if p.reversed {
			out[i] = reversedCoordinates(r.coordinates)
		} else {
			out[i] = r.coordinates
		}
	}
	return out
}

func (p *Polygon) Type() Type           { return PolygonType }
func (p *Polygon) VertexDimension() int { return vertexDimension(p) }
func (p *Polygon) IsEmpty() bool        { return p.exterior == nil || p.exterior.IsEmpty() }
func (p *Polygon) Envelope() *Envelope  { return envelopeOf(p) }
func (p *Polygon) Accept(v Visitor)     { v.VisitPolygon(p) }

func (p *Polygon) Force2D() Geometry {
	force2D(p)
	return p
}

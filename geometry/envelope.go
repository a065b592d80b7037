package geometry

import "math"

// Envelope is an axis-aligned bounding box. It is computed on demand by
// Geometry.Envelope and never stored on a geometry. Including a 2D
// coordinate turns the envelope 2D.
type Envelope struct {
	min, max      [3]float64
	dim           int
	empty         bool
	srid          *int
	srsIdentifier *string
	parent        Geometry
}

func EmptyEnvelope() *Envelope {
	e := &Envelope{}
	e.reset()
	return e
}

// NewEnvelope spans the two corners, which may be given in any order.
func NewEnvelope(lower, upper Coordinate) *Envelope {
	return EmptyEnvelope().Include(lower).Include(upper)
}

func (e *Envelope) reset() {
	for i := range 3 {
		e.min[i] = math.Inf(1)
		e.max[i] = math.Inf(-1)
	}
	e.dim = 3
	e.empty = true
}

func (e *Envelope) IsEmpty() bool { return e.empty }

// VertexDimension is 2 if any included coordinate was 2D.
func (e *Envelope) VertexDimension() int {
	if e.empty {
		return 2
	}
	return e.dim
}

func (e *Envelope) LowerCorner() Coordinate { return e.corner(e.min) }
func (e *Envelope) UpperCorner() Coordinate { return e.corner(e.max) }

func (e *Envelope) corner(v [3]float64) Coordinate {
	if e.empty {
		return EmptyCoordinate()
	}
	if e.dim == 3 {
		return NewCoordinate3D(v[0], v[1], v[2])
	}
	return NewCoordinate(v[0], v[1])
}

// Include grows the envelope to contain c. Empty coordinates are ignored.
func (e *Envelope) Include(c Coordinate) *Envelope {
	if c.IsEmpty() {
		return e
	}
	if c.Dimension() == 2 {
		e.dim = 2
	}
	e.min[0], e.max[0] = math.Min(e.min[0], c.x), math.Max(e.max[0], c.x)
	e.min[1], e.max[1] = math.Min(e.min[1], c.y), math.Max(e.max[1], c.y)
	if c.Dimension() == 3 {
		e.min[2], e.max[2] = math.Min(e.min[2], c.z), math.Max(e.max[2], c.z)
	}
	e.empty = false
	return e
}

func (e *Envelope) IncludeEnvelope(o *Envelope) *Envelope {
	if o == nil || o.empty {
		return e
	}
	return e.Include(o.LowerCorner()).Include(o.UpperCorner())
}

func (e *Envelope) Intersects(o *Envelope) bool {
	if e.empty || o == nil || o.empty {
		return false
	}
	axes := 2
	if e.dim == 3 && o.dim == 3 {
		axes = 3
	}
	for i := range axes {
		if e.min[i] > o.max[i] || o.min[i] > e.max[i] {
			return false
		}
	}
	return true
}

func (e *Envelope) Contains(c Coordinate) bool {
	if e.empty || c.IsEmpty() {
		return false
	}
	if c.x < e.min[0] || c.x > e.max[0] || c.y < e.min[1] || c.y > e.max[1] {
		return false
	}
	if e.dim == 3 && c.Dimension() == 3 {
		return c.z >= e.min[2] && c.z <= e.max[2]
	}
	return true
}

func (e *Envelope) Center() Coordinate {
	if e.empty {
		return EmptyCoordinate()
	}
	if e.dim == 3 {
		return NewCoordinate3D((e.min[0]+e.max[0])/2, (e.min[1]+e.max[1])/2, (e.min[2]+e.max[2])/2)
	}
	return NewCoordinate((e.min[0]+e.max[0])/2, (e.min[1]+e.max[1])/2)
}

func (e *Envelope) Force2D() *Envelope {
	e.dim = 2
	return e
}

func (e *Envelope) SRID() (int, bool) {
	if e.srid != nil {
		return *e.srid, true
	}
	if e.parent != nil {
		return e.parent.SRID()
	}
	return 0, false
}

func (e *Envelope) SetSRID(srid int) *Envelope {
	e.srid = &srid
	return e
}

func (e *Envelope) SRSIdentifier() (string, bool) {
	if e.srsIdentifier != nil {
		return *e.srsIdentifier, true
	}
	if e.parent != nil {
		return e.parent.SRSIdentifier()
	}
	return "", false
}

func (e *Envelope) SetSRSIdentifier(id string) *Envelope {
	e.srsIdentifier = &id
	return e
}

// Parent is the geometry the envelope was computed from, if any.
func (e *Envelope) Parent() Geometry { return e.parent }

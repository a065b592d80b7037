// Package geometry is the in-memory spatial model shared by the WKB, WKT and
// SDO codecs.
//
// Every composite owns its children exclusively. A child keeps a read-only
// reference to its owner so that SRID and SRS identifier lookups can fall
// back to the enclosing geometry; nothing is ever copied downwards.
package geometry

// Geometry is implemented by every variant of the model. The set of variants
// is closed; use a type switch or a Visitor to dispatch on it.
type Geometry interface {
	Type() Type

	ObjectID() string
	SetObjectID(id string)

	// SRID returns the locally set SRID, or the one inherited from the
	// nearest owner that has one.
	SRID() (int, bool)
	SetSRID(srid int)
	ClearSRID()

	// SRSIdentifier follows the same inheritance rule as SRID.
	SRSIdentifier() (string, bool)
	SetSRSIdentifier(id string)

	// Parent returns the owning geometry, nil for a root.
	Parent() Geometry

	// VertexDimension is derived from the coordinates: 2 if any non-empty
	// coordinate is 2D or there are none, 3 otherwise. The NaN position of
	// an empty point does not count.
	VertexDimension() int
	IsEmpty() bool

	// Force2D drops z from every coordinate in place and returns the
	// receiver. Solid, MultiSolid and CompositeSolid are exempt: they return
	// the receiver unchanged and stay 3D.
	Force2D() Geometry

	Envelope() *Envelope
	Accept(v Visitor)

	core() *base
}

type base struct {
	objectID      string
	srid          *int
	srsIdentifier *string
	parent        Geometry
}

func (b *base) ObjectID() string      { return b.objectID }
func (b *base) SetObjectID(id string) { b.objectID = id }

func (b *base) SRID() (int, bool) {
	if b.srid != nil {
		return *b.srid, true
	}
	if b.parent != nil {
		return b.parent.SRID()
	}
	return 0, false
}

func (b *base) SetSRID(srid int) { b.srid = &srid }
func (b *base) ClearSRID()       { b.srid = nil }

func (b *base) SRSIdentifier() (string, bool) {
	if b.srsIdentifier != nil {
		return *b.srsIdentifier, true
	}
	if b.parent != nil {
		return b.parent.SRSIdentifier()
	}
	return "", false
}

func (b *base) SetSRSIdentifier(id string) { b.srsIdentifier = &id }

func (b *base) Parent() Geometry { return b.parent }

func (b *base) core() *base { return b }

// LocalSRID returns the SRID set on g itself, ignoring owners.
func LocalSRID(g Geometry) (int, bool) {
	if b := g.core(); b.srid != nil {
		return *b.srid, true
	}
	return 0, false
}

func adopt(owner, child Geometry) {
	child.core().parent = owner
}

func vertexDimension(g Geometry) int {
	n, has2D := 0, false
	walkCoordinates(g, func(c *Coordinate) {
		if c.IsEmpty() {
			return
		}
		n++
		if c.Dimension() == 2 {
			has2D = true
		}
	})
	if n == 0 || has2D {
		return 2
	}
	return 3
}

func force2D(g Geometry) {
	walkCoordinates(g, func(c *Coordinate) {
		*c = c.force2D()
	})
}

func envelopeOf(g Geometry) *Envelope {
	env := EmptyEnvelope()
	walkCoordinates(g, func(c *Coordinate) {
		env.Include(*c)
	})
	env.parent = g
	return env
}

// ForEachCoordinate calls fn for every coordinate of g in encoding order:
// rings exterior first, children in sequence.
func ForEachCoordinate(g Geometry, fn func(c Coordinate)) {
	walkCoordinates(g, func(c *Coordinate) { fn(*c) })
}

// HasZ reports whether any non-empty coordinate of g is 3D.
func HasZ(g Geometry) bool {
	found := false
	walkCoordinates(g, func(c *Coordinate) {
		if !c.IsEmpty() && c.Dimension() == 3 {
			found = true
		}
	})
	return found
}

package geometry

type Point struct {
	base
	coordinate Coordinate
}

func NewPoint(c Coordinate) *Point {
	return &Point{coordinate: c}
}

// EmptyPoint returns a point positioned at NaN, NaN.
func EmptyPoint() *Point {
	return NewPoint(EmptyCoordinate())
}

func (p *Point) Coordinate() Coordinate { return p.coordinate }

func (p *Point) Type() Type           { return PointType }
func (p *Point) VertexDimension() int { return p.coordinate.Dimension() }
func (p *Point) IsEmpty() bool        { return p.coordinate.IsEmpty() }
func (p *Point) Envelope() *Envelope  { return envelopeOf(p) }
func (p *Point) Accept(v Visitor)     { v.VisitPoint(p) }

func (p *Point) Force2D() Geometry {
	force2D(p)
	return p
}

type MultiPoint struct {
	base
	points []*Point
}

func NewMultiPoint(points []*Point) *MultiPoint {
	mp := &MultiPoint{}
	for _, p := range points {
		mp.AddPoint(p)
	}
	return mp
}

func EmptyMultiPoint() *MultiPoint {
	return &MultiPoint{}
}

func (mp *MultiPoint) Points() []*Point { return mp.points }

func (mp *MultiPoint) AddPoint(p *Point) {
	adopt(mp, p)
	mp.points = append(mp.points, p)
}

func (mp *MultiPoint) Type() Type           { return MultiPointType }
func (mp *MultiPoint) VertexDimension() int { return vertexDimension(mp) }
func (mp *MultiPoint) IsEmpty() bool        { return len(mp.points) == 0 }
func (mp *MultiPoint) Envelope() *Envelope  { return envelopeOf(mp) }
func (mp *MultiPoint) Accept(v Visitor)     { v.VisitMultiPoint(mp) }

func (mp *MultiPoint) Force2D() Geometry {
	force2D(mp)
	return mp
}

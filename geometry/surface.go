package geometry

// SurfaceCollection is implemented by MultiSurface, CompositeSurface and
// TriangulatedSurface. They share their structure and differ only in Type.
type SurfaceCollection interface {
	Geometry
	Polygons() []*Polygon
	AddPolygon(p *Polygon)
}

type surfaceCollection struct {
	base
	polygons []*Polygon
}

func (s *surfaceCollection) Polygons() []*Polygon { return s.polygons }
func (s *surfaceCollection) IsEmpty() bool        { return len(s.polygons) == 0 }

func (s *surfaceCollection) add(owner Geometry, p *Polygon) {
	adopt(owner, p)
	s.polygons = append(s.polygons, p)
}

type MultiSurface struct {
	surfaceCollection
}

func NewMultiSurface(polygons []*Polygon) *MultiSurface {
	ms := &MultiSurface{}
	for _, p := range polygons {
		ms.AddPolygon(p)
	}
	return ms
}

func EmptyMultiSurface() *MultiSurface { return &MultiSurface{} }

func (ms *MultiSurface) AddPolygon(p *Polygon) { ms.add(ms, p) }

func (ms *MultiSurface) Type() Type           { return MultiSurfaceType }
func (ms *MultiSurface) VertexDimension() int { return vertexDimension(ms) }
func (ms *MultiSurface) Envelope() *Envelope  { return envelopeOf(ms) }
func (ms *MultiSurface) Accept(v Visitor)     { v.VisitMultiSurface(ms) }

func (ms *MultiSurface) Force2D() Geometry {
	force2D(ms)
	return ms
}

type CompositeSurface struct {
	surfaceCollection
}

func NewCompositeSurface(polygons []*Polygon) *CompositeSurface {
	cs := &CompositeSurface{}
	for _, p := range polygons {
		cs.AddPolygon(p)
	}
	return cs
}

func EmptyCompositeSurface() *CompositeSurface { return &CompositeSurface{} }

func (cs *CompositeSurface) AddPolygon(p *Polygon) { cs.add(cs, p) }

func (cs *CompositeSurface) Type() Type           { return CompositeSurfaceType }
func (cs *CompositeSurface) VertexDimension() int { return vertexDimension(cs) }
func (cs *CompositeSurface) Envelope() *Envelope  { return envelopeOf(cs) }
func (cs *CompositeSurface) Accept(v Visitor)     { v.VisitCompositeSurface(cs) }

func (cs *CompositeSurface) Force2D() Geometry {
	force2D(cs)
	return cs
}

type TriangulatedSurface struct {
	surfaceCollection
}

func NewTriangulatedSurface(triangles []*Polygon) *TriangulatedSurface {
	ts := &TriangulatedSurface{}
	for _, p := range triangles {
		ts.AddPolygon(p)
	}
	return ts
}

func EmptyTriangulatedSurface() *TriangulatedSurface { return &TriangulatedSurface{} }

func (ts *TriangulatedSurface) AddPolygon(p *Polygon) { ts.add(ts, p) }

func (ts *TriangulatedSurface) Type() Type           { return TriangulatedSurfaceType }
func (ts *TriangulatedSurface) VertexDimension() int { return vertexDimension(ts) }
func (ts *TriangulatedSurface) Envelope() *Envelope  { return envelopeOf(ts) }
func (ts *TriangulatedSurface) Accept(v Visitor)     { v.VisitTriangulatedSurface(ts) }

func (ts *TriangulatedSurface) Force2D() Geometry {
	force2D(ts)
	return ts
}

// NewSurfaceCollection builds the surface collection variant named by t.
func NewSurfaceCollection(t Type, polygons []*Polygon) (SurfaceCollection, error) {
	switch t {
	case MultiSurfaceType:
		return NewMultiSurface(polygons), nil
	case CompositeSurfaceType:
		return NewCompositeSurface(polygons), nil
	case TriangulatedSurfaceType:
		return NewTriangulatedSurface(polygons), nil
	default:
		return nil, unsupportedType(t, "surface collection")
	}
}

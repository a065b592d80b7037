package geometry

// Visitor has one method per variant. Geometry.Accept calls the method that
// matches the receiver; recursion into children is up to the visitor.
type Visitor interface {
	VisitPoint(p *Point)
	VisitMultiPoint(mp *MultiPoint)
	VisitLineString(ls *LineString)
	VisitMultiLineString(mls *MultiLineString)
	VisitPolygon(p *Polygon)
	VisitMultiSurface(ms *MultiSurface)
	VisitCompositeSurface(cs *CompositeSurface)
	VisitTriangulatedSurface(ts *TriangulatedSurface)
	VisitSolid(s *Solid)
	VisitMultiSolid(ms *MultiSolid)
	VisitCompositeSolid(cs *CompositeSolid)
}

// coordinateWalker is the one recursive traversal of the model; envelope,
// dimension and force-2D are all folds over it.
type coordinateWalker struct {
	fn func(c *Coordinate)
}

func walkCoordinates(g Geometry, fn func(c *Coordinate)) {
	if g == nil {
		return
	}
	g.Accept(&coordinateWalker{fn: fn})
}

func (w *coordinateWalker) list(coords []Coordinate) {
	for i := range coords {
		w.fn(&coords[i])
	}
}

func (w *coordinateWalker) VisitPoint(p *Point) {
	w.fn(&p.coordinate)
}

func (w *coordinateWalker) VisitMultiPoint(mp *MultiPoint) {
	for _, p := range mp.points {
		w.VisitPoint(p)
	}
}

func (w *coordinateWalker) VisitLineString(ls *LineString) {
	w.list(ls.coordinates)
}

func (w *coordinateWalker) VisitMultiLineString(mls *MultiLineString) {
	for _, ls := range mls.lineStrings {
		w.VisitLineString(ls)
	}
}

func (w *coordinateWalker) VisitPolygon(p *Polygon) {
	if p.exterior != nil {
		w.list(p.exterior.coordinates)
	}
	for _, r := range p.interiors {
		w.list(r.coordinates)
	}
}

func (w *coordinateWalker) polygons(ps []*Polygon) {
	for _, p := range ps {
		w.VisitPolygon(p)
	}
}

func (w *coordinateWalker) VisitMultiSurface(ms *MultiSurface) { w.polygons(ms.polygons) }

func (w *coordinateWalker) VisitCompositeSurface(cs *CompositeSurface) { w.polygons(cs.polygons) }

func (w *coordinateWalker) VisitTriangulatedSurface(ts *TriangulatedSurface) { w.polygons(ts.polygons) }

func (w *coordinateWalker) VisitSolid(s *Solid) {
	if s.shell != nil {
		w.VisitCompositeSurface(s.shell)
	}
}

func (w *coordinateWalker) solids(ss []*Solid) {
	for _, s := range ss {
		w.VisitSolid(s)
	}
}

func (w *coordinateWalker) VisitMultiSolid(ms *MultiSolid) { w.solids(ms.solids) }

func (w *coordinateWalker) VisitCompositeSolid(cs *CompositeSolid) { w.solids(cs.solids) }

package sdo

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/geometry"
)

type DecoderOptions struct {
	// Logger receives warnings about tolerated input quirks. Defaults to
	// common.Logger().
	Logger logrus.FieldLogger
}

// Decoder turns an Object into a geometry. It is immutable after
// construction and safe for concurrent use.
type Decoder struct {
	log logrus.FieldLogger
}

func NewDecoder(opts ...DecoderOptions) *Decoder {
	var log logrus.FieldLogger
	if len(opts) > 0 {
		log = opts[0].Logger
	}
	return &Decoder{log: common.LoggerOr(log)}
}

// element is one element-info triplet with the ordinates it covers: from its
// own start offset up to the next triplet's start offset, or the end of the
// ordinate array for the last triplet.
type element struct {
	index  int
	etype  int
	interp int
	ords   []float64
}

func (d *Decoder) Decode(o Object) (geometry.Geometry, error) {
	gt, err := parseGType(o.GType)
	if err != nil {
		return nil, err
	}
	elems, err := splitElements(o, gt.dim)
	if err != nil {
		return nil, err
	}

	dec := &decoding{dim: gt.dim, elems: elems, log: d.log.WithField("gtype", o.GType)}
	g, err := dec.decode(gt.shape)
	if err != nil {
		return nil, err
	}
	if dec.pos < len(elems) {
		e := elems[dec.pos]
		return nil, common.Malformed("unexpected element type %d at element %d", e.etype, e.index)
	}
	if o.SRID > 0 {
		g.SetSRID(o.SRID)
	}
	return g, nil
}

func splitElements(o Object, dim int) ([]element, error) {
	if len(o.ElemInfo)%3 != 0 {
		return nil, common.Malformed("element info length %d is not a multiple of 3", len(o.ElemInfo))
	}
	if len(o.Ordinates)%dim != 0 {
		return nil, common.Malformed("%d ordinates are not a multiple of dimension %d", len(o.Ordinates), dim)
	}

	n := len(o.ElemInfo) / 3
	elems := make([]element, n)
	for i := range n {
		start := o.ElemInfo[3*i] - 1
		end := len(o.Ordinates)
		if i+1 < n {
			end = o.ElemInfo[3*(i+1)] - 1
		}
		if start < 0 || start > len(o.Ordinates) || start%dim != 0 {
			return nil, common.Malformed("invalid start offset %d at element %d", o.ElemInfo[3*i], i)
		}
		if end < start || end > len(o.Ordinates) {
			return nil, common.Malformed("ordinate range [%d, %d) out of bounds at element %d", start+1, end+1, i)
		}
		elems[i] = element{
			index:  i,
			etype:  o.ElemInfo[3*i+1],
			interp: o.ElemInfo[3*i+2],
			ords:   o.Ordinates[start:end],
		}
	}
	return elems, nil
}

// decoding is the per-call cursor over the elements.
type decoding struct {
	dim   int
	elems []element
	pos   int
	log   logrus.FieldLogger
}

func (dec *decoding) done() bool {
	return dec.pos >= len(dec.elems)
}

func (dec *decoding) peek() (element, bool) {
	if dec.done() {
		return element{}, false
	}
	return dec.elems[dec.pos], true
}

func (dec *decoding) unexpected(e element, want int) error {
	return common.Malformed("unexpected element type %d at element %d, want %d", e.etype, e.index, want)
}

// take consumes the next element, which must have the given type.
func (dec *decoding) take(etype int) (element, error) {
	e, ok := dec.peek()
	if !ok {
		return e, common.Malformed("missing element of type %d after element %d", etype, len(dec.elems)-1)
	}
	if e.etype != etype {
		return e, dec.unexpected(e, etype)
	}
	dec.pos++
	return e, nil
}

// count validates the member count of a marker element against the
// elements that follow it.
func (dec *decoding) count(e element) (int, error) {
	if e.interp < 0 {
		return 0, common.Malformed("negative count %d at element %d", e.interp, e.index)
	}
	if err := common.ValidateCount(uint64(e.interp), 1, len(dec.elems)-dec.pos); err != nil {
		return 0, errors.WithMessagef(err, "member count of element %d", e.index)
	}
	return e.interp, nil
}

func (dec *decoding) coordinates(e element) ([]geometry.Coordinate, error) {
	return geometry.CoordinatesFromOrdinates(dec.dim, e.ords)
}

func (dec *decoding) decode(shape int) (geometry.Geometry, error) {
	empty := len(dec.elems) == 0
	switch shape {
	case shapePoint:
		if empty {
			return geometry.EmptyPoint(), nil
		}
		return dec.point()
	case shapeLine:
		if empty {
			return geometry.EmptyLineString(), nil
		}
		return dec.lineString()
	case shapePolygon:
		if empty {
			return geometry.EmptyPolygon(), nil
		}
		if e, _ := dec.peek(); e.etype == etypeCompositeSurface {
			return dec.compositeSurface()
		}
		return dec.polygon()
	case shapeMultiPoint:
		return dec.multiPoint()
	case shapeMultiLine:
		return dec.multiLineString()
	case shapeMultiPolygon:
		var polygons []*geometry.Polygon
		for !dec.done() {
			p, err := dec.polygon()
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, p)
		}
		return geometry.NewMultiSurface(polygons), nil
	case shapeSolid:
		if empty {
			return geometry.EmptySolid(), nil
		}
		if e, _ := dec.peek(); e.etype == etypeCompositeSolid {
			return dec.compositeSolid()
		}
		return dec.solid()
	case shapeMultiSolid:
		return dec.multiSolid()
	}
	return nil, common.Unsupported("shape %02d", shape)
}

func pointOf(c geometry.Coordinate) *geometry.Point {
	if c.IsEmpty() {
		return geometry.EmptyPoint()
	}
	return geometry.NewPoint(c)
}

// points reads one point element; interp is the number of points.
func (dec *decoding) points() ([]*geometry.Point, error) {
	e, err := dec.take(etypePoint)
	if err != nil {
		return nil, err
	}
	coords, err := dec.coordinates(e)
	if err != nil {
		return nil, err
	}
	if e.interp < 1 || len(coords) != e.interp {
		return nil, common.Malformed("point element %d declares %d points, has %d", e.index, e.interp, len(coords))
	}
	points := make([]*geometry.Point, len(coords))
	for i, c := range coords {
		points[i] = pointOf(c)
	}
	return points, nil
}

func (dec *decoding) point() (*geometry.Point, error) {
	points, err := dec.points()
	if err != nil {
		return nil, err
	}
	if len(points) != 1 {
		return nil, common.Malformed("point geometry with %d points", len(points))
	}
	return points[0], nil
}

func (dec *decoding) multiPoint() (*geometry.MultiPoint, error) {
	var points []*geometry.Point
	for !dec.done() {
		pts, err := dec.points()
		if err != nil {
			return nil, err
		}
		points = append(points, pts...)
	}
	return geometry.NewMultiPoint(points), nil
}

func (dec *decoding) lineString() (*geometry.LineString, error) {
	e, err := dec.take(etypeLine)
	if err != nil {
		return nil, err
	}
	if e.interp != interpStraight {
		return nil, common.Unsupported("line interpretation %d at element %d", e.interp, e.index)
	}
	coords, err := dec.coordinates(e)
	if err != nil {
		return nil, err
	}
	return geometry.NewLineString(coords), nil
}

func (dec *decoding) multiLineString() (*geometry.MultiLineString, error) {
	var lineStrings []*geometry.LineString
	for !dec.done() {
		ls, err := dec.lineString()
		if err != nil {
			return nil, err
		}
		lineStrings = append(lineStrings, ls)
	}
	return geometry.NewMultiLineString(lineStrings), nil
}

// ring reads a ring element, expanding the rectangle shorthand. Exterior
// rectangles are wound counter-clockwise, interior ones clockwise.
func (dec *decoding) ring(e element) (*geometry.LinearRing, error) {
	switch e.interp {
	case interpStraight:
		coords, err := dec.coordinates(e)
		if err != nil {
			return nil, err
		}
		return geometry.NewLinearRing(coords), nil
	case interpRectangle:
		coords, err := dec.rectangle(e)
		if err != nil {
			return nil, err
		}
		if e.etype == etypeInteriorRing {
			for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
				coords[i], coords[j] = coords[j], coords[i]
			}
		}
		return geometry.NewLinearRing(coords), nil
	}
	return nil, common.Unsupported("ring interpretation %d at element %d", e.interp, e.index)
}

func (dec *decoding) rectangle(e element) ([]geometry.Coordinate, error) {
	corners, err := dec.coordinates(e)
	if err != nil {
		return nil, err
	}
	if len(corners) != 2 {
		return nil, common.Malformed("rectangle at element %d has %d corners, want 2", e.index, len(corners))
	}
	lo, hi := corners[0], corners[1]
	if dec.dim == 2 {
		return []geometry.Coordinate{
			geometry.NewCoordinate(lo.X(), lo.Y()),
			geometry.NewCoordinate(hi.X(), lo.Y()),
			geometry.NewCoordinate(hi.X(), hi.Y()),
			geometry.NewCoordinate(lo.X(), hi.Y()),
			geometry.NewCoordinate(lo.X(), lo.Y()),
		}, nil
	}
	if lo.Z() != hi.Z() {
		return nil, common.Unsupported("non-horizontal rectangle at element %d", e.index)
	}
	z := lo.Z()
	return []geometry.Coordinate{
		geometry.NewCoordinate3D(lo.X(), lo.Y(), z),
		geometry.NewCoordinate3D(hi.X(), lo.Y(), z),
		geometry.NewCoordinate3D(hi.X(), hi.Y(), z),
		geometry.NewCoordinate3D(lo.X(), hi.Y(), z),
		geometry.NewCoordinate3D(lo.X(), lo.Y(), z),
	}, nil
}

// polygon reads an exterior ring and the interior rings that follow it.
func (dec *decoding) polygon() (*geometry.Polygon, error) {
	e, err := dec.take(etypeExteriorRing)
	if err != nil {
		return nil, err
	}
	exterior, err := dec.ring(e)
	if err != nil {
		return nil, err
	}
	p := geometry.NewPolygon(exterior)
	for {
		next, ok := dec.peek()
		if !ok || next.etype != etypeInteriorRing {
			return p, nil
		}
		dec.pos++
		r, err := dec.ring(next)
		if err != nil {
			return nil, err
		}
		p.AddInteriorRing(r)
	}
}

// surface reads the polygons announced by a composite surface marker.
func (dec *decoding) surface() ([]*geometry.Polygon, error) {
	marker, err := dec.take(etypeCompositeSurface)
	if err != nil {
		return nil, err
	}
	n, err := dec.count(marker)
	if err != nil {
		return nil, err
	}
	polygons := make([]*geometry.Polygon, 0, n)
	for range n {
		p, err := dec.polygon()
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, p)
	}
	return polygons, nil
}

// shell reads the outer surface of a solid. The 1006 marker is optional:
// without it, every polygon up to the next non-ring element is a face.
func (dec *decoding) shell() ([]*geometry.Polygon, error) {
	if e, ok := dec.peek(); !ok || e.etype != etypeExteriorRing {
		return dec.surface()
	}
	var polygons []*geometry.Polygon
	for e, ok := dec.peek(); ok && e.etype == etypeExteriorRing; e, ok = dec.peek() {
		p, err := dec.polygon()
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, p)
	}
	return polygons, nil
}

func (dec *decoding) compositeSurface() (*geometry.CompositeSurface, error) {
	polygons, err := dec.surface()
	if err != nil {
		return nil, err
	}
	return geometry.NewCompositeSurface(polygons), nil
}

func (dec *decoding) solid() (*geometry.Solid, error) {
	e, err := dec.take(etypeSolid)
	if err != nil {
		return nil, err
	}

	var shell []*geometry.Polygon
	switch e.interp {
	case interpStraight:
		if shell, err = dec.shell(); err != nil {
			return nil, err
		}
	case interpRectangle:
		if shell, err = dec.box(e); err != nil {
			return nil, err
		}
	default:
		return nil, common.Unsupported("solid interpretation %d at element %d", e.interp, e.index)
	}
	dec.skipVoids()

	s, err := geometry.NewSolid(geometry.NewCompositeSurface(shell))
	if err != nil {
		return nil, errors.WithMessagef(err, "solid at element %d", e.index)
	}
	return s, nil
}

// skipVoids drops interior shells and interior solids following a solid's
// outer shell. Voids are not modeled.
func (dec *decoding) skipVoids() {
	for {
		e, ok := dec.peek()
		if !ok {
			return
		}
		switch e.etype {
		case etypeInteriorSurface:
			dec.log.WithFields(logrus.Fields{"element": e.index, "etype": e.etype}).
				Warn("skipping interior surface of solid")
			dec.pos++
			for next, ok := dec.peek(); ok && next.etype == etypeInteriorRing; next, ok = dec.peek() {
				dec.pos++
			}
		case etypeInteriorSolid:
			dec.log.WithFields(logrus.Fields{"element": e.index, "etype": e.etype}).
				Warn("skipping interior solid")
			dec.pos++
		default:
			return
		}
	}
}

// box expands the optimized box, the two corners (xmin ymin zmin) and
// (xmax ymax zmax), into six outward facing faces.
func (dec *decoding) box(e element) ([]*geometry.Polygon, error) {
	if dec.dim != 3 || len(e.ords) != 6 {
		return nil, common.Malformed("box at element %d needs 6 ordinates in 3D, has %d in %dD", e.index, len(e.ords), dec.dim)
	}
	x1, y1, z1 := e.ords[0], e.ords[1], e.ords[2]
	x2, y2, z2 := e.ords[3], e.ords[4], e.ords[5]
	if math.IsNaN(x1 + y1 + z1 + x2 + y2 + z2) {
		return nil, common.Malformed("box at element %d has NaN ordinates", e.index)
	}

	face := func(pts ...[3]float64) *geometry.Polygon {
		coords := make([]geometry.Coordinate, 0, len(pts)+1)
		for _, p := range pts {
			coords = append(coords, geometry.NewCoordinate3D(p[0], p[1], p[2]))
		}
		coords = append(coords, coords[0])
		return geometry.NewPolygon(geometry.NewLinearRing(coords))
	}
	return []*geometry.Polygon{
		face([3]float64{x1, y1, z1}, [3]float64{x1, y2, z1}, [3]float64{x2, y2, z1}, [3]float64{x2, y1, z1}), // bottom
		face([3]float64{x1, y1, z2}, [3]float64{x2, y1, z2}, [3]float64{x2, y2, z2}, [3]float64{x1, y2, z2}), // top
		face([3]float64{x1, y1, z1}, [3]float64{x2, y1, z1}, [3]float64{x2, y1, z2}, [3]float64{x1, y1, z2}), // front
		face([3]float64{x1, y2, z1}, [3]float64{x1, y2, z2}, [3]float64{x2, y2, z2}, [3]float64{x2, y2, z1}), // back
		face([3]float64{x1, y1, z1}, [3]float64{x1, y1, z2}, [3]float64{x1, y2, z2}, [3]float64{x1, y2, z1}), // left
		face([3]float64{x2, y1, z1}, [3]float64{x2, y2, z1}, [3]float64{x2, y2, z2}, [3]float64{x2, y1, z2}), // right
	}, nil
}

func (dec *decoding) compositeSolid() (*geometry.CompositeSolid, error) {
	marker, err := dec.take(etypeCompositeSolid)
	if err != nil {
		return nil, err
	}
	n, err := dec.count(marker)
	if err != nil {
		return nil, err
	}
	solids := make([]*geometry.Solid, 0, n)
	for range n {
		s, err := dec.solid()
		if err != nil {
			return nil, err
		}
		solids = append(solids, s)
	}
	return geometry.NewCompositeSolid(solids), nil
}

// multiSolid scans for solid starts. Anything else at that level is skipped
// with a warning. A leading 1008 triplet is the collection header and fixes
// the number of solids.
func (dec *decoding) multiSolid() (*geometry.MultiSolid, error) {
	want := -1
	header, ok := dec.peek()
	hasHeader := ok && header.etype == etypeCompositeSolid
	if hasHeader {
		dec.pos++
		n, err := dec.count(header)
		if err != nil {
			return nil, err
		}
		want = n
	}

	var solids []*geometry.Solid
	for !dec.done() && len(solids) != want {
		e, _ := dec.peek()
		if e.etype != etypeSolid {
			dec.log.WithFields(logrus.Fields{"element": e.index, "etype": e.etype}).
				Warn("skipping element while scanning for solids")
			dec.pos++
			continue
		}
		s, err := dec.solid()
		if err != nil {
			return nil, err
		}
		solids = append(solids, s)
	}
	if hasHeader && len(solids) != want {
		return nil, common.Malformed("element %d declares %d solids, found %d", header.index, want, len(solids))
	}
	return geometry.NewMultiSolid(solids), nil
}

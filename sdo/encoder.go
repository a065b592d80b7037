package sdo

import (
	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/geometry"
)

// Encoder turns a geometry into an Object. It holds no state and is safe for
// concurrent use.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode flattens g. Geometries mixing 2D and 3D coordinates are written in
// 3D with z = 0 for the 2D ones, since an Object has a single dimension.
func (e *Encoder) Encode(g geometry.Geometry) (Object, error) {
	if g == nil {
		return Object{}, common.Invariant("cannot encode a nil geometry")
	}
	enc := &builder{dim: g.VertexDimension()}
	if enc.dim == 2 && geometry.HasZ(g) {
		enc.dim = 3
	}

	shape, err := enc.encode(g)
	if err != nil {
		return Object{}, err
	}
	obj := Object{
		GType:     gtype{dim: enc.dim, shape: shape}.value(),
		ElemInfo:  enc.elemInfo,
		Ordinates: enc.ordinates,
	}
	if srid, ok := g.SRID(); ok && srid > 0 {
		obj.SRID = srid
	}
	return obj, nil
}

type builder struct {
	dim       int
	elemInfo  []int
	ordinates []float64
}

// element appends a triplet starting at the current end of the ordinates.
func (enc *builder) element(etype, interp int) {
	enc.elemInfo = append(enc.elemInfo, len(enc.ordinates)+1, etype, interp)
}

func (enc *builder) coordinates(coords []geometry.Coordinate) {
	enc.ordinates = append(enc.ordinates, geometry.Ordinates(coords, enc.dim)...)
}

func (enc *builder) encode(g geometry.Geometry) (int, error) {
	switch v := g.(type) {
	case *geometry.Point:
		if !v.IsEmpty() {
			enc.element(etypePoint, 1)
			enc.coordinates([]geometry.Coordinate{v.Coordinate()})
		}
		return shapePoint, nil
	case *geometry.LineString:
		if !v.IsEmpty() {
			enc.lineString(v)
		}
		return shapeLine, nil
	case *geometry.Polygon:
		if !v.IsEmpty() {
			enc.polygon(v)
		}
		return shapePolygon, nil
	case *geometry.MultiPoint:
		if !v.IsEmpty() {
			enc.element(etypePoint, len(v.Points()))
			for _, p := range v.Points() {
				enc.coordinates([]geometry.Coordinate{p.Coordinate()})
			}
		}
		return shapeMultiPoint, nil
	case *geometry.MultiLineString:
		for _, ls := range v.LineStrings() {
			enc.lineString(ls)
		}
		return shapeMultiLine, nil
	case *geometry.CompositeSurface:
		enc.surface(v.Polygons())
		return shapePolygon, nil
	case geometry.SurfaceCollection:
		for _, p := range v.Polygons() {
			enc.polygon(p)
		}
		return shapeMultiPolygon, nil
	case *geometry.Solid:
		if v.IsEmpty() {
			return shapeSolid, nil
		}
		return shapeSolid, enc.solid(v)
	case *geometry.CompositeSolid:
		enc.element(etypeCompositeSolid, len(v.Solids()))
		return shapeSolid, enc.solids(v.Solids())
	case *geometry.MultiSolid:
		return shapeMultiSolid, enc.solids(v.Solids())
	}
	return 0, common.Unsupported("cannot encode %T as SDO", g)
}

func (enc *builder) lineString(ls *geometry.LineString) {
	enc.element(etypeLine, interpStraight)
	enc.coordinates(ls.Coordinates())
}

// polygon writes the exterior ring as 1003 followed by the interior rings
// as 2003, in the polygon's actual winding.
func (enc *builder) polygon(p *geometry.Polygon) {
	for i, ring := range p.OrientedRings() {
		etype := etypeInteriorRing
		if i == 0 {
			etype = etypeExteriorRing
		}
		enc.element(etype, interpStraight)
		enc.coordinates(ring)
	}
}

func (enc *builder) surface(polygons []*geometry.Polygon) {
	enc.element(etypeCompositeSurface, len(polygons))
	for _, p := range polygons {
		enc.polygon(p)
	}
}

func (enc *builder) solid(s *geometry.Solid) error {
	if err := s.Validate(); err != nil {
		return err
	}
	enc.element(etypeSolid, interpStraight)
	var faces []*geometry.Polygon
	if s.Shell() != nil {
		faces = s.Shell().Polygons()
	}
	enc.surface(faces)
	return nil
}

func (enc *builder) solids(solids []*geometry.Solid) error {
	for _, s := range solids {
		if err := enc.solid(s); err != nil {
			return err
		}
	}
	return nil
}

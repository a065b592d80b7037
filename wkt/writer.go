package wkt

import (
	"strconv"
	"strings"

	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/geometry"
)

type WriterOptions struct {
	// IncludeSRID prefixes the output with SRID=n; when the geometry has an
	// SRID greater than zero.
	IncludeSRID bool
}

// Writer formats geometries as WKT. Surface collections are written as
// MULTIPOLYGON, solids as POLYHEDRALSURFACE and solid collections as
// GEOMETRYCOLLECTION.
type Writer struct {
	includeSRID bool
}

func NewWriter(opts ...WriterOptions) *Writer {
	w := &Writer{}
	if len(opts) > 0 {
		w.includeSRID = opts[0].IncludeSRID
	}
	return w
}

func (w *Writer) Write(g geometry.Geometry) (string, error) {
	if g == nil {
		return "", common.Invariant("cannot format a nil geometry")
	}
	f := &formatter{dim: g.VertexDimension()}
	if w.includeSRID {
		if srid, ok := g.SRID(); ok && srid > 0 {
			f.sb.WriteString("SRID=")
			f.sb.WriteString(strconv.Itoa(srid))
			f.sb.WriteByte(';')
		}
	}
	if err := f.tagged(g); err != nil {
		return "", err
	}
	return f.sb.String(), nil
}

type formatter struct {
	sb  strings.Builder
	dim int
}

func (f *formatter) tag(tag string, empty bool) {
	f.sb.WriteString(tag)
	if f.dim == 3 {
		f.sb.WriteString(" Z")
	}
	if empty {
		f.sb.WriteString(" EMPTY")
	} else {
		f.sb.WriteByte(' ')
	}
}

func (f *formatter) tagged(g geometry.Geometry) error {
	switch v := g.(type) {
	case *geometry.Point:
		f.tag(tagPoint, v.IsEmpty())
		if !v.IsEmpty() {
			f.point(v)
		}
	case *geometry.LineString:
		f.tag(tagLineString, v.IsEmpty())
		if !v.IsEmpty() {
			f.coordinates(v.Coordinates())
		}
	case *geometry.Polygon:
		f.tag(tagPolygon, v.IsEmpty())
		if !v.IsEmpty() {
			f.polygon(v)
		}
	case *geometry.MultiPoint:
		f.tag(tagMultiPoint, v.IsEmpty())
		if !v.IsEmpty() {
			f.sb.WriteByte('(')
			for i, p := range v.Points() {
				f.separator(i)
				if p.IsEmpty() {
					f.sb.WriteString("EMPTY")
				} else {
					f.point(p)
				}
			}
			f.sb.WriteByte(')')
		}
	case *geometry.MultiLineString:
		f.tag(tagMultiLineString, v.IsEmpty())
		if !v.IsEmpty() {
			f.sb.WriteByte('(')
			for i, ls := range v.LineStrings() {
				f.separator(i)
				if ls.IsEmpty() {
					f.sb.WriteString("EMPTY")
				} else {
					f.coordinates(ls.Coordinates())
				}
			}
			f.sb.WriteByte(')')
		}
	case geometry.SurfaceCollection:
		f.polygons(tagMultiPolygon, v.Polygons())
	case *geometry.Solid:
		return f.solid(v)
	case geometry.SolidCollection:
		f.tag(tagGeometryCollection, v.IsEmpty())
		if !v.IsEmpty() {
			f.sb.WriteByte('(')
			for i, s := range v.Solids() {
				f.separator(i)
				if err := f.solid(s); err != nil {
					return err
				}
			}
			f.sb.WriteByte(')')
		}
	default:
		return common.Unsupported("cannot format %T as WKT", g)
	}
	return nil
}

func (f *formatter) separator(i int) {
	if i > 0 {
		f.sb.WriteString(", ")
	}
}

func (f *formatter) ordinate(v float64) {
	f.sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

func (f *formatter) coordinate(c geometry.Coordinate) {
	f.ordinate(c.X())
	f.sb.WriteByte(' ')
	f.ordinate(c.Y())
	if f.dim == 3 {
		f.sb.WriteByte(' ')
		f.ordinate(c.Z())
	}
}

func (f *formatter) point(p *geometry.Point) {
	f.sb.WriteByte('(')
	f.coordinate(p.Coordinate())
	f.sb.WriteByte(')')
}

func (f *formatter) coordinates(coords []geometry.Coordinate) {
	if len(coords) == 0 {
		f.sb.WriteString("EMPTY")
		return
	}
	f.sb.WriteByte('(')
	for i, c := range coords {
		f.separator(i)
		f.coordinate(c)
	}
	f.sb.WriteByte(')')
}

func (f *formatter) polygon(p *geometry.Polygon) {
	if p.IsEmpty() {
		f.sb.WriteString("EMPTY")
		return
	}
	f.sb.WriteByte('(')
	for i, ring := range p.OrientedRings() {
		f.separator(i)
		f.coordinates(ring)
	}
	f.sb.WriteByte(')')
}

func (f *formatter) polygons(tag string, polygons []*geometry.Polygon) {
	f.tag(tag, len(polygons) == 0)
	if len(polygons) == 0 {
		return
	}
	f.sb.WriteByte('(')
	for i, p := range polygons {
		f.separator(i)
		f.polygon(p)
	}
	f.sb.WriteByte(')')
}

func (f *formatter) solid(s *geometry.Solid) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var faces []*geometry.Polygon
	if s.Shell() != nil {
		faces = s.Shell().Polygons()
	}
	f.polygons(tagPolyhedralSurface, faces)
	return nil
}

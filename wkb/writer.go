package wkb

import (
	"math"

	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/encoding"
	"github.com/hangxie/citygeom/geometry"
)

type WriterOptions struct {
	// BigEndian selects XDR output; the default is NDR (little-endian).
	BigEndian bool
	// IncludeSRID writes the root SRID with the EWKB SRID flag when the
	// geometry has one greater than zero.
	IncludeSRID bool
}

// Writer encodes geometries as EWKB. It is immutable after construction and
// safe for concurrent use.
type Writer struct {
	order       encoding.ByteOrder
	includeSRID bool
}

func NewWriter(opts ...WriterOptions) *Writer {
	w := &Writer{order: encoding.LittleEndian}
	if len(opts) > 0 {
		if opts[0].BigEndian {
			w.order = encoding.BigEndian
		}
		w.includeSRID = opts[0].IncludeSRID
	}
	return w
}

// Write encodes g as raw bytes.
func (w *Writer) Write(g geometry.Geometry) ([]byte, error) {
	buf, err := w.write(g, func(n int) encoding.Buffer { return make(encoding.RawBuffer, n) })
	if err != nil {
		return nil, err
	}
	return buf.(encoding.RawBuffer), nil
}

// WriteHex encodes g as upper-case hex text.
func (w *Writer) WriteHex(g geometry.Geometry) (string, error) {
	buf, err := w.write(g, func(n int) encoding.Buffer { return encoding.MakeHexBuffer(n) })
	if err != nil {
		return "", err
	}
	return buf.(encoding.HexBuffer).String(), nil
}

// write sizes the output with a dry run, allocates once and encodes.
func (w *Writer) write(g geometry.Geometry, alloc func(n int) encoding.Buffer) (encoding.Buffer, error) {
	if g == nil {
		return nil, common.Invariant("cannot encode a nil geometry")
	}
	e := &encoder{order: w.order, dim: g.VertexDimension()}
	if w.includeSRID {
		if srid, ok := g.SRID(); ok && srid > 0 {
			e.srid = srid
		}
	}
	if err := e.geometry(g, true); err != nil {
		return nil, err
	}
	e.buf, e.off = alloc(e.off), 0
	if err := e.geometry(g, true); err != nil {
		return nil, err
	}
	return e.buf, nil
}

// encoder counts bytes while buf is nil and writes them otherwise.
type encoder struct {
	buf   encoding.Buffer
	off   int
	order encoding.ByteOrder
	dim   int
	srid  int
}

func (e *encoder) putByte(v byte) {
	if e.buf != nil {
		encoding.WriteByte(e.buf, e.off, v)
	}
	e.off++
}

func (e *encoder) putUint32(v uint32) {
	if e.buf != nil {
		encoding.WriteUint32(e.buf, e.off, e.order, v)
	}
	e.off += 4
}

func (e *encoder) putOrdinate(v float64) {
	if e.buf != nil {
		encoding.WriteFloat64(e.buf, e.off, e.order, v)
	}
	e.off += 8
}

func (e *encoder) header(code uint32, root bool) {
	word := code
	if e.dim == 3 {
		word |= flagZ
	}
	withSRID := root && e.srid > 0
	if withSRID {
		word |= flagSRID
	}
	e.putByte(byte(e.order))
	e.putUint32(word)
	if withSRID {
		e.putUint32(uint32(e.srid))
	}
}

func (e *encoder) coordinate(c geometry.Coordinate) {
	e.putOrdinate(c.X())
	e.putOrdinate(c.Y())
	if e.dim == 3 {
		if c.Dimension() == 3 {
			e.putOrdinate(c.Z())
		} else if c.IsEmpty() {
			e.putOrdinate(math.NaN())
		} else {
			e.putOrdinate(0)
		}
	}
}

func (e *encoder) coordinates(coords []geometry.Coordinate) {
	e.putUint32(uint32(len(coords)))
	for _, c := range coords {
		e.coordinate(c)
	}
}

func (e *encoder) geometry(g geometry.Geometry, root bool) error {
	switch v := g.(type) {
	case *geometry.Point:
		e.header(wkbPoint, root)
		e.coordinate(v.Coordinate())
	case *geometry.LineString:
		e.header(wkbLineString, root)
		e.coordinates(v.Coordinates())
	case *geometry.Polygon:
		e.polygon(v, root)
	case *geometry.MultiPoint:
		e.header(wkbMultiPoint, root)
		e.putUint32(uint32(len(v.Points())))
		for _, p := range v.Points() {
			e.header(wkbPoint, false)
			e.coordinate(p.Coordinate())
		}
	case *geometry.MultiLineString:
		e.header(wkbMultiLineString, root)
		e.putUint32(uint32(len(v.LineStrings())))
		for _, ls := range v.LineStrings() {
			e.header(wkbLineString, false)
			e.coordinates(ls.Coordinates())
		}
	case geometry.SurfaceCollection:
		e.polygons(wkbMultiPolygon, v.Polygons(), root)
	case *geometry.Solid:
		return e.solid(v, root)
	case geometry.SolidCollection:
		e.header(wkbGeometryCollection, root)
		e.putUint32(uint32(len(v.Solids())))
		for _, s := range v.Solids() {
			if err := e.solid(s, false); err != nil {
				return err
			}
		}
	default:
		return common.Unsupported("cannot encode %T as WKB", g)
	}
	return nil
}

func (e *encoder) polygon(p *geometry.Polygon, root bool) {
	e.header(wkbPolygon, root)
	if p.IsEmpty() {
		e.putUint32(0)
		return
	}
	rings := p.OrientedRings()
	e.putUint32(uint32(len(rings)))
	for _, ring := range rings {
		e.coordinates(ring)
	}
}

func (e *encoder) polygons(code uint32, polygons []*geometry.Polygon, root bool) {
	e.header(code, root)
	e.putUint32(uint32(len(polygons)))
	for _, p := range polygons {
		e.polygon(p, false)
	}
}

func (e *encoder) solid(s *geometry.Solid, root bool) error {
	if err := s.Validate(); err != nil {
		return err
	}
	var faces []*geometry.Polygon
	if s.Shell() != nil {
		faces = s.Shell().Polygons()
	}
	e.polygons(wkbPolyhedralSurface, faces, root)
	return nil
}

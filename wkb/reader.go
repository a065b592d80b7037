package wkb

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/encoding"
	"github.com/hangxie/citygeom/geometry"
)

// Reader decodes WKB and EWKB. It holds no state and is safe for concurrent
// use.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read decodes raw WKB bytes.
func (r *Reader) Read(data []byte) (geometry.Geometry, error) {
	return r.read(encoding.RawBuffer(data))
}

// ReadHex decodes hex encoded WKB. Both letter cases are accepted.
func (r *Reader) ReadHex(s string) (geometry.Geometry, error) {
	buf, err := encoding.NewHexBuffer(s)
	if err != nil {
		return nil, err
	}
	return r.read(buf)
}

func (r *Reader) read(buf encoding.Buffer) (geometry.Geometry, error) {
	d := &decoder{buf: buf}
	h, err := d.header()
	if err != nil {
		return nil, err
	}
	g, err := d.body(h)
	if err != nil {
		return nil, err
	}
	if d.off != buf.Len() {
		return nil, common.Malformed("%d trailing bytes at offset %d", buf.Len()-d.off, d.off)
	}
	if h.hasSRID {
		g.SetSRID(h.srid)
	}
	return g, nil
}

type decoder struct {
	buf encoding.Buffer
	off int
}

func (d *decoder) remaining() int {
	return d.buf.Len() - d.off
}

func (d *decoder) header() (header, error) {
	h := header{offset: d.off}
	b, err := encoding.ReadByte(d.buf, d.off)
	if err != nil {
		return h, err
	}
	if b > 1 {
		return h, common.Malformed("invalid byte order %d at offset %d", b, d.off)
	}
	h.order = encoding.ByteOrder(b)
	word, err := encoding.ReadUint32(d.buf, d.off+1, h.order)
	if err != nil {
		return h, err
	}
	d.off += 5

	if word&flagM != 0 {
		return h, common.Unsupported("measure flag in type word 0x%08X at offset %d", word, h.offset)
	}
	h.hasZ = word&flagZ != 0
	if word&flagSRID != 0 {
		srid, err := encoding.ReadUint32(d.buf, d.off, h.order)
		if err != nil {
			return h, err
		}
		d.off += 4
		h.srid = int(int32(srid))
		h.hasSRID = true
	}

	code := word &^ flagMask
	switch code / isoZOffset {
	case 0:
	case 1:
		h.hasZ = true
		code %= isoZOffset
	default:
		return h, common.Unsupported("type code %d with measures at offset %d", code, h.offset)
	}
	if _, ok := typeNames[code]; !ok {
		return h, common.Unsupported("WKB type code %d at offset %d", code, h.offset)
	}
	h.code = code
	return h, nil
}

// child reads a nested geometry header and checks its type code. SRIDs on
// nested geometries are consumed and ignored.
func (d *decoder) child(parent header, want uint32) (header, error) {
	h, err := d.header()
	if err != nil {
		return h, err
	}
	if h.code != want {
		return h, common.Unsupported("%s member of %s at offset %d, want %s",
			typeName(h.code), typeName(parent.code), h.offset, typeName(want))
	}
	return h, nil
}

func (d *decoder) count(h header, elemSize int) (int, error) {
	off := d.off
	n, err := encoding.ReadUint32(d.buf, off, h.order)
	if err != nil {
		return 0, err
	}
	d.off += 4
	if err := common.ValidateCount(uint64(n), elemSize, d.remaining()); err != nil {
		return 0, errors.WithMessagef(err, "%s count at offset %d", typeName(h.code), off)
	}
	return int(n), nil
}

func (d *decoder) ordinate(h header) (float64, error) {
	v, err := encoding.ReadFloat64(d.buf, d.off, h.order)
	if err != nil {
		return 0, err
	}
	d.off += 8
	return v, nil
}

func (d *decoder) coordinate(h header) (geometry.Coordinate, error) {
	var ords [3]float64
	for i := range h.dim() {
		v, err := d.ordinate(h)
		if err != nil {
			return geometry.Coordinate{}, err
		}
		ords[i] = v
	}
	if h.hasZ {
		return geometry.NewCoordinate3D(ords[0], ords[1], ords[2]), nil
	}
	return geometry.NewCoordinate(ords[0], ords[1]), nil
}

func (d *decoder) coordinates(h header) ([]geometry.Coordinate, error) {
	n, err := d.count(h, 8*h.dim())
	if err != nil {
		return nil, err
	}
	coords := make([]geometry.Coordinate, 0, n)
	for range n {
		c, err := d.coordinate(h)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func (d *decoder) body(h header) (geometry.Geometry, error) {
	switch h.code {
	case wkbPoint:
		return d.point(h)
	case wkbLineString:
		coords, err := d.coordinates(h)
		if err != nil {
			return nil, err
		}
		return geometry.NewLineString(coords), nil
	case wkbPolygon:
		return d.polygon(h)
	case wkbMultiPoint:
		return d.multiPoint(h)
	case wkbMultiLineString:
		return d.multiLineString(h)
	case wkbMultiPolygon:
		polygons, err := d.polygons(h)
		if err != nil {
			return nil, err
		}
		return geometry.NewMultiSurface(polygons), nil
	case wkbPolyhedralSurface:
		return d.solid(h)
	case wkbGeometryCollection:
		return d.multiSolid(h)
	}
	return nil, common.Unsupported("WKB type code %d at offset %d", h.code, h.offset)
}

func (d *decoder) point(h header) (*geometry.Point, error) {
	c, err := d.coordinate(h)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(c.X()) && math.IsNaN(c.Y()) {
		return geometry.EmptyPoint(), nil
	}
	return geometry.NewPoint(c), nil
}

func (d *decoder) polygon(h header) (*geometry.Polygon, error) {
	n, err := d.count(h, 4)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return geometry.EmptyPolygon(), nil
	}
	rings := make([]*geometry.LinearRing, 0, n)
	for range n {
		coords, err := d.coordinates(h)
		if err != nil {
			return nil, err
		}
		rings = append(rings, geometry.NewLinearRing(coords))
	}
	return geometry.NewPolygon(rings[0], rings[1:]...), nil
}

func (d *decoder) multiPoint(h header) (*geometry.MultiPoint, error) {
	n, err := d.count(h, 5)
	if err != nil {
		return nil, err
	}
	points := make([]*geometry.Point, 0, n)
	for range n {
		ch, err := d.child(h, wkbPoint)
		if err != nil {
			return nil, err
		}
		p, err := d.point(ch)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return geometry.NewMultiPoint(points), nil
}

func (d *decoder) multiLineString(h header) (*geometry.MultiLineString, error) {
	n, err := d.count(h, 9)
	if err != nil {
		return nil, err
	}
	lineStrings := make([]*geometry.LineString, 0, n)
	for range n {
		ch, err := d.child(h, wkbLineString)
		if err != nil {
			return nil, err
		}
		coords, err := d.coordinates(ch)
		if err != nil {
			return nil, err
		}
		lineStrings = append(lineStrings, geometry.NewLineString(coords))
	}
	return geometry.NewMultiLineString(lineStrings), nil
}

// polygons reads the members of a MultiPolygon or PolyhedralSurface.
func (d *decoder) polygons(h header) ([]*geometry.Polygon, error) {
	n, err := d.count(h, 9)
	if err != nil {
		return nil, err
	}
	polygons := make([]*geometry.Polygon, 0, n)
	for range n {
		ch, err := d.child(h, wkbPolygon)
		if err != nil {
			return nil, err
		}
		p, err := d.polygon(ch)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, p)
	}
	return polygons, nil
}

func (d *decoder) solid(h header) (*geometry.Solid, error) {
	polygons, err := d.polygons(h)
	if err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return geometry.EmptySolid(), nil
	}
	s, err := geometry.NewSolid(geometry.NewCompositeSurface(polygons))
	if err != nil {
		return nil, errors.WithMessagef(err, "PolyhedralSurface at offset %d", h.offset)
	}
	return s, nil
}

func (d *decoder) multiSolid(h header) (*geometry.MultiSolid, error) {
	n, err := d.count(h, 9)
	if err != nil {
		return nil, err
	}
	solids := make([]*geometry.Solid, 0, n)
	for range n {
		ch, err := d.child(h, wkbPolyhedralSurface)
		if err != nil {
			return nil, err
		}
		s, err := d.solid(ch)
		if err != nil {
			return nil, err
		}
		solids = append(solids, s)
	}
	return geometry.NewMultiSolid(solids), nil
}

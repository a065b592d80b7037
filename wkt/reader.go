package wkt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/geometry"
)

const (
	tagPoint              = "POINT"
	tagLineString         = "LINESTRING"
	tagPolygon            = "POLYGON"
	tagMultiPoint         = "MULTIPOINT"
	tagMultiLineString    = "MULTILINESTRING"
	tagMultiPolygon       = "MULTIPOLYGON"
	tagPolyhedralSurface  = "POLYHEDRALSURFACE"
	tagGeometryCollection = "GEOMETRYCOLLECTION"
	tagTIN                = "TIN"
)

var knownTags = map[string]bool{
	tagPoint:              true,
	tagLineString:         true,
	tagPolygon:            true,
	tagMultiPoint:         true,
	tagMultiLineString:    true,
	tagMultiPolygon:       true,
	tagPolyhedralSurface:  true,
	tagGeometryCollection: true,
	tagTIN:                true,
}

// Reader parses WKT and EWKT. It holds no state and is safe for concurrent
// use.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read parses a single geometry. An optional SRID=n; prefix sets the SRID
// of the result.
func (r *Reader) Read(s string) (geometry.Geometry, error) {
	p := &parser{tok: NewTokenizer(s), input: s}

	srid, hasSRID, err := p.srid()
	if err != nil {
		return nil, err
	}
	g, err := p.tagged(false)
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != EOF {
		return nil, p.malformed(tok, "unexpected trailing input")
	}
	if hasSRID {
		g.SetSRID(srid)
	}
	return g, nil
}

type parser struct {
	tok   *Tokenizer
	input string
}

func (p *parser) errorf(cause error, tok Token, format string, args ...any) error {
	return &ParseError{
		Problem: fmt.Sprintf(format, args...),
		Token:   tok.Text,
		Pos:     tok.Pos,
		input:   p.input,
		cause:   cause,
	}
}

func (p *parser) malformed(tok Token, format string, args ...any) error {
	return p.errorf(common.ErrMalformedInput, tok, format, args...)
}

func (p *parser) unsupported(tok Token, format string, args ...any) error {
	return p.errorf(common.ErrUnsupportedShape, tok, format, args...)
}

func (p *parser) next() (Token, error) {
	return p.tok.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, p.malformed(tok, "expected %s, got %s", kind, tok.Kind)
	}
	return tok, nil
}

func (p *parser) srid() (int, bool, error) {
	tok, err := p.next()
	if err != nil {
		return 0, false, err
	}
	if tok.Kind != Word || !strings.EqualFold(tok.Text, "SRID") {
		p.tok.PushBack(tok)
		return 0, false, nil
	}
	if _, err := p.expect(Equals); err != nil {
		return 0, false, err
	}
	num, err := p.expect(Word)
	if err != nil {
		return 0, false, err
	}
	srid, err := strconv.Atoi(num.Text)
	if err != nil {
		return 0, false, p.malformed(num, "invalid SRID")
	}
	if _, err := p.expect(Semicolon); err != nil {
		return 0, false, err
	}
	return srid, true, nil
}

// tag reads a geometry keyword and its dimension flag. Both "POINT Z" and
// "POINTZ" are accepted.
func (p *parser) tag() (string, bool, error) {
	tok, err := p.expect(Word)
	if err != nil {
		return "", false, err
	}
	tag := strings.ToUpper(tok.Text)
	if !knownTags[tag] {
		for _, suffix := range []string{"ZM", "M", "Z"} {
			base, ok := strings.CutSuffix(tag, suffix)
			if !ok || !knownTags[base] {
				continue
			}
			if suffix != "Z" {
				return "", false, p.unsupported(tok, "measures are not supported")
			}
			return base, true, nil
		}
		return "", false, p.unsupported(tok, "unknown geometry type")
	}

	flag, err := p.next()
	if err != nil {
		return "", false, err
	}
	if flag.Kind == Word {
		switch strings.ToUpper(flag.Text) {
		case "Z":
			return tag, true, nil
		case "M", "ZM":
			return "", false, p.unsupported(flag, "measures are not supported")
		}
	}
	p.tok.PushBack(flag)
	return tag, false, nil
}

// open consumes either EMPTY or '('. It reports true for EMPTY.
func (p *parser) open() (bool, error) {
	tok, err := p.next()
	if err != nil {
		return false, err
	}
	switch {
	case tok.Kind == LeftParen:
		return false, nil
	case tok.Kind == Word && strings.EqualFold(tok.Text, "EMPTY"):
		return true, nil
	}
	return false, p.malformed(tok, "expected '(' or EMPTY")
}

// more consumes ',' or ')' after a list element. It reports true for ','.
func (p *parser) more() (bool, error) {
	tok, err := p.next()
	if err != nil {
		return false, err
	}
	switch tok.Kind {
	case Comma:
		return true, nil
	case RightParen:
		return false, nil
	}
	return false, p.malformed(tok, "expected ',' or ')'")
}

// list calls item until the closing parenthesis of the current list.
func (p *parser) list(item func() error) error {
	for {
		if err := item(); err != nil {
			return err
		}
		more, err := p.more()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (p *parser) tagged(inCollection bool) (geometry.Geometry, error) {
	start, err := p.tok.Peek()
	if err != nil {
		return nil, err
	}
	tag, hasZ, err := p.tag()
	if err != nil {
		return nil, err
	}
	if inCollection && tag != tagPolyhedralSurface {
		return nil, p.unsupported(start, "GEOMETRYCOLLECTION members must be POLYHEDRALSURFACE")
	}

	switch tag {
	case tagPoint:
		return p.point(hasZ)
	case tagLineString:
		return p.lineString(hasZ)
	case tagPolygon:
		return p.polygon(hasZ)
	case tagMultiPoint:
		return p.multiPoint(hasZ)
	case tagMultiLineString:
		return p.multiLineString(hasZ)
	case tagMultiPolygon:
		polygons, err := p.polygons(hasZ)
		if err != nil {
			return nil, err
		}
		return geometry.NewMultiSurface(polygons), nil
	case tagTIN:
		polygons, err := p.polygons(hasZ)
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangulatedSurface(polygons), nil
	case tagPolyhedralSurface:
		return p.solid(start, hasZ)
	case tagGeometryCollection:
		return p.multiSolid()
	}
	return nil, p.unsupported(start, "unknown geometry type")
}

func (p *parser) coordinate(hasZ bool) (geometry.Coordinate, error) {
	var ords []float64
	var first Token
	for {
		tok, err := p.next()
		if err != nil {
			return geometry.Coordinate{}, err
		}
		if tok.Kind != Word {
			p.tok.PushBack(tok)
			break
		}
		if len(ords) == 0 {
			first = tok
		}
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return geometry.Coordinate{}, p.malformed(tok, "invalid number")
		}
		ords = append(ords, v)
	}

	switch {
	case len(ords) == 0:
		tok, _ := p.tok.Peek()
		return geometry.Coordinate{}, p.malformed(tok, "expected a coordinate")
	case len(ords) == 4:
		return geometry.Coordinate{}, p.unsupported(first, "coordinates with measures are not supported")
	case hasZ && len(ords) != 3:
		return geometry.Coordinate{}, p.malformed(first, "expected 3 ordinates, got %d", len(ords))
	case len(ords) < 2 || len(ords) > 3:
		return geometry.Coordinate{}, p.malformed(first, "expected 2 or 3 ordinates, got %d", len(ords))
	case len(ords) == 3:
		return geometry.NewCoordinate3D(ords[0], ords[1], ords[2]), nil
	}
	return geometry.NewCoordinate(ords[0], ords[1]), nil
}

// coordinates reads a parenthesized coordinate list, or EMPTY.
func (p *parser) coordinates(hasZ bool) ([]geometry.Coordinate, error) {
	empty, err := p.open()
	if err != nil || empty {
		return nil, err
	}
	var coords []geometry.Coordinate
	err = p.list(func() error {
		c, err := p.coordinate(hasZ)
		coords = append(coords, c)
		return err
	})
	return coords, err
}

func pointOf(c geometry.Coordinate) *geometry.Point {
	if math.IsNaN(c.X()) && math.IsNaN(c.Y()) {
		return geometry.EmptyPoint()
	}
	return geometry.NewPoint(c)
}

// point reads "(x y [z])" or EMPTY.
func (p *parser) point(hasZ bool) (*geometry.Point, error) {
	empty, err := p.open()
	if err != nil {
		return nil, err
	}
	if empty {
		return geometry.EmptyPoint(), nil
	}
	c, err := p.coordinate(hasZ)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RightParen); err != nil {
		return nil, err
	}
	return pointOf(c), nil
}

func (p *parser) lineString(hasZ bool) (*geometry.LineString, error) {
	coords, err := p.coordinates(hasZ)
	if err != nil {
		return nil, err
	}
	if coords == nil {
		return geometry.EmptyLineString(), nil
	}
	return geometry.NewLineString(coords), nil
}

func (p *parser) polygon(hasZ bool) (*geometry.Polygon, error) {
	empty, err := p.open()
	if err != nil {
		return nil, err
	}
	if empty {
		return geometry.EmptyPolygon(), nil
	}
	var rings []*geometry.LinearRing
	err = p.list(func() error {
		coords, err := p.coordinates(hasZ)
		if err != nil {
			return err
		}
		rings = append(rings, geometry.NewLinearRing(coords))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return geometry.NewPolygon(rings[0], rings[1:]...), nil
}

// multiPoint accepts the nested form "((1 2), (3 4))" and the bare form
// "(1 2, 3 4)".
func (p *parser) multiPoint(hasZ bool) (*geometry.MultiPoint, error) {
	empty, err := p.open()
	if err != nil {
		return nil, err
	}
	if empty {
		return geometry.EmptyMultiPoint(), nil
	}
	var points []*geometry.Point
	err = p.list(func() error {
		tok, err := p.tok.Peek()
		if err != nil {
			return err
		}
		if tok.Kind == LeftParen || (tok.Kind == Word && strings.EqualFold(tok.Text, "EMPTY")) {
			pt, err := p.point(hasZ)
			points = append(points, pt)
			return err
		}
		c, err := p.coordinate(hasZ)
		points = append(points, pointOf(c))
		return err
	})
	if err != nil {
		return nil, err
	}
	return geometry.NewMultiPoint(points), nil
}

func (p *parser) multiLineString(hasZ bool) (*geometry.MultiLineString, error) {
	empty, err := p.open()
	if err != nil {
		return nil, err
	}
	if empty {
		return geometry.EmptyMultiLineString(), nil
	}
	var lineStrings []*geometry.LineString
	err = p.list(func() error {
		ls, err := p.lineString(hasZ)
		lineStrings = append(lineStrings, ls)
		return err
	})
	if err != nil {
		return nil, err
	}
	return geometry.NewMultiLineString(lineStrings), nil
}

// polygons reads the body of a MULTIPOLYGON, TIN or POLYHEDRALSURFACE.
func (p *parser) polygons(hasZ bool) ([]*geometry.Polygon, error) {
	empty, err := p.open()
	if err != nil || empty {
		return nil, err
	}
	var polygons []*geometry.Polygon
	err = p.list(func() error {
		poly, err := p.polygon(hasZ)
		polygons = append(polygons, poly)
		return err
	})
	return polygons, err
}

func (p *parser) solid(start Token, hasZ bool) (*geometry.Solid, error) {
	polygons, err := p.polygons(hasZ)
	if err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return geometry.EmptySolid(), nil
	}
	s, err := geometry.NewSolid(geometry.NewCompositeSurface(polygons))
	if err != nil {
		return nil, p.errorf(err, start, "invalid solid")
	}
	return s, nil
}

func (p *parser) multiSolid() (*geometry.MultiSolid, error) {
	empty, err := p.open()
	if err != nil {
		return nil, err
	}
	if empty {
		return geometry.EmptyMultiSolid(), nil
	}
	var solids []*geometry.Solid
	err = p.list(func() error {
		g, err := p.tagged(true)
		if err != nil {
			return err
		}
		solids = append(solids, g.(*geometry.Solid))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return geometry.NewMultiSolid(solids), nil
}

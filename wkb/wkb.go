// Package wkb reads and writes geometries as extended well-known binary
// (EWKB), either as raw bytes or as hex text. Both backends share one codec
// through encoding.Buffer.
//
// Surface collections are written as MultiPolygon and read back as
// MultiSurface; solids are PolyhedralSurface Z; solid collections are a
// GeometryCollection of PolyhedralSurface and read back as MultiSolid.
package wkb

import (
	"github.com/hangxie/citygeom/encoding"
)

// WKB geometry type codes
const (
	wkbPoint              uint32 = 1
	wkbLineString         uint32 = 2
	wkbPolygon            uint32 = 3
	wkbMultiPoint         uint32 = 4
	wkbMultiLineString    uint32 = 5
	wkbMultiPolygon       uint32 = 6
	wkbGeometryCollection uint32 = 7
	wkbPolyhedralSurface  uint32 = 15
)

// EWKB flags in the type word
const (
	flagZ    uint32 = 0x80000000
	flagM    uint32 = 0x40000000
	flagSRID uint32 = 0x20000000
	flagMask        = flagZ | flagM | flagSRID

	// ISO WKB encodes dimensions as an offset on the base code
	isoZOffset = 1000
)

var typeNames = map[uint32]string{
	wkbPoint:              "Point",
	wkbLineString:         "LineString",
	wkbPolygon:            "Polygon",
	wkbMultiPoint:         "MultiPoint",
	wkbMultiLineString:    "MultiLineString",
	wkbMultiPolygon:       "MultiPolygon",
	wkbGeometryCollection: "GeometryCollection",
	wkbPolyhedralSurface:  "PolyhedralSurface",
}

func typeName(code uint32) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return "unknown"
}

// header is the decoded prefix of every (nested) WKB geometry.
type header struct {
	offset  int
	order   encoding.ByteOrder
	code    uint32
	hasZ    bool
	srid    int
	hasSRID bool
}

func (h header) dim() int {
	if h.hasZ {
		return 3
	}
	return 2
}

// Package sdo converts geometries to and from the flat representation used
// by spatial databases that store a geometry as a gtype, an SRID, an array of
// element-info triplets and a flat ordinate array.
package sdo

import (
	"github.com/hangxie/citygeom/common"
)

// Object is the wire shape exchanged with the database driver layer. An SRID
// of 0 means none.
type Object struct {
	GType     int
	SRID      int
	ElemInfo  []int
	Ordinates []float64
}

// Shape codes, the TT digits of a gtype
const (
	shapePoint        = 1
	shapeLine         = 2
	shapePolygon      = 3
	shapeMultiPoint   = 5
	shapeMultiLine    = 6
	shapeMultiPolygon = 7
	shapeSolid        = 8
	shapeMultiSolid   = 9

	// heterogeneous collection, not supported
	shapeCollection = 4
)

// Element types of an element-info triplet
const (
	etypePoint            = 1
	etypeLine             = 2
	etypeExteriorRing     = 1003
	etypeInteriorRing     = 2003
	etypeCompositeSurface = 1006
	etypeInteriorSurface  = 2006
	etypeSolid            = 1007
	etypeInteriorSolid    = 2007
	etypeCompositeSolid   = 1008
)

// Interpretations
const (
	interpStraight  = 1
	interpRectangle = 3
)

// gtype is a decoded D0TT geometry type.
type gtype struct {
	dim   int
	shape int
}

func parseGType(v int) (gtype, error) {
	if v < 1000 || v > 9999 {
		return gtype{}, common.Malformed("invalid gtype %d", v)
	}
	g := gtype{dim: v / 1000, shape: v % 100}
	if g.dim == 4 || (v/100)%10 != 0 {
		return g, common.Unsupported("gtype %d carries measures", v)
	}
	if g.dim != 2 && g.dim != 3 {
		return g, common.Unsupported("gtype %d has dimension %d", v, g.dim)
	}
	if g.shape == shapeCollection || g.shape == 0 || g.shape > shapeMultiSolid {
		return g, common.Unsupported("gtype %d has unsupported shape %02d", v, g.shape)
	}
	return g, nil
}

func (g gtype) value() int {
	return g.dim*1000 + g.shape
}

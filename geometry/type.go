package geometry

import "fmt"

// Type is the variant tag of a Geometry.
type Type int

const (
	PointType Type = iota + 1
	MultiPointType
	LineStringType
	MultiLineStringType
	PolygonType
	MultiSurfaceType
	CompositeSurfaceType
	TriangulatedSurfaceType
	SolidType
	MultiSolidType
	CompositeSolidType
)

var typeNames = map[Type]string{
	PointType:               "Point",
	MultiPointType:          "MultiPoint",
	LineStringType:          "LineString",
	MultiLineStringType:     "MultiLineString",
	PolygonType:             "Polygon",
	MultiSurfaceType:        "MultiSurface",
	CompositeSurfaceType:    "CompositeSurface",
	TriangulatedSurfaceType: "TriangulatedSurface",
	SolidType:               "Solid",
	MultiSolidType:          "MultiSolid",
	CompositeSolidType:      "CompositeSolid",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsSurfaceCollection reports whether t is one of the polygon collection
// variants.
func (t Type) IsSurfaceCollection() bool {
	return t == MultiSurfaceType || t == CompositeSurfaceType || t == TriangulatedSurfaceType
}

// IsSolidCollection reports whether t is one of the solid collection variants.
func (t Type) IsSolidCollection() bool {
	return t == MultiSolidType || t == CompositeSolidType
}

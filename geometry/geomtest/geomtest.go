// Package geomtest builds the geometries that the codec tests round-trip.
package geomtest

import (
	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/geometry"
)

// Case is one constructed geometry. Build returns a fresh value on every call
// so that the result can be handed to factories taking ownership.
type Case struct {
	Name  string
	Dim   int
	Build func() geometry.Geometry
}

// Coordinate returns a 2D or 3D coordinate depending on dim.
func Coordinate(dim int, x, y, z float64) geometry.Coordinate {
	if dim == 3 {
		return geometry.NewCoordinate3D(x, y, z)
	}
	return geometry.NewCoordinate(x, y)
}

// Square is a closed counter-clockwise ring of side size at (x, y, z).
func Square(dim int, x, y, z, size float64) *geometry.LinearRing {
	return geometry.NewLinearRing([]geometry.Coordinate{
		Coordinate(dim, x, y, z),
		Coordinate(dim, x+size, y, z),
		Coordinate(dim, x+size, y+size, z),
		Coordinate(dim, x, y+size, z),
		Coordinate(dim, x, y, z),
	})
}

func triangle(dim int, x, y, z float64) *geometry.Polygon {
	return geometry.NewPolygon(geometry.NewLinearRing([]geometry.Coordinate{
		Coordinate(dim, x, y, z),
		Coordinate(dim, x+1, y, z),
		Coordinate(dim, x, y+1, z+0.5),
		Coordinate(dim, x, y, z),
	}))
}

// Solid is a two-faced solid, the faces stacked at z and z+1. It panics if
// the shell is rejected, which cannot happen for 3D faces.
func Solid(z float64) *geometry.Solid {
	s, err := geometry.NewSolid(geometry.NewCompositeSurface([]*geometry.Polygon{
		geometry.NewPolygon(Square(3, 0, 0, z, 1)),
		geometry.NewPolygon(Square(3, 0, 0, z+1, 1), Square(3, 0.25, 0.25, z+1, 0.5)),
	}))
	if err != nil {
		panic(err)
	}
	return s
}

// Cases lists every variant in 2D and in 3D. Solids and their collections
// exist in 3D only.
func Cases() []Case {
	var cases []Case
	for _, dim := range []int{2, 3} {
		suffix := "-2d"
		if dim == 3 {
			suffix = "-3d"
		}
		add := func(name string, build func() geometry.Geometry) {
			cases = append(cases, Case{Name: name + suffix, Dim: dim, Build: build})
		}

		add("point", func() geometry.Geometry {
			return geometry.NewPoint(Coordinate(dim, 1.5, -2.25, 100.125))
		})
		add("multipoint", func() geometry.Geometry {
			return geometry.NewMultiPoint([]*geometry.Point{
				geometry.NewPoint(Coordinate(dim, 1, 2, 3)),
				geometry.NewPoint(Coordinate(dim, 4, 5, 6)),
			})
		})
		add("multipoint-with-empty", func() geometry.Geometry {
			return geometry.NewMultiPoint([]*geometry.Point{
				geometry.NewPoint(Coordinate(dim, 1, 2, 3)),
				geometry.EmptyPoint(),
			})
		})
		add("linestring", func() geometry.Geometry {
			return geometry.NewLineString([]geometry.Coordinate{
				Coordinate(dim, 0, 0, 10), Coordinate(dim, 1, 0.5, 11), Coordinate(dim, 2, 0, 12),
			})
		})
		add("multilinestring", func() geometry.Geometry {
			return geometry.NewMultiLineString([]*geometry.LineString{
				geometry.NewLineString(Square(dim, 0, 0, 1, 1).Coordinates()),
				geometry.NewLineString(Square(dim, 3, 3, 2, 1).Coordinates()),
			})
		})
		add("polygon", func() geometry.Geometry {
			return geometry.NewPolygon(Square(dim, 0, 0, 0, 10), Square(dim, 1, 1, 0, 1), Square(dim, 5, 5, 0, 2))
		})
		add("multisurface", func() geometry.Geometry {
			return geometry.NewMultiSurface([]*geometry.Polygon{
				geometry.NewPolygon(Square(dim, 0, 0, 0, 1)),
				geometry.NewPolygon(Square(dim, 2, 0, 1, 1), Square(dim, 2.25, 0.25, 1, 0.5)),
			})
		})
		add("compositesurface", func() geometry.Geometry {
			return geometry.NewCompositeSurface([]*geometry.Polygon{
				geometry.NewPolygon(Square(dim, 0, 0, 0, 1)),
				geometry.NewPolygon(Square(dim, 1, 0, 0, 1)),
			})
		})
		add("tin", func() geometry.Geometry {
			return geometry.NewTriangulatedSurface([]*geometry.Polygon{
				triangle(dim, 0, 0, 0),
				triangle(dim, 1, 1, 2),
			})
		})
	}

	cases = append(cases,
		Case{Name: "solid-3d", Dim: 3, Build: func() geometry.Geometry { return Solid(0) }},
		Case{Name: "multisolid-3d", Dim: 3, Build: func() geometry.Geometry {
			return geometry.NewMultiSolid([]*geometry.Solid{Solid(0), Solid(5)})
		}},
		Case{Name: "compositesolid-3d", Dim: 3, Build: func() geometry.Geometry {
			return geometry.NewCompositeSolid([]*geometry.Solid{Solid(0), Solid(2)})
		}},
	)
	return cases
}

// Collapse rebuilds a collection as the variant rules maps its type to,
// moving the members over. Geometries without a rule are returned unchanged.
func Collapse(g geometry.Geometry, rules map[geometry.Type]geometry.Type) (geometry.Geometry, error) {
	t, ok := rules[g.Type()]
	if !ok {
		return g, nil
	}
	switch v := g.(type) {
	case geometry.SurfaceCollection:
		return geometry.NewSurfaceCollection(t, v.Polygons())
	case geometry.SolidCollection:
		return geometry.NewSolidCollection(t, v.Solids())
	}
	return nil, common.Unsupported("cannot collapse %s into %s", g.Type(), t)
}

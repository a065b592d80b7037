package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Equal(t *testing.T) {
	withSRID := func(g Geometry, srid int) Geometry {
		g.SetSRID(srid)
		return g
	}
	withID := func(g Geometry, id string) Geometry {
		g.SetObjectID(id)
		return g
	}

	testCases := map[string]struct {
		a, b     Geometry
		expected bool
	}{
		"nil-nil":         {nil, nil, true},
		"nil-point":       {nil, EmptyPoint(), false},
		"empty-points":    {EmptyPoint(), EmptyPoint(), true},
		"points":          {NewPoint(NewCoordinate(1, 2)), NewPoint(NewCoordinate(1, 2)), true},
		"point-dims":      {NewPoint(NewCoordinate(1, 2)), NewPoint(NewCoordinate3D(1, 2, 0)), false},
		"object-id":       {withID(NewPoint(NewCoordinate(1, 2)), "a"), withID(NewPoint(NewCoordinate(1, 2)), "b"), true},
		"srid":            {withSRID(NewPoint(NewCoordinate(1, 2)), 1), withSRID(NewPoint(NewCoordinate(1, 2)), 1), true},
		"srid-differs":    {withSRID(NewPoint(NewCoordinate(1, 2)), 1), NewPoint(NewCoordinate(1, 2)), false},
		"variant-differs": {EmptyMultiSurface(), EmptyCompositeSurface(), false},
		"polygons":        {square3D(0, 0, 0, 1), square3D(0, 0, 0, 1), true},
		"reversed":        {square3D(0, 0, 0, 1).SetReversed(true), square3D(0, 0, 0, 1), false},
		"holes": {
			NewPolygon(square2D(0, 0, 4).ExteriorRing(), square2D(1, 1, 1).ExteriorRing()),
			NewPolygon(square2D(0, 0, 4).ExteriorRing()),
			false,
		},
		"multisurface": {
			NewMultiSurface([]*Polygon{square3D(0, 0, 0, 1), square3D(1, 0, 0, 1)}),
			NewMultiSurface([]*Polygon{square3D(0, 0, 0, 1), square3D(1, 0, 0, 1)}),
			true,
		},
		"multisurface-order": {
			NewMultiSurface([]*Polygon{square3D(0, 0, 0, 1), square3D(1, 0, 0, 1)}),
			NewMultiSurface([]*Polygon{square3D(1, 0, 0, 1), square3D(0, 0, 0, 1)}),
			false,
		},
		"multipoint": {
			NewMultiPoint([]*Point{NewPoint(NewCoordinate(1, 2))}),
			NewMultiPoint([]*Point{NewPoint(NewCoordinate(1, 2)), NewPoint(NewCoordinate(1, 2))}),
			false,
		},
		"multilinestring": {
			NewMultiLineString([]*LineString{NewLineString([]Coordinate{NewCoordinate(1, 2)})}),
			NewMultiLineString([]*LineString{NewLineString([]Coordinate{NewCoordinate(1, 2)})}),
			true,
		},
		"solids": {
			NewCompositeSolid([]*Solid{mustSolid(t, square3D(0, 0, 0, 1))}),
			NewCompositeSolid([]*Solid{mustSolid(t, square3D(0, 0, 0, 1))}),
			true,
		},
		"solids-differ": {
			NewMultiSolid([]*Solid{mustSolid(t, square3D(0, 0, 0, 1))}),
			NewMultiSolid([]*Solid{mustSolid(t, square3D(0, 0, 0, 2))}),
			false,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, Equal(tc.a, tc.b))
			require.Equal(t, tc.expected, Equal(tc.b, tc.a))
		})
	}
}

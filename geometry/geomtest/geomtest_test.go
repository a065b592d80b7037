package geomtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangxie/citygeom/common"
	"github.com/hangxie/citygeom/geometry"
)

func Test_CasesDimension(t *testing.T) {
	names := map[string]bool{}
	for _, tc := range Cases() {
		t.Run(tc.Name, func(t *testing.T) {
			require.False(t, names[tc.Name])
			names[tc.Name] = true

			g := tc.Build()
			require.Equal(t, tc.Dim, g.VertexDimension())
			require.Equal(t, tc.Dim == 3, geometry.HasZ(g))
			require.NotSame(t, g, tc.Build())
		})
	}
}

func Test_Collapse(t *testing.T) {
	rules := map[geometry.Type]geometry.Type{
		geometry.CompositeSurfaceType: geometry.MultiSurfaceType,
		geometry.CompositeSolidType:   geometry.MultiSolidType,
		geometry.PointType:            geometry.MultiPointType,
	}

	cs := geometry.NewCompositeSurface([]*geometry.Polygon{geometry.NewPolygon(Square(2, 0, 0, 0, 1))})
	g, err := Collapse(cs, rules)
	require.NoError(t, err)
	require.Equal(t, geometry.MultiSurfaceType, g.Type())
	require.Len(t, g.(*geometry.MultiSurface).Polygons(), 1)

	g, err = Collapse(geometry.NewCompositeSolid([]*geometry.Solid{Solid(0)}), rules)
	require.NoError(t, err)
	require.Equal(t, geometry.MultiSolidType, g.Type())

	ls := geometry.EmptyLineString()
	g, err = Collapse(ls, rules)
	require.NoError(t, err)
	require.Same(t, ls, g)

	_, err = Collapse(geometry.EmptyPoint(), rules)
	require.ErrorIs(t, err, common.ErrUnsupportedShape)
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_GeometryEnvelope(t *testing.T) {
	testCases := map[string]struct {
		geom         Geometry
		lower, upper Coordinate
	}{
		"point": {
			NewPoint(NewCoordinate3D(1, 2, 3)),
			NewCoordinate3D(1, 2, 3), NewCoordinate3D(1, 2, 3),
		},
		"polygon-with-hole": {
			NewPolygon(square3D(-1, -2, 0, 4).ExteriorRing(), NewLinearRing([]Coordinate{NewCoordinate3D(0, 0, 7)})),
			NewCoordinate3D(-1, -2, 0), NewCoordinate3D(3, 2, 7),
		},
		"mixed-dimension": {
			NewMultiSurface([]*Polygon{square3D(0, 0, 100, 1), square2D(5, 5, 1)}),
			NewCoordinate(0, 0), NewCoordinate(6, 6),
		},
		"multisolid": {
			NewMultiSolid([]*Solid{mustSolid(t, square3D(0, 0, 0, 1)), mustSolid(t, square3D(10, 10, 10, 1))}),
			NewCoordinate3D(0, 0, 0), NewCoordinate3D(11, 11, 10),
		},
		"multipoint-skips-empty": {
			NewMultiPoint([]*Point{EmptyPoint(), NewPoint(NewCoordinate(3, 4))}),
			NewCoordinate(3, 4), NewCoordinate(3, 4),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			env := tc.geom.Envelope()
			require.False(t, env.IsEmpty())
			require.Equal(t, tc.lower, env.LowerCorner())
			require.Equal(t, tc.upper, env.UpperCorner())
			require.Equal(t, tc.geom, env.Parent())
		})
	}
}

func mustSolid(t *testing.T, faces ...*Polygon) *Solid {
	t.Helper()
	s, err := NewSolid(NewCompositeSurface(faces))
	require.NoError(t, err)
	return s
}

func Test_EmptyEnvelope(t *testing.T) {
	env := EmptyLineString().Envelope()
	require.True(t, env.IsEmpty())
	require.Equal(t, 2, env.VertexDimension())
	require.True(t, env.LowerCorner().IsEmpty())
	require.True(t, env.Center().IsEmpty())
	require.False(t, env.Intersects(NewEnvelope(NewCoordinate(0, 0), NewCoordinate(1, 1))))
	require.False(t, env.Contains(NewCoordinate(0, 0)))
}

func Test_EnvelopeOperations(t *testing.T) {
	a := NewEnvelope(NewCoordinate3D(10, 10, 10), NewCoordinate3D(0, 0, 0))
	require.Equal(t, NewCoordinate3D(0, 0, 0), a.LowerCorner())
	require.Equal(t, NewCoordinate3D(10, 10, 10), a.UpperCorner())
	require.Equal(t, NewCoordinate3D(5, 5, 5), a.Center())
	require.Equal(t, 3, a.VertexDimension())

	b := NewEnvelope(NewCoordinate3D(5, 5, 20), NewCoordinate3D(15, 15, 30))
	require.False(t, a.Intersects(b))
	require.True(t, a.Intersects(NewEnvelope(NewCoordinate3D(5, 5, 5), NewCoordinate3D(15, 15, 30))))

	// a 2D envelope ignores z
	flat := NewEnvelope(NewCoordinate(5, 5), NewCoordinate(15, 15))
	require.True(t, a.Intersects(flat))
	require.True(t, flat.Intersects(b))

	require.True(t, a.Contains(NewCoordinate3D(1, 1, 1)))
	require.False(t, a.Contains(NewCoordinate3D(1, 1, 11)))
	require.True(t, a.Contains(NewCoordinate(1, 1)))
	require.False(t, a.Contains(NewCoordinate(11, 1)))

	u := EmptyEnvelope().IncludeEnvelope(a).IncludeEnvelope(b).IncludeEnvelope(nil)
	require.Equal(t, NewCoordinate3D(0, 0, 0), u.LowerCorner())
	require.Equal(t, NewCoordinate3D(15, 15, 30), u.UpperCorner())

	u.Force2D()
	require.Equal(t, 2, u.VertexDimension())
	require.Equal(t, NewCoordinate(15, 15), u.UpperCorner())
}

func Test_EnvelopeSRID(t *testing.T) {
	p := NewPoint(NewCoordinate(1, 2))
	p.SetSRID(4326)
	p.SetSRSIdentifier("EPSG:4326")

	env := p.Envelope()
	srid, ok := env.SRID()
	require.True(t, ok)
	require.Equal(t, 4326, srid)
	srs, ok := env.SRSIdentifier()
	require.True(t, ok)
	require.Equal(t, "EPSG:4326", srs)

	env.SetSRID(3857).SetSRSIdentifier("EPSG:3857")
	srid, _ = env.SRID()
	require.Equal(t, 3857, srid)
	srs, _ = env.SRSIdentifier()
	require.Equal(t, "EPSG:3857", srs)
	srid, _ = p.SRID()
	require.Equal(t, 4326, srid)

	_, ok = EmptyEnvelope().SRID()
	require.False(t, ok)
}

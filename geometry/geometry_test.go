package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangxie/citygeom/common"
)

func Test_VertexDimension(t *testing.T) {
	testCases := map[string]struct {
		geom     Geometry
		expected int
	}{
		"point-2d":           {NewPoint(NewCoordinate(1, 2)), 2},
		"point-3d":           {NewPoint(NewCoordinate3D(1, 2, 3)), 3},
		"empty-point":        {EmptyPoint(), 2},
		"linestring-mixed":   {NewLineString([]Coordinate{NewCoordinate3D(0, 0, 0), NewCoordinate(1, 1)}), 2},
		"linestring-3d":      {NewLineString([]Coordinate{NewCoordinate3D(0, 0, 0), NewCoordinate3D(1, 1, 1)}), 3},
		"empty-linestring":   {EmptyLineString(), 2},
		"polygon-3d":         {square3D(0, 0, 0, 1), 3},
		"multisurface-mix":   {NewMultiSurface([]*Polygon{square3D(0, 0, 0, 1), square2D(0, 0, 1)}), 2},
		"empty-multisurf":    {EmptyMultiSurface(), 2},
		"empty-solid":        {EmptySolid(), 3},
		"empty-multisolid":   {EmptyMultiSolid(), 2},
		"multipoint-3d":      {NewMultiPoint([]*Point{NewPoint(NewCoordinate3D(1, 2, 3))}), 3},
		"multipoint-3d-gap":  {NewMultiPoint([]*Point{NewPoint(NewCoordinate3D(1, 2, 3)), EmptyPoint()}), 3},
		"multipoint-empties": {NewMultiPoint([]*Point{EmptyPoint(), EmptyPoint()}), 2},
		"multilinestring2d":  {NewMultiLineString([]*LineString{NewLineString([]Coordinate{NewCoordinate(1, 2)})}), 2},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.geom.VertexDimension())
		})
	}
}

func Test_NewSolid(t *testing.T) {
	t.Run("3d-shell", func(t *testing.T) {
		shell := NewCompositeSurface([]*Polygon{square3D(0, 0, 0, 1)})
		s, err := NewSolid(shell)
		require.NoError(t, err)
		require.Equal(t, 3, s.VertexDimension())
		require.Same(t, shell, s.Shell())
		require.Equal(t, Geometry(s), shell.Parent())
	})

	t.Run("2d-shell", func(t *testing.T) {
		shell := NewCompositeSurface([]*Polygon{square2D(0, 0, 1)})
		s, err := NewSolid(shell)
		require.Nil(t, s)
		require.Error(t, err)
		require.True(t, errors.Is(err, common.ErrInvariantViolation))
	})

	t.Run("mixed-shell", func(t *testing.T) {
		shell := NewCompositeSurface([]*Polygon{square3D(0, 0, 0, 1), square2D(0, 0, 1)})
		_, err := NewSolid(shell)
		require.ErrorIs(t, err, common.ErrInvariantViolation)
	})

	t.Run("empty-shell", func(t *testing.T) {
		s, err := NewSolid(EmptyCompositeSurface())
		require.NoError(t, err)
		require.True(t, s.IsEmpty())
	})

	t.Run("nil-shell", func(t *testing.T) {
		s, err := NewSolid(nil)
		require.NoError(t, err)
		require.NotNil(t, s.Shell())
		require.NoError(t, s.Validate())
	})

	t.Run("shell-edited-after-construction", func(t *testing.T) {
		s, err := NewSolid(NewCompositeSurface([]*Polygon{square3D(0, 0, 0, 1)}))
		require.NoError(t, err)
		require.NoError(t, s.Validate())

		s.Shell().AddPolygon(square2D(0, 0, 1))
		require.ErrorIs(t, s.Validate(), common.ErrInvariantViolation)
		require.Equal(t, 3, s.VertexDimension())
	})
}

func Test_SRIDInheritance(t *testing.T) {
	inner := square3D(0, 0, 0, 1)
	shell := NewCompositeSurface([]*Polygon{inner})
	solid, err := NewSolid(shell)
	require.NoError(t, err)
	ms := NewMultiSolid([]*Solid{solid})

	_, ok := inner.SRID()
	require.False(t, ok)
	_, ok = inner.ExteriorRing().SRID()
	require.False(t, ok)

	ms.SetSRID(25832)
	ms.SetSRSIdentifier("urn:ogc:def:crs:EPSG::25832")
	srid, ok := inner.SRID()
	require.True(t, ok)
	require.Equal(t, 25832, srid)
	srid, ok = inner.ExteriorRing().SRID()
	require.True(t, ok)
	require.Equal(t, 25832, srid)
	srs, ok := inner.SRSIdentifier()
	require.True(t, ok)
	require.Equal(t, "urn:ogc:def:crs:EPSG::25832", srs)

	// inherited values are looked up, not copied
	_, ok = LocalSRID(inner)
	require.False(t, ok)

	inner.SetSRID(4326)
	srid, _ = inner.SRID()
	require.Equal(t, 4326, srid)
	srid, _ = solid.SRID()
	require.Equal(t, 25832, srid)

	ms.ClearSRID()
	_, ok = solid.SRID()
	require.False(t, ok)
}

func Test_Parent(t *testing.T) {
	p := NewPoint(NewCoordinate(1, 2))
	require.Nil(t, p.Parent())
	mp := NewMultiPoint([]*Point{p})
	require.Equal(t, Geometry(mp), p.Parent())

	ring := NewLinearRing(nil)
	poly := NewPolygon(EmptyLinearRing(), ring)
	require.Same(t, poly, ring.Parent())
	require.Same(t, poly, poly.ExteriorRing().Parent())

	ls := NewLineString(nil)
	mls := NewMultiLineString([]*LineString{ls})
	require.Equal(t, Geometry(mls), ls.Parent())

	ts := NewTriangulatedSurface([]*Polygon{poly})
	require.Equal(t, Geometry(ts), poly.Parent())
}

func Test_Force2D(t *testing.T) {
	testCases := map[string]Geometry{
		"point":        NewPoint(NewCoordinate3D(1, 2, 3)),
		"linestring":   NewLineString([]Coordinate{NewCoordinate3D(0, 0, 1), NewCoordinate3D(1, 1, 1)}),
		"polygon":      NewPolygon(square3D(0, 0, 5, 2).ExteriorRing(), NewLinearRing([]Coordinate{NewCoordinate3D(0.5, 0.5, 5)})),
		"multipoint":   NewMultiPoint([]*Point{NewPoint(NewCoordinate3D(1, 2, 3)), NewPoint(NewCoordinate(4, 5))}),
		"multisurface": NewMultiSurface([]*Polygon{square3D(0, 0, 0, 1), square3D(1, 1, 1, 1)}),
		"composite":    NewCompositeSurface([]*Polygon{square3D(0, 0, 0, 1)}),
		"multiline":    NewMultiLineString([]*LineString{NewLineString([]Coordinate{NewCoordinate3D(0, 0, 1)})}),
	}

	for name, g := range testCases {
		t.Run(name, func(t *testing.T) {
			once := g.Force2D()
			require.Same(t, g, once)
			require.Equal(t, 2, g.VertexDimension())
			require.False(t, HasZ(g))

			snapshot := NewMultiPoint(nil)
			ForEachCoordinate(g, func(c Coordinate) {
				snapshot.AddPoint(NewPoint(c))
			})
			g.Force2D()
			require.Equal(t, 2, g.VertexDimension())
			i := 0
			ForEachCoordinate(g, func(c Coordinate) {
				require.True(t, snapshot.Points()[i].Coordinate().Equal(c))
				i++
			})
		})
	}

	t.Run("solid-stays-3d", func(t *testing.T) {
		s, err := NewSolid(NewCompositeSurface([]*Polygon{square3D(0, 0, 0, 1)}))
		require.NoError(t, err)
		require.Same(t, s, s.Force2D())
		require.Equal(t, 3, s.VertexDimension())
		require.True(t, HasZ(s))

		ms := NewMultiSolid([]*Solid{s})
		require.Same(t, ms, ms.Force2D())
		require.Equal(t, 3, ms.VertexDimension())
		cs := NewCompositeSolid(nil)
		require.Same(t, cs, cs.Force2D())
	})

	t.Run("empty-member-ignored", func(t *testing.T) {
		mp := NewMultiPoint([]*Point{NewPoint(NewCoordinate3D(1, 2, 3)), EmptyPoint()})
		require.True(t, HasZ(mp))
		mp.Force2D()
		require.False(t, HasZ(mp))
		require.True(t, mp.Points()[1].IsEmpty())
	})
}

func Test_PolygonRings(t *testing.T) {
	ext := square2D(0, 0, 10).ExteriorRing()
	p := NewPolygon(ext)
	require.Nil(t, p.InteriorRings())
	require.False(t, p.HasInteriorRings())
	require.Len(t, p.Rings(), 1)

	p.SetInteriorRings([]*LinearRing{})
	require.NotNil(t, p.InteriorRings())
	require.Empty(t, p.InteriorRings())

	hole := NewLinearRing([]Coordinate{NewCoordinate(1, 1), NewCoordinate(1, 2), NewCoordinate(2, 2), NewCoordinate(1, 1)})
	p.AddInteriorRing(hole)
	require.True(t, p.HasInteriorRings())
	require.Equal(t, []*LinearRing{ext, hole}, p.Rings())
	require.True(t, ext.IsClosed())

	oriented := p.OrientedRings()
	require.Equal(t, ext.Coordinates(), oriented[0])

	p.SetReversed(true)
	oriented = p.OrientedRings()
	require.Equal(t, NewCoordinate(0, 0), oriented[0][0])
	require.Equal(t, NewCoordinate(0, 10), oriented[0][1])
	require.Equal(t, NewCoordinate(2, 2), oriented[1][1])
	// stored order is untouched
	require.Equal(t, NewCoordinate(10, 0), ext.Coordinates()[1])

	require.True(t, EmptyPolygon().IsEmpty())
	require.False(t, p.IsEmpty())
}

func Test_SurfaceAndSolidCollectionFactories(t *testing.T) {
	for _, typ := range []Type{MultiSurfaceType, CompositeSurfaceType, TriangulatedSurfaceType} {
		sc, err := NewSurfaceCollection(typ, []*Polygon{square3D(0, 0, 0, 1)})
		require.NoError(t, err)
		require.Equal(t, typ, sc.Type())
		require.True(t, typ.IsSurfaceCollection())
		require.Len(t, sc.Polygons(), 1)
		require.Equal(t, Geometry(sc), sc.Polygons()[0].Parent())
	}
	_, err := NewSurfaceCollection(SolidType, nil)
	require.ErrorIs(t, err, common.ErrUnsupportedShape)

	solid := EmptySolid()
	for _, typ := range []Type{MultiSolidType, CompositeSolidType} {
		sc, err := NewSolidCollection(typ, []*Solid{solid})
		require.NoError(t, err)
		require.Equal(t, typ, sc.Type())
		require.True(t, typ.IsSolidCollection())
		require.Equal(t, 3, sc.VertexDimension())
	}
	_, err = NewSolidCollection(PolygonType, nil)
	require.ErrorIs(t, err, common.ErrUnsupportedShape)
}

func Test_TypeString(t *testing.T) {
	require.Equal(t, "CompositeSurface", CompositeSurfaceType.String())
	require.Equal(t, "Type(99)", Type(99).String())
}

type countingVisitor struct {
	visited []Type
}

func (v *countingVisitor) add(g Geometry) { v.visited = append(v.visited, g.Type()) }

func (v *countingVisitor) VisitPoint(p *Point) {
	v.add(p)
}

func (v *countingVisitor) VisitMultiPoint(mp *MultiPoint) {
	v.add(mp)
}

func (v *countingVisitor) VisitLineString(ls *LineString) {
	v.add(ls)
}

func (v *countingVisitor) VisitMultiLineString(mls *MultiLineString) {
	v.add(mls)
}

func (v *countingVisitor) VisitPolygon(p *Polygon) {
	v.add(p)
}

func (v *countingVisitor) VisitMultiSurface(ms *MultiSurface) {
	v.add(ms)
}

func (v *countingVisitor) VisitCompositeSurface(cs *CompositeSurface) {
	v.add(cs)
}

func (v *countingVisitor) VisitTriangulatedSurface(ts *TriangulatedSurface) {
	v.add(ts)
}

func (v *countingVisitor) VisitSolid(s *Solid) {
	v.add(s)
}

func (v *countingVisitor) VisitMultiSolid(ms *MultiSolid) {
	v.add(ms)
}

func (v *countingVisitor) VisitCompositeSolid(cs *CompositeSolid) {
	v.add(cs)
}

func Test_Accept(t *testing.T) {
	geoms := []Geometry{
		EmptyPoint(), EmptyMultiPoint(), EmptyLineString(), EmptyMultiLineString(), EmptyPolygon(),
		EmptyMultiSurface(), EmptyCompositeSurface(), EmptyTriangulatedSurface(), EmptySolid(),
		EmptyMultiSolid(), EmptyCompositeSolid(),
	}
	v := &countingVisitor{}
	for _, g := range geoms {
		require.True(t, g.IsEmpty(), g.Type().String())
		g.Accept(v)
	}
	require.Equal(t, []Type{
		PointType, MultiPointType, LineStringType, MultiLineStringType, PolygonType,
		MultiSurfaceType, CompositeSurfaceType, TriangulatedSurfaceType, SolidType,
		MultiSolidType, CompositeSolidType,
	}, v.visited)
}

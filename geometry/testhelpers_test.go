package geometry

func square3D(x, y, z, size float64) *Polygon {
	return NewPolygon(NewLinearRing([]Coordinate{
		NewCoordinate3D(x, y, z),
		NewCoordinate3D(x+size, y, z),
		NewCoordinate3D(x+size, y+size, z),
		NewCoordinate3D(x, y+size, z),
		NewCoordinate3D(x, y, z),
	}))
}

func square2D(x, y, size float64) *Polygon {
	return NewPolygon(NewLinearRing([]Coordinate{
		NewCoordinate(x, y),
		NewCoordinate(x+size, y),
		NewCoordinate(x+size, y+size),
		NewCoordinate(x, y+size),
		NewCoordinate(x, y),
	}))
}

package geometry

import (
	"math"
	"strconv"

	"github.com/hangxie/citygeom/common"
)

// Coordinate is an (x, y) or (x, y, z) position. The dimension is tagged
// explicitly; z of a 2D coordinate is always 0.
type Coordinate struct {
	x, y, z float64
	dim     int
}

func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{x: x, y: y, dim: 2}
}

func NewCoordinate3D(x, y, z float64) Coordinate {
	return Coordinate{x: x, y: y, z: z, dim: 3}
}

// EmptyCoordinate is the position of an empty point: NaN for x and y.
func EmptyCoordinate() Coordinate {
	return Coordinate{x: math.NaN(), y: math.NaN(), dim: 2}
}

func (c Coordinate) X() float64 { return c.x }
func (c Coordinate) Y() float64 { return c.y }
func (c Coordinate) Z() float64 { return c.z }

// Dimension returns 2 or 3. The zero Coordinate reports 2.
func (c Coordinate) Dimension() int {
	if c.dim == 3 {
		return 3
	}
	return 2
}

func (c Coordinate) IsEmpty() bool {
	return math.IsNaN(c.x) && math.IsNaN(c.y)
}

// Equal compares positions ordinate by ordinate; NaN equals NaN. Two empty
// positions are equal whatever their dimension.
func (c Coordinate) Equal(o Coordinate) bool {
	if c.IsEmpty() && o.IsEmpty() {
		return true
	}
	if c.Dimension() != o.Dimension() {
		return false
	}
	if !sameFloat(c.x, o.x) || !sameFloat(c.y, o.y) {
		return false
	}
	return c.Dimension() == 2 || sameFloat(c.z, o.z)
}

// To3D returns the coordinate with dimension 3, using z for a 2D input.
func (c Coordinate) To3D(z float64) Coordinate {
	if c.Dimension() == 3 {
		return c
	}
	return NewCoordinate3D(c.x, c.y, z)
}

func (c Coordinate) String() string {
	s := strconv.FormatFloat(c.x, 'g', -1, 64) + " " + strconv.FormatFloat(c.y, 'g', -1, 64)
	if c.Dimension() == 3 {
		s += " " + strconv.FormatFloat(c.z, 'g', -1, 64)
	}
	return s
}

func (c Coordinate) force2D() Coordinate {
	return Coordinate{x: c.x, y: c.y, dim: 2}
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// CoordinatesFromOrdinates groups a flat ordinate array into coordinates of
// the given dimension.
func CoordinatesFromOrdinates(dim int, ordinates []float64) ([]Coordinate, error) {
	if dim != 2 && dim != 3 {
		return nil, common.Unsupported("coordinate dimension %d", dim)
	}
	if len(ordinates)%dim != 0 {
		return nil, common.Malformed("%d ordinates are not a multiple of dimension %d", len(ordinates), dim)
	}
	coords := make([]Coordinate, 0, len(ordinates)/dim)
	for i := 0; i < len(ordinates); i += dim {
		if dim == 3 {
			coords = append(coords, NewCoordinate3D(ordinates[i], ordinates[i+1], ordinates[i+2]))
		} else {
			coords = append(coords, NewCoordinate(ordinates[i], ordinates[i+1]))
		}
	}
	return coords, nil
}

// Ordinates flattens coordinates into dim values each. A 2D coordinate is
// padded with z = 0 when dim is 3, or NaN when it is empty; z is dropped when
// dim is 2.
func Ordinates(coords []Coordinate, dim int) []float64 {
	ords := make([]float64, 0, len(coords)*dim)
	for _, c := range coords {
		ords = append(ords, c.x, c.y)
		switch {
		case dim != 3:
		case c.Dimension() == 2 && c.IsEmpty():
			ords = append(ords, math.NaN())
		default:
			ords = append(ords, c.z)
		}
	}
	return ords
}

func reversedCoordinates(coords []Coordinate) []Coordinate {
	if coords == nil {
		return nil
	}
	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = c
	}
	return out
}

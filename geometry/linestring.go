package geometry

type LineString struct {
	base
	coordinates []Coordinate
}

func NewLineString(coords []Coordinate) *LineString {
	return &LineString{coordinates: coords}
}

func EmptyLineString() *LineString {
	return &LineString{}
}

func (ls *LineString) Coordinates() []Coordinate { return ls.coordinates }

func (ls *LineString) Type() Type           { return LineStringType }
func (ls *LineString) VertexDimension() int { return vertexDimension(ls) }
func (ls *LineString) IsEmpty() bool        { return len(ls.coordinates) == 0 }
func (ls *LineString) Envelope() *Envelope  { return envelopeOf(ls) }
func (ls *LineString) Accept(v Visitor)     { v.VisitLineString(ls) }

func (ls *LineString) Force2D() Geometry {
	force2D(ls)
	return ls
}

type MultiLineString struct {
	base
	lineStrings []*LineString
}

func NewMultiLineString(lineStrings []*LineString) *MultiLineString {
	mls := &MultiLineString{}
	for _, ls := range lineStrings {
		mls.AddLineString(ls)
	}
	return mls
}

func EmptyMultiLineString() *MultiLineString {
	return &MultiLineString{}
}

func (mls *MultiLineString) LineStrings() []*LineString { return mls.lineStrings }

func (mls *MultiLineString) AddLineString(ls *LineString) {
	adopt(mls, ls)
	mls.lineStrings = append(mls.lineStrings, ls)
}

func (mls *MultiLineString) Type() Type           { return MultiLineStringType }
func (mls *MultiLineString) VertexDimension() int { return vertexDimension(mls) }
func (mls *MultiLineString) IsEmpty() bool        { return len(mls.lineStrings) == 0 }
func (mls *MultiLineString) Envelope() *Envelope  { return envelopeOf(mls) }
func (mls *MultiLineString) Accept(v Visitor)     { v.VisitMultiLineString(mls) }

func (mls *MultiLineString) Force2D() Geometry {
	force2D(mls)
	return mls
}

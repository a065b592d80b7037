package geometry

import "github.com/hangxie/citygeom/common"

// Solid is bounded by exactly one composite surface. Solids are always 3D:
// construction rejects a shell with 2D coordinates and Force2D leaves a
// solid untouched. The shell stays mutable through Shell(), so encoders call
// Validate before writing.
type Solid struct {
	base
	shell *CompositeSurface
}

func NewSolid(shell *CompositeSurface) (*Solid, error) {
	s := &Solid{}
	if err := s.SetShell(shell); err != nil {
		return nil, err
	}
	return s, nil
}

func EmptySolid() *Solid {
	s := &Solid{shell: EmptyCompositeSurface()}
	adopt(s, s.shell)
	return s
}

func (s *Solid) Shell() *CompositeSurface { return s.shell }

// SetShell replaces the shell. An empty shell is accepted; any 2D coordinate
// is an invariant violation.
func (s *Solid) SetShell(shell *CompositeSurface) error {
	if shell == nil {
		shell = EmptyCompositeSurface()
	}
	if !shell.IsEmpty() && shell.VertexDimension() != 3 {
		return common.Invariant("solid shell must have vertex dimension 3, got %d", shell.VertexDimension())
	}
	adopt(s, shell)
	s.shell = shell
	return nil
}

// Validate re-checks the shell invariant, which edits made through Shell()
// may have broken since construction.
func (s *Solid) Validate() error {
	if s.shell == nil || s.shell.IsEmpty() {
		return nil
	}
	if d := s.shell.VertexDimension(); d != 3 {
		return common.Invariant("solid shell must have vertex dimension 3, got %d", d)
	}
	return nil
}

func (s *Solid) Type() Type           { return SolidType }
func (s *Solid) VertexDimension() int { return 3 }
func (s *Solid) IsEmpty() bool        { return s.shell == nil || s.shell.IsEmpty() }
func (s *Solid) Envelope() *Envelope  { return envelopeOf(s) }
func (s *Solid) Accept(v Visitor)     { v.VisitSolid(s) }
func (s *Solid) Force2D() Geometry    { return s }

// SolidCollection is implemented by MultiSolid and CompositeSolid.
type SolidCollection interface {
	Geometry
	Solids() []*Solid
	AddSolid(s *Solid)
}

type solidCollection struct {
	base
	solids []*Solid
}

func (c *solidCollection) Solids() []*Solid { return c.solids }
func (c *solidCollection) IsEmpty() bool    { return len(c.solids) == 0 }

func (c *solidCollection) add(owner Geometry, s *Solid) {
	adopt(owner, s)
	c.solids = append(c.solids, s)
}

type MultiSolid struct {
	solidCollection
}

func NewMultiSolid(solids []*Solid) *MultiSolid {
	ms := &MultiSolid{}
	for _, s := range solids {
		ms.AddSolid(s)
	}
	return ms
}

func EmptyMultiSolid() *MultiSolid { return &MultiSolid{} }

func (ms *MultiSolid) AddSolid(s *Solid) { ms.add(ms, s) }

func (ms *MultiSolid) Type() Type           { return MultiSolidType }
func (ms *MultiSolid) VertexDimension() int { return solidsDimension(ms.solids) }
func (ms *MultiSolid) Envelope() *Envelope  { return envelopeOf(ms) }
func (ms *MultiSolid) Accept(v Visitor)     { v.VisitMultiSolid(ms) }
func (ms *MultiSolid) Force2D() Geometry    { return ms }

type CompositeSolid struct {
	solidCollection
}

func NewCompositeSolid(solids []*Solid) *CompositeSolid {
	cs := &CompositeSolid{}
	for _, s := range solids {
		cs.AddSolid(s)
	}
	return cs
}

func EmptyCompositeSolid() *CompositeSolid { return &CompositeSolid{} }

func (cs *CompositeSolid) AddSolid(s *Solid) { cs.add(cs, s) }

func (cs *CompositeSolid) Type() Type           { return CompositeSolidType }
func (cs *CompositeSolid) VertexDimension() int { return solidsDimension(cs.solids) }
func (cs *CompositeSolid) Envelope() *Envelope  { return envelopeOf(cs) }
func (cs *CompositeSolid) Accept(v Visitor)     { v.VisitCompositeSolid(cs) }
func (cs *CompositeSolid) Force2D() Geometry    { return cs }

// NewSolidCollection builds the solid collection variant named by t.
func NewSolidCollection(t Type, solids []*Solid) (SolidCollection, error) {
	switch t {
	case MultiSolidType:
		return NewMultiSolid(solids), nil
	case CompositeSolidType:
		return NewCompositeSolid(solids), nil
	default:
		return nil, unsupportedType(t, "solid collection")
	}
}

// solidsDimension is 2 only for an empty collection, matching the other
// collections; members are 3D by construction.
func solidsDimension(solids []*Solid) int {
	if len(solids) == 0 {
		return 2
	}
	return 3
}

func unsupportedType(t Type, what string) error {
	return common.Unsupported("%s is not a %s", t, what)
}

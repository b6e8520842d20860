package lattice

import (
	"github.com/latticeworks/su2lat/su2"
)

// Field is the complete assignment of SU(2) link variables over a
// periodic L×L×L lattice, three links per site. The links live in a
// single contiguous arena so that a full-field copy is one allocation
// and one memcpy; see the package documentation for index conventions.
//
// A Field is mutated in place by the Markov chain that owns it; every
// derived field (smeared copies, hybrids) must be created via Clone.
type Field struct {
	size  int
	links []su2.Matrix
}

// NewCold returns an L×L×L field with every link set to the identity
// (a "cold start"). Returns ErrBadSize for l < 2.
func NewCold(l int) (*Field, error) {
	if l < 2 {
		return nil, ErrBadSize
	}
	n := l * l * l * dims
	links := make([]su2.Matrix, n)
	id := su2.Identity()
	for i := range links {
		links[i] = id
	}
	return &Field{size: l, links: links}, nil
}

// Size returns the lattice extent L.
func (f *Field) Size() int { return f.size }

// Sites returns the number of lattice sites, L³.
func (f *Field) Sites() int { return f.size * f.size * f.size }

// Clone returns an independent deep copy of the field. The copy shares
// no storage with the receiver.
func (f *Field) Clone() *Field {
	links := make([]su2.Matrix, len(f.links))
	copy(links, f.links)
	return &Field{size: f.size, links: links}
}

// site converts coordinates (already reduced mod L) to a site index.
func (f *Field) site(x, y, z int) int {
	return (x*f.size+y)*f.size + z
}

// coords converts a site index back to (x, y, z).
func (f *Field) coords(s int) (x, y, z int) {
	z = s % f.size
	s /= f.size
	y = s % f.size
	x = s / f.size
	return x, y, z
}

// shift returns the site index displaced by d steps along axis, with
// periodic wraparound. d may be negative or exceed L in magnitude.
func (f *Field) shift(s, axis, d int) int {
	x, y, z := f.coords(s)
	d %= f.size
	switch axis {
	case 0:
		x = (x + d + f.size) % f.size
	case 1:
		y = (y + d + f.size) % f.size
	default:
		z = (z + d + f.size) % f.size
	}
	return f.site(x, y, z)
}

// link returns the link at (site index, direction).
func (f *Field) link(s, mu int) su2.Matrix {
	return f.links[s*dims+mu]
}

// setLink stores u at (site index, direction).
func (f *Field) setLink(s, mu int, u su2.Matrix) {
	f.links[s*dims+mu] = u
}

// Link returns the link variable at site (x,y,z) in direction mu.
// Coordinates are taken modulo L; mu outside {0,1,2} returns ErrDirection.
func (f *Field) Link(x, y, z, mu int) (su2.Matrix, error) {
	if mu < 0 || mu >= dims {
		return su2.Matrix{}, ErrDirection
	}
	l := f.size
	return f.link(f.site(((x%l)+l)%l, ((y%l)+l)%l, ((z%l)+l)%l), mu), nil
}

// SetLink stores u at site (x,y,z) in direction mu, with the same
// coordinate conventions as Link.
func (f *Field) SetLink(x, y, z, mu int, u su2.Matrix) error {
	if mu < 0 || mu >= dims {
		return ErrDirection
	}
	l := f.size
	f.setLink(f.site(((x%l)+l)%l, ((y%l)+l)%l, ((z%l)+l)%l), mu, u)
	return nil
}

// LinkAt returns the link at (site index, direction) without range
// checks: the hot-path accessor for sweep kernels that already iterate
// [0, Sites()) × {0,1,2}. Site indices follow the package convention
// (x·L+y)·L+z.
func (f *Field) LinkAt(site, mu int) su2.Matrix {
	return f.links[site*dims+mu]
}

// SetLinkAt stores u at (site index, direction); the write-side
// counterpart of LinkAt with the same contract.
func (f *Field) SetLinkAt(site, mu int, u su2.Matrix) {
	f.links[site*dims+mu] = u
}

// ShiftSite returns the site index displaced by d steps along axis with
// periodic wraparound, for kernels iterating by site index.
func (f *Field) ShiftSite(site, axis, d int) int {
	return f.shift(site, axis, d)
}

// CopySpatialFrom overwrites the receiver's spatial links (directions 0
// and 1) with those of src, leaving direction 2 untouched. The fields
// must have equal size. Used to build the hybrid field for Wilson-loop
// measurement: smeared space-like legs, unsmeared time-like legs.
func (f *Field) CopySpatialFrom(src *Field) error {
	if src.size != f.size {
		return ErrBadSize
	}
	for s := 0; s < f.Sites(); s++ {
		for mu := 0; mu < spatialDims; mu++ {
			f.setLink(s, mu, src.link(s, mu))
		}
	}
	return nil
}

// CheckSpecialUnitary reports the first link violating the SU(2)
// invariant within tol, or true if the whole field satisfies it.
func (f *Field) CheckSpecialUnitary(tol float64) bool {
	for i := range f.links {
		if !f.links[i].IsSpecialUnitary(tol) {
			return false
		}
	}
	return true
}

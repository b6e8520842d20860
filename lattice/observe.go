package lattice

import (
	"github.com/latticeworks/su2lat/su2"
)

// GlueballProfile measures the zero-momentum glueball operator: the real
// trace of the elementary (0,1)-plane plaquette
//
//	P₀₁(x) = U₀(x) · U₁(x+0̂) · U₀†(x+1̂) · U₁†(x)
//
// summed over each constant-z plane. The returned slice has length L;
// entry z is the operator value at axis position z, the correlator's
// source/sink value for that time slice.
func (f *Field) GlueballProfile() []float64 {
	profile := make([]float64, f.size)
	for s := 0; s < f.Sites(); s++ {
		p := f.link(s, 0).
			Mul(f.link(f.shift(s, 0, 1), 1)).
			Mul(f.link(f.shift(s, 1, 1), 0).Dagger()).
			Mul(f.link(s, 1).Dagger())
		_, _, z := f.coords(s)
		profile[z] += p.TraceReal()
	}
	return profile
}

// WilsonLoops measures rectangular Wilson loops in the (0,2) plane for
// every extent pair up to (rmax, tmax): R unit steps in direction 0,
// T steps in direction 2, then the reverse legs with conjugated links.
// Entry [R−1][T−1] of the result is the site-averaged real trace of the
// R×T loop on this field. Line products are extended incrementally, so
// the total cost is O(L³·(R_max+R_max·T_max)) matrix products.
//
// Extents must satisfy 1 ≤ rmax, tmax < L (ErrLoopExtent otherwise); a
// loop wrapping the full lattice would be a Polyakov line, a different
// observable.
func (f *Field) WilsonLoops(rmax, tmax int) ([][]float64, error) {
	if rmax < 1 || rmax >= f.size || tmax < 1 || tmax >= f.size {
		return nil, ErrLoopExtent
	}

	n := f.Sites()
	w := make([][]float64, rmax)
	for r := range w {
		w[r] = make([]float64, tmax)
	}

	// rLine[s] holds the ordered product of r links along direction 0
	// starting at s; it grows by one link per outer iteration.
	rLine := make([]su2.Matrix, n)
	next := make([]su2.Matrix, n)
	for s := 0; s < n; s++ {
		rLine[s] = f.link(s, 0)
	}

	tLine := make([]su2.Matrix, n)
	tNext := make([]su2.Matrix, n)

	for r := 1; r <= rmax; r++ {
		// Freeze the length-r spatial line, then extend for the next r.
		spatial := make([]su2.Matrix, n)
		copy(spatial, rLine)
		for s := 0; s < n; s++ {
			next[s] = rLine[s].Mul(f.link(f.shift(s, 0, r), 0))
		}
		rLine, next = next, rLine

		for s := 0; s < n; s++ {
			tLine[s] = f.link(s, 2)
		}
		for t := 1; t <= tmax; t++ {
			var sum float64
			for s := 0; s < n; s++ {
				loop := spatial[s].
					Mul(tLine[f.shift(s, 0, r)]).
					Mul(spatial[f.shift(s, 2, t)].Dagger()).
					Mul(tLine[s].Dagger())
				sum += loop.TraceReal()
			}
			w[r-1][t-1] = sum / float64(n)

			for s := 0; s < n; s++ {
				tNext[s] = tLine[s].Mul(f.link(f.shift(s, 2, t), 2))
			}
			tLine, tNext = tNext, tLine
		}
	}
	return w, nil
}

// MeanPlaquette returns the real plaquette trace averaged over all sites
// and all three plane orientations, the standard thermalization monitor
// (2 on a cold field, decreasing with disorder).
func (f *Field) MeanPlaquette() float64 {
	var sum float64
	var count int
	for mu := 0; mu < dims; mu++ {
		for nu := mu + 1; nu < dims; nu++ {
			for s := 0; s < f.Sites(); s++ {
				p := f.link(s, mu).
					Mul(f.link(f.shift(s, mu, 1), nu)).
					Mul(f.link(f.shift(s, nu, 1), mu).Dagger()).
					Mul(f.link(s, nu).Dagger())
				sum += p.TraceReal()
				count++
			}
		}
	}
	return sum / float64(count)
}

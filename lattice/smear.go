package lattice

import (
	"fmt"
)

// SmearSpatial applies steps rounds of APE smearing to the spatial links
// and returns the result as an independent field; the receiver is
// unmodified, and direction-2 links are carried over untouched.
//
// One round replaces every spatial link, from a frozen snapshot of the
// current field, with
//
//	(1−α)·U_μ(x) + (α/2)·Σ_spatial staples,
//
// then projects the blend back onto SU(2). alpha must lie in (0,1);
// steps must be non-negative (steps == 0 returns a plain clone).
//
// Errors: ErrAlphaRange, ErrSmearSteps, and su2.ErrSingularLink wrapped
// with the offending round if a blend degenerates — the latter means the
// simulation is malformed and must not continue.
func (f *Field) SmearSpatial(alpha float64, steps int) (*Field, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, ErrAlphaRange
	}
	if steps < 0 {
		return nil, ErrSmearSteps
	}

	cur := f.Clone()
	for round := 0; round < steps; round++ {
		snap := cur.Clone()
		for mu := 0; mu < spatialDims; mu++ {
			st, err := snap.SpatialStaples(mu)
			if err != nil {
				return nil, err
			}
			for s := range st {
				blend := snap.link(s, mu).Scale(complex(1-alpha, 0)).
					Add(st[s].Scale(complex(alpha/2, 0)))
				proj, err := blend.Project()
				if err != nil {
					return nil, fmt.Errorf("lattice: smearing round %d direction %d: %w", round, mu, err)
				}
				cur.setLink(s, mu, proj)
			}
		}
	}
	return cur, nil
}

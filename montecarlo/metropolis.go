package montecarlo

import (
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/latticeworks/su2lat/lattice"
	"github.com/latticeworks/su2lat/su2"
)

// Updater performs full-lattice Metropolis sweeps over a gauge field.
//
// One Sweep draws an independent near-identity SU(2) proposal R for
// every link from the pre-sweep field, then for each direction μ in
// turn computes the staples of the current field once and decides every
// site independently:
//
//	ΔS = −(β/2)·Re Tr[(R·U − U)·Staple†],  accept iff u < exp(−ΔS).
//
// Accepted links overwrite the field in place, so within one sweep the
// staples of direction μ reflect accepted updates of directions < μ —
// the single-pass approximation the sampled ensemble is defined by.
// There is no rejection retry: one decision per link per sweep, and a
// sweep always leaves a valid field behind.
type Updater struct {
	beta    float64
	step    float64
	workers int
	rng     *rand.Rand

	// Scratch buffers reused across sweeps to keep the hot loop
	// allocation-free after the first call.
	proposals [3][]su2.Matrix
	uniforms  [3][]float64
}

// NewUpdater builds an Updater for the given inverse coupling and step
// size. seed follows the package seed policy (0 ⇒ fixed default);
// workers ≤ 0 selects one decision worker per available CPU.
func NewUpdater(beta, step float64, seed int64, workers int) (*Updater, error) {
	if beta < 0 {
		return nil, ErrBadCoupling
	}
	if step <= 0 || step > 1 {
		return nil, ErrBadStep
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Updater{
		beta:    beta,
		step:    step,
		workers: workers,
		rng:     rngFromSeed(seed),
	}, nil
}

// Sweep performs one full-lattice sweep in place.
func (u *Updater) Sweep(f *lattice.Field) error {
	n := f.Sites()
	u.ensureScratch(n)

	// Serial phase: the chain's RNG draws every proposal and uniform in
	// a fixed order, so the trajectory is independent of worker count.
	for mu := 0; mu < 3; mu++ {
		for s := 0; s < n; s++ {
			u.proposals[mu][s] = su2.Random(u.rng, u.step)
			u.uniforms[mu][s] = u.rng.Float64()
		}
	}

	for mu := 0; mu < 3; mu++ {
		staples, err := f.Staples(mu)
		if err != nil {
			return err
		}
		u.decide(f, mu, staples)
	}
	return nil
}

// decide runs the per-site accept/reject map for one direction. Sites
// are partitioned across the worker group; every site reads only its
// own precomputed staple, proposal and uniform, and writes only its own
// (site, μ) link, so no synchronization beyond the final barrier is
// needed.
func (u *Updater) decide(f *lattice.Field, mu int, staples []su2.Matrix) {
	n := f.Sites()
	chunk := (n + u.workers - 1) / u.workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for s := lo; s < hi; s++ {
				old := f.LinkAt(s, mu)
				proposed := u.proposals[mu][s].Mul(old)
				dS := -(u.beta / 2) * proposed.Sub(old).Mul(staples[s].Dagger()).TraceReal()
				if u.uniforms[mu][s] < math.Exp(-dS) {
					f.SetLinkAt(s, mu, proposed)
				}
			}
			return nil
		})
	}
	// Decision workers never fail; Wait is the sweep-boundary barrier.
	_ = g.Wait()
}

// ensureScratch sizes the per-sweep buffers for n sites.
func (u *Updater) ensureScratch(n int) {
	if len(u.proposals[0]) == n {
		return
	}
	for mu := 0; mu < 3; mu++ {
		u.proposals[mu] = make([]su2.Matrix, n)
		u.uniforms[mu] = make([]float64, n)
	}
}

// SPDX-License-Identifier: MIT
// Package operator: eigen-decomposition for Hermitian operators.
//
// Two regimes, selected by dimension:
//   - dim 2: exact closed form — eigenvalues from trace/determinant via
//     the quadratic formula, eigenvectors from the standard 2×2 formula,
//     special-cased to the standard basis when the off-diagonal term is
//     ~0 (avoids division by zero).
//   - dim > 2: power iteration with a FIXED budget (DefaultPowerIters)
//     using the Rayleigh quotient, followed by deflation
//     (A ← A − λ·vv†) and repetition for the next eigenpair. The
//     iteration runs on the shifted matrix A + cI with c = ‖A‖_F: the
//     shift makes every eigenvalue nonnegative, so a ±λ pair tied in
//     magnitude (Z⊗Z has spectrum {+1,+1,−1,−1}) cannot stall the
//     iterate; c is subtracted from the Rayleigh quotient on report.
//     Iterates are re-orthogonalized against previously extracted
//     eigenvectors to contain deflation drift.
//
// Correctness of deflation depends on the input being Hermitian (real
// eigenvalues, orthogonal eigenvectors), which is why the entry point
// takes *Hermitian and not *Operator: the method is NOT valid for general
// non-Hermitian operators. The iteration budget is fixed rather than
// convergence-driven — a tested fixed-budget approximation, not an
// adaptive solver.

package operator

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/quantara/quanta/zmat"
)

// EigenPair is one (eigenvalue, eigenvector, degeneracy) triple.
// Transient: produced by Eigen, not persisted anywhere.
type EigenPair struct {
	Value      float64     // real by Hermiticity
	Vector     zmat.Vector // unit norm
	Degeneracy int         // size of the eigenvalue cluster within tolerance
}

// offDiagonalFloor is the threshold below which a 2×2 off-diagonal term
// is treated as exactly zero and the standard basis is returned.
const offDiagonalFloor = 1e-12

// Eigen decomposes a Hermitian operator into eigenpairs, sorted by
// descending eigenvalue (deterministic order for measurement layers).
//
// Errors: ErrNilOperator; ErrEigenFailed when an iterate degenerates in a
// way re-orthogonalization cannot repair.
// Complexity: O(1) at dim 2; O(iters·n³) above.
func Eigen(h *Hermitian, opts ...Option) ([]EigenPair, error) {
	if h == nil {
		return nil, fmt.Errorf("Eigen: %w", ErrNilOperator)
	}
	cfg := gatherOptions(opts...)

	var pairs []EigenPair
	var err error
	if h.Dim() == 2 {
		pairs, err = eigen2x2(h.Matrix())
	} else {
		pairs, err = eigenPowerDeflate(h.Matrix(), cfg.powerIters)
	}
	if err != nil {
		return nil, err
	}

	// Deterministic order: descending eigenvalue.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Value > pairs[j].Value })
	markDegeneracy(pairs, cfg.tol)

	return pairs, nil
}

// eigen2x2 is the exact closed form for 2-dimensional Hermitian matrices.
func eigen2x2(m *zmat.Dense) ([]EigenPair, error) {
	a, _ := m.At(0, 0) // indices valid: dim checked by caller
	b, _ := m.At(0, 1)
	d, _ := m.At(1, 1)
	ar, dr := real(a), real(d) // diagonal real by Hermiticity

	// Off-diagonal ~0: eigenvectors are the standard basis. This branch
	// avoids the division by zero in the generic eigenvector formula.
	if cmplx.Abs(b) < offDiagonalFloor {
		e0, err := zmat.NewVector(1, 0)
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		e1, err := zmat.NewVector(0, 1)
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}

		return []EigenPair{
			{Value: ar, Vector: e0, Degeneracy: 1},
			{Value: dr, Vector: e1, Degeneracy: 1},
		}, nil
	}

	// Quadratic formula on trace/determinant. The discriminant is
	// non-negative for Hermitian input; clamp shields rounding.
	tr := ar + dr
	det := ar*dr - absSq(b)
	disc := tr*tr - 4*det
	if disc < 0 {
		disc = 0
	}
	root := math.Sqrt(disc)
	lambdas := [2]float64{(tr + root) / 2, (tr - root) / 2}

	pairs := make([]EigenPair, 0, 2)
	for _, lambda := range lambdas {
		// Standard 2×2 eigenvector (b, λ−a), with the conjugate-row
		// fallback when that column degenerates.
		vec, err := zmat.NewVector(b, complex(lambda-ar, 0))
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		unit, err := vec.Normalize()
		if err != nil {
			vec, err = zmat.NewVector(complex(lambda-dr, 0), cmplx.Conj(b))
			if err != nil {
				return nil, fmt.Errorf("Eigen: %w", err)
			}
			if unit, err = vec.Normalize(); err != nil {
				return nil, fmt.Errorf("Eigen: %w", ErrEigenFailed)
			}
		}
		pairs = append(pairs, EigenPair{Value: lambda, Vector: unit, Degeneracy: 1})
	}

	return pairs, nil
}

// eigenPowerDeflate extracts all n eigenpairs by fixed-budget power
// iteration with deflation. Valid for Hermitian input only.
func eigenPowerDeflate(m *zmat.Dense, iters int) ([]EigenPair, error) {
	n := m.Rows()

	// Shift the spectrum into [0, 2c]: power iteration separates by
	// MAGNITUDE, so without the shift an eigenvalue pair ±λ ties and the
	// iterate never settles. A + cI keeps the eigenvectors and adds c to
	// every eigenvalue.
	shift, err := zmat.FrobeniusNorm(m)
	if err != nil {
		return nil, fmt.Errorf("Eigen: %w", err)
	}
	work := m.Clone()
	if shift > 0 {
		id, err := zmat.Identity(n)
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		scaled, err := zmat.Scale(id, complex(shift, 0))
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		if work, err = zmat.Add(work, scaled); err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
	}

	pairs := make([]EigenPair, 0, n)
	found := make([]zmat.Vector, 0, n)

	var k, it int
	for k = 0; k < n; k++ {
		v, err := startVector(n, found)
		if err != nil {
			return nil, err
		}

		// Fixed-budget iteration: no convergence check by design.
		for it = 0; it < iters; it++ {
			w, err := zmat.MatVec(work, v)
			if err != nil {
				return nil, fmt.Errorf("Eigen: %w", err)
			}
			w = orthogonalize(w, found)
			unit, err := w.Normalize()
			if err != nil {
				// Deflated matrix annihilates the iterate: the remaining
				// spectrum is ~0 and v already lies in its eigenspace.
				break
			}
			v = unit
		}

		// Rayleigh quotient μ = ⟨v|(A+cI)|v⟩; the original eigenvalue is
		// λ = μ − c (real by Hermiticity).
		av, err := zmat.MatVec(work, v)
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		quot, err := zmat.Inner(v, av)
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		mu := real(quot)
		pairs = append(pairs, EigenPair{Value: mu - shift, Vector: v, Degeneracy: 1})
		found = append(found, v)

		// Deflate the SHIFTED matrix: W ← W − μ·vv†.
		outer, err := zmat.Outer(v, v)
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		deflated, err := zmat.Scale(outer, complex(mu, 0))
		if err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
		if work, err = zmat.Sub(work, deflated); err != nil {
			return nil, fmt.Errorf("Eigen: %w", err)
		}
	}

	return pairs, nil
}

// startVector builds a deterministic start iterate with nonzero overlap
// against every coordinate direction, orthogonalized against the
// eigenvectors already extracted.
func startVector(n int, found []zmat.Vector) (zmat.Vector, error) {
	comps := make([]complex128, n)
	for i := 0; i < n; i++ {
		comps[i] = complex(1.0/float64(i+1), 0) // strictly decreasing, never zero
	}
	raw, err := zmat.NewVector(comps...)
	if err != nil {
		return zmat.Vector{}, fmt.Errorf("Eigen: %w", err)
	}
	raw = orthogonalize(raw, found)
	unit, err := raw.Normalize()
	if err != nil {
		return zmat.Vector{}, fmt.Errorf("Eigen: %w", ErrEigenFailed)
	}

	return unit, nil
}

// orthogonalize removes the projections of v onto each basis vector
// (classical Gram–Schmidt step; basis vectors are unit norm).
func orthogonalize(v zmat.Vector, basis []zmat.Vector) zmat.Vector {
	out := v
	for _, u := range basis {
		coeff, err := zmat.Inner(u, out)
		if err != nil {
			return out // dimensions match by construction; unreachable
		}
		proj := u.Scale(coeff)
		reduced, err := out.Sub(proj)
		if err != nil {
			return out
		}
		out = reduced
	}

	return out
}

// markDegeneracy annotates each pair with the size of its eigenvalue
// cluster. Assumes pairs sorted by eigenvalue; clusters are maximal runs
// within tol.
func markDegeneracy(pairs []EigenPair, tol float64) {
	// Degeneracy clustering needs a looser net than elementwise equality:
	// iterative eigenvalues carry ~1e-6 error at the default budget.
	cluster := tol
	if cluster < 1e-6 {
		cluster = 1e-6
	}
	i := 0
	for i < len(pairs) {
		j := i
		for j+1 < len(pairs) && math.Abs(pairs[j+1].Value-pairs[i].Value) <= cluster {
			j++
		}
		for k := i; k <= j; k++ {
			pairs[k].Degeneracy = j - i + 1
		}
		i = j + 1
	}
}

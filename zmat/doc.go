// Package zmat provides dense complex linear-algebra primitives: fixed
// dimension vectors and row-major matrices over complex128, together with
// the deterministic kernels the rest of the kernel builds on.
//
// What lives here:
//   - Vector: immutable fixed-dimension sequence of complex amplitudes
//     with norm, normalization, inner and outer products.
//   - Dense: immutable row-major complex matrix backed by a flat slice.
//   - Kernels: Add, Sub, Mul, Scale, MatVec, ConjTranspose, Trace, Det,
//     FrobeniusNorm — every kernel validates fail-fast and allocates a
//     fresh result; operands are never mutated.
//
// Conventions:
//   - Inner(u, v) = Σ conj(uᵢ)·vᵢ — conjugate-linear in the FIRST
//     argument (the physicist convention).
//   - All shape violations surface as package sentinels matched via
//     errors.Is; no kernel panics on user input.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.
//
// Determinism & Performance:
//   - Time: O(n) vector ops, O(r·c) elementwise, O(n³) Mul.
//   - Space: one fresh allocation per result.
//
// zmat deliberately stops at 3×3 closed-form determinants; anything the
// quantum kernel needs beyond that is spectral and lives in package
// operator.
package zmat

// Package measure implements the measurement subsystem of the kernel:
// projective (von Neumann) measurement with Born-rule sampling and state
// collapse, generalized POVM measurement, repeated-measurement statistics
// with a chi-squared goodness-of-fit check, weak values, and single-qubit
// state tomography.
//
// 🚀 What measure delivers:
//   - Projector — rank-1 P = |ψ⟩⟨ψ| with Born probabilities and collapse.
//   - Projective — a measurement apparatus for one Observable: the
//     eigen-decomposition and its projectors are computed ONCE at
//     construction, so every later call is a race-free read.
//   - POVM — positive operator-valued measures with completeness
//     validation (Σ Eᵢ = I); outcome sampling with no post-state, which
//     is the honest contract for a generalized measurement.
//   - MeasureRepeated — sampled ensembles with sample-vs-theory moments
//     and a Wilson–Hilferty chi-squared p-value.
//   - WeakValue and Tomography — pre/post-selected weak values and
//     Bloch-vector estimation from repeated Pauli measurements.
//
// ⚙️ Randomness is explicit: every sampler draws from the *rand.Rand you
// inject with WithRand (a time-seeded source is created per apparatus
// otherwise). There is no package-global generator, so seeded runs are
// reproducible and parallel apparatuses never contend.
//
// Determinism note: with a fixed seed, Measure and MeasureRepeated are
// fully deterministic — outcome ordering follows the descending
// eigenvalue order of operator.Eigen.
package measure

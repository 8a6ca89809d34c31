// Package quanta is a finite-dimensional quantum-mechanics computation
// kernel: complex linear algebra, operator algebra, and projective /
// generalized measurement, all in pure deterministic Go.
//
// 🚀 What is quanta?
//
//	A small, explicit library that brings together:
//		• zmat     — immutable complex vectors & dense matrices (physicist
//		  inner product, trace, determinant, Frobenius norm)
//		• operator — named operators with fingerprints, Hermitian/Unitary
//		  validated types, commutators, the Robertson uncertainty
//		  relation, and Hermitian eigen-decomposition (closed-form 2×2 +
//		  fixed-budget power iteration with deflation)
//		• gates    — the standard zoo: Paulis, Hadamard, phase & rotation
//		  gates, CNOT, Bell states, and truncated ladder operators
//		• measure  — projective measurement with Born-rule sampling and
//		  collapse, POVMs, repeated-measurement statistics with a
//		  chi-squared check, weak values, and qubit tomography
//
// ✨ Why choose quanta?
//
//   - Deterministic by construction – fixed iteration budgets, injectable
//     random sources, stable outcome ordering
//   - Rock-solid validation – every constructor checks shape, finiteness
//     and algebraic class up front; failures are sentinel errors matched
//     with errors.Is
//   - Immutable values – vectors, matrices and operators never mutate
//     after construction, so concurrent reads need no locks
//
// Quick example:
//
//	zero, _ := gates.BasisState(2, 0)
//	plus, _ := gates.Hadamard().Apply(zero)
//	app, _ := measure.NewProjective(gates.PauliZ())
//	res, _ := app.Measure(plus)       // ±1 with probability 1/2 each
//	_ = res.PostState                 // collapsed onto |0⟩ or |1⟩
//
// Start with zmat for raw linear algebra, reach for operator when you
// need validated classes and spectra, and let measure do the sampling.
package quanta

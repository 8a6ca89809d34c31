// Package operator implements the linear-operator algebra of the quantum
// kernel: square complex operators over zmat with a full combinator set,
// constructor-validated Hermitian/Unitary specializations, operator-pair
// algebra (commutators, uncertainty relations) and eigen-decomposition.
//
// 🚀 What lives here?
//
//   - Operator: an immutable square-matrix-backed linear map with
//     add/sub/mul/scale/power/truncated-series exponential, adjoint,
//     tolerance predicates and spectral statistics.
//   - Hermitian / Unitary / Observable: specializations whose defining
//     algebraic invariant (M = M†, M†M = I) is checked ONCE at
//     construction and then holds for the value's lifetime, because
//     operators are never mutated.
//   - Commutator / AntiCommutator / UncertaintyRelation: [A,B] = AB−BA,
//     {A,B} = AB+BA, ΔA·ΔB ≥ |⟨[A,B]⟩|/2. Products are computed eagerly
//     at construction, so the values are safe for concurrent reads.
//   - Eigen: exact closed form for 2-dimensional Hermitian operators,
//     power iteration with deflation above that.
//
// ⚙️ Numeric policy:
//
//	Comparisons use a fixed absolute tolerance (DefaultTolerance = 1e-10).
//	The series exponential and the power iteration run on FIXED budgets
//	(DefaultExpTerms = 20, DefaultPowerIters = 100) with no convergence
//	check — a deliberate accuracy/performance tradeoff, overridable via
//	functional options but never adaptive.
//
// Concurrency: every type in this package is immutable after construction;
// concurrent reads need no locking.
package operator

// Package gates is the construction layer of the kernel: validated
// builders for the standard operators and states the rest of the library
// (and its tests) measure against.
//
// Families:
//   - Single qubit: PauliX/Y/Z (Observables), Hadamard, PhaseS, PhaseT,
//     RotationX/Y/Z (Unitaries).
//   - Two qubit: CNOT, the Kron tensor product, and the four Bell states.
//   - Ladder: Number, Creation, Annihilation and the finite truncations
//     of Position/Momentum on a d-dimensional Fock space.
//   - States: BasisState, Superposition, Plus/Minus.
//
// Fixed gates cannot fail and return values directly; parameterized
// builders validate their inputs and return errors in the kernel's
// sentinel taxonomy. Finite ladder truncations carry the usual artifact:
// [x̂,p̂] equals iħ·I everywhere except the highest Fock level, which is
// the price of cutting the infinite ladder at dimension d.
package gates

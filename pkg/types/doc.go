// Package types defines the shared vocabulary for the binfield codec: the
// byte-order and field-kind enumerations, the numeric domain limits for every
// supported width, and the typed invariant-violation errors returned by the
// validated operation surface.
//
// Design goals:
//   - No default byte order; multi-byte operations must name one explicitly.
//   - Typed errors with stable categories (order/bounds/domain/integral).
//   - Small value types; no state, no allocation on the happy path.
//
// This package has no dependencies beyond the standard library.
package types

// Package types defines the error taxonomy and the representation constants
// shared by the std container packages.
//
// Design goals:
//   - Typed errors with stable categories (out-of-bounds, out-of-memory,
//     unwrap misuse) so callers branch on intent rather than text.
//   - Allocation failures are values; bounds violations are fatal
//     diagnostics raised as panics that still classify with KindOf.
//   - Representation constants (inline string capacity, growth factor) are
//     fixed per build and documented here rather than scattered.
package types

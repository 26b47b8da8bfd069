// Package transform provides the value-semantics Transform handle over the
// numerical backends in the engine package.
//
// A Transform owns exactly one backend. Copy is an O(1) aliasing copy; the
// backend is shared until a mutation, at which point the mutating handle
// clones a private backend first (copy-on-write). Every mutator follows the
// same order: ensure a private backend, then delegate.
//
// Typed facades such as Euler3D sit on top of the generic handle. They bind
// a small table of typed accessor closures against the concrete backend
// instance and rebind whenever the backend identity changes, including after
// copy-on-write. Calling a typed accessor while the current backend is not
// of the matching kind fails with a not_bound error.
package transform

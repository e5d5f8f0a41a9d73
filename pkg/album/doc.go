// Package album models pagination problem instances and their on-disk
// formats.
//
// An [Instance] captures one problem: a photo count, a page capacity, and a
// list of precedence constraints. Instances arrive as plain text (the
// classic "n m k" header format), TOML, or JSON; [Load] detects the format
// from the filename and validates the result, and [Instance.Graph] turns
// a validated instance into the solver's constraint graph.
//
// Validation is strict and front-loaded: a non-positive capacity is a
// configuration error, and constraint endpoints outside [1, n] are rejected
// before any graph is built, so malformed input can never corrupt a search.
package album

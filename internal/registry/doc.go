// Package registry resolves and validates the bundled reference data files:
// the per-ion stopping-power tables under defaults/<source>/ and the
// elements.json periodic-table lookup.
//
// Every operation resolves paths through an ordered chain of providers
// (installed data tree first, local development tree second) and re-derives
// validity on each call; nothing is cached and nothing on disk is mutated.
package registry

// Package aggregates defines domain-facing aggregate contracts.
//
// Contracts avoid persistence and transport details. Each one marks a write boundary
// whose invariants hold atomically.
package aggregates

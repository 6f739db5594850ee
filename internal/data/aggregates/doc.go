// Package aggregates implements the domain aggregate contracts on top of the table repos
// in internal/data/repos. Each operation runs in one transaction owned by the aggregate.
package aggregates

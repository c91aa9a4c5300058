// Package models defines the core domain models for Coalition.
//
// # Models
//
//   - Party: one entry of the seat catalog (the "entity" the search works on)
//   - Combination: a candidate coalition produced by the calculator
//   - Report: an exported coalition analysis kept in the local report log
//
// # Design Principles
//
// 1. **Immutable catalog**: parties are loaded once and never mutated
// 2. **IDs, not pointers**: combinations and reports reference parties by ID
// 3. **Derived values are recomputed**: seat totals always come from the catalog
package models

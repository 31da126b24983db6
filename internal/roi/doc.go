// Package roi computes region-of-interest slice ranges relative to the
// marked junctions and copies the matching files into the output layout.
//
// Ranges are derived with fixed offset arithmetic from two user-selected
// junction indices, bounds-checked against the slice stack, and processed
// independently: a region outside the stack is reported as skipped while the
// remaining regions still run. Only an I/O failure aborts a batch, and files
// copied before the failure are left in place.
package roi

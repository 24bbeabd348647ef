// Package input reads the two CSV preference files and populates the name
// registry and preference table for a matching run.
//
// Each file carries one side of the population: a header row with a name
// column, then one row per entity listing its ranked preference names, best
// first. Columns before the name column are ignored; cells are trimmed and
// empty cells skipped. The loader resolves preference names to indices
// itself; the match package never sees names inside rows.
package input

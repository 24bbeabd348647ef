// Package report renders a finished matching run as human-readable text.
//
// It reads the matching set and the name registry, resolving every index
// back to its name, and never mutates either. Two renderings exist: a
// styled table and a plain-text listing for non-interactive use.
package report

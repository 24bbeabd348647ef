// Package diagnostic accumulates problems found while loading input data.
//
// Loading is lenient where it can be: unknown preference names degrade to
// warnings and the offending entry is skipped, while cross-side name
// collisions are hard errors. The CLI decides how to render what was
// collected.
package diagnostic

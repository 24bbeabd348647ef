// Package match implements ranked bipartite matching between two disjoint
// populations, Bigs and Littles.
//
// Each side submits a ranked preference list over the other side. The engine
// produces a MatchingSet that pairs every matchable Big with an ordered set
// of Littles and reports the leftovers on both sides.
//
// Key types:
//   - Index[K]: dense, zero-based identifier scoped to one side
//   - Names: name/index bijections, one per side, with cross-side exclusivity
//   - PreferenceTable: per-side preference rows with rank lookup
//   - MatchingSet: the result aggregate built by a matching run
//
// Two algorithms are provided. MaximalMatching greedily follows each
// Little's own preference order with no capacity balancing. EvenMatching
// continues from that result, repeatedly shrinking the most loaded Big by
// moving its least preferred Little further down that Little's list.
//
// Acceptability is one-directional: a Big accepts a Little iff the Little
// appears anywhere in the Big's list. This is deliberately not Gale-Shapley
// deferred acceptance and the result carries no stability guarantee.
package match

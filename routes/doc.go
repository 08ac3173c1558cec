// Package routes finds the shortest and longest open route that visits every
// location of a small undirected distance graph exactly once, and the
// cheapest or dearest closed tour.
//
// Input lines have the form "London to Dublin = 464". Locations are indexed
// in order of first appearance.
//
// Two independent solvers are provided:
//
//   - Shortest / Longest drive the generic search engine over
//     (location, visited-bitmask) states. A virtual origin with zero-cost
//     edges to every location lets a single search try every start.
//   - HeldKarp is the classic O(n²·2ⁿ) bitmask dynamic programme. It solves
//     open paths and closed tours under either objective and is used to
//     cross-check the search results.
//
// Both are limited to MaxLocations locations.
package routes

// Package statespace is a small toolkit for solving puzzles that reduce to
// "shortest (or longest) path through an implicit state graph".
//
// The graph is never materialised: a puzzle supplies a start state, a
// successor function and a goal predicate, and the engine in package search
// discovers states on demand.
//
// Layout:
//
//	search/       generic engine: Search (min-cost or breadth-first), Longest, Explore
//	grid/         2D points, 4/8-neighbourhoods, rectangular ASCII maps
//	routes/       shortest/longest Hamiltonian routes, Held–Karp cross-check
//	elevator/     chip/generator transport with canonical states
//	cubicles/     favourite-number office maze
//	vault/        MD5-gated rooms, shortest path string and longest path
//	storagegrid/  moving data through a grid of storage nodes
//	ducts/        visiting every point of interest on an ASCII map
//	wizard/       least-mana duel via Dijkstra over battle states
//	assembunny/   register VM with toggling code and clock-signal search
//	internal/     logging, YAML config, puzzle registry and runner
//	cmd/aocsearch command-line front end
//
// Each search call is single-threaded and owns all of its state; the
// aocsearch command runs independent puzzles concurrently.
package statespace

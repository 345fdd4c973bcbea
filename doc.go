// Package netsim simulates random doubly weighted networks and finds the
// cheapest route between every pair of nodes.
//
// Every node carries a processing delay and every link a transmission
// delay. A route's cost is the sum of both along the way. Each simulation
// iteration draws a fresh G(n,p) network, enumerates every simple path for
// each ordered pair, and keeps the cheapest one.
//
// Layout:
//
//	core/         Graph with int IDs, vertex and edge weights, Path
//	builder/      G(n,p) generation, weight sampling, seeded random streams
//	bfs/          breadth-first traversal and connected components
//	paths/        explicit-stack simple-path enumeration
//	pathcost/     path pricing, minimum selection, Dijkstra oracle
//	sim/          iteration driver on ants worker pools
//	config/       YAML/TOML settings
//	logging/      zerolog setup
//	report/       per-iteration text records and Graphviz output
//	store/sqlite  result persistence
//
// The networksim command under cmd/ wires these together.
package netsim

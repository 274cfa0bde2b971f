// Package bellmanford computes single-source shortest paths with the
// Bellman-Ford algorithm and records every intermediate distance vector.
//
// # Overview
//
// [Run] labels the source 0 and every other node +Inf, then relaxes every
// edge of the graph in a fixed number of passes. The number of passes is
// always NodeCount()-1. A pass that changes nothing does not end the run
// early, so [Result.History] always holds exactly NodeCount() snapshots: the
// initial vector followed by one per pass. Replay tools rely on that length.
//
// After the last pass a verification sweep looks for an edge that could
// still be relaxed. Finding one means a negative cycle is reachable from the
// source; [Result.NegativeCycle] is set and the sweep stops. Distances and
// parents are reported as they stood, and are not meaningful shortest paths
// in that case. Negative cycles the source cannot reach are never reported.
//
// # Ordering
//
// Each pass visits nodes in the graph's order and each node's neighbors in
// stored order. Relaxation requires a strictly shorter distance, so when
// several paths tie, the first discovered keeps the parent pointer. Two runs
// over the same graph state produce identical results.
//
// # Results
//
//	res, err := bellmanford.Run(g, "home")
//	if err != nil {
//	    return err // ErrSourceNotFound
//	}
//	path, err := res.PathTo("park")
//
// [Result.PathTo] follows parent pointers and reports [ErrUnreachable] for
// nodes at +Inf and [ErrCycleInPath] when a negative cycle broke the chain.
// [Result.Relaxations] logs every relax step for step-by-step display.
package bellmanford

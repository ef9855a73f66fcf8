// Package ghs implements the Gallager–Humblet–Spira asynchronous distributed
// algorithm for computing the Minimum Spanning Tree of a connected weighted
// undirected graph.
//
// What:
//
//   - Every graph vertex runs as an independent node actor with a private
//     inbox; nodes communicate only by messages along incident edges and no
//     node ever sees the global graph.
//   - Nodes organize into fragments (subtrees of the MST under construction),
//     identified by a name (the weight of the core edge that created the
//     fragment) and a level. Each fragment searches for its minimum outgoing
//     edge with a broadcast/convergecast wave, then merges across it: a
//     fragment absorbs strictly lower-level fragments, and two equal-level
//     fragments joining over the same edge form a fragment one level higher.
//   - Run orchestrates a full in-process execution: one goroutine per node,
//     a Collector gathering adopted edges, and teardown on halt.
//
// Why it is subtle:
//
//   - Delivery is fully asynchronous; messages from different senders
//     interleave arbitrarily. A node may receive a question it cannot answer
//     yet (a TEST from a higher-level fragment, a CONNECT it cannot classify,
//     a core-edge REPORT while its own find is unfinished). Such messages are
//     postponed, not dropped: they re-enter the inbox behind strictly newer
//     traffic and are retried after the node has processed something that may
//     have changed its state. Liveness rests on that rule plus the level
//     ordering of fragments.
//
// Messages:
//
// Exactly seven variants (Connect, Initiate, Test, Accept, Reject, Report,
// ChangeRoot) form a closed set; dispatch is an exhaustive switch and an
// unknown kind aborts the run (protocol violation).
//
// Guarantees required from the transport (provided by the in-process fabric):
// per-directed-edge FIFO, no loss, no duplication. The algorithm itself has
// no timeouts and no retries.
//
// Error handling:
//
//   - Malformed topologies are rejected by Run before any node starts
//     (topology.Validate).
//   - Protocol invariant violations (REPORT on a non-branch edge, a negative
//     find count, an illegal channel transition) indicate an implementation
//     bug and abort via panic carrying the node's state dump.
//   - Tracing failures never affect the algorithm.
//
// Termination: the two endpoints of the final fragment's core edge both
// finish their find waves with no outgoing edge (best weight +∞); whichever
// processes the other's report first notifies the Collector, which publishes
// the MST edge set. Message complexity is the classic 5·N·log₂N + 2·E bound.
package ghs

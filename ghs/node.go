// SPDX-License-Identifier: MIT
// Package: distmst/ghs
//
// node.go — the per-vertex GHS state machine.
//
// Contract:
//   • All mutable node state is owned by the node's own goroutine; handlers
//     run to completion between dequeues and never block.
//   • Channel classification is monotone: Basic→Branch and Basic→Reject only
//     (setStatus enforces it).
//   • A handler either acts on a message or postpones it; after every acted
//     message the stash is flushed, because only acted messages can change
//     the state a postponed message is waiting on.
//   • Protocol invariant violations abort via panic with a full state dump:
//     they indicate an implementation bug, not a runtime condition.

package ghs

import (
	"fmt"
	"sort"
	"strings"
)

// node is one GHS actor. Neighbors are identified by opaque integer ids and
// reached only through the fabric; nodes never share memory.
type node struct {
	id      int
	weights map[int]int64 // neighbor id → edge weight
	order   []int         // neighbor ids, ascending by edge weight
	status  map[int]ChannelStatus

	state     NodeState
	level     int
	fragment  int64 // core edge weight; meaningful only after first Initiate
	inBranch  int
	bestEdge  int
	bestWt    int64
	testEdge  int
	findCount int

	inbox     *inbox
	fabric    *fabric
	collector *Collector
	tracer    Tracer
}

func newNode(id int, weights map[int]int64, f *fabric, c *Collector, tr Tracer, done chan struct{}) *node {
	n := &node{
		id:        id,
		weights:   weights,
		order:     make([]int, 0, len(weights)),
		status:    make(map[int]ChannelStatus, len(weights)),
		state:     StateSleeping,
		inBranch:  None,
		bestEdge:  None,
		bestWt:    Infinity,
		testEdge:  None,
		inbox:     newInbox(done),
		fabric:    f,
		collector: c,
		tracer:    tr,
	}
	for v := range weights {
		n.order = append(n.order, v)
		n.status[v] = Basic
	}
	sort.Slice(n.order, func(i, j int) bool {
		return weights[n.order[i]] < weights[n.order[j]]
	})

	return n
}

// run is the node's main loop: wake up once, then consume the inbox until
// the run is torn down. Each dequeued message is either acted upon or
// postponed; acting flushes the stash back behind newer arrivals.
func (n *node) run() {
	n.wakeup()
	for {
		env, ok := n.inbox.next()
		if !ok {
			return
		}
		n.tracer.Recv(n.id, env.from, env.msg)
		if n.dispatch(env) {
			n.inbox.flush()
		}
	}
}

// dispatch routes one message to its handler. Returns false iff the message
// was postponed.
func (n *node) dispatch(env envelope) bool {
	m, v := env.msg, env.from
	if _, known := n.weights[v]; !known {
		n.violate("%s from non-neighbor %d", m, v)
	}

	switch m.Kind {
	case KindConnect:
		return n.onConnect(m.Level, v)
	case KindInitiate:
		n.onInitiate(m.Level, m.Fragment, m.State, v)
	case KindTest:
		return n.onTest(m.Level, m.Fragment, v)
	case KindAccept:
		n.onAccept(v)
	case KindReject:
		n.onReject(v)
	case KindReport:
		return n.onReport(m.Weight, v)
	case KindChangeRoot:
		n.changeRoot()
	default:
		n.violate("unknown message kind %d", uint8(m.Kind))
	}

	return true
}

// wakeup starts the node as a level-0 singleton fragment: its minimum-weight
// incident edge is in every MST (cut property, distinct weights), so it is
// adopted outright and a merge is proposed across it.
func (n *node) wakeup() {
	n.tracer.Proc(n.id, "wakeup")

	e := n.order[0] // minimum-weight incident edge
	n.setStatus(e, Branch)
	n.collector.EdgeAdopted(n.id, e, n.weights[e])
	n.level = 0
	n.state = StateFound
	n.findCount = 0
	n.send(e, Message{Kind: KindConnect, Level: 0})
}

// test probes the cheapest still-unclassified incident edge, or reports if
// none is left.
func (n *node) test() {
	n.tracer.Proc(n.id, "test")

	for _, v := range n.order {
		if n.status[v] != Basic {
			continue
		}
		n.testEdge = v
		n.send(v, Message{Kind: KindTest, Level: n.level, Fragment: n.fragment})

		return
	}
	n.testEdge = None
	n.report()
}

// report sends the subtree minimum up the in-branch once all children have
// reported and no probe is outstanding; otherwise it is a no-op and will be
// re-run when the preconditions become true.
func (n *node) report() {
	n.tracer.Proc(n.id, "report")

	if n.findCount == 0 && n.testEdge == None {
		n.state = StateFound
		n.send(n.inBranch, Message{Kind: KindReport, Weight: n.bestWt})
	}
}

// changeRoot walks toward the fragment's minimum outgoing edge; the node
// adjacent to it issues the Connect and adopts the edge.
func (n *node) changeRoot() {
	n.tracer.Proc(n.id, "changeroot")

	if n.bestEdge == None {
		n.violate("changeroot with no best edge")
	}
	if n.status[n.bestEdge] == Branch {
		n.send(n.bestEdge, Message{Kind: KindChangeRoot})

		return
	}
	n.send(n.bestEdge, Message{Kind: KindConnect, Level: n.level})
	n.setStatus(n.bestEdge, Branch)
	n.collector.EdgeAdopted(n.id, n.bestEdge, n.weights[n.bestEdge])
}

// onConnect handles a merge proposal from v carrying v's fragment level.
func (n *node) onConnect(level int, v int) bool {
	if n.state == StateSleeping {
		// The runtime wakes every node before delivery starts; a delayed
		// start must still not break the protocol.
		n.wakeup()
	}

	switch {
	case level < n.level:
		// Absorb v's strictly lower-level fragment into ours.
		n.setStatus(v, Branch)
		n.collector.EdgeAdopted(n.id, v, n.weights[v])
		n.send(v, Message{Kind: KindInitiate, Level: n.level, Fragment: n.fragment, State: n.state})
		if n.state == StateFind {
			n.findCount++
		}
	case n.status[v] == Basic:
		// Equal or higher level on an unclassified edge: we cannot tell yet
		// whether v's fragment is ours, nor merge before our level rises.
		return n.defer_(Message{Kind: KindConnect, Level: level}, v)
	default:
		// v connected across an edge we also branched: symmetric merge at
		// equal level. The new fragment is named by the connecting edge and
		// its level rises by one.
		n.send(v, Message{Kind: KindInitiate, Level: n.level + 1, Fragment: n.weights[v], State: StateFind})
	}

	return true
}

// onInitiate adopts the fragment identity broadcast by v and forwards it
// down every other branch edge; a find-wave Initiate also starts the local
// probe. After the wave every node in the fragment shares level and name.
func (n *node) onInitiate(level int, fragment int64, state NodeState, v int) {
	n.level = level
	n.fragment = fragment
	n.state = state
	n.inBranch = v
	n.bestEdge = None
	n.bestWt = Infinity

	for _, w := range n.order {
		if w == v || n.status[w] != Branch {
			continue
		}
		n.send(w, Message{Kind: KindInitiate, Level: level, Fragment: fragment, State: state})
		if state == StateFind {
			n.findCount++
		}
	}
	if state == StateFind {
		n.test()
	}
}

// onTest answers v's probe of the shared edge.
func (n *node) onTest(level int, fragment int64, v int) bool {
	if n.state == StateSleeping {
		n.wakeup()
	}
	if level > n.level {
		// We may still rise to v's level; answering now could claim
		// different fragments that are about to become one.
		return n.defer_(Message{Kind: KindTest, Level: level, Fragment: fragment}, v)
	}
	if fragment != n.fragment {
		// Different fragment: the edge is outgoing for v. The channel is
		// deliberately NOT classified here - if v's fragment merges into
		// ours later, this may still become our minimum outgoing edge.
		n.send(v, Message{Kind: KindAccept})

		return true
	}

	// Same fragment: the edge is internal, never part of the MST.
	if n.status[v] == Basic {
		n.setStatus(v, Reject)
	}
	if n.testEdge != v {
		n.send(v, Message{Kind: KindReject})
	} else {
		// We were about to probe the same edge from this side; skip the
		// redundant Reject exchange and move to the next candidate.
		n.test()
	}

	return true
}

// onAccept records v's edge as an MOE candidate and tries to report.
func (n *node) onAccept(v int) {
	n.testEdge = None
	if n.weights[v] < n.bestWt {
		n.bestEdge = v
		n.bestWt = n.weights[v]
	}
	n.report()
}

// onReject marks the probed edge internal and probes the next candidate.
func (n *node) onReject(v int) {
	if n.status[v] == Basic {
		n.setStatus(v, Reject)
	}
	n.test()
}

// onReport merges a child's subtree minimum, or resolves the find wave when
// the report arrives over the core edge.
func (n *node) onReport(weight int64, v int) bool {
	if v != n.inBranch {
		// Child report: one outstanding answer less.
		if n.status[v] != Branch {
			n.violate("REPORT from %d on %s channel", v, n.status[v])
		}
		n.findCount--
		if n.findCount < 0 {
			n.violate("find count went negative")
		}
		if weight < n.bestWt {
			n.bestWt = weight
			n.bestEdge = v
		}
		n.report()

		return true
	}

	// Report from the other side of the core edge.
	if n.state == StateFind {
		// Our own subtree is not resolved; the comparison must wait.
		return n.defer_(Message{Kind: KindReport, Weight: weight}, v)
	}
	if weight > n.bestWt {
		// Our side holds the fragment's minimum outgoing edge.
		n.changeRoot()

		return true
	}
	if weight == Infinity {
		// Both sides found no outgoing edge: the fragment spans the whole
		// graph and the MST is complete.
		n.collector.Halt(n.id)
	}
	// Otherwise the other side holds the minimum and drives the merge.

	return true
}

// send emits m along the edge to neighbor v.
func (n *node) send(v int, m Message) {
	if v == None {
		n.violate("send %s along absent edge", m)
	}
	n.tracer.Send(n.id, v, m)
	n.fabric.send(n.id, v, m)
}

// defer_ postpones m from v to the stash. Always returns false so handlers
// can tail-call it.
func (n *node) defer_(m Message, v int) bool {
	n.tracer.Postpone(n.id, v, m)
	n.inbox.postpone(envelope{msg: m, from: v})

	return false
}

// setStatus applies a channel transition, enforcing monotonicity: once a
// channel leaves Basic it never changes again.
func (n *node) setStatus(v int, s ChannelStatus) {
	cur, known := n.status[v]
	if !known {
		n.violate("status change on non-neighbor %d", v)
	}
	if cur == s {
		return
	}
	if cur != Basic {
		n.violate("illegal channel transition %s→%s on edge to %d", cur, s, v)
	}
	n.status[v] = s
}

// violate aborts the run on a broken protocol invariant, exposing the node
// and inbox state for diagnosis.
func (n *node) violate(format string, args ...interface{}) {
	panic(fmt.Sprintf("ghs: protocol violation at node %d: %s\n%s",
		n.id, fmt.Sprintf(format, args...), n.dump()))
}

// dump renders the node state for violation reports.
func (n *node) dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  state=%s level=%d fragment=%d\n", n.state, n.level, n.fragment)
	fmt.Fprintf(&b, "  inBranch=%d bestEdge=%d bestWt=%d testEdge=%d findCount=%d\n",
		n.inBranch, n.bestEdge, n.bestWt, n.testEdge, n.findCount)
	fmt.Fprintf(&b, "  pending=%d\n", n.inbox.pending())
	for _, v := range n.order {
		fmt.Fprintf(&b, "  edge→%d w=%d %s\n", v, n.weights[v], n.status[v])
	}

	return b.String()
}

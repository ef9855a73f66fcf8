// Package ghs tracing capability.
//
// Tracing is injected at construction and defaults to a no-op; the verbose
// operator surface supplies the zerolog implementation. Tracer calls sit on
// every hot path, so implementations must be non-blocking and must never
// fail into the algorithm.
package ghs

import "github.com/rs/zerolog"

// Tracer observes one run for pedagogical traceability: every send, receive,
// postponement, internal procedure invocation, adoption and halt.
type Tracer interface {
	// Send is invoked just before node sends m along the edge to `to`.
	Send(node, to int, m Message)

	// Recv is invoked when node dequeues m received from `from`.
	Recv(node, from int, m Message)

	// Postpone is invoked when node defers m from `from` for a later retry.
	Postpone(node, from int, m Message)

	// Proc is invoked on the internal procedures: wakeup, test, report,
	// change-root.
	Proc(node int, name string)

	// Adopted is invoked by the collector on the first announcement of {u,v}.
	Adopted(u, v int, w int64)

	// Halted is invoked by the collector when node detects termination.
	Halted(node int)
}

// NopTracer discards every event. It is the default.
type NopTracer struct{}

func (NopTracer) Send(int, int, Message)     {}
func (NopTracer) Recv(int, int, Message)     {}
func (NopTracer) Postpone(int, int, Message) {}
func (NopTracer) Proc(int, string)           {}
func (NopTracer) Adopted(int, int, int64)    {}
func (NopTracer) Halted(int)                 {}

// LogTracer writes every event to a zerolog logger: message and procedure
// events at debug level, adoption and halt at info level.
type LogTracer struct {
	log zerolog.Logger
}

// NewLogTracer wraps log in a Tracer.
func NewLogTracer(log zerolog.Logger) LogTracer {
	return LogTracer{log: log}
}

func (t LogTracer) Send(node, to int, m Message) {
	t.log.Debug().Int("node", node).Int("to", to).Stringer("msg", m).Msg("send")
}

func (t LogTracer) Recv(node, from int, m Message) {
	t.log.Debug().Int("node", node).Int("from", from).Stringer("msg", m).Msg("recv")
}

func (t LogTracer) Postpone(node, from int, m Message) {
	t.log.Debug().Int("node", node).Int("from", from).Stringer("msg", m).Msg("postpone")
}

func (t LogTracer) Proc(node int, name string) {
	t.log.Debug().Int("node", node).Str("proc", name).Msg("proc")
}

func (t LogTracer) Adopted(u, v int, w int64) {
	t.log.Info().Int("u", u).Int("v", v).Int64("weight", w).Msg("edge adopted")
}

func (t LogTracer) Halted(node int) {
	t.log.Info().Int("node", node).Msg("halt")
}

// SPDX-License-Identifier: MIT
// Package: distmst/ghs
//
// message.go — the seven GHS message variants as one tagged type.
//
// Contract:
//   • The Kind set is closed; handlers dispatch with an exhaustive switch.
//   • Payload fields are meaningful only for the kinds that carry them
//     (Level for Connect/Initiate/Test, Fragment for Initiate/Test,
//     State for Initiate, Weight for Report); the rest stay zero.
//   • Messages are values: sending a Message can never alias node state.

package ghs

import "fmt"

// Kind tags a Message variant.
type Kind uint8

const (
	// KindConnect proposes a merge across the carrying edge. Payload: Level.
	KindConnect Kind = iota

	// KindInitiate broadcasts a new fragment identity down the fragment tree
	// and, when State == StateFind, starts a find wave.
	// Payload: Level, Fragment, State.
	KindInitiate

	// KindTest probes whether the carrying edge leaves the sender's fragment.
	// Payload: Level, Fragment.
	KindTest

	// KindAccept answers a Test: the edge leads to a different fragment.
	KindAccept

	// KindReject answers a Test: both endpoints are in the same fragment.
	KindReject

	// KindReport carries a subtree's minimum outgoing weight up the fragment
	// tree. Payload: Weight.
	KindReport

	// KindChangeRoot walks toward the fragment's minimum outgoing edge; its
	// final recipient issues the Connect.
	KindChangeRoot
)

// String names the kind for traces and violation dumps.
func (k Kind) String() string {
	switch k {
	case KindConnect:
		return "CONNECT"
	case KindInitiate:
		return "INITIATE"
	case KindTest:
		return "TEST"
	case KindAccept:
		return "ACCEPT"
	case KindReject:
		return "REJECT"
	case KindReport:
		return "REPORT"
	case KindChangeRoot:
		return "CHANGEROOT"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Message is one GHS protocol message. The zero Message is not valid.
type Message struct {
	// Kind selects the variant.
	Kind Kind

	// Level is the sender's fragment level (Connect, Initiate, Test).
	Level int

	// Fragment is the sender's fragment name (Initiate, Test).
	Fragment int64

	// State is the node state the receiver must adopt (Initiate).
	State NodeState

	// Weight is the reported minimum outgoing weight (Report);
	// Infinity when the subtree has no outgoing edge.
	Weight int64
}

// String renders the message with only its meaningful payload fields.
func (m Message) String() string {
	switch m.Kind {
	case KindConnect:
		return fmt.Sprintf("CONNECT(L=%d)", m.Level)
	case KindInitiate:
		return fmt.Sprintf("INITIATE(L=%d, F=%d, S=%s)", m.Level, m.Fragment, m.State)
	case KindTest:
		return fmt.Sprintf("TEST(L=%d, F=%d)", m.Level, m.Fragment)
	case KindReport:
		if m.Weight == Infinity {
			return "REPORT(W=+inf)"
		}
		return fmt.Sprintf("REPORT(W=%d)", m.Weight)
	default:
		return m.Kind.String()
	}
}

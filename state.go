// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

// State is the end-of-file and push state of a buffer.
//
// The numeric values are load-bearing: every producer-side transition
// increases the value and every consumer-side transition decreases it,
// which lets [Trip] fold the state into its wrapping sum.
type State uint8

const (
	// StateOpen is the initial state: streaming normally.
	StateOpen State = 0
	// StatePush indicates the producer requested an expedited flush.
	StatePush State = 1
	// StateClosed is a clean EOF that the consumer has acknowledged.
	StateClosed State = 2
	// StateClosing is a clean EOF not yet acknowledged by the consumer.
	StateClosing State = 3
	// StateAborted is an abnormal EOF that the consumer has acknowledged.
	StateAborted State = 4
	// StateAborting is an abnormal EOF not yet acknowledged by the consumer.
	StateAborting State = 5
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StatePush:
		return "Push"
	case StateClosed:
		return "Closed"
	case StateClosing:
		return "Closing"
	case StateAborted:
		return "Aborted"
	case StateAborting:
		return "Aborting"
	}
	return "Invalid"
}

// eof reports whether an EOF has been signalled, acknowledged or not.
func (s State) eof() bool { return s >= StateClosed }

// aborted reports whether the EOF, if any, is abnormal.
func (s State) aborted() bool { return s == StateAborting || s == StateAborted }

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf_test

import (
	"testing"

	"code.hybscloud.com/pbuf"
)

func TestStateString(t *testing.T) {
	for _, tt := range []struct {
		state pbuf.State
		want  string
	}{
		{pbuf.StateOpen, "Open"},
		{pbuf.StatePush, "Push"},
		{pbuf.StateClosed, "Closed"},
		{pbuf.StateClosing, "Closing"},
		{pbuf.StateAborted, "Aborted"},
		{pbuf.StateAborting, "Aborting"},
		{pbuf.State(9), "Invalid"},
	} {
		if got := tt.state.String(); got != tt.want {
			t.Fatalf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

// Producer transitions raise the state value and consumer transitions
// lower it. Trip depends on this ordering to fold the state into its
// wrapping sum.
func TestStateOrdering(t *testing.T) {
	if !(pbuf.StateOpen < pbuf.StatePush) {
		t.Fatalf("Push does not raise the state value")
	}
	if !(pbuf.StatePush > pbuf.StateOpen) || !(pbuf.StateClosing > pbuf.StateClosed) {
		t.Fatalf("consume transitions do not lower the state value")
	}
	if !(pbuf.StateAborting > pbuf.StateAborted) {
		t.Fatalf("abort acknowledge does not lower the state value")
	}
	if !(pbuf.StateClosing > pbuf.StateOpen) || !(pbuf.StateAborting > pbuf.StatePush) {
		t.Fatalf("EOF does not raise the state value")
	}
}

func TestStateTransitions(t *testing.T) {
	b := pbuf.New[byte]()
	rd, wr := b.Rd(), b.Wr()

	if got := b.State(); got != pbuf.StateOpen {
		t.Fatalf("initial state %v, want Open", got)
	}
	wr.Push()
	if got := b.State(); got != pbuf.StatePush {
		t.Fatalf("state %v after push, want Push", got)
	}
	if !rd.ConsumePush() {
		t.Fatalf("no push pending")
	}
	if got := b.State(); got != pbuf.StateOpen {
		t.Fatalf("state %v after consuming push, want Open", got)
	}

	wr.Close()
	if got := b.State(); got != pbuf.StateClosing {
		t.Fatalf("state %v after close, want Closing", got)
	}
	if !rd.ConsumeEOF() {
		t.Fatalf("no EOF pending")
	}
	if got := b.State(); got != pbuf.StateClosed {
		t.Fatalf("state %v after consuming EOF, want Closed", got)
	}
}

func TestStateAbortTransitions(t *testing.T) {
	b := pbuf.New[byte]()
	rd, wr := b.Rd(), b.Wr()

	wr.Abort()
	if got := b.State(); got != pbuf.StateAborting {
		t.Fatalf("state %v after abort, want Aborting", got)
	}
	if !rd.IsAborted() {
		t.Fatalf("abort not visible before acknowledge")
	}
	if !rd.ConsumeEOF() {
		t.Fatalf("no EOF pending")
	}
	if got := b.State(); got != pbuf.StateAborted {
		t.Fatalf("state %v after consuming abort, want Aborted", got)
	}
	if !rd.IsAborted() {
		t.Fatalf("abort not visible after acknowledge")
	}
	if !b.IsDone() {
		t.Fatalf("empty aborted buffer not done")
	}
}

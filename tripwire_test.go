// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf_test

import (
	"testing"

	"code.hybscloud.com/pbuf"
)

func TestTripwireProducerOps(t *testing.T) {
	b := pbuf.New[byte]()
	wr := b.Wr()

	trip := b.Tripwire()
	wr.Append([]byte("ab"))
	if !b.IsTripped(trip) {
		t.Fatalf("append did not trip")
	}

	trip = b.Tripwire()
	wr.Push()
	if !b.IsTripped(trip) {
		t.Fatalf("push did not trip")
	}

	trip = b.Tripwire()
	wr.Close()
	if !b.IsTripped(trip) {
		t.Fatalf("close did not trip")
	}
}

func TestTripwireConsumerOps(t *testing.T) {
	b := pbuf.New[byte]()
	rd, wr := b.Rd(), b.Wr()
	wr.Append([]byte("abc"))
	wr.Close()

	trip := b.Tripwire()
	rd.Consume(1)
	if !b.IsTripped(trip) {
		t.Fatalf("consume did not trip")
	}

	trip = b.Tripwire()
	rd.ConsumeEOF()
	if !b.IsTripped(trip) {
		t.Fatalf("EOF acknowledge did not trip")
	}
}

func TestTripwireAbortWithData(t *testing.T) {
	b := pbuf.New[byte]()
	b.Wr().Append([]byte("abc"))

	// Abort keeps the unread data in place, so only the state
	// component moves.
	trip := b.Tripwire()
	b.Wr().Abort()
	if !b.IsTripped(trip) {
		t.Fatalf("abort did not trip")
	}
}

func TestTripwireIdle(t *testing.T) {
	b := pbuf.New[byte]()
	b.Wr().Append([]byte("ab"))

	trip := b.Tripwire()
	_ = b.Rd().Data()
	_ = b.Len()
	_ = b.State()
	if b.IsTripped(trip) {
		t.Fatalf("tripped without an operation")
	}
}

func TestTripwireViewsAgree(t *testing.T) {
	b := pbuf.New[byte]()
	b.Wr().Append([]byte("ab"))

	if b.Tripwire() != b.Rd().Tripwire() || b.Tripwire() != b.Wr().Tripwire() {
		t.Fatalf("views disagree on the trip value")
	}
	trip := b.Rd().Tripwire()
	b.Wr().Push()
	if !b.Rd().IsTripped(trip) || !b.Wr().IsTripped(trip) {
		t.Fatalf("views disagree on tripping")
	}
}

// A span mixing producer and consumer activity can cancel out: the trip
// is a wrapping sum, not a version counter. Callers own exactly one
// role per watched span, as a progress detector requires.
func TestTripwireMixedSpanCancels(t *testing.T) {
	b := pbuf.New[byte]()
	rd, wr := b.Rd(), b.Wr()
	wr.Append([]byte("ab"))

	trip := b.Tripwire()
	wr.Append([]byte("xy"))
	rd.Consume(2)
	if b.IsTripped(trip) {
		t.Fatalf("balanced produce and consume reported as progress")
	}
}

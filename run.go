// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

import (
	"code.hybscloud.com/iox"
)

// Status is the outcome vocabulary for loops driving a network of
// components over pipe buffers.
type Status uint32

const (
	// StatusOkay means the last pass made progress.
	StatusOkay Status = iota
	// StatusWait means the network is quiescent and needs more input
	// from outside before anything can progress.
	StatusWait
	// StatusBlocked means the network is quiescent because an output
	// cannot accept more data right now.
	StatusBlocked
	// StatusDone means execution is complete: EOF has been consumed on
	// the inputs of all sink components.
	StatusDone
	// StatusHung means no progress is possible although execution is
	// not complete, due to a misbehaving component. Not all hangs are
	// detectable: a component waiting for output space that will never
	// be enough looks, from outside, like one waiting for more input.
	StatusHung
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOkay:
		return "Okay"
	case StatusWait:
		return "Wait"
	case StatusBlocked:
		return "Blocked"
	case StatusDone:
		return "Done"
	case StatusHung:
		return "Hung"
	}
	return "Invalid"
}

// Step is one component's processing entry point: called repeatedly by
// a driving loop, it consumes and produces whatever it can and reports
// whether it made progress. Components without a progress report are
// wrapped with [Track].
type Step func() bool

// Sweep calls every step once, in order, and reports whether any made
// progress. One sweep is a single scheduling pass over the network;
// data produced by an earlier step is visible to later ones in the
// same pass.
func Sweep(steps ...Step) bool {
	progress := false
	for _, step := range steps {
		if step() {
			progress = true
		}
	}
	return progress
}

// Run sweeps the steps until a full pass makes no progress, then
// reports [StatusDone] when done returns true and [StatusWait]
// otherwise. Run never waits: quiescence hands control back to the
// caller, which owns the decision of how to obtain more input. A nil
// done always yields StatusWait.
func Run(done func() bool, steps ...Step) Status {
	for Sweep(steps...) {
	}
	if done != nil && done() {
		return StatusDone
	}
	return StatusWait
}

// RunWait sweeps the steps until done reports true, waiting with
// adaptive backoff whenever a pass makes no progress. It suits
// networks whose steps pull from external non-blocking sources that
// will eventually deliver. A network that can no longer progress and
// never satisfies done keeps waiting; detecting such hangs is the
// caller's business, per [StatusHung].
func RunWait(done func() bool, steps ...Step) {
	var bo iox.Backoff
	for !done() {
		if Sweep(steps...) {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
}

// Track wraps a component that does not report progress itself,
// deriving the report from tripwires over the buffers the component
// touches. Valid under the [Trip] conditions: during one call the
// component must act on each listed buffer as only one side, producer
// or consumer.
func Track[T any](proc func(), bufs ...*Buffer[T]) Step {
	trips := make([]Trip, len(bufs))
	return func() bool {
		for i, b := range bufs {
			trips[i] = b.Tripwire()
		}
		proc()
		for i, b := range bufs {
			if b.IsTripped(trips[i]) {
				return true
			}
		}
		return false
	}
}

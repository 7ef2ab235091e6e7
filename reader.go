// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

// Reader is the consumer view of a [Buffer]. It exposes only the
// operations a consumer is allowed to perform: inspecting and
// consuming unread data and acknowledging push and EOF indications.
// Copying a Reader costs one pointer.
type Reader[T any] struct {
	b *Buffer[T]
}

// Tripwire captures the buffer's current [Trip] value.
func (r Reader[T]) Tripwire() Trip {
	return r.b.Tripwire()
}

// IsTripped reports whether the buffer has changed since trip was
// captured. See [Trip] for the validity conditions.
func (r Reader[T]) IsTripped(trip Trip) bool {
	return r.b.IsTripped(trip)
}

// Data returns the unread region of the buffer without copying. The
// consumer may modify elements in place, for example to decrypt them,
// before consuming. The slice is valid until the next producer reserve
// or engine reset; processed elements are released with
// [Reader.Consume].
func (r Reader[T]) Data() []T {
	return r.b.data[r.b.rd:r.b.wr]
}

// Len returns the number of unread elements.
func (r Reader[T]) Len() int {
	return r.b.Len()
}

// IsEmpty reports whether there are no unread elements.
func (r Reader[T]) IsEmpty() bool {
	return r.b.IsEmpty()
}

// Consume discards the first n unread elements. They are no longer
// visible through this view. Panics if n exceeds the unread length.
func (r Reader[T]) Consume(n int) {
	b := r.b
	if n < 0 {
		panic("pbuf: negative consume length")
	}
	if n > b.wr-b.rd {
		panic("pbuf: consume past end of data")
	}
	b.rd += n
	b.reclaim()
}

// ConsumePush observes and clears a pending push request. Reports true
// when a push was pending.
func (r Reader[T]) ConsumePush() bool {
	if r.b.state == StatePush {
		r.b.state = StateOpen
		return true
	}
	return false
}

// ConsumeEOF acknowledges a pending EOF, turning Closing into Closed
// and Aborting into Aborted. Reports true when an EOF was pending and
// not yet acknowledged; the kind consumed can be checked afterwards
// with [Reader.IsAborted].
func (r Reader[T]) ConsumeEOF() bool {
	switch r.b.state {
	case StateClosing:
		r.b.state = StateClosed
		return true
	case StateAborting:
		r.b.state = StateAborted
		return true
	}
	return false
}

// HasPendingEOF reports whether an EOF is waiting to be acknowledged
// (state Closing or Aborting).
func (r Reader[T]) HasPendingEOF() bool {
	return r.b.state == StateClosing || r.b.state == StateAborting
}

// IsEOF reports whether the producer has signalled EOF, acknowledged
// or not. Whatever unread data remains is the final data of the
// stream.
func (r Reader[T]) IsEOF() bool {
	return r.b.state.eof()
}

// IsAborted reports whether the stream was aborted by the producer
// (state Aborting or Aborted).
func (r Reader[T]) IsAborted() bool {
	return r.b.state.aborted()
}

// IsDone reports whether processing on this buffer is complete, as
// [Buffer.IsDone].
func (r Reader[T]) IsDone() bool {
	return r.b.IsDone()
}

// State returns the current EOF/push state.
func (r Reader[T]) State() State {
	return r.b.state
}

// Forward moves all unread data to dst in one call, along with any
// pending push or EOF indication: an abort forwards as an abort, a
// close as a close. Relay components use this instead of a copy loop.
// No-op when dst has already signalled EOF. Reports elements moved.
//
// Panics if dst is the same buffer, or like [Writer.Space] when dst
// cannot hold the data.
func (r Reader[T]) Forward(dst Writer[T]) int {
	if r.b == dst.b {
		panic("pbuf: forward to the same buffer")
	}
	if dst.IsEOF() {
		return 0
	}
	data := r.Data()
	n := len(data)
	copy(dst.Space(n), data)
	dst.Commit(n)
	r.Consume(n)
	if r.ConsumePush() {
		dst.Push()
	}
	if r.ConsumeEOF() {
		if r.IsAborted() {
			dst.Abort()
		} else {
			dst.Close()
		}
	}
	return n
}

// ForwardN moves up to n unread elements to dst without forwarding
// push or EOF indications, for rate-limited relays. No-op when dst has
// already signalled EOF. Reports elements moved.
//
// Panics if dst is the same buffer.
func (r Reader[T]) ForwardN(dst Writer[T], n int) int {
	if r.b == dst.b {
		panic("pbuf: forward to the same buffer")
	}
	if n < 0 {
		panic("pbuf: negative forward length")
	}
	if dst.IsEOF() {
		return 0
	}
	data := r.Data()
	n = min(n, len(data))
	copy(dst.Space(n), data[:n])
	dst.Commit(n)
	r.Consume(n)
	return n
}

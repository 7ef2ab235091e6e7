// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

// Writer is the producer view of a [Buffer]. It exposes only the
// operations a producer is allowed to perform: reserving free space,
// committing written data and signalling push or EOF. Copying a
// Writer costs one pointer.
//
// Reserved space returned by the Space variants must be committed
// before any other operation that may compact or grow the buffer, or
// the slice may no longer alias the storage.
type Writer[T any] struct {
	b *Buffer[T]
}

// Tripwire captures the buffer's current [Trip] value.
func (w Writer[T]) Tripwire() Trip {
	return w.b.Tripwire()
}

// IsTripped reports whether the buffer has changed since trip was
// captured. See [Trip] for the validity conditions.
func (w Writer[T]) IsTripped(trip Trip) bool {
	return w.b.IsTripped(trip)
}

// Space reserves exactly n contiguous elements of free space for the
// caller to fill, compacting or growing the storage as required. The
// returned slice is not zeroed and may expose elements previously
// written to the pipe; written data counts as buffer content only once
// passed to [Writer.Commit].
//
// Panics when the capacity policy cannot satisfy n. A panic here means
// the glue code mis-sized a fixed buffer for the data flowing through
// it; components that handle backpressure themselves use
// [Writer.TrySpace] or [Writer.SpaceUpTo] instead.
func (w Writer[T]) Space(n int) []T {
	b := w.b
	if n < 0 {
		panic("pbuf: negative reserve")
	}
	b.reclaim()
	if n > len(b.data)-b.wr && !b.makeSpace(n) {
		panic("pbuf: reserve exceeds buffer capacity")
	}
	return b.data[b.wr : b.wr+n]
}

// TrySpace reserves exactly n contiguous elements like [Writer.Space],
// but reports failure instead of panicking when the capacity policy
// cannot satisfy n.
func (w Writer[T]) TrySpace(n int) ([]T, bool) {
	b := w.b
	if n < 0 {
		panic("pbuf: negative reserve")
	}
	b.reclaim()
	if n > len(b.data)-b.wr && !b.makeSpace(n) {
		return nil, false
	}
	return b.data[b.wr : b.wr+n], true
}

// SpaceUpTo reserves as much of n as the capacity policy allows,
// possibly returning a shorter or empty slice. An unbounded buffer
// always grants the full request.
func (w Writer[T]) SpaceUpTo(n int) []T {
	b := w.b
	if n < 0 {
		panic("pbuf: negative reserve")
	}
	b.reclaim()
	grant := n
	if b.limit >= 0 {
		grant = min(grant, b.limit-b.Len())
	}
	if grant <= 0 {
		return nil
	}
	if grant > len(b.data)-b.wr {
		b.makeSpace(grant)
	}
	return b.data[b.wr : b.wr+grant]
}

// SpaceAll returns the entire free region of the current storage after
// compaction, without growing it. On a fixed buffer this is all space
// the consumer has freed up; on a growable buffer it may be empty.
func (w Writer[T]) SpaceAll() []T {
	b := w.b
	if b.rd > 0 {
		copy(b.data, b.data[b.rd:b.wr])
		b.wr -= b.rd
		b.rd = 0
	}
	return b.data[b.wr:]
}

// Commit appends the first n elements of the most recently reserved
// space to the buffer content. The data should have been written to
// the start of the slice returned by the reserve call immediately
// before.
//
// Panics if the buffer has been closed or aborted. May panic if n
// exceeds the space that was reserved: overruns are detected only
// when they extend past the end of the storage.
func (w Writer[T]) Commit(n int) {
	b := w.b
	if b.state.eof() {
		panic("pbuf: commit after close or abort")
	}
	if n < 0 {
		panic("pbuf: negative commit length")
	}
	// Subtracted comparison: wr+n can wrap for n near MaxInt.
	if n > len(b.data)-b.wr {
		panic("pbuf: commit past reserved space")
	}
	b.wr += n
}

// Append copies src into the buffer, reserving and committing in one
// call. Panics like [Writer.Space] when the capacity policy cannot
// hold src, and like [Writer.Commit] after EOF.
func (w Writer[T]) Append(src []T) {
	copy(w.Space(len(src)), src)
	w.Commit(len(src))
}

// TryAppend copies as much of src as the capacity policy allows and
// reports how many elements were written. Panics after EOF.
func (w Writer[T]) TryAppend(src []T) int {
	n := copy(w.SpaceUpTo(len(src)), src)
	w.Commit(n)
	return n
}

// WriteWith reserves n elements, passes them to fn and commits the
// count fn reports. Combining the reserve and the commit in one call
// keeps the caller from touching the buffer in between, which could
// move the reserved window. The count is committed even when fn also
// returns an error, matching [io.Reader] implementations that return
// data together with an error.
//
// Panics if fn reports a negative count or more than it was given.
func (w Writer[T]) WriteWith(n int, fn func([]T) (int, error)) (int, error) {
	buf := w.Space(n)
	got, err := fn(buf)
	if got < 0 {
		panic("pbuf: write callback reported negative count")
	}
	if got > len(buf) {
		panic("pbuf: write callback reported more than it was given")
	}
	w.Commit(got)
	return got, err
}

// Push requests an expedited flush of the buffered data. The consumer
// observes and clears the request via [Reader.ConsumePush]. No-op
// unless the state is Open.
func (w Writer[T]) Push() {
	if w.b.state == StateOpen {
		w.b.state = StatePush
	}
}

// Close signals a clean EOF: the unread data, if any, is the complete
// final data of the stream. Reports whether a transition occurred;
// once any EOF has been signalled, further Close or Abort calls are
// no-ops reporting false, so a late close racing an abort deep in a
// pipeline cannot fail or change the recorded EOF kind.
func (w Writer[T]) Close() bool {
	if w.b.state.eof() {
		return false
	}
	w.b.state = StateClosing
	return true
}

// Abort signals EOF after a failure: the unread data may be
// incomplete. It stays readable; [Buffer.IsDone] does not require it
// to be drained. Reports whether a transition occurred, with the same
// idempotency as [Writer.Close].
func (w Writer[T]) Abort() bool {
	if w.b.state.eof() {
		return false
	}
	w.b.state = StateAborting
	return true
}

// IsEOF reports whether Close or Abort has already been called. No
// data may be committed after EOF.
func (w Writer[T]) IsEOF() bool {
	return w.b.state.eof()
}

// Free returns the number of elements that may still be appended
// before the capacity bound is reached. ok is false when the buffer is
// unbounded. A component producing into a fixed buffer sizes its next
// step of work with this, consuming only enough input to generate
// output that fits.
func (w Writer[T]) Free() (n int, ok bool) {
	if w.b.limit < 0 {
		return 0, false
	}
	return w.b.limit - w.b.Len(), true
}

// IsFull reports whether the capacity bound leaves no free space.
// Always false on an unbounded buffer.
func (w Writer[T]) IsFull() bool {
	return w.b.limit >= 0 && w.b.Len() >= w.b.limit
}

// Capacity returns the buffer's promised maximum, as
// [Buffer.Capacity].
func (w Writer[T]) Capacity() (n int, ok bool) {
	return w.b.Capacity()
}

// ExceedsLimit reports whether more than limit elements are buffered.
// Producers protecting against unbounded growth throttle themselves
// with this instead of inspecting consumer-side state.
func (w Writer[T]) ExceedsLimit(limit int) bool {
	return w.b.Len() > limit
}

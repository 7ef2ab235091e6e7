// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

// Buffer is a contiguous pipe buffer shared between one producer and
// one consumer running on the same goroutine.
//
// The storage is divided by two cursors: [0,rd) holds already-consumed
// elements awaiting discard, [rd,wr) holds unread data and [wr,len)
// is free space. Unread data is always contiguous, so consumers parse
// in place without copying. rd <= wr <= len(data) at all times.
//
// The producer side is driven through [Buffer.Wr] and the consumer
// side through [Buffer.Rd]. The two views expose disjoint operation
// sets; code holding only one of them cannot disturb the other role's
// cursors. Nothing is locked and nothing blocks: a Buffer must not be
// shared between goroutines while in use.
//
// The zero value is not ready for use; construct with [New],
// [NewSize], [NewLimit], [NewFixed] or [NewStatic].
type Buffer[T any] struct {
	data   []T
	rd     int
	wr     int
	state  State
	fixed  bool
	limit  int
	serial Serial
}

// New returns an empty growable buffer with no capacity bound.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{limit: -1, serial: nextSerial()}
}

// NewSize returns an empty growable buffer with no capacity bound and
// the given initial storage size.
func NewSize[T any](size int) *Buffer[T] {
	if size < 0 {
		panic("pbuf: negative capacity")
	}
	return &Buffer[T]{data: make([]T, size), limit: -1, serial: nextSerial()}
}

// NewLimit returns an empty buffer that grows from size up to limit
// elements of storage and never beyond. Reserve requests the limit
// cannot satisfy fail the same way they do on a fixed buffer.
func NewLimit[T any](size, limit int) *Buffer[T] {
	if size < 0 {
		panic("pbuf: negative capacity")
	}
	if limit < size {
		panic("pbuf: limit below initial size")
	}
	return &Buffer[T]{data: make([]T, size), limit: limit, serial: nextSerial()}
}

// NewFixed returns an empty buffer with the given capacity, allocated
// once. The storage is never reallocated, so slices returned by
// reserve and data calls stay valid across later operations.
func NewFixed[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic("pbuf: negative capacity")
	}
	return &Buffer[T]{data: make([]T, capacity), fixed: true, limit: capacity, serial: nextSerial()}
}

// NewStatic returns an empty buffer backed by caller-supplied memory.
// The memory is never reallocated and is zeroed by
// [Buffer.ResetAndZero]; the caller must not access it while the
// buffer is in use.
func NewStatic[T any](mem []T) *Buffer[T] {
	return &Buffer[T]{data: mem, fixed: true, limit: len(mem), serial: nextSerial()}
}

// Rd returns the consumer view of the buffer.
func (b *Buffer[T]) Rd() Reader[T] {
	return Reader[T]{b: b}
}

// Wr returns the producer view of the buffer.
func (b *Buffer[T]) Wr() Writer[T] {
	return Writer[T]{b: b}
}

// Tripwire captures the buffer's current [Trip] value.
func (b *Buffer[T]) Tripwire() Trip {
	return tripOf(b.wr-b.rd, b.state)
}

// IsTripped reports whether the buffer has changed since trip was
// captured. See [Trip] for the validity conditions.
func (b *Buffer[T]) IsTripped(trip Trip) bool {
	return b.Tripwire() != trip
}

// State returns the current EOF/push state.
func (b *Buffer[T]) State() State {
	return b.state
}

// IsPush reports whether the push state is set, without changing it.
func (b *Buffer[T]) IsPush() bool {
	return b.state == StatePush
}

// SetPush overrides the push state. Glue code may use this to suppress
// a producer that requests flushes too frequently for a downstream
// component. No-op once EOF has been signalled.
func (b *Buffer[T]) SetPush(push bool) {
	if b.state != StateOpen && b.state != StatePush {
		return
	}
	if push {
		b.state = StatePush
	} else {
		b.state = StateOpen
	}
}

// IsDone reports whether processing on this buffer is complete: an
// aborted EOF has been consumed, or a clean EOF has been consumed and
// no unread data remains.
func (b *Buffer[T]) IsDone() bool {
	switch b.state {
	case StateAborted:
		return true
	case StateClosed:
		return b.rd == b.wr
	}
	return false
}

// Len returns the number of unread elements.
func (b *Buffer[T]) Len() int {
	return b.wr - b.rd
}

// IsEmpty reports whether there are no unread elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.rd == b.wr
}

// Capacity returns the promised maximum number of elements the buffer
// may hold: the capacity of a fixed or static buffer, or the growth
// limit. ok is false when the buffer is unbounded.
func (b *Buffer[T]) Capacity() (n int, ok bool) {
	if b.limit < 0 {
		return 0, false
	}
	return b.limit, true
}

// Serial returns the identifier assigned at construction.
func (b *Buffer[T]) Serial() Serial {
	return b.serial
}

// Reset returns the buffer to its initial state: empty and Open.
// Storage is retained and not zeroed, so a later reserve may expose
// stale elements. Use [Buffer.ResetAndZero] when that matters.
func (b *Buffer[T]) Reset() {
	b.rd = 0
	b.wr = 0
	b.state = StateOpen
}

// ResetAndZero zeroes the storage and resets the buffer to its initial
// state. Recommended before returning a buffer to a pool so data
// cannot leak between unrelated parts of a codebase.
func (b *Buffer[T]) ResetAndZero() {
	clear(b.data)
	b.rd = 0
	b.wr = 0
	b.state = StateOpen
}

// reclaim resets both cursors when the buffer is logically empty, so
// the whole storage becomes tail free space.
func (b *Buffer[T]) reclaim() {
	if b.rd == b.wr {
		b.rd = 0
		b.wr = 0
	}
}

// makeSpace compacts and, when the policy allows, grows storage until
// reserve elements fit at the tail. Reports false when the capacity
// policy cannot satisfy the request. Kept out of the reserve fast
// paths: it runs rarely once a buffer has grown to a working size.
func (b *Buffer[T]) makeSpace(reserve int) bool {
	if b.rd > 0 {
		copy(b.data, b.data[b.rd:b.wr])
		b.wr -= b.rd
		b.rd = 0
	}
	if reserve <= len(b.data)-b.wr {
		return true
	}
	if b.fixed {
		return false
	}
	if b.limit >= 0 && reserve > b.limit-b.wr {
		return false
	}
	size := max(b.wr+reserve, 2*reserve)
	if b.limit >= 0 {
		size = min(size, b.limit)
	}
	grown := make([]T, size)
	copy(grown, b.data[:b.wr])
	b.data = grown
	return true
}

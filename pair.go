// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

// Pair is a bidirectional pipe made of two independent buffers in a
// single allocation. Like a TCP stream, the two directions are closed
// independently.
//
// The two ends are arbitrarily called "upper" and "lower": pipes
// usually run between stacked protocol layers, the upper layer writes
// the downwards-flowing buffer and reads the upwards-flowing one.
// [Pair.Left] and [Pair.Right] are offered for code where a horizontal
// picture reads better. Both directions share one [Serial].
type Pair[T any] struct {
	down Buffer[T]
	up   Buffer[T]
}

// NewPair returns a pair of empty growable buffers with no capacity
// bound.
func NewPair[T any]() *Pair[T] {
	p := &Pair[T]{}
	s := nextSerial()
	p.down = Buffer[T]{limit: -1, serial: s}
	p.up = Buffer[T]{limit: -1, serial: s}
	return p
}

// NewPairSize returns a pair of growable buffers with the given
// initial storage sizes for the two directions.
func NewPairSize[T any](downSize, upSize int) *Pair[T] {
	if downSize < 0 || upSize < 0 {
		panic("pbuf: negative capacity")
	}
	p := &Pair[T]{}
	s := nextSerial()
	p.down = Buffer[T]{data: make([]T, downSize), limit: -1, serial: s}
	p.up = Buffer[T]{data: make([]T, upSize), limit: -1, serial: s}
	return p
}

// NewPairLimit returns a pair of buffers that grow from the given
// initial sizes up to the given limits and never beyond.
func NewPairLimit[T any](downSize, downLimit, upSize, upLimit int) *Pair[T] {
	if downSize < 0 || upSize < 0 {
		panic("pbuf: negative capacity")
	}
	if downLimit < downSize || upLimit < upSize {
		panic("pbuf: limit below initial size")
	}
	p := &Pair[T]{}
	s := nextSerial()
	p.down = Buffer[T]{data: make([]T, downSize), limit: downLimit, serial: s}
	p.up = Buffer[T]{data: make([]T, upSize), limit: upLimit, serial: s}
	return p
}

// NewPairFixed returns a pair of fixed-capacity buffers. The storage
// is never reallocated; reserve requests beyond a direction's capacity
// fail as on [NewFixed] buffers.
func NewPairFixed[T any](downCap, upCap int) *Pair[T] {
	if downCap < 0 || upCap < 0 {
		panic("pbuf: negative capacity")
	}
	p := &Pair[T]{}
	s := nextSerial()
	p.down = Buffer[T]{data: make([]T, downCap), fixed: true, limit: downCap, serial: s}
	p.up = Buffer[T]{data: make([]T, upCap), fixed: true, limit: upCap, serial: s}
	return p
}

// NewPairStatic returns a pair backed by two caller-supplied memory
// regions, never reallocated.
func NewPairStatic[T any](downMem, upMem []T) *Pair[T] {
	p := &Pair[T]{}
	s := nextSerial()
	p.down = Buffer[T]{data: downMem, fixed: true, limit: len(downMem), serial: s}
	p.up = Buffer[T]{data: upMem, fixed: true, limit: len(upMem), serial: s}
	return p
}

// Down returns the downwards-flowing buffer.
func (p *Pair[T]) Down() *Buffer[T] {
	return &p.down
}

// Up returns the upwards-flowing buffer.
func (p *Pair[T]) Up() *Buffer[T] {
	return &p.up
}

// Upper returns the capability bundle for the upper end: reading the
// upwards-flowing buffer, writing the downwards-flowing one.
func (p *Pair[T]) Upper() End[T] {
	return End[T]{Rd: p.up.Rd(), Wr: p.down.Wr()}
}

// Lower returns the capability bundle for the lower end: reading the
// downwards-flowing buffer, writing the upwards-flowing one.
func (p *Pair[T]) Lower() End[T] {
	return End[T]{Rd: p.down.Rd(), Wr: p.up.Wr()}
}

// Left is [Pair.Upper] under a horizontal naming.
func (p *Pair[T]) Left() End[T] {
	return p.Upper()
}

// Right is [Pair.Lower] under a horizontal naming.
func (p *Pair[T]) Right() End[T] {
	return p.Lower()
}

// Serial returns the identifier shared by both directions.
func (p *Pair[T]) Serial() Serial {
	return p.down.serial
}

// Tripwire captures both directions' [Trip] values, down first.
func (p *Pair[T]) Tripwire() (down, up Trip) {
	return p.down.Tripwire(), p.up.Tripwire()
}

// Reset returns both buffers to their initial state. Storage is not
// zeroed.
func (p *Pair[T]) Reset() {
	p.down.Reset()
	p.up.Reset()
}

// ResetAndZero zeroes both buffers' storage and resets them, for pool
// reuse.
func (p *Pair[T]) ResetAndZero() {
	p.down.ResetAndZero()
	p.up.ResetAndZero()
}

// End bundles the consumer view of one direction with the producer
// view of the other: everything one end of a [Pair] needs to converse
// with the peer end.
type End[T any] struct {
	Rd Reader[T]
	Wr Writer[T]
}

// Tripwire captures [Trip] values for both halves of the end, the
// reading half first.
func (e End[T]) Tripwire() (rd, wr Trip) {
	return e.Rd.Tripwire(), e.Wr.Tripwire()
}

// IsTripped reports whether either half has changed since the trips
// were captured.
func (e End[T]) IsTripped(rd, wr Trip) bool {
	return e.Rd.IsTripped(rd) || e.Wr.IsTripped(wr)
}

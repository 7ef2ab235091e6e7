// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

import "code.hybscloud.com/lfq"

// Pool recycles idle buffers through a bounded lock-free free-list.
// Buffers themselves stay single-goroutine while in use; the pool is
// the one safe cross-goroutine handoff point, and only for buffers no
// current holder will touch again. Returned buffers are zeroed so data
// cannot leak between unrelated users.
type Pool[T any] struct {
	free  lfq.Queue[*Buffer[T]]
	alloc func() *Buffer[T]
}

// NewPool returns a pool holding at most capacity idle buffers,
// rounded up to a power of two with a minimum of 2. alloc constructs a
// fresh buffer when the pool is empty; all buffers in one pool should
// share a capacity policy.
func NewPool[T any](capacity int, alloc func() *Buffer[T]) *Pool[T] {
	if capacity < 2 {
		capacity = 2
	}
	return &Pool[T]{
		free:  lfq.NewMPMC[*Buffer[T]](capacity),
		alloc: alloc,
	}
}

// Get returns an idle buffer, or a freshly allocated one when none is
// available. Never blocks.
func (p *Pool[T]) Get() *Buffer[T] {
	b, err := p.free.Dequeue()
	if err != nil {
		return p.alloc()
	}
	return b
}

// Put zeroes b and makes it available for reuse. When the pool is
// already full the buffer is dropped for the garbage collector. Never
// blocks. The caller must hold no live views of b.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	b.ResetAndZero()
	_ = p.free.Enqueue(&b)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

import (
	"errors"
	"io"
	"syscall"

	"code.hybscloud.com/iox"
)

// ErrAborted is returned by [Stream.Read] once an aborted EOF has been
// reached: the producer signalled failure and the data ended
// incomplete.
var ErrAborted = errors.New("pbuf: stream aborted")

// flusher is the optional sink extension [Drain] uses to acknowledge a
// push. bufio.Writer implements it.
type flusher interface {
	Flush() error
}

// Fill moves up to max bytes from src into the buffer, reading
// directly into reserved space. The remaining count is reserved before
// each read, so on a bounded buffer max must fit within [Writer.Free].
// A clean [io.EOF] from src closes the
// buffer and is not returned as an error. [syscall.EINTR] reads are
// retried. All other errors, including would-block errors from
// non-blocking sources, are returned with the count read so far; the
// bytes read before the error are already committed. A (0, nil) read
// ends the fill early, as in [code.hybscloud.com/iox.Copy].
//
// No-op when the buffer has already signalled EOF.
func Fill(w Writer[byte], src io.Reader, max int) (int, error) {
	if w.IsEOF() {
		return 0, nil
	}
	total := 0
	for total < max {
		n, err := w.WriteWith(max-total, src.Read)
		total += n
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			if errors.Is(err, io.EOF) {
				w.Close()
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// Drain writes as much unread data as possible to sink, consuming what
// the sink accepts. A pending push is converted into a Flush call when
// the sink implements one; forceFlush flushes regardless.
// [syscall.EINTR] writes and flushes are retried. All other errors,
// including would-block errors from non-blocking sinks, are returned
// with the count written so far. EOF is not handled here: sinks have
// no EOF concept, so the caller decides what a consumed EOF means for
// the sink.
//
// Panics if the sink reports accepting more bytes than it was given.
func Drain(rd Reader[byte], sink io.Writer, forceFlush bool) (int, error) {
	total := 0
	for !rd.IsEmpty() {
		n, err := sink.Write(rd.Data())
		if n > rd.Len() {
			panic("pbuf: sink accepted more than it was given")
		}
		if n > 0 {
			rd.Consume(n)
			total += n
		}
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return total, err
		}
		if n == 0 {
			break
		}
	}
	if rd.ConsumePush() || forceFlush {
		f, ok := sink.(flusher)
		if !ok {
			return total, nil
		}
		for {
			err := f.Flush()
			if err == nil {
				break
			}
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return total, err
		}
	}
	return total, nil
}

// Stream adapts a byte buffer to the standard io interfaces, for glue
// code handing the buffer to components that speak [io.Reader] and
// [io.Writer].
//
// Read consumes unread data; at EOF it acknowledges the indication and
// reports [io.EOF] after a clean close or [ErrAborted] after an abort,
// stickily on later calls. An empty buffer that has not reached EOF
// reports [code.hybscloud.com/iox.ErrWouldBlock].
//
// Write appends under the buffer's contract: it panics after Close or
// when a fixed capacity is exceeded, as [Writer.Append] does, and
// never reports a short count. Flush requests a push; Close signals a
// clean EOF.
type Stream struct {
	b *Buffer[byte]
}

// NewStream returns a [Stream] over b.
func NewStream(b *Buffer[byte]) Stream {
	return Stream{b: b}
}

// Read implements [io.Reader] under the contract described on
// [Stream].
func (s Stream) Read(p []byte) (int, error) {
	rd := s.b.Rd()
	if !rd.IsEmpty() {
		n := copy(p, rd.Data())
		rd.Consume(n)
		return n, nil
	}
	rd.ConsumeEOF()
	switch {
	case rd.IsAborted():
		return 0, ErrAborted
	case rd.IsEOF():
		return 0, io.EOF
	}
	return 0, iox.ErrWouldBlock
}

// Write implements [io.Writer] under the contract described on
// [Stream].
func (s Stream) Write(p []byte) (int, error) {
	s.b.Wr().Append(p)
	return len(p), nil
}

// Flush requests an expedited flush of the buffered data, as
// [Writer.Push].
func (s Stream) Flush() error {
	s.b.Wr().Push()
	return nil
}

// Close signals a clean EOF on the producer side. Always succeeds;
// closing more than once is a no-op.
func (s Stream) Close() error {
	s.b.Wr().Close()
	return nil
}

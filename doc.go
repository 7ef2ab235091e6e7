// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pbuf provides contiguous pipe buffers shared between one
// producer and one consumer on the same goroutine.
//
// A [Buffer] sits between two independently-written stream-processing
// stages so that neither owns its own input or output buffer: the
// producer writes through a [Writer] view, the consumer parses in
// place through a [Reader] view, and glue code drives both.
//
// # Architecture
//
//   - Storage: One contiguous region split by two cursors into
//     consumed, unread and free space. Compaction and growth are
//     deferred until a reserve needs them; unread data never wraps, so
//     [Reader.Data] is always a single zero-copy slice.
//   - Capabilities: [Buffer.Wr] and [Buffer.Rd] are pointer-sized
//     views with disjoint operation sets. Producer and consumer code
//     cannot touch each other's cursors.
//   - EOF protocol: Six [State] values carry push and clean/aborted
//     EOF from producer to consumer, each indication consumed exactly
//     once. [Writer.Close] and [Writer.Abort] are idempotent and
//     report whether they transitioned.
//   - Change detection: [Trip] values fold unread length and state
//     into one comparable token; [Track] turns them into progress
//     reports for driving loops.
//   - Non-blocking: Nothing waits and nothing locks. [Stream.Read]
//     returns [code.hybscloud.com/iox.ErrWouldBlock] on an empty open
//     buffer; backpressure is explicit via [Writer.Free] and
//     [Writer.TrySpace].
//
// # API Topologies
//
//   - Construction: [New], [NewSize], [NewLimit], [NewFixed],
//     [NewStatic]; duplex via [NewPair] and friends, with [Pair.Upper]
//     and [Pair.Lower] bundling the per-end views.
//   - Producing: [Writer.Space]/[Writer.Commit] for in-place writes,
//     [Writer.Append], [Writer.WriteWith], [Writer.Push],
//     [Writer.Close], [Writer.Abort].
//   - Consuming: [Reader.Data]/[Reader.Consume], [Reader.ConsumePush],
//     [Reader.ConsumeEOF], [Reader.Forward] for relays.
//   - Reuse: [Buffer.Reset], [Buffer.ResetAndZero], and [Pool] as a
//     lock-free free-list via [code.hybscloud.com/lfq].
//
// # Integration
//
//   - Stepping: [Sweep] and [Run] drive a network of [Step] functions
//     to quiescence without waiting, for callers that own the outer
//     event loop.
//   - Blocking: [RunWait] waits past no-progress passes using adaptive
//     backoff.
//   - Standard io: [Fill], [Drain] and [Stream] connect byte buffers
//     to [io.Reader] and [io.Writer] under would-block semantics.
//
// # Example
//
//	buf := pbuf.NewFixed[byte](4096)
//	wr, rd := buf.Wr(), buf.Rd()
//	wr.Append([]byte("hello"))
//	wr.Close()
//	data := rd.Data() // zero-copy view of "hello"
//	rd.Consume(len(data))
//	rd.ConsumeEOF() // buf.IsDone() is now true
package pbuf

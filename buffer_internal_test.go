// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

import (
	"testing"
	"testing/quick"
)

// Walks the tripwire sum through a full lifecycle: producer operations
// raise it, consumer operations lower it.
func TestTripValueWalk(t *testing.T) {
	b := New[byte]()
	want := func(v uint) {
		t.Helper()
		if got := b.Tripwire().v; got != v {
			t.Fatalf("trip %d, want %d", got, v)
		}
	}

	want(0)
	b.Wr().Append([]byte("ab"))
	want(2)
	b.Wr().Push()
	want(3)
	b.Wr().Close()
	want(5)
	b.Rd().Consume(1)
	want(4)
	b.Rd().ConsumeEOF()
	want(3)
	b.Rd().Consume(1)
	want(2)
}

// TestCursorInvariants proves that across arbitrary operation
// sequences the cursors satisfy rd <= wr <= len(data), and that an
// empty buffer always rests with both cursors at zero, keeping the
// whole storage reservable without compaction.
func TestCursorInvariants(t *testing.T) {
	invariant := func(ops []uint16) bool {
		b := NewLimit[byte](0, 64)
		for _, op := range ops {
			n := int(op % 8)
			switch op % 4 {
			case 0:
				if _, ok := b.Wr().TrySpace(n); ok {
					b.Wr().Commit(n)
				}
			case 1:
				b.Wr().TryAppend(make([]byte, n))
			case 2:
				b.Rd().Consume(min(n, b.Len()))
			case 3:
				b.Rd().Consume(b.Len())
			}
			if b.rd > b.wr || b.wr > len(b.data) {
				return false
			}
			if b.rd == b.wr && b.rd != 0 {
				return false
			}
		}
		return true
	}

	if err := quick.Check(invariant, nil); err != nil {
		t.Error(err)
	}
}

func TestGrowthSizing(t *testing.T) {
	b := New[byte]()
	b.Wr().Space(10)
	if len(b.data) != 20 {
		t.Fatalf("storage %d after reserve 10, want doubled 20", len(b.data))
	}
	b.Wr().Commit(10)
	b.Wr().Space(5)
	if len(b.data) != 20 {
		t.Fatalf("storage %d grew for a fitting reserve, want 20", len(b.data))
	}
	b.Wr().Commit(5)
	b.Wr().Space(20)
	if len(b.data) != 40 {
		t.Fatalf("storage %d after reserve 20, want 40", len(b.data))
	}
}

func TestGrowthSizingClamped(t *testing.T) {
	b := NewLimit[byte](0, 21)
	b.Wr().Space(10)
	if len(b.data) != 20 {
		t.Fatalf("storage %d, want 20 under the limit", len(b.data))
	}
	b.Wr().Commit(10)
	// Doubling would overshoot; the limit caps the allocation.
	b.Wr().Space(11)
	if len(b.data) != 21 {
		t.Fatalf("storage %d, want clamped 21", len(b.data))
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

// Trip is a tripwire: an opaque snapshot of a buffer's observable
// progress, cheap to capture and compared only for equality.
//
// A tripwire folds the unread length and the [State] value into one
// wrapping unsigned sum. Over a span in which the buffer is touched by
// only one side, every producer action strictly increases the sum and
// every consumer action strictly decreases it, so an unchanged value
// proves the span made no progress. Comparing across a span where both
// sides acted gives no such guarantee.
type Trip struct {
	v uint
}

// tripOf computes the tripwire sum for an unread length and state.
func tripOf(unread int, state State) Trip {
	return Trip{v: uint(unread) + uint(state)}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf_test

import "testing"

// wantPanic fails the test unless fn panics with exactly the given
// message. Contract violations in pbuf panic with stable "pbuf: ..."
// strings, so tests pin them.
func wantPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		switch r := recover().(type) {
		case nil:
			t.Fatalf("no panic, want %q", want)
		case string:
			if r != want {
				t.Fatalf("panic %q, want %q", r, want)
			}
		default:
			t.Fatalf("panic %v, want %q", r, want)
		}
	}()
	fn()
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pbuf

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing buffer identifier.
// Each constructed buffer is stamped with the next serial value; the
// two directions of a [Pair] share one. Serials survive [Buffer.Reset]
// and pool reuse, so glue code can use them to correlate buffers in
// multi-buffer networks.
type Serial = uint32

// counter is the global monotonic counter for buffer serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}

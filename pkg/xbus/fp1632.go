/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package xbus

import (
	"encoding/binary"
	"math"
)

// FP16.32 is a 48-bit signed fixed-point encoding with 16 integer and
// 32 fractional bits, used by Xsens for high precision position and
// velocity fields. On the wire the 4-byte unsigned fractional part comes
// first, followed by the 2-byte signed integer part, both big-endian.

const FP1632Size = 6

// DecodeFP1632 decodes the first 6 bytes of buf as an FP16.32 value.
// The sign is carried by the integer part and extends across the full
// 48 bits, so the value range is -32768.0 .. 32767.9999999998.
func DecodeFP1632(buf []byte) (float64, error) {
	if len(buf) < FP1632Size {
		return 0, ErrShortRead{Want: FP1632Size, Have: len(buf)}
	}
	frac := binary.BigEndian.Uint32(buf[0:4])
	integer := int16(binary.BigEndian.Uint16(buf[4:6]))
	fixed := int64(integer)<<32 | int64(frac)
	return float64(fixed) / (1 << 32), nil
}

// EncodeFP1632 is the inverse of DecodeFP1632. Values outside the FP16.32
// range wrap.
func EncodeFP1632(v float64) [FP1632Size]byte {
	fixed := int64(math.Round(v * (1 << 32)))
	var out [FP1632Size]byte
	binary.BigEndian.PutUint32(out[0:4], uint32(fixed))
	binary.BigEndian.PutUint16(out[4:6], uint16(fixed>>32))
	return out
}

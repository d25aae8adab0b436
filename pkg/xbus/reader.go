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

// Reader is a sequential big-endian reader over a byte buffer. Every read
// advances the cursor by the field width and returns ErrShortRead when
// fewer bytes remain, so callers never have to pre-validate bounds.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor position
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Skip advances the cursor by n bytes without decoding them
func (r *Reader) Skip(n int) error {
	if r.Remaining() < n {
		return ErrShortRead{Want: n, Have: r.Remaining()}
	}
	r.pos += n
	return nil
}

func (r *Reader) Uint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, ErrShortRead{Want: 1, Have: r.Remaining()}
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) Uint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, ErrShortRead{Want: 2, Have: r.Remaining()}
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) Uint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrShortRead{Want: 4, Have: r.Remaining()}
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Float32 reinterprets 4 big-endian bytes as an IEEE-754 float. The bits
// are copied, not value-converted.
func (r *Reader) Float32() (float32, error) {
	bits, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// FP1632 reads a 6-byte FP16.32 fixed-point value
func (r *Reader) FP1632() (float64, error) {
	if r.Remaining() < 6 {
		return 0, ErrShortRead{Want: 6, Have: r.Remaining()}
	}
	v, err := DecodeFP1632(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += 6
	return v, nil
}

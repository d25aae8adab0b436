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
	"testing"
)

func TestReaderSequential(t *testing.T) {
	r := NewReader([]byte{
		0x0B, 0x0A,
		0x12, 0x34,
		0x00, 0xC5, 0x50, 0x98,
		0x42, 0x13, 0x98, 0x00,
		0x64, 0xA6, 0x8A, 0xA8, 0x00, 0x1F,
	})

	if v, err := r.Uint8(); err != nil || v != 0x0B {
		t.Fatalf("Uint8 = %d, %v, want 0x0B", v, err)
	}
	if v, err := r.Uint8(); err != nil || v != 0x0A {
		t.Fatalf("Uint8 = %d, %v, want 0x0A", v, err)
	}
	if v, err := r.Uint16(); err != nil || v != 0x1234 {
		t.Fatalf("Uint16 = 0x%04X, %v, want 0x1234", v, err)
	}
	if v, err := r.Uint32(); err != nil || v != 12931224 {
		t.Fatalf("Uint32 = %d, %v, want 12931224", v, err)
	}
	if v, err := r.Float32(); err != nil || v != 36.8984375 {
		t.Fatalf("Float32 = %v, %v, want 36.8984375", v, err)
	}
	v, err := r.FP1632()
	if err != nil {
		t.Fatalf("FP1632 returned error: %v", err)
	}
	if !near(v, 31.393166223541, 1e-9) {
		t.Fatalf("FP1632 = %v, want 31.393166223541", v)
	}
	if r.Pos() != 18 || r.Remaining() != 0 {
		t.Fatalf("Pos = %d, Remaining = %d, want 18 and 0", r.Pos(), r.Remaining())
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	if err := r.Skip(3); err != nil {
		t.Fatalf("Skip(3) returned error: %v", err)
	}
	if r.Pos() != 3 || r.Remaining() != 1 {
		t.Fatalf("Pos = %d, Remaining = %d, want 3 and 1", r.Pos(), r.Remaining())
	}
	if err := r.Skip(2); err == nil {
		t.Fatal("Skip past the end must fail")
	}
	// a failed skip must not move the cursor
	if r.Pos() != 3 {
		t.Fatalf("Pos = %d after a failed skip, want 3", r.Pos())
	}
}

func TestReaderShortRead(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(r *Reader) error
		want int
	}{
		{"uint8 empty", nil, func(r *Reader) error { _, err := r.Uint8(); return err }, 1},
		{"uint16 one byte", []byte{0x01}, func(r *Reader) error { _, err := r.Uint16(); return err }, 2},
		{"uint32 three bytes", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.Uint32(); return err }, 4},
		{"float32 empty", nil, func(r *Reader) error { _, err := r.Float32(); return err }, 4},
		{"fp1632 five bytes", []byte{1, 2, 3, 4, 5}, func(r *Reader) error { _, err := r.FP1632(); return err }, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.buf)
			err := tt.read(r)
			serr, ok := err.(ErrShortRead)
			if !ok {
				t.Fatalf("expected ErrShortRead, got %v", err)
			}
			if serr.Want != tt.want || serr.Have != len(tt.buf) {
				t.Fatalf("ErrShortRead = %+v, want Want=%d Have=%d", serr, tt.want, len(tt.buf))
			}
			if r.Pos() != 0 {
				t.Fatalf("Pos = %d after a failed read, want 0", r.Pos())
			}
		})
	}
}

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
	"bytes"
	"testing"
)

func TestSynchronizerSingleFrame(t *testing.T) {
	wakeup := []byte{0xFA, 0xFF, 0x3E, 0x00, 0xC3}
	s := NewSynchronizer()
	if s.State() != WaitingForPreamble {
		t.Fatal("a new synchronizer must wait for a preamble")
	}

	frames := s.Feed(wakeup)
	if len(frames) != 1 {
		t.Fatalf("Feed returned %d frames, want 1", len(frames))
	}
	if !bytes.Equal(frames[0], wakeup) {
		t.Fatalf("frame = % X, want % X", frames[0], wakeup)
	}
	if s.State() != WaitingForPreamble {
		t.Fatal("the synchronizer must return to waiting after a complete frame")
	}

	stats := s.Stats()
	if stats.Bytes != 5 || stats.Frames != 1 || stats.Discarded != 0 {
		t.Fatalf("Stats = %+v, want 5 bytes, 1 frame, 0 discarded", stats)
	}
}

func TestSynchronizerByteAtATime(t *testing.T) {
	frame := BuildFrame(MasterBusID, MIDDeviceID, []byte{0x12, 0x34, 0x56, 0x78})
	s := NewSynchronizer()

	for i, b := range frame[:len(frame)-1] {
		if got := s.Feed([]byte{b}); len(got) != 0 {
			t.Fatalf("frame completed after %d of %d bytes", i+1, len(frame))
		}
	}
	if s.State() != AccumulatingMessage {
		t.Fatal("the synchronizer must be accumulating before the checksum byte")
	}
	frames := s.Feed(frame[len(frame)-1:])
	if len(frames) != 1 || !bytes.Equal(frames[0], frame) {
		t.Fatalf("Feed returned %v, want the original frame", frames)
	}
}

func TestSynchronizerGarbagePrefix(t *testing.T) {
	frame := BuildFrame(MasterBusID, MIDMtData2, []byte{0x10, 0x20, 0x02, 0x0B, 0x0A})
	stream := append([]byte{0x01, 0x02, 0x03}, frame...)
	stream = append(stream, 0xAB)

	s := NewSynchronizer()
	frames := s.Feed(stream)
	if len(frames) != 1 || !bytes.Equal(frames[0], frame) {
		t.Fatalf("Feed returned %v, want the embedded frame", frames)
	}
	stats := s.Stats()
	if stats.Discarded != 4 {
		t.Fatalf("Discarded = %d, want 4", stats.Discarded)
	}
}

func TestSynchronizerBackToBackFrames(t *testing.T) {
	first := BuildFrame(MasterBusID, MIDMtData2, []byte{0x10, 0x20, 0x02, 0x0B, 0x0A})
	second := []byte{0xFA, 0xFF, 0x3E, 0x00, 0xC3}

	s := NewSynchronizer()
	frames := s.Feed(append(append([]byte{}, first...), second...))
	if len(frames) != 2 {
		t.Fatalf("Feed returned %d frames, want 2", len(frames))
	}
	if !bytes.Equal(frames[0], first) || !bytes.Equal(frames[1], second) {
		t.Fatal("frames do not match the concatenated input")
	}
	if s.Stats().Frames != 2 {
		t.Fatalf("Frames = %d, want 2", s.Stats().Frames)
	}
}

func TestSynchronizerDropsChecksumFailure(t *testing.T) {
	corrupted := BuildFrame(MasterBusID, MIDDeviceID, []byte{0x12, 0x34, 0x56, 0x78})
	corrupted[4] ^= 0xFF // payload corruption, envelope and length stay intact
	valid := []byte{0xFA, 0xFF, 0x3E, 0x00, 0xC3}

	s := NewSynchronizer()
	frames := s.Feed(append(append([]byte{}, corrupted...), valid...))
	if len(frames) != 1 {
		t.Fatalf("Feed returned %d frames, want only the valid one", len(frames))
	}
	if !bytes.Equal(frames[0], valid) {
		t.Fatalf("frame = % X, want the uncorrupted frame, no merge with dropped bytes", frames[0])
	}
	stats := s.Stats()
	if stats.ChecksumErrors != 1 || stats.Frames != 1 {
		t.Fatalf("Stats = %+v, want 1 checksum error and 1 frame", stats)
	}
}

func TestSynchronizerLengthOutOfBounds(t *testing.T) {
	// extended length form declaring a 2000 byte payload
	bogus := []byte{0xFA, 0xFF, 0x36, 0xFF, 0x07, 0xD0}
	valid := []byte{0xFA, 0xFF, 0x3E, 0x00, 0xC3}

	s := NewSynchronizer()
	frames := s.Feed(append(append([]byte{}, bogus...), valid...))
	if len(frames) != 1 || !bytes.Equal(frames[0], valid) {
		t.Fatalf("Feed returned %v, want the frame after the bogus header", frames)
	}
	if s.Stats().Resyncs != 1 {
		t.Fatalf("Resyncs = %d, want 1", s.Stats().Resyncs)
	}
}

func TestSynchronizerExtendedLengthFrame(t *testing.T) {
	payload := make([]byte, 300)
	payload[0] = 0x10
	payload[1] = 0x20
	frame := BuildFrame(MasterBusID, MIDMtData2, payload)

	// split the frame inside the extended length header
	s := NewSynchronizer()
	if got := s.Feed(frame[:5]); len(got) != 0 {
		t.Fatal("frame completed before the length bytes arrived")
	}
	frames := s.Feed(frame[5:])
	if len(frames) != 1 || !bytes.Equal(frames[0], frame) {
		t.Fatal("the extended length frame did not survive a split header")
	}
}

func TestSynchronizerPreambleInsidePayload(t *testing.T) {
	frame := BuildFrame(MasterBusID, MIDMtData2, []byte{0xFA, 0xFA, 0xFA})
	s := NewSynchronizer()
	frames := s.Feed(frame)
	if len(frames) != 1 || !bytes.Equal(frames[0], frame) {
		t.Fatalf("Feed returned %v, payload bytes equal to the preamble must not resync", frames)
	}
}

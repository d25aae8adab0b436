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
	"jinr.ru/greenlab/go-xbus/pkg/log"
)

// SyncState is the synchronizer state
type SyncState int

const (
	WaitingForPreamble SyncState = iota
	AccumulatingMessage
)

// SyncStats counts what a synchronizer has seen since creation
type SyncStats struct {
	Bytes          uint64 `json:"bytes"`
	Frames         uint64 `json:"frames"`
	ChecksumErrors uint64 `json:"checksumErrors"`
	Resyncs        uint64 `json:"resyncs"`
	Discarded      uint64 `json:"discarded"`
}

// Synchronizer recovers frame boundaries from an unstructured byte stream.
// Bytes outside a frame are discarded until a preamble is seen, then a
// candidate message is accumulated until its expected length is reached.
// Any inconsistency resynchronizes to the next preamble. The synchronizer
// is not safe for concurrent use, feed it from a single goroutine.
type Synchronizer struct {
	state    SyncState
	buf      []byte
	expected int
	stats    SyncStats
}

func NewSynchronizer() *Synchronizer {
	return &Synchronizer{state: WaitingForPreamble}
}

// State returns the current synchronizer state
func (s *Synchronizer) State() SyncState {
	return s.state
}

// Stats returns a copy of the counters
func (s *Synchronizer) Stats() SyncStats {
	return s.stats
}

func (s *Synchronizer) reset() {
	s.state = WaitingForPreamble
	s.expected = 0
	if s.buf != nil {
		s.buf = s.buf[:0]
	}
}

// Feed consumes a chunk of raw bytes, chunks may split frames at any
// offset. It returns the checksum-valid frames completed by this chunk,
// ownership of the returned buffers passes to the caller. Frames failing
// checksum verification are dropped and counted, after any complete frame
// the synchronizer returns to WaitingForPreamble. A frame whose computed
// length falls outside [MinFrameSize, MaxFrameSize] and any accumulation
// beyond MaxFrameSize force resynchronization.
func (s *Synchronizer) Feed(chunk []byte) [][]byte {
	var frames [][]byte
	for _, b := range chunk {
		s.stats.Bytes++
		switch s.state {
		case WaitingForPreamble:
			if b != Preamble {
				s.stats.Discarded++
				continue
			}
			s.buf = append(s.buf[:0], b)
			s.expected = 0
			s.state = AccumulatingMessage
		case AccumulatingMessage:
			s.buf = append(s.buf, b)
			if s.expected == 0 && len(s.buf) > OffsetToLength {
				rawLength, err := GetRawLength(s.buf)
				if err != nil {
					// extended length form, the length bytes are not
					// accumulated yet
					continue
				}
				if rawLength < MinFrameSize || rawLength > MaxFrameSize {
					log.Debug("Frame length %d out of bounds, restarting sync", rawLength)
					s.stats.Resyncs++
					s.reset()
					continue
				}
				s.expected = rawLength
			}
			if s.expected != 0 && len(s.buf) >= s.expected {
				frame := s.buf
				s.buf = nil
				s.reset()
				if !VerifyChecksum(frame) {
					log.Debug("Checksum verification failed for frame of %d bytes", len(frame))
					s.stats.ChecksumErrors++
					continue
				}
				s.stats.Frames++
				frames = append(frames, frame)
				continue
			}
			if len(s.buf) > MaxFrameSize {
				log.Debug("Message buffer overflow, restarting sync")
				s.stats.Resyncs++
				s.reset()
			}
		}
	}
	return frames
}

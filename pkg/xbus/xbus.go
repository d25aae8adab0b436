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

// Package xbus implements the Xbus binary protocol spoken by Xsens motion
// trackers: the checksummed message envelope, the MTData2 measurement
// payload and a synchronizer that recovers message boundaries from a raw
// byte stream.
package xbus

import (
	"encoding/binary"
)

const (
	// Preamble is the first byte of every Xbus frame
	Preamble = 0xFA
	// MasterBusID addresses the master device, it is also used for broadcast
	MasterBusID = 0xFF
	// LengthExtender in the length byte signals that the real payload length
	// follows as a big-endian uint16
	LengthExtender = 0xFF
)

// Envelope layout offsets
const (
	OffsetToBusID           = 1
	OffsetToMessageID       = 2
	OffsetToLength          = 3
	OffsetToPayload         = 4
	OffsetToPayloadExtended = 6
)

const (
	// MinFrameSize is a short-header frame with an empty payload
	MinFrameSize = 5
	// MaxFrameSize bounds frame accumulation, no real Xbus frame comes close
	MaxFrameSize = 1000
)

// CheckPreamble reports whether buf starts with the Xbus preamble
func CheckPreamble(buf []byte) bool {
	return len(buf) > 0 && buf[0] == Preamble
}

// GetBusID returns the bus/destination id byte of a frame
func GetBusID(buf []byte) (byte, error) {
	if len(buf) <= OffsetToBusID {
		return 0, ErrFrameTooShort{Len: len(buf), Need: OffsetToBusID + 1}
	}
	return buf[OffsetToBusID], nil
}

// GetMessageID returns the message id byte of a frame
func GetMessageID(buf []byte) (MessageID, error) {
	if len(buf) <= OffsetToMessageID {
		return 0, ErrFrameTooShort{Len: len(buf), Need: OffsetToMessageID + 1}
	}
	return MessageID(buf[OffsetToMessageID]), nil
}

// IsExtendedLength reports whether the frame uses the extended length form
func IsExtendedLength(buf []byte) bool {
	return len(buf) > OffsetToLength && buf[OffsetToLength] == LengthExtender
}

// GetPayloadLength returns the payload length of a frame. For the extended
// length form the two bytes after the length marker must already be present,
// otherwise ErrFrameTooShort is returned and the caller has to accumulate
// more bytes before asking again.
func GetPayloadLength(buf []byte) (int, error) {
	if len(buf) <= OffsetToLength {
		return 0, ErrFrameTooShort{Len: len(buf), Need: OffsetToLength + 1}
	}
	if buf[OffsetToLength] == LengthExtender {
		if len(buf) < OffsetToPayloadExtended {
			return 0, ErrFrameTooShort{Len: len(buf), Need: OffsetToPayloadExtended}
		}
		return int(binary.BigEndian.Uint16(buf[OffsetToPayload:OffsetToPayloadExtended])), nil
	}
	return int(buf[OffsetToLength]), nil
}

// GetRawLength returns the total frame length including the envelope and
// the checksum byte
func GetRawLength(buf []byte) (int, error) {
	length, err := GetPayloadLength(buf)
	if err != nil {
		return 0, err
	}
	if IsExtendedLength(buf) {
		// preamble + bid + mid + extender + 2 length bytes + checksum
		return length + 7, nil
	}
	// preamble + bid + mid + length byte + checksum
	return length + 5, nil
}

// PayloadStart returns the offset of the first payload byte
func PayloadStart(buf []byte) int {
	if IsExtendedLength(buf) {
		return OffsetToPayloadExtended
	}
	return OffsetToPayload
}

// GetPayload returns the payload bytes of a complete frame
func GetPayload(buf []byte) ([]byte, error) {
	length, err := GetPayloadLength(buf)
	if err != nil {
		return nil, err
	}
	start := PayloadStart(buf)
	if len(buf) < start+length {
		return nil, ErrFrameTooShort{Len: len(buf), Need: start + length}
	}
	return buf[start : start+length], nil
}

// VerifyChecksum reports whether the frame checksum is valid. All bytes
// from the bus id through the checksum byte must sum to zero modulo 256.
func VerifyChecksum(buf []byte) bool {
	rawLength, err := GetRawLength(buf)
	if err != nil || len(buf) < rawLength {
		return false
	}
	var sum byte
	for _, b := range buf[1:rawLength] {
		sum += b
	}
	return sum == 0
}

// InsertChecksum computes the checksum over bytes 1..n-2 and writes its
// two's complement into the last byte of the frame
func InsertChecksum(buf []byte) error {
	rawLength, err := GetRawLength(buf)
	if err != nil {
		return err
	}
	if len(buf) < rawLength {
		return ErrFrameTooShort{Len: len(buf), Need: rawLength}
	}
	var sum byte
	for _, b := range buf[1 : rawLength-1] {
		sum += b
	}
	buf[rawLength-1] = -sum
	return nil
}

// BuildEnvelope returns the frame header for the given payload length,
// choosing the short or the extended length form
func BuildEnvelope(busID byte, mid MessageID, payloadLength int) []byte {
	if payloadLength < LengthExtender {
		return []byte{Preamble, busID, byte(mid), byte(payloadLength)}
	}
	hdr := make([]byte, OffsetToPayloadExtended)
	hdr[0] = Preamble
	hdr[OffsetToBusID] = busID
	hdr[OffsetToMessageID] = byte(mid)
	hdr[OffsetToLength] = LengthExtender
	binary.BigEndian.PutUint16(hdr[OffsetToPayload:], uint16(payloadLength))
	return hdr
}

// BuildFrame returns a complete checksummed frame ready to be written to
// the wire. Command messages use an empty payload.
func BuildFrame(busID byte, mid MessageID, payload []byte) []byte {
	frame := BuildEnvelope(busID, mid, len(payload))
	frame = append(frame, payload...)
	frame = append(frame, 0)
	InsertChecksum(frame)
	return frame
}

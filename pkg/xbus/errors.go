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
	"fmt"
)

// ErrFrameTooShort returned when a frame accessor needs more bytes than the
// buffer holds
type ErrFrameTooShort struct {
	Len  int
	Need int
}

func (e ErrFrameTooShort) Error() string {
	return fmt.Sprintf("Frame too short: have %d bytes, need %d", e.Len, e.Need)
}

// ErrBadPreamble returned when a buffer does not start with the preamble byte
type ErrBadPreamble struct {
	Got byte
}

func (e ErrBadPreamble) Error() string {
	return fmt.Sprintf("Wrong preamble 0x%02X. Must be 0x%02X", e.Got, Preamble)
}

// ErrChecksum returned when the frame checksum does not verify
type ErrChecksum struct{}

func (e ErrChecksum) Error() string {
	return "Checksum verification failed"
}

// ErrWrongMessageType returned when a decoder is asked to decode a message
// of a different type. This is not a parse failure, the frame itself may be
// perfectly valid.
type ErrWrongMessageType struct {
	Want MessageID
	Got  MessageID
}

func (e ErrWrongMessageType) Error() string {
	return fmt.Sprintf("Wrong message type 0x%02X. Must be 0x%02X", byte(e.Got), byte(e.Want))
}

// ErrShortRead returned by the payload reader when fewer bytes remain than
// the requested field width
type ErrShortRead struct {
	Want int
	Have int
}

func (e ErrShortRead) Error() string {
	return fmt.Sprintf("Short read: want %d bytes, have %d", e.Want, e.Have)
}

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

// Package serial abstracts the serial line a motion tracker is attached to.
// The decoder core never touches a Port directly, it only consumes the bytes
// read from one, so anything implementing Port can stand in for real
// hardware.
package serial

import (
	"io"
)

// Port is a raw byte source/sink for one attached device
type Port interface {
	io.ReadWriteCloser

	// Flush drops buffered input so reading starts at the live stream
	Flush() error
}

type Config struct {
	// Device path, e.g. /dev/ttyUSB0
	Device string
	Baud   int
	// ReadTimeout is in milliseconds, 0 means blocking reads
	ReadTimeout int
}

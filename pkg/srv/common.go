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

package srv

import (
	"context"
	"io"
	"time"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

// InPacket is one complete checksum-verified Xbus frame captured from the
// serial line
type InPacket struct {
	Data []byte
	gopacket.CaptureInfo
}

// OutPacket is a raw frame queued for sending to the device
type OutPacket struct {
	Data []byte
}

type Server struct {
	context.Context
	*config.Config
	ChIn  chan InPacket
	ChOut chan OutPacket
}

// ReadPacketData reads the input channel and returns frame data and capture
// metadata. This method is from the gopacket.PacketDataSource interface.
// A closed input channel ends the packet stream with io.EOF.
func (s *Server) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	p, ok := <-s.ChIn
	if !ok {
		return nil, gopacket.CaptureInfo{}, io.EOF
	}
	return p.Data, p.CaptureInfo, nil
}

// Status is the daemon status snapshot served by the monitor API
type Status struct {
	Device        string         `json:"device"`
	DeviceID      string         `json:"deviceId,omitempty"`
	Firmware      string         `json:"firmware,omitempty"`
	LastErrorCode string         `json:"lastErrorCode,omitempty"`
	LastUpdate    *time.Time     `json:"lastUpdate,omitempty"`
	Sync          xbus.SyncStats `json:"sync"`
}

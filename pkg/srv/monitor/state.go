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

package monitor

import (
	"fmt"
	"sync"
	"time"

	"jinr.ru/greenlab/go-xbus/pkg/srv"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

// State is the mutable device view shared between the packet loop, which
// writes it, and the API handlers, which read it
type State struct {
	mu          sync.RWMutex
	measurement *xbus.MeasurementData
	deviceID    string
	firmware    string
	lastError   string
	lastUpdate  time.Time
	syncStats   xbus.SyncStats
}

func NewState() *State {
	return &State{}
}

// SetMeasurement stores the latest decoded measurement
func (s *State) SetMeasurement(data *xbus.MeasurementData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.measurement = data
	s.lastUpdate = time.Now()
}

// Measurement returns the latest measurement, false when none arrived yet
func (s *State) Measurement() (*xbus.MeasurementData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.measurement == nil {
		return nil, false
	}
	return s.measurement, true
}

func (s *State) SetDeviceID(id uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceID = fmt.Sprintf("0x%08X", id)
	s.lastUpdate = time.Now()
}

func (s *State) SetFirmware(rev xbus.FirmwareRevision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firmware = rev.String()
	s.lastUpdate = time.Now()
}

func (s *State) SetLastError(code uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = fmt.Sprintf("0x%02X", code)
	s.lastUpdate = time.Now()
}

// SetSyncStats stores a synchronizer counters snapshot
func (s *State) SetSyncStats(stats xbus.SyncStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncStats = stats
}

// Status assembles a status snapshot for the given serial device
func (s *State) Status(device string) srv.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := srv.Status{
		Device:        device,
		DeviceID:      s.deviceID,
		Firmware:      s.firmware,
		LastErrorCode: s.lastError,
		Sync:          s.syncStats,
	}
	if !s.lastUpdate.IsZero() {
		t := s.lastUpdate
		status.LastUpdate = &t
	}
	return status
}

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

// FormatMessage never verifies checksums, so raw capture vectors with
// arbitrary trailing bytes still format.
func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  string
	}{
		{"wakeup", []byte{0xFA, 0xFF, 0x3E, 0x00, 0xC2}, "Wakeup"},
		{"wakeup ack", []byte{0xFA, 0xFF, 0x3F, 0x00, 0xC2}, "WakeupAck"},
		{"goto config ack", []byte{0xFA, 0xFF, 0x31, 0x00, 0xD0}, "GotoConfigAck"},
		{"device id", []byte{0xFA, 0xFF, 0x01, 0x04, 0x12, 0x34, 0x56, 0x78, 0x95},
			"DeviceId: 0x12345678"},
		{"device id truncated", []byte{0xFA, 0xFF, 0x01, 0x04, 0x12},
			"DeviceId: Failed to parse"},
		{"firmware revision", BuildFrame(MasterBusID, MIDFirmwareRevision, []byte{1, 9, 2}),
			"Firmware revision: 1.9.2"},
		{"error", BuildFrame(MasterBusID, MIDError, []byte{0x04}),
			"Error: code=0x04"},
		{"unhandled", BuildFrame(MasterBusID, MIDGotoConfig, nil),
			"Unhandled xbus message: MessageId = 0x30"},
		{"invalid preamble", []byte{0x01, 0x02, 0x03}, "Invalid xbus message"},
		{"empty buffer", nil, "Invalid xbus message"},
		{"mtdata2", BuildFrame(MasterBusID, MIDMtData2, []byte{0x10, 0x20, 0x02, 0x0B, 0x0A}),
			"MtData2: PC=2826"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMessage(tt.frame); got != tt.want {
				t.Errorf("FormatMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeasurementDataString(t *testing.T) {
	pc := uint16(2826)
	temp := float32(36.8984375)
	status := uint32(2)

	tests := []struct {
		name string
		data MeasurementData
		want string
	}{
		{"empty", MeasurementData{}, ""},
		{"euler only",
			MeasurementData{Euler: &EulerAngles{Roll: 45, Pitch: 30, Yaw: 90}},
			"Euler(R=45.00°, P=30.00°, Y=90.00°)"},
		{"counter and temperature",
			MeasurementData{PacketCounter: &pc, Temperature: &temp},
			"PC=2826, Temp=36.90°C"},
		{"status flags",
			MeasurementData{StatusWord: &status},
			"Status=0x00000002 [FilterValid]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeasurementDataStringNavigationFix(t *testing.T) {
	pc := uint16(7)
	alt := 56.714969451306
	status := uint32(7)
	data := MeasurementData{
		PacketCounter:     &pc,
		UTCTime:           &UTCTime{Nanoseconds: 749227324, Year: 2025, Month: 7, Day: 13, Hour: 9, Minute: 21, Second: 34},
		LatLon:            &LatLon{Latitude: 31.393166223541, Longitude: 121.229738174938},
		AltitudeEllipsoid: &alt,
		StatusWord:        &status,
	}
	want := "PC=7, UTC(2025-07-13 09:21:34.749227324), " +
		"LatLon(31.39316622, 121.22973817), Alt=56.715m, " +
		"Status=0x00000007 [SelfTest] [FilterValid] [GNSSFix]"
	if got := data.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

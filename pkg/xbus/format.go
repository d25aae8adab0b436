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
	"strings"
)

// FormatMessage renders a complete frame as a one-line human readable
// summary. It is presentation only, decoding errors degrade to generic
// text instead of being returned.
func FormatMessage(frame []byte) string {
	if !CheckPreamble(frame) {
		return "Invalid xbus message"
	}
	mid, err := GetMessageID(frame)
	if err != nil {
		return "Invalid xbus message"
	}
	switch mid {
	case MIDWakeup, MIDWakeupAck, MIDGotoConfigAck, MIDGotoMeasurementAck,
		MIDResetAck, MIDToggleIoPinsAck, MIDGotoBootLoaderAck, MIDFirmwareUpdate:
		return mid.String()
	case MIDDeviceID:
		id, err := ParseDeviceID(frame)
		if err != nil {
			return "DeviceId: Failed to parse"
		}
		return fmt.Sprintf("DeviceId: 0x%08X", id)
	case MIDFirmwareRevision:
		rev, err := ParseFirmwareRevision(frame)
		if err != nil {
			return "FirmwareRevision: Failed to parse"
		}
		return fmt.Sprintf("Firmware revision: %s", rev)
	case MIDError:
		code, err := ParseErrorCode(frame)
		if err != nil {
			return "Error: Failed to parse"
		}
		return fmt.Sprintf("Error: code=0x%02X", code)
	case MIDMtData2:
		data, err := ParseMTData2(frame)
		if err != nil {
			return "MtData2: Failed to parse"
		}
		return fmt.Sprintf("MtData2: %s", data)
	default:
		return fmt.Sprintf("Unhandled xbus message: MessageId = 0x%02X", byte(mid))
	}
}

// String renders the decoded data items as a comma separated summary,
// omitting absent items
func (d *MeasurementData) String() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
	}
	if d.PacketCounter != nil {
		sep()
		fmt.Fprintf(&b, "PC=%d", *d.PacketCounter)
	}
	if d.SampleTimeFine != nil {
		sep()
		fmt.Fprintf(&b, "STF=%d", *d.SampleTimeFine)
	}
	if d.UTCTime != nil {
		sep()
		t := d.UTCTime
		fmt.Fprintf(&b, "UTC(%04d-%02d-%02d %02d:%02d:%02d.%09d)",
			t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Nanoseconds)
	}
	if d.Euler != nil {
		sep()
		fmt.Fprintf(&b, "Euler(R=%.2f°, P=%.2f°, Y=%.2f°)", d.Euler.Roll, d.Euler.Pitch, d.Euler.Yaw)
	}
	if d.Quaternion != nil {
		sep()
		q := d.Quaternion
		fmt.Fprintf(&b, "Quat(W=%.7f, X=%.7f, Y=%.7f, Z=%.7f)", q.W, q.X, q.Y, q.Z)
	}
	if d.LatLon != nil {
		sep()
		fmt.Fprintf(&b, "LatLon(%.8f, %.8f)", d.LatLon.Latitude, d.LatLon.Longitude)
	}
	if d.AltitudeEllipsoid != nil {
		sep()
		fmt.Fprintf(&b, "Alt=%.3fm", *d.AltitudeEllipsoid)
	}
	if d.Velocity != nil {
		sep()
		fmt.Fprintf(&b, "Vel(%.4f, %.4f, %.4f)m/s", d.Velocity.X, d.Velocity.Y, d.Velocity.Z)
	}
	if d.Acceleration != nil {
		sep()
		fmt.Fprintf(&b, "Acc(%.4f, %.4f, %.4f)m/s2", d.Acceleration.X, d.Acceleration.Y, d.Acceleration.Z)
	}
	if d.RateOfTurn != nil {
		sep()
		fmt.Fprintf(&b, "Gyr(%.4f, %.4f, %.4f)rad/s", d.RateOfTurn.X, d.RateOfTurn.Y, d.RateOfTurn.Z)
	}
	if d.MagneticField != nil {
		sep()
		fmt.Fprintf(&b, "Mag(%.4f, %.4f, %.4f)a.u.", d.MagneticField.X, d.MagneticField.Y, d.MagneticField.Z)
	}
	if d.BarometricPressure != nil {
		sep()
		fmt.Fprintf(&b, "Baro=%dPa", *d.BarometricPressure)
	}
	if d.Temperature != nil {
		sep()
		fmt.Fprintf(&b, "Temp=%.2f°C", *d.Temperature)
	}
	if d.StatusWord != nil {
		sep()
		b.WriteString(formatStatusWord(*d.StatusWord))
	}
	return b.String()
}

func formatStatusWord(status uint32) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status=0x%08X", status)
	if status&0x0001 != 0 {
		b.WriteString(" [SelfTest]")
	}
	if status&0x0002 != 0 {
		b.WriteString(" [FilterValid]")
	}
	if status&0x0004 != 0 {
		b.WriteString(" [GNSSFix]")
	}
	return b.String()
}

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

// EulerAngles in degrees
type EulerAngles struct {
	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

// LatLon in degrees
type LatLon struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VelocityXYZ in m/s
type VelocityXYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion, W is the scalar component
type Quaternion struct {
	W float32 `json:"w"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// UTCTime as carried in the UtcTime data item
type UTCTime struct {
	Nanoseconds uint32 `json:"nanoseconds"`
	Year        uint16 `json:"year"`
	Month       uint8  `json:"month"`
	Day         uint8  `json:"day"`
	Hour        uint8  `json:"hour"`
	Minute      uint8  `json:"minute"`
	Second      uint8  `json:"second"`
	Flags       uint8  `json:"flags"`
}

// VectorXYZ is a 3-component float vector, used for acceleration (m/s2),
// rate of turn (rad/s) and magnetic field (arbitrary units)
type VectorXYZ struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// MeasurementData aggregates the data items of one MTData2 message. A nil
// field means the message did not carry that item. An aggregate is built
// per message and never reused across messages.
type MeasurementData struct {
	PacketCounter      *uint16      `json:"packetCounter,omitempty"`
	SampleTimeFine     *uint32      `json:"sampleTimeFine,omitempty"`
	Euler              *EulerAngles `json:"euler,omitempty"`
	StatusWord         *uint32      `json:"statusWord,omitempty"`
	LatLon             *LatLon      `json:"latLon,omitempty"`
	AltitudeEllipsoid  *float64     `json:"altitudeEllipsoid,omitempty"`
	Velocity           *VelocityXYZ `json:"velocity,omitempty"`
	UTCTime            *UTCTime     `json:"utcTime,omitempty"`
	Quaternion         *Quaternion  `json:"quaternion,omitempty"`
	BarometricPressure *uint32      `json:"barometricPressure,omitempty"`
	Acceleration       *VectorXYZ   `json:"acceleration,omitempty"`
	RateOfTurn         *VectorXYZ   `json:"rateOfTurn,omitempty"`
	MagneticField      *VectorXYZ   `json:"magneticField,omitempty"`
	Temperature        *float32     `json:"temperature,omitempty"`
}

// Empty reports whether no data item was decoded
func (d *MeasurementData) Empty() bool {
	return *d == MeasurementData{}
}

// ParseMTData2 decodes the measurement data items of a complete MTData2
// frame. The caller is expected to have verified the checksum already.
// A frame of any other message type yields ErrWrongMessageType.
func ParseMTData2(frame []byte) (*MeasurementData, error) {
	if !CheckPreamble(frame) {
		var got byte
		if len(frame) > 0 {
			got = frame[0]
		}
		return nil, ErrBadPreamble{Got: got}
	}
	mid, err := GetMessageID(frame)
	if err != nil {
		return nil, err
	}
	if mid != MIDMtData2 {
		return nil, ErrWrongMessageType{Want: MIDMtData2, Got: mid}
	}
	payload, err := GetPayload(frame)
	if err != nil {
		return nil, err
	}
	return DecodeMeasurementPayload(payload), nil
}

// DecodeMeasurementPayload walks the TLV records of an MTData2 payload.
// Unknown tags and known tags with an unexpected declared size are skipped
// by their declared size. A record whose declared size exceeds the
// remaining payload ends the walk, the items decoded so far are kept.
// The walk itself never fails, absent items are normal.
func DecodeMeasurementPayload(payload []byte) *MeasurementData {
	data := &MeasurementData{}
	r := NewReader(payload)
	for r.Remaining() >= 3 {
		tag, _ := r.Uint16()
		size, _ := r.Uint8()
		if int(size) > r.Remaining() {
			break
		}
		if !decodeDataItem(data, DataID(tag), int(size), r) {
			r.Skip(int(size))
		}
	}
	return data
}

// decodeDataItem decodes one data item into the aggregate. It returns false
// without consuming anything when the tag is unknown or the declared size
// does not match the expected size for the tag.
func decodeDataItem(data *MeasurementData, id DataID, size int, r *Reader) bool {
	switch id {
	case XDIPacketCounter:
		if size != 2 {
			return false
		}
		v, _ := r.Uint16()
		data.PacketCounter = &v
	case XDISampleTimeFine:
		if size != 4 {
			return false
		}
		v, _ := r.Uint32()
		data.SampleTimeFine = &v
	case XDIEulerAngles:
		if size != 12 {
			return false
		}
		e := &EulerAngles{}
		e.Roll, _ = r.Float32()
		e.Pitch, _ = r.Float32()
		e.Yaw, _ = r.Float32()
		data.Euler = e
	case XDIStatusWord:
		if size != 4 {
			return false
		}
		v, _ := r.Uint32()
		data.StatusWord = &v
	case XDILatLon:
		if size != 12 {
			return false
		}
		ll := &LatLon{}
		ll.Latitude, _ = r.FP1632()
		ll.Longitude, _ = r.FP1632()
		data.LatLon = ll
	case XDIAltitudeEllipsoid:
		if size != 6 {
			return false
		}
		v, _ := r.FP1632()
		data.AltitudeEllipsoid = &v
	case XDIVelocityXYZ:
		if size != 18 {
			return false
		}
		vel := &VelocityXYZ{}
		vel.X, _ = r.FP1632()
		vel.Y, _ = r.FP1632()
		vel.Z, _ = r.FP1632()
		data.Velocity = vel
	case XDIUtcTime:
		if size != 12 {
			return false
		}
		t := &UTCTime{}
		t.Nanoseconds, _ = r.Uint32()
		t.Year, _ = r.Uint16()
		t.Month, _ = r.Uint8()
		t.Day, _ = r.Uint8()
		t.Hour, _ = r.Uint8()
		t.Minute, _ = r.Uint8()
		t.Second, _ = r.Uint8()
		t.Flags, _ = r.Uint8()
		data.UTCTime = t
	case XDIQuaternion:
		if size != 16 {
			return false
		}
		q := &Quaternion{}
		q.W, _ = r.Float32()
		q.X, _ = r.Float32()
		q.Y, _ = r.Float32()
		q.Z, _ = r.Float32()
		data.Quaternion = q
	case XDIBarometricPressure:
		if size != 4 {
			return false
		}
		v, _ := r.Uint32()
		data.BarometricPressure = &v
	case XDIAcceleration:
		if size != 12 {
			return false
		}
		data.Acceleration = decodeVector(r)
	case XDIRateOfTurn:
		if size != 12 {
			return false
		}
		data.RateOfTurn = decodeVector(r)
	case XDIMagneticField:
		if size != 12 {
			return false
		}
		data.MagneticField = decodeVector(r)
	case XDITemperature:
		if size != 4 {
			return false
		}
		v, _ := r.Float32()
		data.Temperature = &v
	default:
		return false
	}
	return true
}

func decodeVector(r *Reader) *VectorXYZ {
	v := &VectorXYZ{}
	v.X, _ = r.Float32()
	v.Y, _ = r.Float32()
	v.Z, _ = r.Float32()
	return v
}

// FirmwareRevision as carried in the FirmwareRevision message
type FirmwareRevision struct {
	Major uint8 `json:"major"`
	Minor uint8 `json:"minor"`
	Patch uint8 `json:"patch"`
}

func (f FirmwareRevision) String() string {
	return fmt.Sprintf("%d.%d.%d", f.Major, f.Minor, f.Patch)
}

// ParseDeviceID decodes the device id from a DeviceId frame
func ParseDeviceID(frame []byte) (uint32, error) {
	payload, err := messagePayload(frame, MIDDeviceID)
	if err != nil {
		return 0, err
	}
	return NewReader(payload).Uint32()
}

// ParseFirmwareRevision decodes the firmware version from a
// FirmwareRevision frame
func ParseFirmwareRevision(frame []byte) (FirmwareRevision, error) {
	var rev FirmwareRevision
	payload, err := messagePayload(frame, MIDFirmwareRevision)
	if err != nil {
		return rev, err
	}
	r := NewReader(payload)
	if rev.Major, err = r.Uint8(); err != nil {
		return rev, err
	}
	if rev.Minor, err = r.Uint8(); err != nil {
		return rev, err
	}
	if rev.Patch, err = r.Uint8(); err != nil {
		return rev, err
	}
	return rev, nil
}

// ParseErrorCode decodes the error code from an Error frame
func ParseErrorCode(frame []byte) (uint8, error) {
	payload, err := messagePayload(frame, MIDError)
	if err != nil {
		return 0, err
	}
	return NewReader(payload).Uint8()
}

func messagePayload(frame []byte, want MessageID) ([]byte, error) {
	if !CheckPreamble(frame) {
		var got byte
		if len(frame) > 0 {
			got = frame[0]
		}
		return nil, ErrBadPreamble{Got: got}
	}
	mid, err := GetMessageID(frame)
	if err != nil {
		return nil, err
	}
	if mid != want {
		return nil, ErrWrongMessageType{Want: want, Got: mid}
	}
	return GetPayload(frame)
}

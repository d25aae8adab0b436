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

// DataID is an Xsens Data Identifier, the 16-bit tag of a TLV record in an
// MTData2 payload
type DataID uint16

const (
	XDITemperature        DataID = 0x0810
	XDIUtcTime            DataID = 0x1010
	XDIPacketCounter      DataID = 0x1020
	XDISampleTimeFine     DataID = 0x1060
	XDIQuaternion         DataID = 0x2010
	XDIEulerAngles        DataID = 0x2030
	XDIBarometricPressure DataID = 0x3010
	XDIAcceleration       DataID = 0x4020
	XDIAltitudeEllipsoid  DataID = 0x5022
	XDILatLon             DataID = 0x5042
	XDIRateOfTurn         DataID = 0x8020
	XDIMagneticField      DataID = 0xC020
	XDIVelocityXYZ        DataID = 0xD012
	XDIStatusWord         DataID = 0xE020
)

var xdiNames = map[DataID]string{
	XDITemperature:        "Temperature",
	XDIUtcTime:            "UtcTime",
	XDIPacketCounter:      "PacketCounter",
	XDISampleTimeFine:     "SampleTimeFine",
	XDIQuaternion:         "Quaternion",
	XDIEulerAngles:        "EulerAngles",
	XDIBarometricPressure: "BarometricPressure",
	XDIAcceleration:       "Acceleration",
	XDIAltitudeEllipsoid:  "AltitudeEllipsoid",
	XDILatLon:             "LatLon",
	XDIRateOfTurn:         "RateOfTurn",
	XDIMagneticField:      "MagneticField",
	XDIVelocityXYZ:        "VelocityXYZ",
	XDIStatusWord:         "StatusWord",
}

func (x DataID) String() string {
	name, ok := xdiNames[x]
	if !ok {
		return "Unknown"
	}
	return name
}

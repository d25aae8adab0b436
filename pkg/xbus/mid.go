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

// MessageID identifies an Xbus message type
type MessageID byte

const (
	MIDReqDid              MessageID = 0x00
	MIDDeviceID            MessageID = 0x01
	MIDGotoMeasurement     MessageID = 0x10
	MIDGotoMeasurementAck  MessageID = 0x11
	MIDReqFirmwareRevision MessageID = 0x12
	MIDFirmwareRevision    MessageID = 0x13
	MIDGotoConfig          MessageID = 0x30
	MIDGotoConfigAck       MessageID = 0x31
	MIDMtData2             MessageID = 0x36
	MIDWakeup              MessageID = 0x3E
	MIDWakeupAck           MessageID = 0x3F
	MIDReset               MessageID = 0x40
	MIDResetAck            MessageID = 0x41
	MIDError               MessageID = 0x42
	MIDToggleIoPins        MessageID = 0xBE
	MIDToggleIoPinsAck     MessageID = 0xBF
	MIDReqOutputConfig     MessageID = 0xC0
	MIDSetOutputConfig     MessageID = 0xC0
	MIDOutputConfig        MessageID = 0xC1
	MIDGotoBootLoader      MessageID = 0xF0
	MIDGotoBootLoaderAck   MessageID = 0xF1
	MIDFirmwareUpdate      MessageID = 0xF2
)

var midNames = map[MessageID]string{
	MIDReqDid:              "ReqDid",
	MIDDeviceID:            "DeviceId",
	MIDGotoMeasurement:     "GotoMeasurement",
	MIDGotoMeasurementAck:  "GotoMeasurementAck",
	MIDReqFirmwareRevision: "ReqFirmwareRevision",
	MIDFirmwareRevision:    "FirmwareRevision",
	MIDGotoConfig:          "GotoConfig",
	MIDGotoConfigAck:       "GotoConfigAck",
	MIDMtData2:             "MtData2",
	MIDWakeup:              "Wakeup",
	MIDWakeupAck:           "WakeupAck",
	MIDReset:               "Reset",
	MIDResetAck:            "ResetAck",
	MIDError:               "Error",
	MIDToggleIoPins:        "ToggleIoPins",
	MIDToggleIoPinsAck:     "ToggleIoPinsAck",
	MIDReqOutputConfig:     "ReqOutputConfig",
	MIDOutputConfig:        "OutputConfig",
	MIDGotoBootLoader:      "GotoBootLoader",
	MIDGotoBootLoaderAck:   "GotoBootLoaderAck",
	MIDFirmwareUpdate:      "FirmwareUpdate",
}

func (m MessageID) String() string {
	name, ok := midNames[m]
	if !ok {
		return fmt.Sprintf("MessageID(0x%02X)", byte(m))
	}
	return name
}

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

package layers

import (
	"bytes"
	"testing"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

func TestXbusLayerDecode(t *testing.T) {
	payload := []byte{0x12, 0x34, 0x56, 0x78}
	frame := xbus.BuildFrame(xbus.MasterBusID, xbus.MIDDeviceID, payload)

	packet := gopacket.NewPacket(frame, XbusLayerType, gopacket.Default)
	if packet.ErrorLayer() != nil {
		t.Fatalf("decode failed: %v", packet.ErrorLayer().Error())
	}
	layer := packet.Layer(XbusLayerType)
	if layer == nil {
		t.Fatal("packet has no Xbus layer")
	}
	xl := layer.(*XbusLayer)
	if xl.BusID != xbus.MasterBusID {
		t.Errorf("BusID = 0x%02X, want 0xFF", xl.BusID)
	}
	if xl.MID != xbus.MIDDeviceID {
		t.Errorf("MID = %s, want DeviceId", xl.MID)
	}
	if xl.PayloadLength != len(payload) {
		t.Errorf("PayloadLength = %d, want %d", xl.PayloadLength, len(payload))
	}
	if xl.Checksum != frame[len(frame)-1] {
		t.Errorf("Checksum = 0x%02X, want 0x%02X", xl.Checksum, frame[len(frame)-1])
	}
	if !bytes.Equal(xl.LayerPayload(), payload) {
		t.Errorf("LayerPayload = % X, want % X", xl.LayerPayload(), payload)
	}
}

func TestXbusLayerRoutesMeasurementPayload(t *testing.T) {
	frame := xbus.BuildFrame(xbus.MasterBusID, xbus.MIDMtData2,
		[]byte{0x10, 0x20, 0x02, 0x0B, 0x0A})

	packet := gopacket.NewPacket(frame, XbusLayerType, gopacket.Default)
	if packet.ErrorLayer() != nil {
		t.Fatalf("decode failed: %v", packet.ErrorLayer().Error())
	}
	layer := packet.Layer(MTData2LayerType)
	if layer == nil {
		t.Fatal("packet has no MTData2 layer")
	}
	ml := layer.(*MTData2Layer)
	if ml.Data == nil || ml.Data.PacketCounter == nil || *ml.Data.PacketCounter != 2826 {
		t.Fatalf("Data = %+v, want packet counter 2826", ml.Data)
	}
}

func TestXbusLayerOpaquePayloadStaysOpaque(t *testing.T) {
	frame := xbus.BuildFrame(xbus.MasterBusID, xbus.MIDError, []byte{0x04})
	packet := gopacket.NewPacket(frame, XbusLayerType, gopacket.Default)
	if packet.Layer(MTData2LayerType) != nil {
		t.Fatal("an Error frame must not decode into a measurement layer")
	}
	if packet.Layer(XbusLayerType) == nil {
		t.Fatal("packet has no Xbus layer")
	}
}

func TestXbusLayerSerialize(t *testing.T) {
	tests := []struct {
		name    string
		mid     xbus.MessageID
		payload []byte
	}{
		{"command without payload", xbus.MIDGotoConfig, nil},
		{"with payload", xbus.MIDDeviceID, []byte{0x12, 0x34, 0x56, 0x78}},
		{"extended length", xbus.MIDMtData2, make([]byte, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := &XbusLayer{BusID: xbus.MasterBusID, MID: tt.mid}
			buf := gopacket.NewSerializeBuffer()
			err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
				layer, gopacket.Payload(tt.payload))
			if err != nil {
				t.Fatalf("SerializeLayers returned error: %v", err)
			}
			want := xbus.BuildFrame(xbus.MasterBusID, tt.mid, tt.payload)
			if !bytes.Equal(buf.Bytes(), want) {
				t.Fatalf("serialized frame = % X, want % X", buf.Bytes(), want)
			}
			if layer.PayloadLength != len(tt.payload) {
				t.Errorf("PayloadLength = %d, want %d", layer.PayloadLength, len(tt.payload))
			}
			if layer.Checksum != want[len(want)-1] {
				t.Errorf("Checksum = 0x%02X, want 0x%02X", layer.Checksum, want[len(want)-1])
			}
		})
	}
}

func TestXbusLayerSerializeDecodeRoundTrip(t *testing.T) {
	buf := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
		&XbusLayer{BusID: xbus.MasterBusID, MID: xbus.MIDGotoMeasurement})
	if err != nil {
		t.Fatalf("SerializeLayers returned error: %v", err)
	}
	packet := gopacket.NewPacket(buf.Bytes(), XbusLayerType, gopacket.Default)
	if packet.ErrorLayer() != nil {
		t.Fatalf("decode failed: %v", packet.ErrorLayer().Error())
	}
	xl := packet.Layer(XbusLayerType).(*XbusLayer)
	if xl.MID != xbus.MIDGotoMeasurement || xl.PayloadLength != 0 {
		t.Fatalf("round trip gave MID %s with %d payload bytes", xl.MID, xl.PayloadLength)
	}
}

func TestXbusLayerDecodeChecksumFailure(t *testing.T) {
	frame := xbus.BuildFrame(xbus.MasterBusID, xbus.MIDDeviceID, []byte{0x12, 0x34, 0x56, 0x78})
	frame[4] ^= 0xFF

	packet := gopacket.NewPacket(frame, XbusLayerType, gopacket.Default)
	if packet.ErrorLayer() == nil {
		t.Fatal("expected a decode error for a corrupted frame")
	}
	if packet.Layer(XbusLayerType) != nil {
		t.Fatal("a corrupted frame must not yield an Xbus layer")
	}
}

func TestXbusLayerDecodeTruncated(t *testing.T) {
	frame := xbus.BuildFrame(xbus.MasterBusID, xbus.MIDDeviceID, []byte{0x12, 0x34, 0x56, 0x78})

	packet := gopacket.NewPacket(frame[:6], XbusLayerType, gopacket.Default)
	if packet.ErrorLayer() == nil {
		t.Fatal("expected a decode error for a truncated frame")
	}
	if !packet.Metadata().Truncated {
		t.Fatal("a truncated frame must mark the packet as truncated")
	}
}

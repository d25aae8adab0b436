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
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

const (
	// MTData2LayerNum identifies the measurement payload layer
	MTData2LayerNum = 1998
)

// MTData2Layer carries the decoded measurement data items of one MTData2
// payload. Serialization is intentionally not implemented, the host never
// produces measurement messages.
type MTData2Layer struct {
	layers.BaseLayer
	Data *xbus.MeasurementData
}

var MTData2LayerType = gopacket.RegisterLayerType(MTData2LayerNum,
	gopacket.LayerTypeMetadata{Name: "MTData2LayerType", Decoder: gopacket.DecodeFunc(DecodeMTData2Layer)})

func (l *MTData2Layer) LayerType() gopacket.LayerType {
	return MTData2LayerType
}

// DecodeFromBytes walks the TLV records of an MTData2 payload. The walk
// itself never fails, skipping unknown records is part of the protocol.
func (l *MTData2Layer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	l.BaseLayer = layers.BaseLayer{
		Contents: data,
		Payload:  nil,
	}
	l.Data = xbus.DecodeMeasurementPayload(data)
	return nil
}

func DecodeMTData2Layer(data []byte, p gopacket.PacketBuilder) error {
	l := &MTData2Layer{}
	if err := l.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(l)
	return nil
}

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

// Package layers plugs the Xbus protocol into the gopacket layer catalog so
// complete frames coming out of the synchronizer can run through the usual
// gopacket packet pipeline.
package layers

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-xbus/pkg/log"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

const (
	// XbusLayerNum identifies the envelope layer
	XbusLayerNum = 1999
)

// XbusLayer is the outer Xbus envelope: preamble, bus id, message id,
// short or extended length field and the trailing checksum. The layer
// payload is the message payload without the checksum byte.
type XbusLayer struct {
	layers.BaseLayer
	BusID         byte
	MID           xbus.MessageID
	PayloadLength int
	Checksum      byte
}

var XbusLayerType = gopacket.RegisterLayerType(XbusLayerNum,
	gopacket.LayerTypeMetadata{Name: "XbusLayerType", Decoder: gopacket.DecodeFunc(DecodeXbusLayer)})

func (l *XbusLayer) LayerType() gopacket.LayerType {
	return XbusLayerType
}

// SerializeTo serializes the envelope around whatever payload is already in
// the SerializeBuffer and appends the checksum. The length form is chosen
// from the payload size, so opts.FixLengths is effectively always on.
func (l *XbusLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	payloadLength := len(b.Bytes())
	header := xbus.BuildEnvelope(l.BusID, l.MID, payloadLength)

	headerBytes, err := b.PrependBytes(len(header))
	if err != nil {
		return err
	}
	copy(headerBytes, header)

	tailBytes, err := b.AppendBytes(1)
	if err != nil {
		return err
	}
	tailBytes[0] = 0

	frame := b.Bytes()
	if err := xbus.InsertChecksum(frame); err != nil {
		return err
	}
	l.PayloadLength = payloadLength
	l.Checksum = frame[len(frame)-1]
	return nil
}

// DecodeFromBytes attempts to decode the byte slice as a complete Xbus frame
func (l *XbusLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < xbus.MinFrameSize {
		df.SetTruncated()
		return xbus.ErrFrameTooShort{Len: len(data), Need: xbus.MinFrameSize}
	}
	if !xbus.CheckPreamble(data) {
		return xbus.ErrBadPreamble{Got: data[0]}
	}
	rawLength, err := xbus.GetRawLength(data)
	if err != nil {
		df.SetTruncated()
		return err
	}
	if len(data) < rawLength {
		df.SetTruncated()
		return xbus.ErrFrameTooShort{Len: len(data), Need: rawLength}
	}
	if !xbus.VerifyChecksum(data) {
		return xbus.ErrChecksum{}
	}

	start := xbus.PayloadStart(data)
	l.BaseLayer = layers.BaseLayer{
		Contents: data[:start],
		Payload:  data[start : rawLength-1],
	}

	l.BusID, _ = xbus.GetBusID(data)
	l.MID, _ = xbus.GetMessageID(data)
	l.PayloadLength = rawLength - start - 1
	l.Checksum = data[rawLength-1]
	return nil
}

// NextLayerType routes MTData2 payloads to the measurement layer, payloads
// of all other message types stay opaque
func (l *XbusLayer) NextLayerType() gopacket.LayerType {
	if l.MID == xbus.MIDMtData2 {
		return MTData2LayerType
	}
	return gopacket.LayerTypePayload
}

func DecodeXbusLayer(data []byte, p gopacket.PacketBuilder) error {
	l := &XbusLayer{}
	err := l.DecodeFromBytes(data, p)
	if err != nil {
		log.Error("Error while decoding xbus layer: %s", err)
		return err
	}
	p.AddLayer(l)
	return p.NextDecoder(l.NextLayerType())
}

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
	"context"
	"encoding/hex"
	"io"
	"time"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/layers"
	"jinr.ru/greenlab/go-xbus/pkg/log"
	"jinr.ru/greenlab/go-xbus/pkg/serial"
	"jinr.ru/greenlab/go-xbus/pkg/srv"
	"jinr.ru/greenlab/go-xbus/pkg/srv/monitor/ifc"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

const (
	InChSize       = 100
	OutChSize      = 100
	ReadBufferSize = 4096
)

// MonitorServer reads the sensor byte stream from a serial port, recovers
// and decodes frames, and serves the latest device view over HTTP
type MonitorServer struct {
	srv.Server
	api     ifc.ApiServer
	port    serial.Port
	sync    *xbus.Synchronizer
	state   *State
	metrics *Metrics
}

var _ ifc.MonitorServer = &MonitorServer{}

func NewMonitorServer(ctx context.Context, cfg *config.Config, port serial.Port) (*MonitorServer, error) {
	log.Info("Initializing monitor server with device: %s", cfg.Serial.Device)

	s := &MonitorServer{
		Server: srv.Server{
			Context: ctx,
			Config:  cfg,
			ChIn:    make(chan srv.InPacket, InChSize),
			ChOut:   make(chan srv.OutPacket, OutChSize),
		},
		port:    port,
		sync:    xbus.NewSynchronizer(),
		state:   NewState(),
		metrics: NewMetrics(),
	}

	apiServer, err := NewApiServer(ctx, cfg, s, s.metrics)
	if err != nil {
		return nil, err
	}
	s.api = apiServer

	return s, nil
}

func (s *MonitorServer) Run() error {
	errChan := make(chan error, 1)

	// Read chunks from the serial port, feed the synchronizer and put
	// recovered frames to the input queue
	go func() {
		defer close(s.ChIn)
		buffer := make([]byte, ReadBufferSize)
		var prev xbus.SyncStats
		for {
			select {
			case <-s.Context.Done():
				return
			default:
			}
			n, readErr := s.port.Read(buffer)
			if n > 0 {
				frames := s.sync.Feed(buffer[:n])
				stats := s.sync.Stats()
				s.metrics.ObserveSync(prev, stats)
				s.state.SetSyncStats(stats)
				prev = stats
				for _, frame := range frames {
					captureInfo := gopacket.CaptureInfo{
						Length:        len(frame),
						CaptureLength: len(frame),
						Timestamp:     time.Now(),
					}
					s.ChIn <- srv.InPacket{CaptureInfo: captureInfo, Data: frame}
				}
			}
			if readErr != nil {
				// a read timeout surfaces as io.EOF with no data
				if readErr == io.EOF {
					continue
				}
				errChan <- readErr
				return
			}
		}
	}()

	// Read frames from the output queue and send them to the device
	go func() {
		for {
			outPacket, ok := <-s.ChOut
			if !ok {
				return
			}
			log.Debug("Sending frame to %s data: %s", s.Config.Serial.Device, hex.EncodeToString(outPacket.Data))
			_, sendErr := s.port.Write(outPacket.Data)
			if sendErr != nil {
				log.Error("Error while sending frame to %s", s.Config.Serial.Device)
				errChan <- sendErr
				return
			}
		}
	}()

	// Read frames from the input queue and handle them properly
	go func() {
		source := gopacket.NewPacketSource(&s.Server, layers.XbusLayerType)
		for packet := range source.Packets() {
			s.handlePacket(packet)
		}
	}()

	go func() {
		errChan <- s.api.Run()
	}()

	if err := s.Probe(); err != nil {
		return err
	}

	select {
	case <-s.Context.Done():
		return s.Context.Err()
	case err := <-errChan:
		return err
	}
}

// Probe asks the device for its identity so the status endpoint can report
// it. The device answers only in config mode, silence is not an error.
func (s *MonitorServer) Probe() error {
	if err := s.SendCommand(xbus.MIDReqDid); err != nil {
		return err
	}
	return s.SendCommand(xbus.MIDReqFirmwareRevision)
}

// SendCommand queues a zero-payload command frame for the device
func (s *MonitorServer) SendCommand(mid xbus.MessageID) error {
	x := &layers.XbusLayer{
		BusID: xbus.MasterBusID,
		MID:   mid,
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{}
	if err := gopacket.SerializeLayers(buf, opts, x); err != nil {
		log.Error("Error while serializing %s command frame", mid)
		return err
	}
	log.Debug("Put %s command to output queue: %s", mid, hex.EncodeToString(buf.Bytes()))
	s.ChOut <- srv.OutPacket{Data: buf.Bytes()}
	s.metrics.ObserveCommand(mid)
	return nil
}

// Measurement returns the latest decoded measurement
func (s *MonitorServer) Measurement() (*xbus.MeasurementData, bool) {
	return s.state.Measurement()
}

// Status returns a snapshot of the device view
func (s *MonitorServer) Status() srv.Status {
	return s.state.Status(s.Config.Serial.Device)
}

func (s *MonitorServer) handlePacket(packet gopacket.Packet) {
	xbusLayer := packet.Layer(layers.XbusLayerType)
	if xbusLayer == nil {
		log.Error("Error while decoding frame: %s", hex.EncodeToString(packet.Data()))
		return
	}
	x := xbusLayer.(*layers.XbusLayer)
	s.metrics.ObserveFrame(x.MID)

	switch x.MID {
	case xbus.MIDMtData2:
		mtdata2Layer := packet.Layer(layers.MTData2LayerType)
		if mtdata2Layer == nil {
			log.Error("Error while decoding measurement payload")
			return
		}
		data := mtdata2Layer.(*layers.MTData2Layer).Data
		log.Debug("MtData2 frame successfully parsed: %s", data)
		s.state.SetMeasurement(data)
		s.metrics.ObserveMeasurement(data)
	case xbus.MIDDeviceID:
		id, err := xbus.ParseDeviceID(packet.Data())
		if err != nil {
			log.Error("Error while parsing DeviceId frame: %s", err)
			return
		}
		log.Info("Device id: 0x%08X", id)
		s.state.SetDeviceID(id)
	case xbus.MIDFirmwareRevision:
		rev, err := xbus.ParseFirmwareRevision(packet.Data())
		if err != nil {
			log.Error("Error while parsing FirmwareRevision frame: %s", err)
			return
		}
		log.Info("Firmware revision: %s", rev)
		s.state.SetFirmware(rev)
	case xbus.MIDError:
		code, err := xbus.ParseErrorCode(packet.Data())
		if err != nil {
			log.Error("Error while parsing Error frame: %s", err)
			return
		}
		log.Error("Device reported error: code=0x%02X", code)
		s.state.SetLastError(code)
	default:
		log.Debug("Received %s", xbus.FormatMessage(packet.Data()))
	}
}

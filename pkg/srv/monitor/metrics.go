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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

// Metrics contains the Prometheus metrics of a monitor server
type Metrics struct {
	registry *prometheus.Registry

	// Stream metrics
	BytesRead      prometheus.Counter
	FramesDecoded  *prometheus.CounterVec
	ChecksumErrors prometheus.Counter
	Resyncs        prometheus.Counter
	DiscardedBytes prometheus.Counter

	// Device metrics
	CommandsSent    *prometheus.CounterVec
	LastMeasurement prometheus.Gauge
	PacketCounter   prometheus.Gauge
}

// NewMetrics creates all monitor metrics on a dedicated registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		BytesRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "xbus_bytes_read_total",
			Help: "Total number of bytes read from the serial port",
		}),
		FramesDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "xbus_frames_decoded_total",
			Help: "Total number of checksum-valid frames, by message identifier",
		}, []string{"mid"}),
		ChecksumErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "xbus_checksum_errors_total",
			Help: "Total number of frames dropped for checksum mismatch",
		}),
		Resyncs: factory.NewCounter(prometheus.CounterOpts{
			Name: "xbus_resyncs_total",
			Help: "Total number of stream resynchronizations",
		}),
		DiscardedBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "xbus_discarded_bytes_total",
			Help: "Total number of bytes discarded while searching for a preamble",
		}),
		CommandsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "xbus_commands_sent_total",
			Help: "Total number of command frames sent to the device, by message identifier",
		}, []string{"mid"}),
		LastMeasurement: factory.NewGauge(prometheus.GaugeOpts{
			Name: "xbus_last_measurement_timestamp_seconds",
			Help: "Unix time of the last decoded measurement",
		}),
		PacketCounter: factory.NewGauge(prometheus.GaugeOpts{
			Name: "xbus_packet_counter",
			Help: "Packet counter of the last decoded measurement",
		}),
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSync applies the difference between two synchronizer snapshots
func (m *Metrics) ObserveSync(prev, cur xbus.SyncStats) {
	m.BytesRead.Add(float64(cur.Bytes - prev.Bytes))
	m.ChecksumErrors.Add(float64(cur.ChecksumErrors - prev.ChecksumErrors))
	m.Resyncs.Add(float64(cur.Resyncs - prev.Resyncs))
	m.DiscardedBytes.Add(float64(cur.Discarded - prev.Discarded))
}

// ObserveFrame counts a decoded frame against its message identifier
func (m *Metrics) ObserveFrame(mid xbus.MessageID) {
	m.FramesDecoded.WithLabelValues(mid.String()).Inc()
}

// ObserveCommand counts a command frame sent to the device
func (m *Metrics) ObserveCommand(mid xbus.MessageID) {
	m.CommandsSent.WithLabelValues(mid.String()).Inc()
}

// ObserveMeasurement records the arrival of a decoded measurement
func (m *Metrics) ObserveMeasurement(data *xbus.MeasurementData) {
	m.LastMeasurement.SetToCurrentTime()
	if data.PacketCounter != nil {
		m.PacketCounter.Set(float64(*data.PacketCounter))
	}
}

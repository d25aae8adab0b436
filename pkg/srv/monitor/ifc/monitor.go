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

package ifc

import (
	"jinr.ru/greenlab/go-xbus/pkg/srv"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

// MonitorServer is the part of the daemon the API layer talks to
type MonitorServer interface {
	Run() error

	// SendCommand queues a zero-payload command frame for the device
	SendCommand(mid xbus.MessageID) error

	// Measurement returns the latest decoded MTData2 aggregate
	Measurement() (*xbus.MeasurementData, bool)

	Status() srv.Status
}

type ApiServer interface {
	Run() error
}

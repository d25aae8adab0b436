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

// ApiClient talks to the monitor server API
type ApiClient interface {
	// Data returns the latest decoded measurement
	Data() (*xbus.MeasurementData, error)

	// DataText returns the latest measurement as a one-line summary
	DataText() (string, error)

	// Status returns the monitor status snapshot
	Status() (*srv.Status, error)

	// SendCommand asks the monitor to send a command frame to the device
	SendCommand(name string) error
}

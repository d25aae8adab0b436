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
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-xbus/pkg/command"
	"jinr.ru/greenlab/go-xbus/pkg/config"
)

const (
	DeviceOptionName  = "device"
	BaudOptionName    = "baud"
	ApiHostOptionName = "api-host"
	ApiPortOptionName = "api-port"
)

func NewCommand() *cobra.Command {
	var device, apiHost string
	var baud, apiPort int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Start monitor server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if device != "" {
				cfg.Serial.Device = device
			}
			if baud != 0 {
				cfg.Serial.Baud = baud
			}
			if apiHost != "" {
				cfg.Api.Host = apiHost
			}
			if apiPort != 0 {
				cfg.Api.Port = apiPort
			}
			return command.StartMonitorServer(cfg)
		},
	}
	cmd.Flags().StringVar(&device, DeviceOptionName, "", fmt.Sprintf("Serial device to read. E.g. %s", config.DefaultSerialDevice))
	cmd.Flags().IntVar(&baud, BaudOptionName, 0, fmt.Sprintf("Baud rate. E.g. %d", config.DefaultBaud))
	cmd.Flags().StringVar(&apiHost, ApiHostOptionName, "", fmt.Sprintf("API address to bind. E.g. %s", config.DefaultApiHost))
	cmd.Flags().IntVar(&apiPort, ApiPortOptionName, 0, fmt.Sprintf("API port to bind. E.g. %d", config.DefaultApiPort))

	return cmd
}

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

package device

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Query the device and send commands through the monitor API",
	}
	cmd.AddCommand(NewDataCommand())
	cmd.AddCommand(NewTextCommand())
	cmd.AddCommand(NewStatusCommand())
	cmd.AddCommand(NewSendCommand("wakeup", "wakeup", "Send Wakeup message to the device"))
	cmd.AddCommand(NewSendCommand("goto-config", "goto-config", "Put the device into config mode"))
	cmd.AddCommand(NewSendCommand("goto-measurement", "goto-measurement", "Put the device into measurement mode"))
	cmd.AddCommand(NewSendCommand("id", "req-did", "Request the device id"))
	cmd.AddCommand(NewSendCommand("firmware", "req-firmware", "Request the firmware revision"))
	cmd.AddCommand(NewSendCommand("reset", "reset", "Reset the device"))
	return cmd
}

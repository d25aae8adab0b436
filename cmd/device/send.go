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

	"jinr.ru/greenlab/go-xbus/pkg/command"
	"jinr.ru/greenlab/go-xbus/pkg/config"
)

// NewSendCommand creates a command that posts the named device command to
// the monitor API
func NewSendCommand(use, name, short string) *cobra.Command {
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return command.NewApiClient(cfg).SendCommand(name)
		},
	}
	return cmd
}

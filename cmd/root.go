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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-xbus/cmd/completion"
	"jinr.ru/greenlab/go-xbus/cmd/config"
	"jinr.ru/greenlab/go-xbus/cmd/decode"
	"jinr.ru/greenlab/go-xbus/cmd/device"
	"jinr.ru/greenlab/go-xbus/cmd/monitor"
	"jinr.ru/greenlab/go-xbus/cmd/watch"
	pkgconfig "jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "go-xbus",
		Short: "Tool to work with Xsens motion trackers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if cfg.LogFile != "" {
				log.InitFile(cfg.LogFile, cfg.LogLevel)
			} else {
				log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
			}
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand())
	cmd.AddCommand(monitor.NewCommand())
	cmd.AddCommand(device.NewCommand())
	cmd.AddCommand(decode.NewCommand())
	cmd.AddCommand(watch.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}

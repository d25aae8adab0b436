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

package decode

import (
	"errors"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-xbus/pkg/command"
)

const (
	HexOptionName  = "hex"
	FileOptionName = "file"
)

func NewCommand() *cobra.Command {
	var hexDump, file string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a raw Xbus byte dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case hexDump != "":
				return command.DecodeHex(hexDump, cmd.OutOrStdout())
			case file != "":
				return command.DecodeFile(file, cmd.OutOrStdout())
			default:
				return errors.New("Either --hex or --file must be given")
			}
		},
	}
	cmd.Flags().StringVar(&hexDump, HexOptionName, "", "Hex encoded bytes to decode. E.g. FAFF3E00C3")
	cmd.Flags().StringVar(&file, FileOptionName, "", "File containing a raw byte dump")

	return cmd
}

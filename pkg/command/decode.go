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

package command

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"jinr.ru/greenlab/go-xbus/pkg/log"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

// DecodeDump runs the synchronizer over a raw byte dump and writes one
// formatted line per recovered message
func DecodeDump(dump []byte, out io.Writer) error {
	sync := xbus.NewSynchronizer()
	for _, frame := range sync.Feed(dump) {
		if _, err := fmt.Fprintln(out, xbus.FormatMessage(frame)); err != nil {
			return err
		}
	}
	stats := sync.Stats()
	if stats.Frames == 0 {
		log.Warning("No messages found in %d bytes", stats.Bytes)
	}
	log.Debug("Decoded %d messages: bytes: %d discarded: %d checksum errors: %d resyncs: %d",
		stats.Frames, stats.Bytes, stats.Discarded, stats.ChecksumErrors, stats.Resyncs)
	return nil
}

// DecodeFile decodes a file containing a raw byte dump
func DecodeFile(path string, out io.Writer) error {
	dump, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return DecodeDump(dump, out)
}

// DecodeHex decodes a hex string, whitespace between bytes is allowed
func DecodeHex(s string, out io.Writer) error {
	dump, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return err
	}
	return DecodeDump(dump, out)
}

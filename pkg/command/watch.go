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
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jinr.ru/greenlab/go-xbus/pkg/command/ifc"
	"jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/srv"
)

const watchInterval = 250 * time.Millisecond

type tickMsg time.Time

type refreshMsg struct {
	text   string
	status *srv.Status
	err    error
}

type commandMsg struct {
	name string
	err  error
}

// watchModel is the terminal UI state of the watch command
type watchModel struct {
	client      ifc.ApiClient
	text        string
	status      *srv.Status
	err         error
	lastCommand string
}

func newWatchModel(client ifc.ApiClient) watchModel {
	return watchModel{client: client}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.refresh, watchTick())
}

func (m watchModel) refresh() tea.Msg {
	// no measurement yet is not an error worth showing, the status
	// endpoint tells the whole story
	text, _ := m.client.DataText()
	status, err := m.client.Status()
	return refreshMsg{text: text, status: status, err: err}
}

func (m watchModel) sendCommand(name string) tea.Cmd {
	return func() tea.Msg {
		return commandMsg{name: name, err: m.client.SendCommand(name)}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "c":
			return m, m.sendCommand("goto-config")
		case "m":
			return m, m.sendCommand("goto-measurement")
		case "i":
			return m, m.sendCommand("req-did")
		case "f":
			return m, m.sendCommand("req-firmware")
		}
	case tickMsg:
		return m, tea.Batch(m.refresh, watchTick())
	case refreshMsg:
		m.text = msg.text
		m.status = msg.status
		m.err = msg.err
	case commandMsg:
		m.lastCommand = msg.name
		m.err = msg.err
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString("go-xbus watch\n\n")
	if m.status != nil {
		fmt.Fprintf(&b, "Device:   %s\n", m.status.Device)
		if m.status.DeviceID != "" {
			fmt.Fprintf(&b, "DeviceId: %s\n", m.status.DeviceID)
		}
		if m.status.Firmware != "" {
			fmt.Fprintf(&b, "Firmware: %s\n", m.status.Firmware)
		}
		if m.status.LastErrorCode != "" {
			fmt.Fprintf(&b, "Device error: %s\n", m.status.LastErrorCode)
		}
		sync := m.status.Sync
		fmt.Fprintf(&b, "Frames:   %d (checksum errors: %d, resyncs: %d)\n",
			sync.Frames, sync.ChecksumErrors, sync.Resyncs)
	}
	b.WriteString("\n")
	if m.text != "" {
		b.WriteString(m.text)
	} else {
		b.WriteString("Waiting for measurement data...\n")
	}
	if m.lastCommand != "" {
		fmt.Fprintf(&b, "\nLast command: %s\n", m.lastCommand)
	}
	if m.err != nil {
		fmt.Fprintf(&b, "\nError: %s\n", m.err)
	}
	b.WriteString("\nq quit | c config mode | m measurement mode | i device id | f firmware\n")
	return b.String()
}

// StartWatch runs the terminal UI polling the monitor API
func StartWatch(cfg *config.Config) error {
	p := tea.NewProgram(newWatchModel(NewApiClient(cfg)))
	_, err := p.Run()
	return err
}

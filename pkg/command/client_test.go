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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/srv"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

func newTestClient(t *testing.T, handler http.Handler) *ApiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &ApiClient{Config: config.NewDefaultConfig(), ApiPrefix: server.URL + "/api"}
}

func TestClientData(t *testing.T) {
	pc := uint16(2826)
	handler := http.NewServeMux()
	handler.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(&xbus.MeasurementData{PacketCounter: &pc})
	})

	data, err := newTestClient(t, handler).Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}
	if data.PacketCounter == nil || *data.PacketCounter != 2826 {
		t.Fatalf("Data = %+v, want packet counter 2826", data)
	}
}

func TestClientDataNotReady(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "No measurement received yet", http.StatusNotFound)
	})

	if _, err := newTestClient(t, handler).Data(); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestClientDataText(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/api/data/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "PC=2826")
	})

	text, err := newTestClient(t, handler).DataText()
	if err != nil {
		t.Fatalf("DataText returned error: %v", err)
	}
	if text != "PC=2826\n" {
		t.Fatalf("DataText = %q, want %q", text, "PC=2826\n")
	}
}

func TestClientStatus(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(srv.Status{Device: "/dev/ttyUSB0", DeviceID: "0x12345678"})
	})

	status, err := newTestClient(t, handler).Status()
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.Device != "/dev/ttyUSB0" || status.DeviceID != "0x12345678" {
		t.Fatalf("Status = %+v", status)
	}
}

func TestClientSendCommand(t *testing.T) {
	var gotMethod, gotPath string
	handler := http.NewServeMux()
	handler.HandleFunc("/api/command/", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	})

	client := newTestClient(t, handler)
	if err := client.SendCommand("wakeup"); err != nil {
		t.Fatalf("SendCommand returned error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/command/wakeup" {
		t.Fatalf("request was %s %s, want POST /api/command/wakeup", gotMethod, gotPath)
	}
}

func TestClientSendCommandRejected(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/api/command/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unknown operation", http.StatusBadRequest)
	})

	if err := newTestClient(t, handler).SendCommand("self-destruct"); err == nil {
		t.Fatal("expected an error for a 400 response")
	}
}

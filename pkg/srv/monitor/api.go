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

// go-xbus API
//
// # RESTful APIs to interact with go-xbus monitor server
//
// Terms Of Service:
//
// Schemes: http
// Host: localhost:8000
// Version: 1.0.0
// Contact:
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/log"
	"jinr.ru/greenlab/go-xbus/pkg/srv"
	"jinr.ru/greenlab/go-xbus/pkg/srv/monitor/ifc"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

// Success response
// swagger:response okResp
type RespOk struct {
	// in:body
	Body struct {
		// HTTP status code 200 - OK
		Code int `json:"code"`
	}
}

// Error Bad Request
// swagger:response badReq
type ReqBadRequest struct {
	// in:body
	Body struct {
		// HTTP status code 400 -  Bad Request
		Code int `json:"code"`
	}
}

// Commands maps API command names to the message identifiers sent to the
// device
var Commands = map[string]xbus.MessageID{
	"wakeup":           xbus.MIDWakeup,
	"goto-config":      xbus.MIDGotoConfig,
	"goto-measurement": xbus.MIDGotoMeasurement,
	"req-did":          xbus.MIDReqDid,
	"req-firmware":     xbus.MIDReqFirmwareRevision,
	"reset":            xbus.MIDReset,
}

// CommandNames returns the sorted names accepted by the command endpoint
func CommandNames() []string {
	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	monitor ifc.MonitorServer
	metrics *Metrics
}

var _ ifc.ApiServer = &ApiServer{}

func NewApiServer(ctx context.Context, cfg *config.Config, monitor ifc.MonitorServer, metrics *Metrics) (ifc.ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.Api.Host, cfg.Api.Port)

	s := &ApiServer{
		Context: ctx,
		Config:  cfg,
		monitor: monitor,
		metrics: metrics,
	}
	return s, nil
}

// Start
func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.Config.Api.Host, s.Config.Api.Port)
	s.configureRouter()
	httpServer := &http.Server{
		Handler: handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(log.Writer(), s.Router)),
		Addr:    fmt.Sprintf("%s:%d", s.Config.Api.Host, s.Config.Api.Port),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	// swagger:operation GET /data get latest measurement
	// ---
	// summary: latest decoded measurement
	// description: --
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "404":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/data", s.handleData()).Methods("GET")
	// swagger:operation GET /data/text get latest measurement as text
	// ---
	// summary: latest measurement rendered as a one-line summary
	// description: --
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "404":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/data/text", s.handleDataText()).Methods("GET")
	// swagger:operation GET /status get monitor status
	// ---
	// summary: device info and stream counters
	// description: --
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	subRouter.HandleFunc("/status", s.handleStatus()).Methods("GET")
	// swagger:operation POST /command/{name} send command
	// ---
	// summary: send a command frame to the device
	// description: --
	// responses:
	//   "200":
	//     "$ref": "#/responses/okResp"
	//   "400":
	//     "$ref": "#/responses/badReq"
	subRouter.HandleFunc("/command/{name}", s.handleCommand()).Methods("POST")
	s.Router.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
}

func (s *ApiServer) handleData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling data request")

		data, ok := s.monitor.Measurement()
		if !ok {
			err := srv.ErrNoData{What: "measurement"}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		json.NewEncoder(w).Encode(data)
	}
}

func (s *ApiServer) handleDataText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling data text request")

		data, ok := s.monitor.Measurement()
		if !ok {
			err := srv.ErrNoData{What: "measurement"}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, data)
	}
}

func (s *ApiServer) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling status request")

		json.NewEncoder(w).Encode(s.monitor.Status())
	}
}

func (s *ApiServer) handleCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling command request: command: %s", vars["name"])

		mid, ok := Commands[vars["name"]]
		if !ok {
			err := srv.ErrUnknownOperation{
				What: fmt.Sprintf("Wrong command. Must be one of %s", strings.Join(CommandNames(), "/")),
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.monitor.SendCommand(mid); err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
	}
}

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
	"errors"
	"fmt"

	"github.com/imroc/req"

	"jinr.ru/greenlab/go-xbus/pkg/command/ifc"
	"jinr.ru/greenlab/go-xbus/pkg/config"
	"jinr.ru/greenlab/go-xbus/pkg/srv"
	"jinr.ru/greenlab/go-xbus/pkg/xbus"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

var _ ifc.ApiClient = &ApiClient{}

func NewApiClient(cfg *config.Config) ifc.ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.Api.Host, cfg.Api.Port),
	}
}

func (c *ApiClient) dataUrl() string {
	return fmt.Sprintf("%s/data", c.ApiPrefix)
}

func (c *ApiClient) dataTextUrl() string {
	return fmt.Sprintf("%s/data/text", c.ApiPrefix)
}

func (c *ApiClient) statusUrl() string {
	return fmt.Sprintf("%s/status", c.ApiPrefix)
}

func (c *ApiClient) commandUrl(name string) string {
	return fmt.Sprintf("%s/command/%s", c.ApiPrefix, name)
}

// Data sends request to get the latest decoded measurement
func (c *ApiClient) Data() (*xbus.MeasurementData, error) {
	r, err := req.Get(c.dataUrl())
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	data := &xbus.MeasurementData{}
	err = r.ToJSON(data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DataText sends request to get the latest measurement as a one-line summary
func (c *ApiClient) DataText() (string, error) {
	r, err := req.Get(c.dataTextUrl())
	if err != nil {
		return "", err
	}
	if r.Response().StatusCode != 200 {
		return "", errors.New(r.Response().Status)
	}
	return r.ToString()
}

// Status sends request to get the monitor status snapshot
func (c *ApiClient) Status() (*srv.Status, error) {
	r, err := req.Get(c.statusUrl())
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	status := &srv.Status{}
	err = r.ToJSON(status)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// SendCommand sends request to send a command frame to the device
func (c *ApiClient) SendCommand(name string) error {
	r, err := req.Post(c.commandUrl(name))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}

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

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type SerialConfig struct {
	Device string `yaml:"device" json:"device"`
	Baud   int    `yaml:"baud" json:"baud"`
	// ReadTimeout is in milliseconds, 0 means blocking reads
	ReadTimeout int `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty"`
}

type ApiConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type Config struct {
	Serial   *SerialConfig `yaml:"serial" json:"serial"`
	Api      *ApiConfig    `yaml:"api" json:"api"`
	LogLevel string        `yaml:"logLevel" json:"logLevel"`
	LogFile  string        `yaml:"logFile,omitempty" json:"logFile,omitempty"`
	filepath string
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load reads the config file from disk. A missing file is not an error,
// the defaults stay in effect then.
func (c *Config) Load() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		Serial: &SerialConfig{
			Device:      DefaultSerialDevice,
			Baud:        DefaultBaud,
			ReadTimeout: DefaultReadTimeout,
		},
		Api: &ApiConfig{
			Host: DefaultApiHost,
			Port: DefaultApiPort,
		},
		LogLevel: DefaultLogLevel,
		filepath: DefaultConfigPath(),
	}
}

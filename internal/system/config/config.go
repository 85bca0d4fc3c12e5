/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config loads the deployment configuration for the SMSClub client.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the SMSClub API host.
	DefaultBaseURL = "https://im.smsclub.mobi"
	// DefaultTimeout bounds a single gateway request.
	DefaultTimeout = 30 * time.Second
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// Environment variables that override values from the YAML file.
const (
	EnvLogin         = "SMSCLUB_LOGIN"
	EnvToken         = "SMSCLUB_TOKEN"
	EnvIntegrationID = "SMSCLUB_INTEGRATION_ID"
	EnvBaseURL       = "SMSCLUB_BASE_URL"
	EnvTimeout       = "SMSCLUB_TIMEOUT"
	EnvLogLevel      = "SMSCLUB_LOG_LEVEL"
)

// SMSClubConfig holds the gateway account settings.
type SMSClubConfig struct {
	Login         string        `yaml:"login"`
	Token         string        `yaml:"token"`
	IntegrationID string        `yaml:"integration_id"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig controls registration of the client metrics. Library consumers
// that serve a metrics endpoint enable it; the CLI records into a private registry.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config holds the deployment configuration.
type Config struct {
	SMSClub SMSClubConfig `yaml:"smsclub"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns a configuration populated with default values only.
func Default() *Config {
	return &Config{
		SMSClub: SMSClubConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file.
// Values missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {

	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to decode configuration %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables that are already set are not overwritten. A missing file is not an
// error unless required is set.
func LoadEnvFile(path string, required bool) error {
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides replaces configured values with the SMSCLUB_* environment variables that are set.
func (c *Config) ApplyEnvOverrides() error {
	if v := getEnv(EnvLogin); v != "" {
		c.SMSClub.Login = v
	}
	if v := getEnv(EnvToken); v != "" {
		c.SMSClub.Token = v
	}
	if v := getEnv(EnvIntegrationID); v != "" {
		c.SMSClub.IntegrationID = v
	}
	if v := getEnv(EnvBaseURL); v != "" {
		c.SMSClub.BaseURL = v
	}
	if v := getEnv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.SMSClub.Timeout = d
	}
	if v := getEnv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.SMSClub.BaseURL == "" {
		c.SMSClub.BaseURL = DefaultBaseURL
	}
	if c.SMSClub.Timeout <= 0 {
		c.SMSClub.Timeout = DefaultTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

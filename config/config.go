// Package config defines the YAML configuration for the activity signup server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/activities/logging"
)

const (
	defaultListenAddr    = ":8080"
	defaultMetricsPrefix = "activities"
	defaultJobName       = "activity-server"
)

// ServerConfig represents the complete server configuration.
type ServerConfig struct {
	Listener   ListenerConfig   `yaml:"listener"`
	Logging    logging.Config   `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Snapshot   SnapshotConfig   `yaml:"snapshot"`

	// SeedFile is an optional path to a YAML activity catalog. When set it
	// replaces the built-in activity defaults.
	SeedFile string `yaml:"seed_file"`
}

// ListenerConfig holds HTTP server listener settings.
type ListenerConfig struct {
	// Addr is the listen address, defaults to :8080.
	Addr string `yaml:"addr"`
	// CertFile and KeyFile enable TLS when both are set.
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// MonitoringConfig holds metrics push settings.
type MonitoringConfig struct {
	// VictoriaMetricsURL is the base URL of a remote write endpoint.
	// Snapshot pushes are disabled when empty.
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	MetricsPrefix      string `yaml:"metrics_prefix"`
	JobName            string `yaml:"jobname"`
}

// SnapshotConfig controls periodic roster snapshot pushes.
type SnapshotConfig struct {
	// Schedule is a standard 5-field cron spec. Empty disables snapshots.
	Schedule string `yaml:"schedule"`
}

// Default returns a configuration with all defaults applied, used when no
// config file is given.
func Default() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.SetDefaults()
	return cfg
}

// LoadConfig reads the YAML config file at the given path and returns a
// ServerConfig struct.
func LoadConfig(path string) (*ServerConfig, error) {
	var cfg ServerConfig
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open server config file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML server config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults sets reasonable default values for optional fields.
func (c *ServerConfig) SetDefaults() {
	if c.Listener.Addr == "" {
		c.Listener.Addr = defaultListenAddr
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
}

// Validate performs basic validation on the configuration.
func (c *ServerConfig) Validate() error {
	if c.Snapshot.Schedule != "" && c.Monitoring.VictoriaMetricsURL == "" {
		return fmt.Errorf("snapshot schedule requires a VictoriaMetrics URL")
	}
	if (c.Listener.CertFile == "") != (c.Listener.KeyFile == "") {
		return fmt.Errorf("cert_file and key_file must be set together")
	}
	return nil
}

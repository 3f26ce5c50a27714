// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the raw, source-level configuration. It is populated by
// merging values from environment variables, command-line flags and an
// optional JSON or YAML file, and is then turned into a
// [models.ServerConfig] by [NewServerConfig].
//
// Zero values (nil for the Server fields) mean "not supplied by this source".
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - json / yaml: key in the config file.
type StructuredConfig struct {
	// Server holds the address, hot-reload and timeout settings.
	Server Server `envPrefix:"SERVER_" json:"server" yaml:"server"`

	// TLS names the files holding the server credential.
	TLS TLS `envPrefix:"TLS_" json:"tls" yaml:"tls"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// ConfigFilePath is the optional path to a JSON or YAML config file,
	// merged on top of env and flags.
	// Env: CONFIG. Flags: -c, -config.
	ConfigFilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// Server holds the settings that end up in [models.ServerConfig].
//
// Every field is a pointer: nil means "not supplied by this source", so an
// explicit empty host, port 0, timeout 0 or hot reload false from a later
// source still overrides an earlier value.
type Server struct {
	// Host is the bind address or hostname.
	// Env: SERVER_HOST
	Host *string `env:"HOST" json:"host" yaml:"host"`

	// Port is the TCP port.
	// Env: SERVER_PORT
	Port *uint16 `env:"PORT" json:"port" yaml:"port"`

	// HotReload enables hot reload.
	// Env: SERVER_HOT_RELOAD
	HotReload *bool `env:"HOT_RELOAD" json:"hot_reload" yaml:"hot_reload"`

	// TimeoutMillis is the timeout in milliseconds.
	// Env: SERVER_TIMEOUT_MS
	TimeoutMillis *uint32 `env:"TIMEOUT_MS" json:"timeout_ms" yaml:"timeout_ms"`
}

// HostOrEmpty returns the supplied host, or "" when none was supplied.
func (s Server) HostOrEmpty() string {
	if s.Host == nil {
		return ""
	}
	return *s.Host
}

// PortOrZero returns the supplied port, or 0 when none was supplied.
func (s Server) PortOrZero() uint16 {
	if s.Port == nil {
		return 0
	}
	return *s.Port
}

// TLS holds the paths of the certificate and private key files.
type TLS struct {
	// Env: TLS_CERT_FILE
	CertFile string `env:"CERT_FILE" json:"cert_file" yaml:"cert_file"`
	// Env: TLS_KEY_FILE
	KeyFile string `env:"KEY_FILE" json:"key_file" yaml:"key_file"`
}

// Enabled reports whether either file is named.
func (t TLS) Enabled() bool {
	return t.CertFile != "" || t.KeyFile != ""
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (later sources override the fields
// they supply):
//  1. Environment variables
//  2. Command-line flags parsed from args (usually os.Args[1:])
//  3. Config file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

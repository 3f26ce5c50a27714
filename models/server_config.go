// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// ServerConfig is the finished, immutable server configuration.
//
// All fields are unexported and only readable through accessors, so a value
// never changes once constructed. ServerConfig is comparable: two values with
// equal fields are == to each other.
//
// Values are normally produced by config.ServerConfigBuilder, which fills in
// defaults for the optional fields.
type ServerConfig struct {
	host          string
	port          uint16
	credential    Credential
	hasCredential bool
	hotReload     bool
	timeoutMillis uint32
}

// NewServerConfig constructs a [ServerConfig] with every field given
// explicitly. A nil credential means plain (non-TLS) transport; a non-nil one
// is copied.
func NewServerConfig(host string, port uint16, credential *Credential, hotReload bool, timeoutMillis uint32) ServerConfig {
	cfg := ServerConfig{
		host:          host,
		port:          port,
		hotReload:     hotReload,
		timeoutMillis: timeoutMillis,
	}
	if credential != nil {
		cfg.credential = *credential
		cfg.hasCredential = true
	}

	return cfg
}

// Host returns the bind address or hostname.
func (c ServerConfig) Host() string {
	return c.host
}

// Port returns the TCP port.
func (c ServerConfig) Port() uint16 {
	return c.port
}

// Credential returns the TLS credential and whether one is present.
func (c ServerConfig) Credential() (Credential, bool) {
	return c.credential, c.hasCredential
}

// TLSEnabled reports whether a credential is present.
func (c ServerConfig) TLSEnabled() bool {
	return c.hasCredential
}

// HotReloadEnabled reports whether hot reload is switched on.
func (c ServerConfig) HotReloadEnabled() bool {
	return c.hotReload
}

// TimeoutMillis returns the timeout in milliseconds.
func (c ServerConfig) TimeoutMillis() uint32 {
	return c.timeoutMillis
}

// Timeout returns the timeout as a time.Duration.
func (c ServerConfig) Timeout() time.Duration {
	return time.Duration(c.timeoutMillis) * time.Millisecond
}

// Address returns host and port joined as "host:port" ("[host]:port" for
// IPv6 literals).
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.host, strconv.Itoa(int(c.port)))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c ServerConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("host", c.host).
		Uint16("port", c.port).
		Bool("tls", c.hasCredential).
		Bool("hot_reload", c.hotReload).
		Uint32("timeout_ms", c.timeoutMillis)
	if c.hasCredential {
		e.Object("credential", c.credential)
	}
}

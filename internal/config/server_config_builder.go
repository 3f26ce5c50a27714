// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-server-config/models"

// Defaults applied by [ServerConfigBuilder.Build] to optional fields that
// were never set.
const (
	DefaultHotReload     = false
	DefaultTimeoutMillis = uint32(2000)
)

// ServerConfigBuilder accumulates the optional fields of a
// [models.ServerConfig] and produces the finished value with Build.
//
// The builder is a value: every With* method works on a copy and returns it,
// leaving the receiver untouched. A base builder can therefore be shared,
// reused after Build, or branched into several configs without aliasing.
//
//	cfg := config.NewServerConfigBuilder("localhost", 8080).
//		WithCredential(cred).
//		WithHotReload(true).
//		WithTimeout(5000).
//		Build()
//
// None of the methods validate their input; see [ValidateServerConfig].
type ServerConfigBuilder struct {
	host string
	port uint16

	// nil means "not set"; setters always point at fresh values and never
	// write through an existing pointer, so copies may share them.
	credential    *models.Credential
	hotReload     *bool
	timeoutMillis *uint32
}

// NewServerConfigBuilder starts a builder with the two mandatory fields and
// every optional field unset.
func NewServerConfigBuilder(host string, port uint16) ServerConfigBuilder {
	return ServerConfigBuilder{
		host: host,
		port: port,
	}
}

// WithCredential sets the TLS credential. Last call wins.
func (b ServerConfigBuilder) WithCredential(credential models.Credential) ServerConfigBuilder {
	b.credential = &credential
	return b
}

// WithHotReload sets the hot-reload flag. Last call wins.
func (b ServerConfigBuilder) WithHotReload(enabled bool) ServerConfigBuilder {
	b.hotReload = &enabled
	return b
}

// WithTimeout sets the timeout in milliseconds. Last call wins.
func (b ServerConfigBuilder) WithTimeout(timeoutMillis uint32) ServerConfigBuilder {
	b.timeoutMillis = &timeoutMillis
	return b
}

// Build materializes the configuration, filling unset optional fields with
// their defaults. It has no side effects and returns equal values when called
// repeatedly on the same builder.
func (b ServerConfigBuilder) Build() models.ServerConfig {
	hotReload := DefaultHotReload
	if b.hotReload != nil {
		hotReload = *b.hotReload
	}

	timeoutMillis := DefaultTimeoutMillis
	if b.timeoutMillis != nil {
		timeoutMillis = *b.timeoutMillis
	}

	return models.NewServerConfig(b.host, b.port, b.credential, hotReload, timeoutMillis)
}

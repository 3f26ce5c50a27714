// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidServerConfig is the error kind returned by
	// [ValidateServerConfig]. Every validation failure wraps it.
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrInvalidCredential indicates a credential with an empty key or
	// certificate. Always wrapped together with ErrInvalidServerConfig.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrMissingHost indicates that no source supplied a server host.
	ErrMissingHost = errors.New("server host is not configured")
	// ErrIncompleteTLSConfig indicates that only one of the TLS certificate
	// and key files is configured.
	ErrIncompleteTLSConfig = errors.New("both TLS certificate and key files must be configured")
)

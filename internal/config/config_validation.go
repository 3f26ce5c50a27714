// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-server-config/models"
)

// validate checks that the merged [StructuredConfig] carries enough to start
// a [ServerConfigBuilder].
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Server.HostOrEmpty() == "" {
		err = errors.Join(err, ErrMissingHost)
	}

	if cfg.TLS.Enabled() && (cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "") {
		err = errors.Join(err, ErrIncompleteTLSConfig)
	}

	return err
}

// ValidateServerConfig is the optional finalization check for a built
// [models.ServerConfig]. [ServerConfigBuilder.Build] never calls it.
//
// It rejects an empty host, a zero timeout and a credential with an empty key
// or certificate. Every returned error wraps [ErrInvalidServerConfig];
// credential problems also wrap [ErrInvalidCredential].
func ValidateServerConfig(cfg models.ServerConfig) error {
	var err error

	if cfg.Host() == "" {
		err = errors.Join(err, fmt.Errorf("%w: empty host", ErrInvalidServerConfig))
	}

	if cfg.TimeoutMillis() == 0 {
		err = errors.Join(err, fmt.Errorf("%w: zero timeout", ErrInvalidServerConfig))
	}

	if cred, ok := cfg.Credential(); ok {
		switch {
		case cred.IsZero():
			err = errors.Join(err, fmt.Errorf("%w: %w: empty credential", ErrInvalidServerConfig, ErrInvalidCredential))
		case cred.Key == "":
			err = errors.Join(err, fmt.Errorf("%w: %w: empty private key", ErrInvalidServerConfig, ErrInvalidCredential))
		case cred.Cert == "":
			err = errors.Join(err, fmt.Errorf("%w: %w: empty certificate", ErrInvalidServerConfig, ErrInvalidCredential))
		}
	}

	return err
}

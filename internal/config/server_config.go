// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-server-config/internal/credential"
	"github.com/MKhiriev/go-server-config/models"
)

// GetServerConfig resolves the configuration from env, args and the optional
// config file, then assembles a validated [models.ServerConfig] with
// [NewServerConfig].
func GetServerConfig(ctx context.Context, args []string, loader credential.Loader) (models.ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return models.ServerConfig{}, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(ctx, cfg, loader)
}

// NewServerConfig turns a merged [StructuredConfig] into a
// [models.ServerConfig].
//
// Only settings a source actually supplied are passed to the builder, so
// everything else gets the builder defaults. When TLS files are configured
// the credential is read through loader. The result is checked with
// [ValidateServerConfig].
func NewServerConfig(ctx context.Context, cfg *StructuredConfig, loader credential.Loader) (models.ServerConfig, error) {
	builder := NewServerConfigBuilder(cfg.Server.HostOrEmpty(), cfg.Server.PortOrZero())

	if cfg.Server.HotReload != nil {
		builder = builder.WithHotReload(*cfg.Server.HotReload)
	}

	if cfg.Server.TimeoutMillis != nil {
		builder = builder.WithTimeout(*cfg.Server.TimeoutMillis)
	}

	if cfg.TLS.Enabled() {
		if cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "" {
			return models.ServerConfig{}, ErrIncompleteTLSConfig
		}

		cred, err := loader.Load(ctx, cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return models.ServerConfig{}, fmt.Errorf("error loading TLS credential: %w", err)
		}
		builder = builder.WithCredential(cred)
	}

	serverCfg := builder.Build()
	if err := ValidateServerConfig(serverCfg); err != nil {
		return models.ServerConfig{}, err
	}

	return serverCfg, nil
}

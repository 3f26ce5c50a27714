// Command configcheck resolves the server configuration from environment
// variables, flags and an optional config file, loads the TLS credential and
// logs the finished configuration. It exits non-zero when the configuration
// cannot be resolved.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-server-config/internal/config"
	"github.com/MKhiriev/go-server-config/internal/credential"
	"github.com/MKhiriev/go-server-config/internal/logger"
	"github.com/MKhiriev/go-server-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("configcheck")
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	log.Info().Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).Msg("build info")

	if err := run(log, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("error resolving server config")
		os.Exit(1)
	}
}

func run(log *logger.Logger, args []string) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return err
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	ctx := log.WithContext(context.Background())
	serverCfg, err := config.NewServerConfig(ctx, cfg, credential.NewFileLoader(log))
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("address", serverCfg.Address()).
		Object("config", serverCfg).
		Msg("server config resolved")

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-server-config/internal/logger"
	"github.com/MKhiriev/go-server-config/models"
)

// fileLoader is the file-system implementation of [Loader].
type fileLoader struct {
	logger *logger.Logger
}

// NewFileLoader returns a [Loader] that reads the certificate and the key
// from two files on disk.
func NewFileLoader(log *logger.Logger) Loader {
	return &fileLoader{logger: log}
}

// Load implements [Loader]. certFile and keyFile are file paths. The context
// is checked before each read.
func (l *fileLoader) Load(ctx context.Context, certFile, keyFile string) (models.Credential, error) {
	cert, err := readNonEmpty(ctx, certFile, ErrEmptyCertificate)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error loading certificate: %w", err)
	}

	key, err := readNonEmpty(ctx, keyFile, ErrEmptyKey)
	if err != nil {
		return models.Credential{}, fmt.Errorf("error loading private key: %w", err)
	}

	credential := models.NewCredential(string(key), string(cert))
	l.logger.Debug().
		Str("cert_file", certFile).
		Str("key_file", keyFile).
		Str("fingerprint", credential.Fingerprint()).
		Msg("credential loaded")

	return credential, nil
}

func readNonEmpty(ctx context.Context, path string, errEmpty error) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmpty)
	}

	return data, nil
}

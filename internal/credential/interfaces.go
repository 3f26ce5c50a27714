// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_loader_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-server-config/models"
)

// Loader produces a [models.Credential] from some backing store.
//
// Implementations return the raw material as found; they do not parse or
// verify certificates or keys.
type Loader interface {
	// Load reads the certificate and private key identified by certRef and
	// keyRef (file paths for [NewFileLoader]).
	Load(ctx context.Context, certRef, keyRef string) (models.Credential, error)
}

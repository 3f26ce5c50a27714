// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import "errors"

var (
	// ErrEmptyCertificate is returned when the certificate source holds no data.
	ErrEmptyCertificate = errors.New("certificate is empty")
	// ErrEmptyKey is returned when the private key source holds no data.
	ErrEmptyKey = errors.New("private key is empty")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/segmentio/fasthash/fnv1a"
)

// Credential is an opaque pair of private key and certificate material that
// switches a server into secure-transport mode.
//
// The contents are never parsed or validated here. Both halves are strings,
// so a copied Credential shares no mutable state with the original.
type Credential struct {
	// Key is the private key material (usually PEM encoded). Secret.
	Key string
	// Cert is the certificate material (usually a PEM encoded chain).
	Cert string
}

// NewCredential constructs a [Credential] from key and certificate material.
func NewCredential(key, cert string) Credential {
	return Credential{Key: key, Cert: cert}
}

// IsZero reports whether neither half of the credential is set.
func (c Credential) IsZero() bool {
	return c.Key == "" && c.Cert == ""
}

// Fingerprint returns a short, non-secret identifier of the certificate
// material: the FNV-1a 64-bit hash of Cert in hex. It is meant for logs and
// diagnostics, not for any security decision.
func (c Credential) Fingerprint() string {
	return strconv.FormatUint(fnv1a.HashString64(c.Cert), 16)
}

// String implements fmt.Stringer without revealing the private key.
func (c Credential) String() string {
	return "Credential{fingerprint: " + c.Fingerprint() + ", key: [REDACTED]}"
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler. The key is
// reported only by length.
func (c Credential) MarshalZerologObject(e *zerolog.Event) {
	e.Str("fingerprint", c.Fingerprint()).
		Int("cert_len", len(c.Cert)).
		Int("key_len", len(c.Key))
}

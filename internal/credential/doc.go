// Package credential loads TLS credential material for a server
// configuration.
//
// The package only moves bytes: it reads certificate and key material and
// hands it over as an opaque [models.Credential]. Parsing, verification and
// TLS termination belong to whoever consumes the finished configuration.
package credential

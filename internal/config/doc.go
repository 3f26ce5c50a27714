// Package config builds the server configuration.
//
// [ServerConfigBuilder] is the in-process construction API: it takes the
// mandatory host and port, accumulates optional settings through chained
// With* calls and produces an immutable [models.ServerConfig] with defaults
// for everything left unset.
//
// For a running process the package also resolves settings from several
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// [GetServerConfig] ties both together: it merges the sources, loads the TLS
// credential and feeds the result through a [ServerConfigBuilder].
package config

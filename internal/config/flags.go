// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

const (
	addressFlag   = "a"
	hotReloadFlag = "hot-reload"
	timeoutFlag   = "timeout-ms"
)

// NetAddress holds a host and port parsed from a "host:port" flag value.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port uint16
}

// String returns the canonical "host:port" form, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}

// Set parses s in the form host:port ([host]:port for IPv6 literals). The
// port must fit in 16 bits; the host is taken as is.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return fmt.Errorf("port must be an integer in [0, 65535]: %w", err)
	}

	a.Host = host
	a.Port = uint16(port)
	return nil
}

// parseFlags parses args (without the program name) into a
// [StructuredConfig].
//
// Flags:
//
//	-a           server address in format [host]:[port]
//	-hot-reload  enable hot reload
//	-timeout-ms  timeout in milliseconds
//	-tls-cert    TLS certificate file path
//	-tls-key     TLS private key file path
//	-log-level   log level (debug, info, warn, error)
//	-c/-config   JSON or YAML config file path
//
// -a, -hot-reload and -timeout-ms only contribute when present on the command
// line; an explicit zero value ("-a :0", "-timeout-ms 0") still counts. -a
// always sets host and port together.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	var (
		address        NetAddress
		hotReload      bool
		timeoutMillis  uint
		certFile       string
		keyFile        string
		logLevel       string
		configFilePath string
	)

	fs.Var(&address, addressFlag, "Net address host:port")
	fs.BoolVar(&hotReload, hotReloadFlag, false, "Enable hot reload")
	fs.UintVar(&timeoutMillis, timeoutFlag, 0, "Timeout in milliseconds")
	fs.StringVar(&certFile, "tls-cert", "", "TLS certificate file path")
	fs.StringVar(&keyFile, "tls-key", "", "TLS private key file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&configFilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if timeoutMillis > uint(^uint32(0)) {
		return nil, fmt.Errorf("error parsing flags: -timeout-ms %d overflows 32 bits", timeoutMillis)
	}

	cfg := &StructuredConfig{
		TLS: TLS{
			CertFile: certFile,
			KeyFile:  keyFile,
		},
		Log: Log{
			Level: logLevel,
		},
		ConfigFilePath: configFilePath,
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case addressFlag:
			cfg.Server.Host = &address.Host
			cfg.Server.Port = &address.Port
		case hotReloadFlag:
			cfg.Server.HotReload = &hotReload
		case timeoutFlag:
			timeout := uint32(timeoutMillis)
			cfg.Server.TimeoutMillis = &timeout
		}
	})

	return cfg, nil
}

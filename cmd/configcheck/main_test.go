package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-server-config/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG", "SERVER_HOST", "SERVER_PORT", "SERVER_HOT_RELOAD", "SERVER_TIMEOUT_MS",
		"TLS_CERT_FILE", "TLS_KEY_FILE", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestRun_LogsResolvedConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	certFile := filepath.Join(dir, "server.crt")
	keyFile := filepath.Join(dir, "server.key")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0o600))
	require.NoError(t, os.WriteFile(keyFile, []byte("secret-key"), 0o600))

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	err := run(log, []string{
		"-a", "localhost:8443",
		"-tls-cert", certFile,
		"-tls-key", keyFile,
		"-log-level", "info",
	})

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "secret-key")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server config resolved", entry["message"])
	assert.Equal(t, "localhost:8443", entry["address"])
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no host", args: nil},
		{name: "bad log level", args: []string{"-a", "localhost:8080", "-log-level", "loud"}},
		{name: "missing credential files", args: []string{"-a", "localhost:8443", "-tls-cert", "/nonexistent/crt", "-tls-key", "/nonexistent/key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			assert.Error(t, run(logger.Nop(), tt.args))
		})
	}
}

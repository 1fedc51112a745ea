package logs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"fitsaga/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNew_BuildsLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "fitsaga-admin"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Env = "production"

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("contract signed",
		slog.String("contract_id", "k1"),
		slog.String("token", "eyJhbGciOi"),
		slog.String("Signature", "data:image/png;base64,AAAA"),
	)

	out := buf.String()
	assert.Contains(t, out, `"contract_id":"k1"`)
	assert.Contains(t, out, `"env":"production"`)
	assert.Contains(t, out, `"token":"[REDACTED]"`)
	assert.Contains(t, out, `"Signature":"[REDACTED]"`)
	assert.NotContains(t, out, "eyJhbGciOi")
}

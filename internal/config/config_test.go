package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, SDKGenerativeAI, cfg.GeminiSDK)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDev)
}

func TestLoadServer_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_SDK", SDKGenAI)
	t.Setenv("LOG_DEV", "true")
	t.Setenv("WRITE_TIMEOUT", "2m")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, SDKGenAI, cfg.GeminiSDK)
	assert.True(t, cfg.LogDev)
	assert.Equal(t, 2*time.Minute, cfg.WriteTimeout)
}

func TestLoadServer_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadServer()
	assert.Error(t, err)
}

func TestLoadServer_UnknownSDK(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_SDK", "palm")

	_, err := LoadServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palm")
}

func TestLoadChat(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantURL string
		wantTO  time.Duration
		wantErr bool
	}{
		{"defaults", nil, "http://localhost:5000", 60 * time.Second, false},
		{"custom gateway", map[string]string{"GEMINO_GATEWAY_URL": "http://gw:9000", "GEMINO_REQUEST_TIMEOUT": "5s"}, "http://gw:9000", 5 * time.Second, false},
		{"bad timeout", map[string]string{"GEMINO_REQUEST_TIMEOUT": "soon"}, "", 0, true},
		{"zero timeout", map[string]string{"GEMINO_REQUEST_TIMEOUT": "0s"}, "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadChat()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantURL, cfg.GatewayURL)
			assert.Equal(t, tc.wantTO, cfg.RequestTimeout)
			assert.Equal(t, "gemino-chat.log", cfg.LogFile)
		})
	}
}

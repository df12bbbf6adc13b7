package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ForwardTimeout)
	assert.Empty(t, cfg.Shopify.Secret)
	assert.Empty(t, cfg.WeCom.Webhook)
}

func TestLoadConfigEnvOverridesFlags(t *testing.T) {
	cfg, err := loadConfig(
		[]string{"-addr", ":9000", "-shopify-secret", "flag-secret", "-wecom-webhook", "http://flag"},
		envMap(map[string]string{
			"SHOPIFY_WEBHOOK_SECRET": "env-secret",
			"WECOM_WEBHOOK":          "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=abc",
			"FORWARD_TIMEOUT":        "3s",
			"MAX_BODY_BYTES":         "2048",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.Shopify.Secret)
	assert.Equal(t, "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=abc", cfg.WeCom.Webhook)
	assert.Equal(t, 3*time.Second, cfg.ForwardTimeout)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad timeout", nil, map[string]string{"FORWARD_TIMEOUT": "soon"}},
		{"bad body size", nil, map[string]string{"MAX_BODY_BYTES": "big"}},
		{"zero body size", []string{"-max-body-bytes", "0"}, nil},
		{"unknown flag", []string{"-nope"}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(tc.args, envMap(tc.env))
			assert.Error(t, err)
		})
	}
}

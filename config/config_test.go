package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "postgres://chatbot@localhost/chatbot?sslmode=disable")
	t.Setenv("METRICS_ALLOWED_IPS", "10.0.0.0/8, 127.0.0.1")
	t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, "postgres://chatbot@localhost/chatbot?sslmode=disable", cfg.Postgres.DSN)
	assert.Equal(t, "http://localhost:5005/webhooks/rest/webhook", cfg.Classifier.WebhookURL)
	assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout)
	assert.InDelta(t, 0.9, cfg.Triage.CrisisConfidence, 1e-9)
	assert.Equal(t, 3, cfg.Triage.CrisisResourceCap)
	assert.InDelta(t, 0.7, cfg.FAQ.SimilarityThreshold, 1e-9)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Metrics.AllowedIPs)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.HTTPServer.TrustedProxies)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadRequiresDSN(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_DSN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsThreshold(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_URL", "postgres://localhost/x")
	t.Setenv("FAQ_SIMILARITY_THRESHOLD", "1.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}

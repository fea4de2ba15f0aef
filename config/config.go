package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig

	// External services
	Classifier ClassifierConfig
	Translator TranslatorConfig

	// Pipeline
	Triage TriageConfig
	FAQ    FAQConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type MetricsConfig struct {
	AllowedIPs []string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// RedisConfig configures the crisis alert stream. An empty Addr disables it.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	AlertStream  string
	StreamMaxLen int64
}

type ClassifierConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// TranslatorConfig configures LibreTranslate. An empty BaseURL falls back to
// the offline heuristic detector.
type TranslatorConfig struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	WorkingLanguage string
}

type TriageConfig struct {
	CrisisConfidence   float64
	TriggerConfidence  float64
	HighConfidence     float64
	ModerateConfidence float64
	CrisisResourceCap  int
	ResourceCap        int
	FAQConfidence      float64
	LowConfidence      float64
}

type FAQConfig struct {
	SimilarityThreshold float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.AllowedIPs = splitList(viper.GetString("metrics.allowed_ips"))

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.AlertStream = viper.GetString("redis.alert_stream")
	cfg.Redis.StreamMaxLen = viper.GetInt64("redis.stream_max_len")

	// External services
	cfg.Classifier.WebhookURL = viper.GetString("classifier.webhook_url")
	if rasaURL := viper.GetString("rasa_webhook_url"); rasaURL != "" {
		cfg.Classifier.WebhookURL = rasaURL
	}
	cfg.Classifier.Timeout = viper.GetDuration("classifier.timeout")

	cfg.Translator.BaseURL = viper.GetString("translator.base_url")
	cfg.Translator.APIKey = viper.GetString("translator.api_key")
	cfg.Translator.Timeout = viper.GetDuration("translator.timeout")
	cfg.Translator.WorkingLanguage = viper.GetString("translator.working_language")

	// Pipeline
	cfg.Triage.CrisisConfidence = viper.GetFloat64("triage.crisis_confidence")
	cfg.Triage.TriggerConfidence = viper.GetFloat64("triage.trigger_confidence")
	cfg.Triage.HighConfidence = viper.GetFloat64("triage.high_confidence")
	cfg.Triage.ModerateConfidence = viper.GetFloat64("triage.moderate_confidence")
	cfg.Triage.CrisisResourceCap = viper.GetInt("triage.crisis_resource_cap")
	cfg.Triage.ResourceCap = viper.GetInt("triage.resource_cap")
	cfg.Triage.FAQConfidence = viper.GetFloat64("triage.faq_confidence")
	cfg.Triage.LowConfidence = viper.GetFloat64("triage.low_confidence")

	cfg.FAQ.SimilarityThreshold = viper.GetFloat64("faq.similarity_threshold")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required (or set DATABASE_URL)")
	}
	if cfg.FAQ.SimilarityThreshold <= 0 || cfg.FAQ.SimilarityThreshold > 1 {
		return fmt.Errorf("faq.similarity_threshold must be in (0, 1], got %v", cfg.FAQ.SimilarityThreshold)
	}
	if cfg.Triage.CrisisResourceCap < 0 || cfg.Triage.ResourceCap < 0 {
		return fmt.Errorf("triage resource caps must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.auto_migrate", true)

	viper.SetDefault("redis.alert_stream", "crisis-alerts")
	viper.SetDefault("redis.stream_max_len", 10000)

	viper.SetDefault("classifier.webhook_url", "http://localhost:5005/webhooks/rest/webhook")
	viper.SetDefault("classifier.timeout", "10s")
	viper.SetDefault("translator.timeout", "5s")
	viper.SetDefault("translator.working_language", "en")

	viper.SetDefault("triage.crisis_confidence", 0.9)
	viper.SetDefault("triage.trigger_confidence", 0.8)
	viper.SetDefault("triage.high_confidence", 0.7)
	viper.SetDefault("triage.moderate_confidence", 0.6)
	viper.SetDefault("triage.crisis_resource_cap", 3)
	viper.SetDefault("triage.resource_cap", 5)
	viper.SetDefault("triage.faq_confidence", 0.95)
	viper.SetDefault("triage.low_confidence", 0.5)

	viper.SetDefault("faq.similarity_threshold", 0.7)
}

// splitList splits a comma separated value, since viper does not parse
// arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

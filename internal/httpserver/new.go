package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/faq"
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/middleware"
	"campus-chatbot/pkg/classifier"
	"campus-chatbot/pkg/log"
	pkgRedis "campus-chatbot/pkg/redis"
	"campus-chatbot/pkg/translator"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB  *sql.DB
	redisClient *pkgRedis.Client
	alertStream string
	streamLen   int64

	// External services
	classifier classifier.Classifier
	translator translator.Translator

	// Domain settings
	chatConfig   chat.Config
	mentalHealth mentalhealth.Config
	faqConfig    faq.Config

	// Middleware and metrics
	middlewareConfig middleware.Config
	registry         *prometheus.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies lists the proxy addresses or CIDR ranges whose forwarding
	// headers are believed. Empty trusts none and uses the peer address.
	TrustedProxies []string

	PostgresDB *sql.DB
	// RedisClient is optional. Without it crisis alerts are only stored.
	RedisClient *pkgRedis.Client
	AlertStream string
	StreamLen   int64

	Classifier classifier.Classifier
	Translator translator.Translator

	Chat         chat.Config
	MentalHealth mentalhealth.Config
	FAQ          faq.Config

	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  cfg.ShutdownTimeout,
		postgresDB:       cfg.PostgresDB,
		redisClient:      cfg.RedisClient,
		alertStream:      cfg.AlertStream,
		streamLen:        cfg.StreamLen,
		classifier:       cfg.Classifier,
		translator:       cfg.Translator,
		chatConfig:       cfg.Chat,
		mentalHealth:     cfg.MentalHealth,
		faqConfig:        cfg.FAQ,
		middlewareConfig: cfg.Middleware,
		registry:         prometheus.NewRegistry(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	if srv.classifier == nil {
		return errors.New("classifier is required")
	}
	return nil
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "campus-chatbot/internal/chat/delivery/http"
	chatRepo "campus-chatbot/internal/chat/repository/postgre"
	chatUC "campus-chatbot/internal/chat/usecase"
	faqRepo "campus-chatbot/internal/faq/repository/postgre"
	faqUC "campus-chatbot/internal/faq/usecase"
	mhRepo "campus-chatbot/internal/mentalhealth/repository"
	mhPostgre "campus-chatbot/internal/mentalhealth/repository/postgre"
	mhRedis "campus-chatbot/internal/mentalhealth/repository/redis"
	mhUC "campus-chatbot/internal/mentalhealth/usecase"
	"campus-chatbot/internal/metrics"
	"campus-chatbot/internal/middleware"
	"campus-chatbot/pkg/keyword"
)

// setupChatDomain wires the triage pipeline and registers /api/v1/chat.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	mentalRepo := mhPostgre.New(srv.postgresDB, srv.l)
	faqStore := faqRepo.New(srv.postgresDB, srv.l)
	chatStore := chatRepo.New(srv.postgresDB, srv.l)

	var publisher mhRepo.AlertPublisher
	if srv.redisClient != nil {
		publisher = mhRedis.NewAlertPublisher(srv.redisClient, srv.alertStream, srv.streamLen)
		srv.l.Infof(ctx, "Crisis alerts published to stream %s", srv.alertStream)
	}

	// 2. Metrics
	m := metrics.New(srv.registry)
	srv.registry.MustRegister(metrics.NewUnansweredCollector(chatStore, srv.l))

	// 3. UseCases
	mentalUC := mhUC.New(srv.l, mentalRepo, publisher, keyword.NewMatcher(keyword.DefaultCacheSize), srv.mentalHealth)
	faqResolver := faqUC.New(srv.l, faqStore, srv.faqConfig)
	uc := chatUC.New(srv.l, chatStore, mentalUC, faqResolver, srv.classifier, srv.translator, m, srv.chatConfig)

	// 4. HTTP Handler + routes
	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

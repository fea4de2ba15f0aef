package usecase

import (
	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/faq"
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/metrics"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/classifier"
	pkgLog "campus-chatbot/pkg/log"
	"campus-chatbot/pkg/translator"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	mh         mentalhealth.UseCase
	faq        faq.UseCase
	classifier classifier.Classifier
	translator translator.Translator
	metrics    *metrics.Metrics
	cfg        chat.Config
}

// New creates the chat UseCase. m may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	mh mentalhealth.UseCase,
	faqUC faq.UseCase,
	cls classifier.Classifier,
	tr translator.Translator,
	m *metrics.Metrics,
	cfg chat.Config,
) *implUseCase {
	if cfg.WorkingLanguage == "" {
		cfg.WorkingLanguage = model.LanguageEnglish
	}
	if cfg.FAQConfidence <= 0 {
		cfg.FAQConfidence = chat.DefaultFAQConfidence
	}
	if cfg.LowConfidence <= 0 {
		cfg.LowConfidence = chat.DefaultLowConfidence
	}
	if tr == nil {
		tr = translator.Heuristic{}
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		mh:         mh,
		faq:        faqUC,
		classifier: cls,
		translator: tr,
		metrics:    m,
		cfg:        cfg,
	}
}

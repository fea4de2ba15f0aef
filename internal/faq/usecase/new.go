package usecase

import (
	"campus-chatbot/internal/faq"
	"campus-chatbot/internal/faq/repository"
	pkgLog "campus-chatbot/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	threshold float64
}

// New creates a new FAQ UseCase.
func New(l pkgLog.Logger, repo repository.Repository, cfg faq.Config) *implUseCase {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = faq.DefaultSimilarityThreshold
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		threshold: threshold,
	}
}

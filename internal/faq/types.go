package faq

// Config configures the FAQ resolver.
type Config struct {
	// SimilarityThreshold is the ratio a question must strictly exceed to match.
	SimilarityThreshold float64
}

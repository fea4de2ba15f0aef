package faq

// DefaultSimilarityThreshold is used when Config leaves the threshold unset.
const DefaultSimilarityThreshold = 0.7

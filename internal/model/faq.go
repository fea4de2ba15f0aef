package model

import "time"

// FAQ is a curated question and answer in one language.
type FAQ struct {
	ID         string
	Question   string
	Answer     string
	Language   Language
	Category   string
	Keywords   []string
	Active     bool
	UsageCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package repository

import "campus-chatbot/internal/model"

// UpsertFAQOptions inserts an FAQ or updates the one with the same question and language.
type UpsertFAQOptions struct {
	Question string
	Answer   string
	Language model.Language
	Category string
	Keywords []string
}

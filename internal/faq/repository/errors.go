package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list faqs")
	ErrFailedToUpdate = errors.New("failed to update faq")
	ErrFailedToInsert = errors.New("failed to insert faq")
	ErrNotFound       = errors.New("faq not found")
)

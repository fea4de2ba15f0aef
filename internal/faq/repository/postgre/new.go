package postgre

import (
	"database/sql"
	"fmt"

	"campus-chatbot/internal/faq/repository"
	"campus-chatbot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed FAQ Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("faq/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("faq/repository/postgre.%s", method)
}

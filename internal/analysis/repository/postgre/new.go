package postgre

import (
	"github.com/jmoiron/sqlx"

	"moderation-srv/internal/analysis/repository"
	"moderation-srv/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

func New(db *sqlx.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}

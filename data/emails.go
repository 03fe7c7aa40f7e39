package data

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EmailStore records the addresses submitted with each conversion request.
type EmailStore struct {
	pool *pgxpool.Pool
}

func NewEmailStore(pool *pgxpool.Pool) *EmailStore {
	return &EmailStore{pool: pool}
}

func (s *EmailStore) Record(ctx context.Context, email string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO submissions (email) VALUES ($1)`,
		email,
	)
	return err
}

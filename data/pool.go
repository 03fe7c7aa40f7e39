package data

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	dbPool  *pgxpool.Pool
	poolErr error
	pgOnce  sync.Once
)

// NewPool hands out the shared connection pool. Initialization runs once; a
// failed init stays sticky so later callers see the error instead of a nil
// pool.
func NewPool(ctx context.Context) (*pgxpool.Pool, error) {

	// DB_CONN may come from a .env file or the real environment
	_ = godotenv.Load()
	connString := os.Getenv("DB_CONN")

	pgOnce.Do(func() {

		pgPool, err := pgxpool.New(ctx, connString)
		if err != nil {
			log.Error(fmt.Errorf("Unable to create connection pool: %w", err))
			poolErr = err
			return
		}
		dbPool = pgPool
	})

	return dbPool, poolErr
}

package pg

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/itchan-dev/threadline/shared/config"
	"github.com/itchan-dev/threadline/shared/logger"
	shared_pg "github.com/itchan-dev/threadline/shared/storage/pg"
)

type Querier = shared_pg.Querier

// Storage archives engine results in PostgreSQL.
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	log := logger.Component("pg")
	log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := shared_pg.Connect(ctx, cfg.Private.Pg, shared_pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	log.Info("connected to db")
	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"

	"github.com/inpulse/inpulse-api/internal/config"
)

// Conn é a conexão usada pelos repositórios e pela migração
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "postgres"
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "postgres: abrir conexão")
	}

	configurePool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, pkgerrors.Wrap(err, "postgres: ping inicial")
	}

	return &Connection{DB: db}, nil
}

func configurePool(db *sql.DB, cfg config.Database) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn numa transação. Erro ou panic em fn faz rollback.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return pkgerrors.Wrap(err, "postgres: iniciar transação")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return pkgerrors.Wrapf(err, "postgres: rollback falhou (%v)", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return pkgerrors.Wrap(err, "postgres: commit")
	}

	return nil
}

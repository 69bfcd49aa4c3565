package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inpulse/inpulse-api/internal/config"
)

func TestConnection_RunInTransaction(t *testing.T) {
	t.Run("commit quando a função não retorna erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO teams").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		conn := &Connection{DB: db}
		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			_, err := tx.Exec("INSERT INTO teams (id) VALUES ($1)", "team-1")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback quando a função retorna erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		conn := &Connection{DB: db}
		boom := errors.New("boom")
		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro no commit é propagado", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		conn := &Connection{DB: db}
		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			return nil
		})

		assert.ErrorContains(t, err, "postgres: commit")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panic faz rollback e é repassado", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		conn := &Connection{DB: db}
		assert.Panics(t, func() {
			_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConfigurePool(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	configurePool(db, config.Database{MaxOpenConns: 7})

	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}

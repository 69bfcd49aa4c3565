package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
)

func TestApply(t *testing.T) {
	t.Run("aplica todas as instruções e confirma", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		for range Schema {
			mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectCommit()

		err = Apply(context.Background(), &postgres.Connection{DB: db})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha desfaz a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = Apply(context.Background(), &postgres.Connection{DB: db})

		assert.ErrorContains(t, err, "instrução 0 falhou: permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSchema_CampaignUpsertKey(t *testing.T) {
	var found bool
	for _, stmt := range Schema {
		if regexp.MustCompile(`UNIQUE \(campaign_name, platform, user_id\)`).MatchString(stmt) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSchema_MessagingTables(t *testing.T) {
	for _, table := range []string{"conversations", "conversation_participants", "messages"} {
		pattern := regexp.MustCompile(`CREATE TABLE IF NOT EXISTS ` + table + ` \(`)

		var found bool
		for _, stmt := range Schema {
			if pattern.MatchString(stmt) {
				found = true
			}
		}
		assert.True(t, found, table)
	}
}

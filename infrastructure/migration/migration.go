package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/pkg/log"
)

// Schema é aplicado em ordem; todas as instruções são idempotentes
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'User',
		status        TEXT NOT NULL DEFAULT 'PENDING',
		avatar        TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		team_id TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		PRIMARY KEY (team_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		sale_price      NUMERIC(12, 2) NOT NULL DEFAULT 0,
		cost_per_unit   NUMERIC(12, 2) NOT NULL DEFAULT 0,
		inventory_level INTEGER NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id TEXT REFERENCES products(id) ON DELETE SET NULL,
		revenue    NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		campaign_name TEXT NOT NULL,
		platform      TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'Active',
		reach         BIGINT NOT NULL DEFAULT 0,
		clicks        BIGINT NOT NULL DEFAULT 0,
		conversions   BIGINT NOT NULL DEFAULT 0,
		spend         NUMERIC(12, 2) NOT NULL DEFAULT 0,
		sales         NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT campaigns_name_platform_user_key UNIQUE (campaign_name, platform, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content     TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'TODO',
		priority    TEXT NOT NULL DEFAULT 'medium',
		due_date    TIMESTAMPTZ,
		assignee_id TEXT REFERENCES users(id) ON DELETE SET NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message    TEXT NOT NULL,
		link       TEXT NOT NULL DEFAULT '',
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS integrations (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		platform            TEXT NOT NULL,
		external_account_id TEXT NOT NULL,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT integrations_user_platform_key UNIQUE (user_id, platform)
	)`,
	`CREATE TABLE IF NOT EXISTS conversations (
		id         TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS conversation_participants (
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		PRIMARY KEY (conversation_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id              TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		sender_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content         TEXT NOT NULL,
		type            TEXT NOT NULL DEFAULT 'TEXT',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_user_created_at ON sales (user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_user_created_at ON campaigns (user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks (user_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_created_at ON notifications (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_conversation_participants_user ON conversation_participants (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_conversation_created_at ON messages (conversation_id, created_at)`,
}

// Apply executa o schema inteiro em uma única transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range Schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration: instrução %d falhou: %w", i, err)
			}
		}

		log.ForContext(ctx).Infof("migration: %d instruções aplicadas", len(Schema))
		return nil
	})
}

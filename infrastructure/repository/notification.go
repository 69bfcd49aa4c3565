package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

const notificationsTable = "notifications"

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *domain.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) (bool, error)
}

type notificationRepository struct {
	conn postgres.Queryer
}

func NewNotificationRepository(conn postgres.Queryer) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	query, args, err := squirrel.
		Insert(notificationsTable).
		Columns("id", "user_id", "message", "link").
		Values(n.ID, n.UserID, n.Message, n.Link).
		Suffix("RETURNING read, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&n.Read, &n.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar notificação: %w", err)
	}

	return nil
}

func (r *notificationRepository) ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "message", "link", "read", "created_at").
		From(notificationsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Link, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar notificação: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, userID, notificationID string) (bool, error) {
	query, args, err := squirrel.
		Update(notificationsTable).
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao marcar notificação: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

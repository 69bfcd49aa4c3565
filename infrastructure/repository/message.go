package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

const (
	conversationsTable            = "conversations"
	conversationParticipantsTable = "conversation_participants"
	messagesTable                 = "messages"
)

var messageColumns = []string{"id", "conversation_id", "sender_id", "content", "type", "created_at"}

type MessageRepository interface {
	ListConversations(ctx context.Context, userID string) ([]*domain.ConversationSummary, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
	GetOtherParticipant(ctx context.Context, conversationID, userID string) (*domain.Participant, error)
	ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error)
	FindDirectConversation(ctx context.Context, userID, participantID string) (string, error)
	CreateConversation(ctx context.Context, conversation *domain.Conversation, participantIDs []string) error
	CreateMessage(ctx context.Context, message *domain.Message) error
}

type messageRepository struct {
	conn postgres.Conn
}

func NewMessageRepository(conn postgres.Conn) MessageRepository {
	return &messageRepository{
		conn: conn,
	}
}

// ListConversations traz o outro participante e a última mensagem de cada conversa do usuário
func (r *messageRepository) ListConversations(ctx context.Context, userID string) ([]*domain.ConversationSummary, error) {
	query, args, err := squirrel.
		Select("c.id", "c.updated_at", "u.id", "u.first_name", "u.last_name", "u.avatar", "lm.content", "lm.created_at").
		From("conversations c").
		Join("conversation_participants me ON me.conversation_id = c.id").
		Join("conversation_participants other ON other.conversation_id = c.id AND other.user_id <> me.user_id").
		Join("users u ON u.id = other.user_id").
		LeftJoin("LATERAL (SELECT m.content, m.created_at FROM messages m WHERE m.conversation_id = c.id ORDER BY m.created_at DESC LIMIT 1) lm ON TRUE").
		Where(squirrel.Eq{"me.user_id": userID}).
		OrderBy("COALESCE(lm.created_at, c.updated_at) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar conversas: %w", err)
	}
	defer rows.Close()

	conversations := make([]*domain.ConversationSummary, 0)
	for rows.Next() {
		var (
			summary     domain.ConversationSummary
			updatedAt   sql.NullTime
			lastContent sql.NullString
			lastSentAt  sql.NullTime
		)
		if err := rows.Scan(
			&summary.ID,
			&updatedAt,
			&summary.Participant.ID,
			&summary.Participant.FirstName,
			&summary.Participant.LastName,
			&summary.Participant.Avatar,
			&lastContent,
			&lastSentAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar conversa: %w", err)
		}

		summary.LastMessage = domain.NoMessagesPreview
		summary.LastMessageTimestamp = updatedAt.Time
		if lastContent.Valid {
			summary.LastMessage = lastContent.String
			summary.LastMessageTimestamp = lastSentAt.Time
		}

		conversations = append(conversations, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return conversations, nil
}

func (r *messageRepository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(conversationParticipantsTable).
		Where(squirrel.Eq{"conversation_id": conversationID, "user_id": userID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	var exists bool
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("erro ao verificar participante: %w", err)
	}

	return exists, nil
}

func (r *messageRepository) GetOtherParticipant(ctx context.Context, conversationID, userID string) (*domain.Participant, error) {
	query, args, err := squirrel.
		Select("u.id", "u.first_name", "u.last_name", "u.avatar").
		From("users u").
		Join("conversation_participants cp ON cp.user_id = u.id").
		Where(squirrel.Eq{"cp.conversation_id": conversationID}).
		Where(squirrel.NotEq{"cp.user_id": userID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var participant domain.Participant
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&participant.ID,
		&participant.FirstName,
		&participant.LastName,
		&participant.Avatar,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar participante: %w", err)
	}

	return &participant, nil
}

// ListMessages retorna o histórico da conversa, da mais antiga para a mais recente
func (r *messageRepository) ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	query, args, err := squirrel.
		Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar mensagens: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.Content,
			&message.Type,
			&message.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar mensagem: %w", err)
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return messages, nil
}

// FindDirectConversation devolve "" quando os dois usuários ainda não conversam
func (r *messageRepository) FindDirectConversation(ctx context.Context, userID, participantID string) (string, error) {
	query, args, err := squirrel.
		Select("a.conversation_id").
		From("conversation_participants a").
		Join("conversation_participants b ON b.conversation_id = a.conversation_id").
		Where(squirrel.Eq{"a.user_id": userID, "b.user_id": participantID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var conversationID string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&conversationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar conversa: %w", err)
	}

	return conversationID, nil
}

// CreateConversation grava a conversa e os participantes na mesma transação
func (r *messageRepository) CreateConversation(ctx context.Context, conversation *domain.Conversation, participantIDs []string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		conversationSQL, conversationArgs, err := squirrel.
			Insert(conversationsTable).
			Columns("id").
			Values(conversation.ID).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, conversationSQL, conversationArgs...).Scan(&conversation.CreatedAt, &conversation.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao criar conversa: %w", err)
		}

		participants := squirrel.
			Insert(conversationParticipantsTable).
			Columns("conversation_id", "user_id").
			PlaceholderFormat(squirrel.Dollar)
		for _, participantID := range participantIDs {
			participants = participants.Values(conversation.ID, participantID)
		}

		participantsSQL, participantsArgs, err := participants.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, participantsSQL, participantsArgs...); err != nil {
			return fmt.Errorf("erro ao vincular participantes: %w", err)
		}

		return nil
	})
}

// CreateMessage grava a mensagem e move a conversa para o topo da lista
func (r *messageRepository) CreateMessage(ctx context.Context, message *domain.Message) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		messageSQL, messageArgs, err := squirrel.
			Insert(messagesTable).
			Columns("id", "conversation_id", "sender_id", "content", "type").
			Values(message.ID, message.ConversationID, message.SenderID, message.Content, message.Type).
			Suffix("RETURNING created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, messageSQL, messageArgs...).Scan(&message.CreatedAt); err != nil {
			return fmt.Errorf("erro ao criar mensagem: %w", err)
		}

		touchSQL, touchArgs, err := squirrel.
			Update(conversationsTable).
			Set("updated_at", message.CreatedAt).
			Where(squirrel.Eq{"id": message.ConversationID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, touchSQL, touchArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar conversa: %w", err)
		}

		return nil
	})
}

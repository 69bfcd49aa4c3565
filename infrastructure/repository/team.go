package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

type TeamRepository interface {
	CountTeamMembers(ctx context.Context, tenantID string) (int64, error)
	ListTeamMembers(ctx context.Context, userID string) ([]*domain.User, error)
	DeleteTeamMember(ctx context.Context, requesterID, memberID string) (bool, error)
}

type teamRepository struct {
	conn postgres.Queryer
}

func NewTeamRepository(conn postgres.Queryer) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

// teamsOf seleciona os times dos quais o usuário faz parte
func teamsOf(userID string) squirrel.SelectBuilder {
	return squirrel.
		Select("team_id").
		From(teamMembersTable).
		Where(squirrel.Eq{"user_id": userID})
}

// CountTeamMembers conta usuários distintos que compartilham algum time com o tenant
func (r *teamRepository) CountTeamMembers(ctx context.Context, tenantID string) (int64, error) {
	teams, teamsArgs, err := teamsOf(tenantID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	query, args, err := squirrel.
		Select("COUNT(DISTINCT user_id)").
		From(teamMembersTable).
		Where("team_id IN ("+teams+")", teamsArgs...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar membros do time: %w", err)
	}

	return count, nil
}

// ListTeamMembers retorna os membros do primeiro time do usuário
func (r *teamRepository) ListTeamMembers(ctx context.Context, userID string) ([]*domain.User, error) {
	firstTeam, firstTeamArgs, err := teamsOf(userID).
		Join("teams t ON t.id = team_members.team_id").
		OrderBy("t.created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	query, args, err := squirrel.
		Select("u.id", "u.first_name", "u.last_name", "u.email", "u.role", "u.avatar").
		From("users u").
		Join("team_members tm ON tm.user_id = u.id").
		Where("tm.team_id = ("+firstTeam+")", firstTeamArgs...).
		OrderBy("u.first_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar membros do time: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Role,
			&user.Avatar,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar membro: %w", err)
		}
		members = append(members, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return members, nil
}

// DeleteTeamMember remove o usuário, desde que compartilhe um time com quem solicita
func (r *teamRepository) DeleteTeamMember(ctx context.Context, requesterID, memberID string) (bool, error) {
	teams, teamsArgs, err := teamsOf(requesterID).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	query, args, err := squirrel.
		Delete(usersTable).
		Where(squirrel.Eq{"id": memberID}).
		Where("id IN (SELECT user_id FROM team_members WHERE team_id IN ("+teams+"))", teamsArgs...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover membro: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

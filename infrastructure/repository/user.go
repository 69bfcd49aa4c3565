package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/lib/pq"
)

const (
	usersTable       = "users"
	teamsTable       = "teams"
	teamMembersTable = "team_members"

	uniqueViolation = "23505"
)

var ErrDuplicateEmail = errors.New("email já cadastrado")

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "role", "status", "avatar", "created_at", "updated_at"}

type UserRepository interface {
	CreateUserWithTeam(ctx context.Context, user *domain.User, team *domain.Team) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) (bool, error)
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// CreateUserWithTeam cria o workspace e o usuário dono na mesma transação
func (r *userRepository) CreateUserWithTeam(ctx context.Context, user *domain.User, team *domain.Team) (*domain.User, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		teamSQL, teamArgs, err := squirrel.
			Insert(teamsTable).
			Columns("id", "name").
			Values(team.ID, team.Name).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, teamSQL, teamArgs...); err != nil {
			return fmt.Errorf("erro ao criar time: %w", err)
		}

		userSQL, userArgs, err := squirrel.
			Insert(usersTable).
			Columns("id", "first_name", "last_name", "email", "password_hash", "role", "status").
			Values(user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Role, user.Status).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, userSQL, userArgs...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("erro ao criar usuário: %w", err)
		}

		memberSQL, memberArgs, err := squirrel.
			Insert(teamMembersTable).
			Columns("team_id", "user_id").
			Values(team.ID, user.ID).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, memberSQL, memberArgs...); err != nil {
			return fmt.Errorf("erro ao vincular usuário ao time: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}

// scanUser lê uma linha com userColumns. sql.ErrNoRows vira nil, nil.
func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile altera nome e sobrenome. Retorna nil quando o usuário não existe.
func (r *userRepository) UpdateProfile(ctx context.Context, userID, firstName, lastName string) (*domain.User, error) {
	query, args, err := squirrel.
		Update(usersTable).
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar perfil: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) (bool, error) {
	query, args, err := squirrel.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar senha: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

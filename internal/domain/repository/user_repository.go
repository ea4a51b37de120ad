package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"user_api/internal/common"
	"user_api/internal/domain/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, cmd model.CreateUserCommand) (*model.User, error)
	Read(ctx context.Context, query model.ReadUserQuery) (*model.User, error)
	ReadAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, cmd model.UpdateUserCommand) (*model.User, error)
	Delete(ctx context.Context, cmd model.DeleteUserCommand) (*model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, cmd model.CreateUserCommand) (*model.User, error) {
	query := `INSERT INTO users (id, username, password)
	          VALUES ($1, $2, $3)
	          RETURNING id, username, password, created_at, deleted_at`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), cmd.Username, cmd.Password).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) Read(ctx context.Context, query model.ReadUserQuery) (*model.User, error) {
	q := `SELECT id, username, password, created_at, deleted_at
	      FROM users WHERE id = $1 AND deleted_at IS NULL`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, q, query.ID).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.Read: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) ReadAll(ctx context.Context) ([]model.User, error) {
	q := `SELECT id, username, password, created_at, deleted_at
	      FROM users WHERE deleted_at IS NULL`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.ReadAll: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.DeletedAt); err != nil {
			return nil, fmt.Errorf("pgUserRepository.ReadAll: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.ReadAll: %w", err)
	}
	if len(users) == 0 {
		return nil, common.ErrNotFound
	}
	return users, nil
}

func (r *pgUserRepository) Update(ctx context.Context, cmd model.UpdateUserCommand) (*model.User, error) {
	setClause, args := buildUpdateSet(cmd)
	q := fmt.Sprintf(`UPDATE users SET %s
	      WHERE id = $1 AND deleted_at IS NULL
	      RETURNING id, username, password, created_at, deleted_at`, setClause)

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) Delete(ctx context.Context, cmd model.DeleteUserCommand) (*model.User, error) {
	q := `UPDATE users SET deleted_at = now()
	      WHERE id = $1 AND deleted_at IS NULL
	      RETURNING id, username, password, created_at, deleted_at`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, q, cmd.ID).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	return user, nil
}

// buildUpdateSet assembles the SET clause from the fields present in the
// command. $1 is always the target id; with neither field set the clause
// degrades to a no-op assignment so the statement stays valid and the
// RETURNING row still reports whether an active row matched.
func buildUpdateSet(cmd model.UpdateUserCommand) (string, []interface{}) {
	args := []interface{}{cmd.ID}
	var assignments []string

	if cmd.Username != nil {
		args = append(args, *cmd.Username)
		assignments = append(assignments, fmt.Sprintf("username = $%d", len(args)))
	}
	if cmd.Password != nil {
		args = append(args, *cmd.Password)
		assignments = append(assignments, fmt.Sprintf("password = $%d", len(args)))
	}
	if len(assignments) == 0 {
		return "id = id", args
	}
	return strings.Join(assignments, ", "), args
}

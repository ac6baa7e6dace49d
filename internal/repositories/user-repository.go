package repositories

import (
	"context"
	"fmt"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, email, passwordHash, name string) (*entities.User, error)
	GetUsers(ctx context.Context) ([]entities.User, error)
	GetTechnicians(ctx context.Context) ([]entities.User, error)
	UpdateUserTeam(ctx context.Context, id uint64, teamID null.Uint64) (*entities.User, error)
	UpdateUserRole(ctx context.Context, id uint64, role string) (*entities.User, error)
}

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "u.id, u.email, u.password_hash, u.name, u.role, u.team_id, u.created_at"

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query, args, err := psql.
		Select("id", "email", "password_hash", "name", "role", "team_id", "created_at").
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find user by email query: %w", err)
	}

	var u entities.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.TeamID, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query, args, err := psql.
		Select(userColumns, "t.name AS team_name").
		From("users u").
		LeftJoin("teams t ON t.id = u.team_id").
		Where("u.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find user query: %w", err)
	}

	var u entities.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.TeamID, &u.CreatedAt, &u.TeamName)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, email, passwordHash, name string) (*entities.User, error) {
	query, args, err := psql.
		Insert("users").
		Columns("email", "password_hash", "name", "role").
		Values(email, passwordHash, name, constants.RoleEmployee).
		Suffix("RETURNING id, email, password_hash, name, role, team_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	var u entities.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.TeamID, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	query, args, err := psql.
		Select(userColumns, "t.name AS team_name").
		From("users u").
		LeftJoin("teams t ON t.id = u.team_id").
		OrderBy("u.role", "u.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.TeamID, &u.CreatedAt, &u.TeamName); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetTechnicians(ctx context.Context) ([]entities.User, error) {
	query, args, err := psql.
		Select(userColumns, "t.name AS team_name").
		From("users u").
		LeftJoin("teams t ON t.id = u.team_id").
		Where("u.role = ?", constants.RoleTechnician).
		OrderBy("u.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list technicians query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.TeamID, &u.CreatedAt, &u.TeamName); err != nil {
			return nil, fmt.Errorf("scan technician row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUserTeam(ctx context.Context, id uint64, teamID null.Uint64) (*entities.User, error) {
	var value interface{}
	if teamID.Valid {
		value = teamID.Uint64
	}

	query, args, err := psql.
		Update("users").
		Set("team_id", value).
		Where("id = ?", id).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user team query: %w", err)
	}

	var updatedID uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindUser(ctx, updatedID)
}

func (r *UserRepository) UpdateUserRole(ctx context.Context, id uint64, role string) (*entities.User, error) {
	query, args, err := psql.
		Update("users").
		Set("role", role).
		Where("id = ?", id).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user role query: %w", err)
	}

	var updatedID uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindUser(ctx, updatedID)
}

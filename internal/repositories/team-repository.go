package repositories

import (
	"context"
	"fmt"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, name string) (*entities.Team, error)
}

type TeamRepository struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	query, args, err := psql.
		Select("id", "name", "created_at").
		From("teams").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	query, args, err := psql.
		Select("id", "name", "created_at").
		From("teams").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find team query: %w", err)
	}

	var t entities.Team
	if err := r.db.QueryRow(ctx, query, args...).Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	query, args, err := psql.
		Insert("teams").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create team query: %w", err)
	}

	var t entities.Team
	if err := r.db.QueryRow(ctx, query, args...).Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

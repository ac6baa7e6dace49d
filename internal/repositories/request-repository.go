package repositories

import (
	"context"
	"fmt"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.Request, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	CreateRequest(ctx context.Context, req *entities.Request) (*entities.Request, error)
	UpdateRequestStatus(ctx context.Context, id uint64, status string) (*entities.Request, error)
	UpdateRequest(ctx context.Context, id uint64, data *dto.UpdateRequestDTO) (*entities.Request, error)
	DeleteRequest(ctx context.Context, id uint64) error
	GetCalendar(ctx context.Context, rng dto.CalendarRange) ([]entities.Request, error)
	GetStats(ctx context.Context) (*entities.RequestStats, error)
}

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

// requestSelect joins the lookup names every consumer of a request wants.
// start_time is cast to text so it scans into a plain string, and
// duration_hours to float8 to avoid numeric scan plumbing.
func requestSelect() sq.SelectBuilder {
	return psql.
		Select(
			"r.id", "r.equipment_id", "r.team_id", "r.user_id",
			"r.type", "r.status", "r.title", "r.description",
			"r.scheduled_date", "r.start_time::text", "r.duration_hours::float8",
			"r.created_at", "r.updated_at",
			"e.name AS equipment_name", "e.category AS equipment_category",
			"t.name AS team_name", "u.name AS user_name",
		).
		From("requests r").
		LeftJoin("equipment e ON e.id = r.equipment_id").
		LeftJoin("teams t ON t.id = r.team_id").
		LeftJoin("users u ON u.id = r.user_id")
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var r entities.Request
	err := row.Scan(
		&r.ID, &r.EquipmentID, &r.TeamID, &r.UserID,
		&r.Type, &r.Status, &r.Title, &r.Description,
		&r.ScheduledDate, &r.StartTime, &r.DurationHours,
		&r.CreatedAt, &r.UpdatedAt,
		&r.EquipmentName, &r.EquipmentCategory, &r.TeamName, &r.UserName,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.Request, error) {
	builder := requestSelect().OrderBy("r.created_at DESC")

	if filter.Status != "" {
		builder = builder.Where("r.status = ?", filter.Status)
	}
	if filter.EquipmentID != 0 {
		builder = builder.Where("r.equipment_id = ?", filter.EquipmentID)
	}
	if filter.Type != "" {
		builder = builder.Where("r.type = ?", filter.Type)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	requests := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request row: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	query, args, err := requestSelect().Where("r.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find request query: %w", err)
	}

	req, err := scanRequest(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return req, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req *entities.Request) (*entities.Request, error) {
	query, args, err := psql.
		Insert("requests").
		Columns("equipment_id", "team_id", "user_id", "type", "status", "title",
			"description", "scheduled_date", "start_time", "duration_hours").
		Values(req.EquipmentID, req.TeamID, req.UserID, req.Type, req.Status, req.Title,
			req.Description, req.ScheduledDate, req.StartTime, req.DurationHours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create request query: %w", err)
	}

	var id uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, translateError(err)
	}
	return r.FindRequest(ctx, id)
}

func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id uint64, status string) (*entities.Request, error) {
	query, args, err := psql.
		Update("requests").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where("id = ?", id).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update request status query: %w", err)
	}

	var updatedID uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindRequest(ctx, updatedID)
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, data *dto.UpdateRequestDTO) (*entities.Request, error) {
	if data.Empty() {
		return nil, apperrors.BadRequest("No fields to update")
	}

	builder := psql.Update("requests")

	if data.EquipmentID != nil {
		builder = builder.Set("equipment_id", *data.EquipmentID)
	}
	if data.TeamID != nil {
		builder = builder.Set("team_id", nullableUint64(*data.TeamID))
	}
	if data.Type != nil {
		builder = builder.Set("type", *data.Type)
	}
	if data.Title != nil {
		builder = builder.Set("title", *data.Title)
	}
	if data.Description != nil {
		builder = builder.Set("description", nullableString(*data.Description))
	}
	if data.ScheduledDate != nil {
		builder = builder.Set("scheduled_date", nullableString(*data.ScheduledDate))
	}
	if data.StartTime != nil {
		builder = builder.Set("start_time", nullableString(*data.StartTime))
	}
	if data.DurationHours != nil {
		builder = builder.Set("duration_hours", *data.DurationHours)
	}
	if data.Status != nil {
		builder = builder.Set("status", *data.Status)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where("id = ?", id).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update request query: %w", err)
	}

	var updatedID uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindRequest(ctx, updatedID)
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	query, args, err := psql.
		Delete("requests").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete request query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetCalendar returns scheduled requests only, ordered for the calendar
// grid. The range bounds are inclusive.
func (r *RequestRepository) GetCalendar(ctx context.Context, rng dto.CalendarRange) ([]entities.Request, error) {
	builder := requestSelect().
		Where("r.scheduled_date IS NOT NULL").
		OrderBy("r.scheduled_date", "r.start_time")

	if rng.Start != nil {
		builder = builder.Where("r.scheduled_date >= ?", *rng.Start)
	}
	if rng.End != nil {
		builder = builder.Where("r.scheduled_date <= ?", *rng.End)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build calendar query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	requests := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calendar row: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) GetStats(ctx context.Context) (*entities.RequestStats, error) {
	query, _, err := psql.
		Select(
			"COUNT(*) FILTER (WHERE status = 'new') AS new_count",
			"COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress_count",
			"COUNT(*) FILTER (WHERE status = 'repaired') AS repaired_count",
			"COUNT(*) FILTER (WHERE status = 'scrap') AS scrap_count",
			"COUNT(*) FILTER (WHERE type = 'corrective') AS corrective_count",
			"COUNT(*) FILTER (WHERE type = 'preventive') AS preventive_count",
			"COUNT(*) AS total_count",
		).
		From("requests").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	var s entities.RequestStats
	err = r.db.QueryRow(ctx, query).Scan(
		&s.NewCount, &s.InProgressCount, &s.RepairedCount, &s.ScrapCount,
		&s.CorrectiveCount, &s.PreventiveCount, &s.TotalCount)
	if err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

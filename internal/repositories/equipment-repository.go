package repositories

import (
	"context"
	"fmt"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentRepositoryInterface interface {
	GetEquipmentList(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, data *dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, data *dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	GetAutofill(ctx context.Context, id uint64) (*dto.AutofillDTO, error)
	GetOpenRequestCount(ctx context.Context, id uint64) (int64, error)
}

type EquipmentRepository struct {
	db *pgxpool.Pool
}

func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

const equipmentColumns = "e.id, e.name, e.category, e.location, e.maintenance_team_id, e.is_usable, e.created_at"

func (r *EquipmentRepository) GetEquipmentList(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := psql.
		Select(equipmentColumns, "t.name AS team_name").
		From("equipment e").
		LeftJoin("teams t ON t.id = e.maintenance_team_id").
		OrderBy("e.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list equipment query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Location, &e.MaintenanceTeamID, &e.IsUsable, &e.CreatedAt, &e.TeamName); err != nil {
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := psql.
		Select(equipmentColumns, "t.name AS team_name").
		From("equipment e").
		LeftJoin("teams t ON t.id = e.maintenance_team_id").
		Where("e.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find equipment query: %w", err)
	}

	var e entities.Equipment
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.Name, &e.Category, &e.Location, &e.MaintenanceTeamID, &e.IsUsable, &e.CreatedAt, &e.TeamName)
	if err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, data *dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	query, args, err := psql.
		Insert("equipment").
		Columns("name", "category", "location", "maintenance_team_id").
		Values(data.Name, data.Category, data.Location, data.MaintenanceTeamID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create equipment query: %w", err)
	}

	var id uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, translateError(err)
	}
	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, data *dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	builder := psql.Update("equipment")

	if data.Name != nil {
		builder = builder.Set("name", *data.Name)
	}
	if data.Category != nil {
		builder = builder.Set("category", nullableString(*data.Category))
	}
	if data.Location != nil {
		builder = builder.Set("location", nullableString(*data.Location))
	}
	if data.MaintenanceTeamID != nil {
		builder = builder.Set("maintenance_team_id", nullableUint64(*data.MaintenanceTeamID))
	}
	if data.IsUsable != nil {
		builder = builder.Set("is_usable", *data.IsUsable)
	}

	if data.Empty() {
		return nil, apperrors.BadRequest("No fields to update")
	}

	query, args, err := builder.Where("id = ?", id).Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update equipment query: %w", err)
	}

	var updatedID uint64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindEquipment(ctx, updatedID)
}

// DeleteEquipment removes a machine; its requests go with it via the
// cascading foreign key.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query, args, err := psql.
		Delete("equipment").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete equipment query: %w", err)
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

func (r *EquipmentRepository) GetAutofill(ctx context.Context, id uint64) (*dto.AutofillDTO, error) {
	query, args, err := psql.
		Select("e.maintenance_team_id", "e.category", "t.name AS team_name").
		From("equipment e").
		LeftJoin("teams t ON t.id = e.maintenance_team_id").
		Where("e.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build equipment autofill query: %w", err)
	}

	var out dto.AutofillDTO
	if err := r.db.QueryRow(ctx, query, args...).Scan(&out.TeamID, &out.Category, &out.TeamName); err != nil {
		return nil, translateError(err)
	}
	return &out, nil
}

func (r *EquipmentRepository) GetOpenRequestCount(ctx context.Context, id uint64) (int64, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("requests").
		Where("equipment_id = ?", id).
		Where("status IN (?, ?)", "new", "in_progress").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build open request count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

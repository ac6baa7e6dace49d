package dto

import (
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateRequestDTO struct {
	EquipmentID   uint64   `json:"equipment_id" validate:"required"`
	TeamID        *uint64  `json:"team_id"`
	Type          string   `json:"type" validate:"required,oneof=corrective preventive"`
	Title         string   `json:"title" validate:"required"`
	Description   *string  `json:"description"`
	ScheduledDate *string  `json:"scheduled_date" validate:"omitempty,date_format"`
	StartTime     *string  `json:"start_time" validate:"omitempty,time_format"`
	DurationHours *float64 `json:"duration_hours" validate:"omitempty,gt=0"`
}

type UpdateRequestStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=new in_progress repaired scrap"`
}

// UpdateRequestDTO is the partial-update payload. Nullable columns use
// null wrappers behind pointers so that an explicit JSON null clears the
// column while an absent key leaves it untouched.
type UpdateRequestDTO struct {
	EquipmentID   *uint64      `json:"equipment_id" validate:"omitempty,gt=0"`
	TeamID        *null.Uint64 `json:"team_id"`
	Type          *string      `json:"type" validate:"omitempty,oneof=corrective preventive"`
	Title         *string      `json:"title" validate:"omitempty,min=1"`
	Description   *null.String `json:"description"`
	ScheduledDate *null.String `json:"scheduled_date" validate:"omitempty"`
	StartTime     *null.String `json:"start_time" validate:"omitempty"`
	DurationHours *float64     `json:"duration_hours" validate:"omitempty,gt=0"`
	Status        *string      `json:"status" validate:"omitempty,oneof=new in_progress repaired scrap"`
}

func (d *UpdateRequestDTO) Empty() bool {
	return d.EquipmentID == nil && d.TeamID == nil && d.Type == nil &&
		d.Title == nil && d.Description == nil && d.ScheduledDate == nil &&
		d.StartTime == nil && d.DurationHours == nil && d.Status == nil
}

type RequestDTO struct {
	ID                uint64    `json:"id"`
	EquipmentID       uint64    `json:"equipment_id"`
	TeamID            *uint64   `json:"team_id"`
	UserID            *uint64   `json:"user_id"`
	Type              string    `json:"type"`
	Status            string    `json:"status"`
	Title             string    `json:"title"`
	Description       *string   `json:"description"`
	ScheduledDate     *string   `json:"scheduled_date"`
	StartTime         *string   `json:"start_time"`
	DurationHours     float64   `json:"duration_hours"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	EquipmentName     *string   `json:"equipment_name"`
	EquipmentCategory *string   `json:"equipment_category"`
	TeamName          *string   `json:"team_name"`
	UserName          *string   `json:"user_name"`
}

// CalendarEventDTO renames request fields for the calendar consumer.
type CalendarEventDTO struct {
	ID            uint64  `json:"id"`
	Title         string  `json:"title"`
	Date          string  `json:"date"`
	StartTime     *string `json:"startTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	EquipmentName *string `json:"equipment_name"`
}

// RequestFilter narrows the request list; empty fields do not filter.
type RequestFilter struct {
	Status      string
	EquipmentID uint64
	Type        string
}

// CalendarRange bounds the calendar projection, inclusive on both ends.
type CalendarRange struct {
	Start *time.Time
	End   *time.Time
}

const dateLayout = "2006-01-02"

func NewRequestDTO(r *entities.Request) RequestDTO {
	var scheduled *string
	if r.ScheduledDate != nil {
		s := r.ScheduledDate.Format(dateLayout)
		scheduled = &s
	}
	return RequestDTO{
		ID:                r.ID,
		EquipmentID:       r.EquipmentID,
		TeamID:            r.TeamID,
		UserID:            r.UserID,
		Type:              r.Type,
		Status:            r.Status,
		Title:             r.Title,
		Description:       r.Description,
		ScheduledDate:     scheduled,
		StartTime:         r.StartTime,
		DurationHours:     r.DurationHours,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		EquipmentName:     r.EquipmentName,
		EquipmentCategory: r.EquipmentCategory,
		TeamName:          r.TeamName,
		UserName:          r.UserName,
	}
}

func NewCalendarEventDTO(r *entities.Request) CalendarEventDTO {
	var date string
	if r.ScheduledDate != nil {
		date = r.ScheduledDate.Format(dateLayout)
	}
	return CalendarEventDTO{
		ID:            r.ID,
		Title:         r.Title,
		Date:          date,
		StartTime:     r.StartTime,
		DurationHours: r.DurationHours,
		Status:        r.Status,
		Type:          r.Type,
		EquipmentName: r.EquipmentName,
	}
}

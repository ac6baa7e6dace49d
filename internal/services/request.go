package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/constants"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/utils"

	"go.uber.org/zap"
)

const (
	dateLayout    = "2006-01-02"
	statsCacheTTL = 30 * time.Second
)

type RequestServiceInterface interface {
	List(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error)
	Find(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	Create(ctx context.Context, caller utils.Identity, data *dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateStatus(ctx context.Context, id uint64, data *dto.UpdateRequestStatusDTO) (*dto.RequestDTO, error)
	Update(ctx context.Context, id uint64, data *dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	Delete(ctx context.Context, id uint64) error
	Calendar(ctx context.Context, start, end string) ([]dto.CalendarEventDTO, error)
	Stats(ctx context.Context) (*entities.RequestStats, error)
}

type RequestService struct {
	requestRepo repositories.RequestRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	cache       repositories.CacheRepositoryInterface
	logger      *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{requestRepo: requestRepo, userRepo: userRepo, cache: cache, logger: logger}
}

func (s *RequestService) List(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return toRequestDTOs(requests), nil
}

func (s *RequestService) Find(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, requestError(err)
	}
	r := dto.NewRequestDTO(req)
	return &r, nil
}

// Create enforces the role policy server-side: only managers may file
// preventive work, and a technician without an explicit team lands on
// their own.
func (s *RequestService) Create(ctx context.Context, caller utils.Identity, data *dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	if data.Type == constants.TypePreventive && caller.Role != constants.RoleManager {
		return nil, apperrors.NewHttpError(http.StatusForbidden, "Forbidden",
			fmt.Errorf("role %q may only create corrective requests", caller.Role), nil)
	}

	teamID := data.TeamID
	if teamID == nil && caller.Role == constants.RoleTechnician {
		user, err := s.userRepo.FindUser(ctx, caller.UserID)
		if err == nil {
			teamID = user.TeamID
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Internal(err)
		}
	}

	var scheduled *time.Time
	if data.ScheduledDate != nil {
		t, err := time.Parse(dateLayout, *data.ScheduledDate)
		if err != nil {
			return nil, apperrors.BadRequest("Invalid scheduled_date")
		}
		scheduled = &t
	}

	duration := 1.0
	if data.DurationHours != nil {
		duration = *data.DurationHours
	}

	userID := caller.UserID
	req := &entities.Request{
		EquipmentID:   data.EquipmentID,
		TeamID:        teamID,
		UserID:        &userID,
		Type:          data.Type,
		Status:        constants.StatusNew,
		Title:         data.Title,
		Description:   data.Description,
		ScheduledDate: scheduled,
		StartTime:     data.StartTime,
		DurationHours: duration,
	}

	created, err := s.requestRepo.CreateRequest(ctx, req)
	if err != nil {
		return nil, requestError(err)
	}

	s.invalidateStats(ctx)
	r := dto.NewRequestDTO(created)
	return &r, nil
}

func (s *RequestService) UpdateStatus(ctx context.Context, id uint64, data *dto.UpdateRequestStatusDTO) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.UpdateRequestStatus(ctx, id, data.Status)
	if err != nil {
		return nil, requestError(err)
	}

	s.invalidateStats(ctx)
	r := dto.NewRequestDTO(req)
	return &r, nil
}

func (s *RequestService) Update(ctx context.Context, id uint64, data *dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	if data.Empty() {
		return nil, apperrors.BadRequest("No fields to update")
	}

	req, err := s.requestRepo.UpdateRequest(ctx, id, data)
	if err != nil {
		return nil, requestError(err)
	}

	s.invalidateStats(ctx)
	r := dto.NewRequestDTO(req)
	return &r, nil
}

func (s *RequestService) Delete(ctx context.Context, id uint64) error {
	if err := s.requestRepo.DeleteRequest(ctx, id); err != nil {
		return requestError(err)
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *RequestService) Calendar(ctx context.Context, start, end string) ([]dto.CalendarEventDTO, error) {
	var rng dto.CalendarRange
	if start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, apperrors.BadRequest("Invalid start date")
		}
		rng.Start = &t
	}
	if end != "" {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, apperrors.BadRequest("Invalid end date")
		}
		rng.End = &t
	}

	requests, err := s.requestRepo.GetCalendar(ctx, rng)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	events := make([]dto.CalendarEventDTO, 0, len(requests))
	for i := range requests {
		events = append(events, dto.NewCalendarEventDTO(&requests[i]))
	}
	return events, nil
}

// Stats serves the dashboard counters, cached briefly so Kanban polling
// does not hammer the aggregate query.
func (s *RequestService) Stats(ctx context.Context) (*entities.RequestStats, error) {
	if cached, err := s.cache.GetStats(ctx); err == nil {
		return cached, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("stats cache read failed", zap.Error(err))
	}

	stats, err := s.requestRepo.GetStats(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.cache.SetStats(ctx, stats, statsCacheTTL); err != nil {
		s.logger.Warn("stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

func (s *RequestService) invalidateStats(ctx context.Context) {
	if err := s.cache.InvalidateStats(ctx); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

func toRequestDTOs(requests []entities.Request) []dto.RequestDTO {
	out := make([]dto.RequestDTO, 0, len(requests))
	for i := range requests {
		out = append(out, dto.NewRequestDTO(&requests[i]))
	}
	return out
}

func requestError(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NotFound("Request not found")
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}
	return apperrors.Internal(err)
}

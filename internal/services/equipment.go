package services

import (
	"context"
	"errors"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	List(ctx context.Context) ([]dto.EquipmentDTO, error)
	Find(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	Create(ctx context.Context, data *dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	Update(ctx context.Context, id uint64, data *dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	Delete(ctx context.Context, id uint64) error
	Autofill(ctx context.Context, id uint64) (*dto.AutofillDTO, error)
	OpenRequestCount(ctx context.Context, id uint64) (*dto.OpenRequestCountDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, cache repositories.CacheRepositoryInterface, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo, cache: cache, logger: logger}
}

func (s *EquipmentService) List(ctx context.Context) ([]dto.EquipmentDTO, error) {
	items, err := s.equipmentRepo.GetEquipmentList(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	out := make([]dto.EquipmentDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.NewEquipmentDTO(&items[i]))
	}
	return out, nil
}

func (s *EquipmentService) Find(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, equipmentError(err)
	}
	e := dto.NewEquipmentDTO(item)
	return &e, nil
}

func (s *EquipmentService) Create(ctx context.Context, data *dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepo.CreateEquipment(ctx, data)
	if err != nil {
		return nil, equipmentError(err)
	}
	e := dto.NewEquipmentDTO(item)
	return &e, nil
}

func (s *EquipmentService) Update(ctx context.Context, id uint64, data *dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if data.Empty() {
		return nil, apperrors.BadRequest("No fields to update")
	}

	item, err := s.equipmentRepo.UpdateEquipment(ctx, id, data)
	if err != nil {
		return nil, equipmentError(err)
	}
	e := dto.NewEquipmentDTO(item)
	return &e, nil
}

// Delete removes the machine and, through the cascade, every request filed
// against it, so the cached stats go stale and are dropped.
func (s *EquipmentService) Delete(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		return equipmentError(err)
	}
	if err := s.cache.InvalidateStats(ctx); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
	return nil
}

func (s *EquipmentService) Autofill(ctx context.Context, id uint64) (*dto.AutofillDTO, error) {
	out, err := s.equipmentRepo.GetAutofill(ctx, id)
	if err != nil {
		return nil, equipmentError(err)
	}
	return out, nil
}

func (s *EquipmentService) OpenRequestCount(ctx context.Context, id uint64) (*dto.OpenRequestCountDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return nil, equipmentError(err)
	}

	count, err := s.equipmentRepo.GetOpenRequestCount(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &dto.OpenRequestCountDTO{EquipmentID: id, OpenCount: count}, nil
}

func equipmentError(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NotFound("Equipment not found")
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}
	return apperrors.Internal(err)
}

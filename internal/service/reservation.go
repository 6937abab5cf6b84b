package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// ReservationRepo is the reservation data access needed by
// ReservationService.
type ReservationRepo interface {
	List(ctx context.Context) ([]models.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	Create(ctx context.Context, res models.Reservation) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) error
}

// ReservationService handles reservation business logic
type ReservationService struct {
	repo       ReservationRepo
	tableCount int
	log        *zap.Logger
}

// NewReservationService creates a new reservation service
func NewReservationService(repo ReservationRepo, tableCount int, log *zap.Logger) *ReservationService {
	return &ReservationService{
		repo:       repo,
		tableCount: tableCount,
		log:        log,
	}
}

// ListReservations lists all reservations by reserved time ascending. An
// empty result is an empty slice, never nil.
func (s *ReservationService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return reservations, nil
}

// CreateReservation inserts an ACTIVE reservation. A taken slot surfaces as
// ErrReservationConflict, distinct from generic failure.
func (s *ReservationService) CreateReservation(ctx context.Context, req models.ReservationRequest, createdBy uuid.UUID) (*models.Reservation, error) {
	if req.TableNumber < 1 || req.TableNumber > s.tableCount {
		return nil, ErrTableOutOfRange
	}

	reservation := models.Reservation{
		TableNumber: req.TableNumber,
		ReservedAt:  req.ReservedAt,
		NomClient:   req.NomClient,
		NbPersonnes: req.NbPersonnes,
		Note:        req.Note,
		Status:      models.ReservationStatusActive,
		CreatedBy:   createdBy,
	}

	created, err := s.repo.Create(ctx, reservation)
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrReservationConflict
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("reservation created",
		zap.String("reservation_id", created.ID.String()),
		zap.Int("table", created.TableNumber),
		zap.Time("reserved_at", created.ReservedAt))

	return created, nil
}

// UpdateReservationStatus applies a status transition after validating it
// against the reservation's transition table.
func (s *ReservationService) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) (*models.Reservation, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !reservation.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.log.Info("reservation status updated",
		zap.String("reservation_id", id.String()),
		zap.String("from", string(reservation.Status)),
		zap.String("to", string(status)))

	updated, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return updated, err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// ReservationRepository handles reservation data access
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// List retrieves all reservations ordered by reserved time ascending
func (r *ReservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	query := `
		SELECT id, table_number, reserved_at, nom_client, nb_personnes, note,
		       status, created_by, created_at
		FROM reservations
		ORDER BY reserved_at ASC
	`

	reservations := []models.Reservation{}
	err := r.db.SelectContext(ctx, &reservations, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return reservations, nil
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	query := `
		SELECT id, table_number, reserved_at, nom_client, nb_personnes, note,
		       status, created_by, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation models.Reservation
	err := r.db.GetContext(ctx, &reservation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

// Create inserts an ACTIVE reservation. A violation of the active-slot
// uniqueness index is returned as ErrConflict so callers can surface the
// dedicated message.
func (r *ReservationRepository) Create(ctx context.Context, res models.Reservation) (*models.Reservation, error) {
	query := `
		INSERT INTO reservations (table_number, reserved_at, nom_client, nb_personnes, note, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, table_number, reserved_at, nom_client, nb_personnes, note, status, created_by, created_at
	`

	var created models.Reservation
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		res.TableNumber,
		res.ReservedAt,
		res.NomClient,
		res.NbPersonnes,
		res.Note,
		res.Status,
		res.CreatedBy,
	)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return &created, nil
}

// UpdateStatus sets the status on the identified reservation
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) error {
	query := `
		UPDATE reservations
		SET status = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountActiveBetween counts ACTIVE reservations whose reserved time falls
// within [start, end)
func (r *ReservationRepository) CountActiveBetween(ctx context.Context, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM reservations
		WHERE status = $1 AND reserved_at >= $2 AND reserved_at < $3
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, models.ReservationStatusActive, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}

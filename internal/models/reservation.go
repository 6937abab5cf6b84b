package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusActive  ReservationStatus = "ACTIVE"
	ReservationStatusAnnulee ReservationStatus = "ANNULEE"
	ReservationStatusHonoree ReservationStatus = "HONOREE"
)

// reservationTransitions is the allowed transition table. ANNULEE and
// HONOREE are terminal.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusActive: {ReservationStatusHonoree, ReservationStatusAnnulee},
}

// Valid reports whether s is a known reservation status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusActive, ReservationStatusAnnulee, ReservationStatusHonoree:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation represents a table reservation
type Reservation struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	TableNumber int               `db:"table_number" json:"table_number"`
	ReservedAt  time.Time         `db:"reserved_at" json:"reserved_at"`
	NomClient   *string           `db:"nom_client" json:"nom_client,omitempty"`
	NbPersonnes *int              `db:"nb_personnes" json:"nb_personnes,omitempty"`
	Note        *string           `db:"note" json:"note,omitempty"`
	Status      ReservationStatus `db:"status" json:"status"`
	CreatedBy   uuid.UUID         `db:"created_by" json:"created_by"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
}

// ReservationRequest is used for reservation creation
type ReservationRequest struct {
	TableNumber int       `json:"table_number" validate:"required,min=1"`
	ReservedAt  time.Time `json:"reserved_at" validate:"required"`
	NomClient   *string   `json:"nom_client" validate:"omitempty,max=100"`
	NbPersonnes *int      `json:"nb_personnes" validate:"omitempty,min=1"`
	Note        *string   `json:"note" validate:"omitempty,max=500"`
}

// ReservationStatusRequest is used for reservation status updates
type ReservationStatusRequest struct {
	Status ReservationStatus `json:"status" validate:"required,oneof=ACTIVE ANNULEE HONOREE"`
}

package repository

import (
	"github.com/cafe-nour/cafe-service/internal/db"
)

// Repositories provides access to all repository instances
type Repositories struct {
	Product     *ProductRepository
	Order       *OrderRepository
	Reservation *ReservationRepository
	User        *UserRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(database *db.Postgres) *Repositories {
	return &Repositories{
		Product:     NewProductRepository(database.DB),
		Order:       NewOrderRepository(database.DB),
		Reservation: NewReservationRepository(database.DB),
		User:        NewUserRepository(database.DB),
	}
}

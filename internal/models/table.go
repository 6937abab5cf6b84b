package models

// TableStatus is the derived display status of a table
type TableStatus string

const (
	TableLibre    TableStatus = "libre"
	TableOccupee  TableStatus = "occupee"
	TableReservee TableStatus = "reservee"
)

// Table is the derived per-table display state. It is computed fresh from
// the current orders and reservations and never persisted.
type Table struct {
	Number       int          `json:"number"`
	Status       TableStatus  `json:"status"`
	CurrentOrder *Order       `json:"current_order,omitempty"`
	Reservation  *Reservation `json:"reservation,omitempty"`
}

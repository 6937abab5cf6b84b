// Package tables derives the per-table display state of the floor from the
// current orders and reservations. The derivation is pure: same inputs and
// clock, same output.
package tables

import (
	"time"

	"github.com/cafe-nour/cafe-service/internal/models"
)

const (
	// DefaultCount is the number of tables in the café.
	DefaultCount = 12

	// DefaultWindow is how far ahead an active reservation holds its table.
	// The same span is applied backwards, so a table stays held for late
	// parties but a reservation from yesterday no longer blocks it.
	DefaultWindow = time.Hour
)

// Options configures the reconciliation.
type Options struct {
	Count  int
	Window time.Duration
}

func (o Options) withDefaults() Options {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	return o
}

// Reconcile maps the full set of orders and reservations onto tables
// numbered 1..Count, ascending. An EN_COURS order marks its table occupied
// and takes precedence over any reservation; otherwise an ACTIVE
// reservation within the window marks it reserved; otherwise the table is
// free.
func Reconcile(orders []models.Order, reservations []models.Reservation, now time.Time, opts Options) []models.Table {
	opts = opts.withDefaults()
	result := make([]models.Table, 0, opts.Count)

	for number := 1; number <= opts.Count; number++ {
		table := models.Table{Number: number, Status: models.TableLibre}

		if order := openOrderFor(orders, number); order != nil {
			table.Status = models.TableOccupee
			table.CurrentOrder = order
		} else if res := upcomingReservationFor(reservations, number, now, opts.Window); res != nil {
			table.Status = models.TableReservee
			table.Reservation = res
		}

		result = append(result, table)
	}

	return result
}

// openOrderFor returns the EN_COURS order on the table, if any. More than
// one open order per table is an upstream invariant violation; the most
// recently created one wins so the result stays deterministic.
func openOrderFor(orders []models.Order, number int) *models.Order {
	var found *models.Order
	for i := range orders {
		o := &orders[i]
		if o.TableNumber != number || o.Status != models.OrderStatusEnCours {
			continue
		}
		if found == nil || o.CreatedAt.After(found.CreatedAt) {
			found = o
		}
	}
	if found == nil {
		return nil
	}
	order := *found
	return &order
}

// upcomingReservationFor returns the ACTIVE reservation holding the table,
// if any: the one whose reserved time is within the window of now, in
// either direction. The earliest such reservation wins.
func upcomingReservationFor(reservations []models.Reservation, number int, now time.Time, window time.Duration) *models.Reservation {
	var found *models.Reservation
	for i := range reservations {
		r := &reservations[i]
		if r.TableNumber != number || r.Status != models.ReservationStatusActive {
			continue
		}
		delta := r.ReservedAt.Sub(now)
		if delta >= window || delta <= -window {
			continue
		}
		if found == nil || r.ReservedAt.Before(found.ReservedAt) {
			found = r
		}
	}
	if found == nil {
		return nil
	}
	res := *found
	return &res
}

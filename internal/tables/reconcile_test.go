package tables

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafe-nour/cafe-service/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func openOrder(table int, createdAt time.Time) models.Order {
	return models.Order{
		ID:          uuid.New(),
		TableNumber: table,
		Status:      models.OrderStatusEnCours,
		CreatedAt:   createdAt,
	}
}

func activeReservation(table int, reservedAt time.Time) models.Reservation {
	return models.Reservation{
		ID:          uuid.New(),
		TableNumber: table,
		ReservedAt:  reservedAt,
		Status:      models.ReservationStatusActive,
	}
}

func TestReconcile_EmptyInputs(t *testing.T) {
	result := Reconcile(nil, nil, now, Options{})

	require.Len(t, result, DefaultCount)
	for i, table := range result {
		assert.Equal(t, i+1, table.Number)
		assert.Equal(t, models.TableLibre, table.Status)
		assert.Nil(t, table.CurrentOrder)
		assert.Nil(t, table.Reservation)
	}
}

func TestReconcile_Scenario(t *testing.T) {
	// 12 tables, one open order on table 5, one reservation on table 8 in
	// 30 minutes: 5 occupied, 8 reserved, everything else free.
	order := openOrder(5, now.Add(-20*time.Minute))
	res := activeReservation(8, now.Add(30*time.Minute))

	result := Reconcile([]models.Order{order}, []models.Reservation{res}, now, Options{})

	require.Len(t, result, 12)
	for _, table := range result {
		switch table.Number {
		case 5:
			assert.Equal(t, models.TableOccupee, table.Status)
			require.NotNil(t, table.CurrentOrder)
			assert.Equal(t, order.ID, table.CurrentOrder.ID)
		case 8:
			assert.Equal(t, models.TableReservee, table.Status)
			require.NotNil(t, table.Reservation)
			assert.Equal(t, res.ID, table.Reservation.ID)
		default:
			assert.Equal(t, models.TableLibre, table.Status)
		}
	}
}

func TestReconcile_OpenOrderTakesPrecedenceOverReservation(t *testing.T) {
	order := openOrder(3, now.Add(-5*time.Minute))
	res := activeReservation(3, now.Add(10*time.Minute))

	result := Reconcile([]models.Order{order}, []models.Reservation{res}, now, Options{})

	assert.Equal(t, models.TableOccupee, result[2].Status)
	assert.Nil(t, result[2].Reservation)
}

func TestReconcile_OrderStatusFiltering(t *testing.T) {
	// Only EN_COURS occupies a table.
	for _, status := range []models.OrderStatus{
		models.OrderStatusServie,
		models.OrderStatusAnnulee,
		models.OrderStatusPayee,
	} {
		order := openOrder(2, now)
		order.Status = status
		result := Reconcile([]models.Order{order}, nil, now, Options{})
		assert.Equal(t, models.TableLibre, result[1].Status, "status %s must not occupy", status)
	}
}

func TestReconcile_ReservationWindow(t *testing.T) {
	cases := []struct {
		name       string
		reservedAt time.Time
		want       models.TableStatus
	}{
		{"in 30 minutes", now.Add(30 * time.Minute), models.TableReservee},
		{"in 2 hours", now.Add(2 * time.Hour), models.TableLibre},
		{"exactly one hour ahead", now.Add(time.Hour), models.TableLibre},
		{"30 minutes late", now.Add(-30 * time.Minute), models.TableReservee},
		{"yesterday", now.Add(-24 * time.Hour), models.TableLibre},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := activeReservation(4, tc.reservedAt)
			result := Reconcile(nil, []models.Reservation{res}, now, Options{})
			assert.Equal(t, tc.want, result[3].Status)
		})
	}
}

func TestReconcile_InactiveReservationsIgnored(t *testing.T) {
	for _, status := range []models.ReservationStatus{
		models.ReservationStatusAnnulee,
		models.ReservationStatusHonoree,
	} {
		res := activeReservation(6, now.Add(15*time.Minute))
		res.Status = status
		result := Reconcile(nil, []models.Reservation{res}, now, Options{})
		assert.Equal(t, models.TableLibre, result[5].Status, "status %s must not reserve", status)
	}
}

func TestReconcile_MostRecentOpenOrderWins(t *testing.T) {
	older := openOrder(7, now.Add(-2*time.Hour))
	newer := openOrder(7, now.Add(-10*time.Minute))

	result := Reconcile([]models.Order{older, newer}, nil, now, Options{})

	require.NotNil(t, result[6].CurrentOrder)
	assert.Equal(t, newer.ID, result[6].CurrentOrder.ID)

	// Same outcome regardless of input order.
	reversed := Reconcile([]models.Order{newer, older}, nil, now, Options{})
	assert.Equal(t, newer.ID, reversed[6].CurrentOrder.ID)
}

func TestReconcile_Idempotent(t *testing.T) {
	orders := []models.Order{openOrder(1, now.Add(-time.Minute)), openOrder(9, now.Add(-2*time.Minute))}
	reservations := []models.Reservation{activeReservation(2, now.Add(45 * time.Minute))}

	first := Reconcile(orders, reservations, now, Options{})
	second := Reconcile(orders, reservations, now, Options{})

	assert.Equal(t, first, second)
}

func TestReconcile_CustomCount(t *testing.T) {
	result := Reconcile(nil, nil, now, Options{Count: 4})

	require.Len(t, result, 4)
	assert.Equal(t, 1, result[0].Number)
	assert.Equal(t, 4, result[3].Number)
}

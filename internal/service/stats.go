package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// StatsOrderRepo is the order aggregation access needed for the dashboard.
type StatsOrderRepo interface {
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
	SumPaidBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int, error)
}

// StatsReservationRepo is the reservation aggregation access needed for the
// dashboard.
type StatsReservationRepo interface {
	CountActiveBetween(ctx context.Context, start, end time.Time) (int, error)
}

// DashboardStats is the day summary shown above the table grid.
type DashboardStats struct {
	TodayOrders       int             `json:"today_orders"`
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	ActiveOrders      int             `json:"active_orders"`
	TodayReservations int             `json:"today_reservations"`
}

// StatsService computes the dashboard day summary
type StatsService struct {
	orders       StatsOrderRepo
	reservations StatsReservationRepo
	now          func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(orders StatsOrderRepo, reservations StatsReservationRepo) *StatsService {
	return &StatsService{
		orders:       orders,
		reservations: reservations,
		now:          time.Now,
	}
}

// DashboardStats computes today's order count, PAYEE revenue, open order
// count and active reservation count.
func (s *StatsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	todayOrders, err := s.orders.CountCreatedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	revenue, err := s.orders.SumPaidBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	activeOrders, err := s.orders.CountByStatus(ctx, models.OrderStatusEnCours)
	if err != nil {
		return nil, err
	}

	todayReservations, err := s.reservations.CountActiveBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodayOrders:       todayOrders,
		TodayRevenue:      revenue,
		ActiveOrders:      activeOrders,
		TodayReservations: todayReservations,
	}, nil
}

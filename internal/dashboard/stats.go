// Package dashboard derives occupancy and income statistics from the room and charge snapshots.
package dashboard

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"apt-be-svc/internal/billing"
	"apt-be-svc/internal/models"
)

// IncomePoint is the paid total of one due month.
type IncomePoint struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// Stats is the dashboard view.
type Stats struct {
	TotalRooms      int                    `json:"total_rooms"`
	Occupied        int                    `json:"occupied"`
	Vacant          int                    `json:"vacant"`
	Maintenance     int                    `json:"maintenance"`
	OccupancyRate   float64                `json:"occupancy_rate"`
	IncomeSeries    []IncomePoint          `json:"income_series"`
	StatusHistogram map[billing.Status]int `json:"status_histogram"`
	Outstanding     decimal.Decimal        `json:"outstanding"`
	SkippedCharges  int                    `json:"skipped_charges"`
	ComputedAt      time.Time              `json:"computed_at"`
}

// Compute builds the dashboard from full snapshots. window is the number of
// months in the income series, ending with the current month in loc.
func Compute(rooms []models.Room, records []models.Charge, now time.Time, loc *time.Location, window int) Stats {
	stats := Stats{
		TotalRooms:      len(rooms),
		StatusHistogram: map[billing.Status]int{},
		Outstanding:     decimal.Zero,
		ComputedAt:      now,
	}

	for _, r := range rooms {
		switch r.Status {
		case models.RoomOccupied:
			stats.Occupied++
		case models.RoomVacant:
			stats.Vacant++
		case models.RoomMaintenance:
			stats.Maintenance++
		}
	}
	if stats.TotalRooms > 0 {
		rate := float64(stats.Occupied) / float64(stats.TotalRooms) * 100
		stats.OccupancyRate = math.Round(rate*100) / 100
	}

	stats.IncomeSeries = monthWindow(now, loc, window)
	index := make(map[string]int, len(stats.IncomeSeries))
	for i, p := range stats.IncomeSeries {
		index[p.Month] = i
	}

	charges, skipped := billing.NormalizeAll(records)
	stats.SkippedCharges = len(skipped)
	for _, c := range charges {
		status := c.EffectiveStatus(now, loc)
		stats.StatusHistogram[status]++

		if status != billing.StatusPaid {
			stats.Outstanding = stats.Outstanding.Add(c.Amount)
			continue
		}
		if i, ok := index[c.MonthLabel()]; ok {
			stats.IncomeSeries[i].Amount = stats.IncomeSeries[i].Amount.Add(c.Amount)
		}
	}

	return stats
}

// monthWindow returns n zeroed points, oldest first, ending with the month of now.
func monthWindow(now time.Time, loc *time.Location, n int) []IncomePoint {
	if n < 1 {
		n = 1
	}
	today := billing.Today(now, loc)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]IncomePoint, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i-(n-1), 0)
		points[i] = IncomePoint{Month: m.Format(billing.MonthLayout), Amount: decimal.Zero}
	}
	return points
}

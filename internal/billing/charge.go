package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"apt-be-svc/internal/models"
	"apt-be-svc/pkg/apperror"
)

const (
	// DateLayout is the wire format of dueDate.
	DateLayout = "2006-01-02"
	// MonthLayout is the month label format used in group ids.
	MonthLayout = "2006-01"
)

// Charge is the canonical in-memory shape of a charge record.
type Charge struct {
	ID        string
	Room      string
	Category  string
	Amount    decimal.Decimal
	DueDate   time.Time // calendar date, midnight UTC
	Status    Status    // stored status, never Overdue
	ProofRef  *string
	PaidAt    *time.Time
	Details   map[string]interface{}
	CreatedAt time.Time
}

// MonthLabel is the "YYYY-MM" of the due date.
func (c Charge) MonthLabel() string {
	return c.DueDate.Format(MonthLayout)
}

// EffectiveStatus reports Overdue for a Pending charge whose due date lies
// before today's date in loc. Every other status is returned unchanged.
func (c Charge) EffectiveStatus(now time.Time, loc *time.Location) Status {
	if c.Status != StatusPending {
		return c.Status
	}
	if Today(now, loc).After(c.DueDate) {
		return StatusOverdue
	}
	return StatusPending
}

// Today returns the calendar date of now in loc, as midnight UTC so it compares with DueDate.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDueDate accepts "YYYY-MM-DD" and full RFC 3339 timestamps, keeping only the date.
func ParseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, apperror.WithMetadata(apperror.KindDataShape, "unparseable due date", map[string]string{"due_date": raw})
}

// RoomKey picks the room a record belongs to. roomNumber wins when both are set.
func RoomKey(rec models.Charge) string {
	if rec.RoomNumber != nil {
		if v := strings.TrimSpace(*rec.RoomNumber); v != "" {
			return v
		}
	}
	if rec.Room != nil {
		return strings.TrimSpace(*rec.Room)
	}
	return ""
}

// Normalize converts a stored record into the canonical shape. Errors are DATA_SHAPE.
func Normalize(rec models.Charge) (Charge, error) {
	meta := map[string]string{"charge_id": rec.ID}

	room := RoomKey(rec)
	if room == "" {
		return Charge{}, apperror.WithMetadata(apperror.KindDataShape, "charge has no room", meta)
	}

	due, err := ParseDueDate(rec.DueDate)
	if err != nil {
		meta["due_date"] = rec.DueDate
		return Charge{}, apperror.WithMetadata(apperror.KindDataShape, "charge has no valid due date", meta)
	}

	if rec.Amount.IsNegative() {
		meta["amount"] = rec.Amount.String()
		return Charge{}, apperror.WithMetadata(apperror.KindDataShape, "charge amount is negative", meta)
	}

	status, err := ParseStatus(rec.Status)
	if err != nil {
		meta["status"] = rec.Status
		return Charge{}, apperror.WithMetadata(apperror.KindDataShape, "charge has unknown status", meta)
	}
	if status == StatusOverdue {
		// Some clients persisted the derived value.
		status = StatusPending
	}

	var paidAt *time.Time
	if status == StatusPaid {
		paidAt = rec.PaidAt
	}

	return Charge{
		ID:        rec.ID,
		Room:      room,
		Category:  strings.ToLower(strings.TrimSpace(rec.Category)),
		Amount:    rec.Amount,
		DueDate:   due,
		Status:    status,
		ProofRef:  rec.ProofRef,
		PaidAt:    paidAt,
		Details:   rec.Details,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Skipped is a record left out of aggregation, with the reason.
type Skipped struct {
	ChargeID string `json:"charge_id"`
	Reason   string `json:"reason"`
}

// NormalizeAll normalizes every record, collecting the ones that could not be read.
func NormalizeAll(records []models.Charge) ([]Charge, []Skipped) {
	charges := make([]Charge, 0, len(records))
	var skipped []Skipped
	for _, rec := range records {
		c, err := Normalize(rec)
		if err != nil {
			skipped = append(skipped, Skipped{ChargeID: rec.ID, Reason: err.Error()})
			continue
		}
		charges = append(charges, c)
	}
	return charges, skipped
}

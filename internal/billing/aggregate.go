package billing

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"apt-be-svc/internal/models"
	"apt-be-svc/pkg/apperror"
)

// Member is one charge as shown inside a bill group.
type Member struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"`
	Status   Status          `json:"status"`
}

// Group is the monthly bill of one room. It is derived and never stored.
type Group struct {
	ID              string          `json:"id"`
	Room            string          `json:"room"`
	MonthLabel      string          `json:"month_label"`
	DueDate         string          `json:"due_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	MemberChargeIDs []string        `json:"member_charge_ids"`
	Members         []Member        `json:"members"`
	ProofRef        *string         `json:"proof_ref,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
}

// GroupID builds the id of the (room, month) group.
func GroupID(room, monthLabel string) string {
	return room + "_" + monthLabel
}

// ParseGroupID splits a group id on its last underscore, so room ids may contain underscores.
func ParseGroupID(id string) (room string, monthLabel string, err error) {
	i := strings.LastIndex(id, "_")
	if i <= 0 || i == len(id)-1 {
		return "", "", apperror.WithMetadata(apperror.KindValidation, "malformed bill group id", map[string]string{"group_id": id})
	}
	room, monthLabel = id[:i], id[i+1:]
	if _, err := time.Parse(MonthLayout, monthLabel); err != nil {
		return "", "", apperror.WithMetadata(apperror.KindValidation, "malformed bill group month", map[string]string{"group_id": id})
	}
	return room, monthLabel, nil
}

// Aggregate groups charges by (room, due month). The output is recomputed in full
// from the input and ordered by month descending, then room ascending.
func Aggregate(charges []Charge, now time.Time, loc *time.Location) []Group {
	buckets := make(map[string][]Charge)
	for _, c := range charges {
		id := GroupID(c.Room, c.MonthLabel())
		buckets[id] = append(buckets[id], c)
	}

	groups := make([]Group, 0, len(buckets))
	for id, members := range buckets {
		groups = append(groups, buildGroup(id, members, now, loc))
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].MonthLabel != groups[j].MonthLabel {
			return groups[i].MonthLabel > groups[j].MonthLabel
		}
		return groups[i].Room < groups[j].Room
	})
	return groups
}

// AggregateRecords normalizes stored records and aggregates the readable ones.
func AggregateRecords(records []models.Charge, now time.Time, loc *time.Location) ([]Group, []Skipped) {
	charges, skipped := NormalizeAll(records)
	return Aggregate(charges, now, loc), skipped
}

func buildGroup(id string, members []Charge, now time.Time, loc *time.Location) Group {
	// Stable member order keeps proofRef/paidAt selection independent of input order.
	sort.Slice(members, func(i, j int) bool {
		if !members[i].CreatedAt.Equal(members[j].CreatedAt) {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		}
		return members[i].ID < members[j].ID
	})

	g := Group{
		ID:              id,
		Room:            members[0].Room,
		MonthLabel:      members[0].MonthLabel(),
		TotalAmount:     decimal.Zero,
		MemberChargeIDs: make([]string, 0, len(members)),
		Members:         make([]Member, 0, len(members)),
	}

	earliest := members[0].DueDate
	statuses := make([]Status, 0, len(members))
	for _, c := range members {
		status := c.EffectiveStatus(now, loc)
		statuses = append(statuses, status)

		g.TotalAmount = g.TotalAmount.Add(c.Amount)
		g.MemberChargeIDs = append(g.MemberChargeIDs, c.ID)
		g.Members = append(g.Members, Member{
			ID:       c.ID,
			Category: c.Category,
			Amount:   c.Amount,
			DueDate:  c.DueDate.Format(DateLayout),
			Status:   status,
		})

		if g.ProofRef == nil && c.ProofRef != nil {
			g.ProofRef = c.ProofRef
		}
		if g.PaidAt == nil && c.PaidAt != nil {
			g.PaidAt = c.PaidAt
		}
		if c.DueDate.Before(earliest) {
			earliest = c.DueDate
		}
	}

	g.Status = Resolve(statuses)
	g.DueDate = earliest.Format(DateLayout)
	return g
}

// Find returns the group with the given id.
func Find(groups []Group, id string) (Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// Filter narrows groups by room, month label and status. Empty fields match everything.
type Filter struct {
	Room       string
	MonthLabel string
	Status     Status
}

// Apply returns the groups matching f, preserving order.
func (f Filter) Apply(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if f.Room != "" && g.Room != f.Room {
			continue
		}
		if f.MonthLabel != "" && g.MonthLabel != f.MonthLabel {
			continue
		}
		if f.Status != "" && g.Status != f.Status {
			continue
		}
		out = append(out, g)
	}
	return out
}

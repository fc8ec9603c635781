// Package billing holds the charge normalizer, the monthly bill aggregator
// and the payment state table. Nothing here touches storage.
package billing

import (
	"strings"

	"apt-be-svc/pkg/apperror"
)

// Status is the payment status of a charge or bill group.
type Status string

const (
	StatusPending       Status = "Pending"
	StatusPendingReview Status = "PendingReview"
	StatusPaid          Status = "Paid"
	// StatusOverdue is never stored. It is derived from a Pending charge whose due date has passed.
	StatusOverdue Status = "Overdue"
)

// severity orders statuses for group resolution, highest wins.
var severity = map[Status]int{
	StatusPaid:          0,
	StatusPending:       1,
	StatusPendingReview: 2,
	StatusOverdue:       3,
}

// Severity returns the rank used when resolving a group status.
func (s Status) Severity() int {
	return severity[s]
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := severity[s]
	return ok
}

// ParseStatus accepts canonical names plus the legacy spellings found in older
// records ("Pending Review", "pending_review", lowercase variants).
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)

	switch key {
	case "pending", "":
		return StatusPending, nil
	case "pendingreview":
		return StatusPendingReview, nil
	case "paid":
		return StatusPaid, nil
	case "overdue":
		return StatusOverdue, nil
	}
	return "", apperror.WithMetadata(apperror.KindDataShape, "unknown charge status", map[string]string{"status": raw})
}

// Resolve folds member statuses into one group status. An empty input resolves to Pending.
func Resolve(statuses []Status) Status {
	if len(statuses) == 0 {
		return StatusPending
	}
	worst := statuses[0]
	for _, s := range statuses[1:] {
		if s.Severity() > worst.Severity() {
			worst = s
		}
	}
	return worst
}

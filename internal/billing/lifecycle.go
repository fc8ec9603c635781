package billing

import (
	"time"

	"apt-be-svc/pkg/apperror"
)

// Operation is a command that moves a charge through the payment lifecycle.
type Operation string

const (
	OpSubmitProof Operation = "submit_proof"
	OpVerify      Operation = "verify"
	OpDelete      Operation = "delete"
)

// forbidden marks a cell of the table that rejects the operation.
const forbidden Status = ""

// transitions is the state x operation table. Rows are effective statuses, so
// Overdue appears even though it is never stored. Delete keeps the status and
// removes the record.
var transitions = map[Status]map[Operation]Status{
	StatusPending: {
		OpSubmitProof: StatusPendingReview,
		OpVerify:      StatusPaid,
		OpDelete:      StatusPending,
	},
	StatusOverdue: {
		OpSubmitProof: StatusPendingReview,
		OpVerify:      StatusPaid,
		OpDelete:      StatusOverdue,
	},
	StatusPendingReview: {
		OpSubmitProof: StatusPendingReview,
		OpVerify:      StatusPaid,
		OpDelete:      StatusPendingReview,
	},
	StatusPaid: {
		OpSubmitProof: forbidden,
		OpVerify:      StatusPaid,
		OpDelete:      StatusPaid,
	},
}

// Transition looks up the next status for op applied to current. changed is false
// when the operation is a no-op at this charge (for Delete it is always true).
func Transition(current Status, op Operation) (next Status, changed bool, err error) {
	row, ok := transitions[current]
	if !ok {
		return "", false, apperror.WithMetadata(apperror.KindValidation, "unknown charge status", map[string]string{"status": string(current)})
	}
	next, ok = row[op]
	if !ok {
		return "", false, apperror.WithMetadata(apperror.KindValidation, "unknown operation", map[string]string{"operation": string(op)})
	}
	if next == forbidden {
		return "", false, apperror.WithMetadata(apperror.KindPrecondition, "operation not allowed from current status", map[string]string{
			"status":    string(current),
			"operation": string(op),
		})
	}
	if op == OpDelete {
		return next, true, nil
	}
	return next, next != current, nil
}

// Step is the planned effect of an operation on one charge.
type Step struct {
	ChargeID string
	Room     string
	From     Status
	To       Status
}

// Plan checks every target before anything is written. It returns the steps that
// change something, dropping no-ops, or the first rejection. An empty target set
// is a validation error.
func Plan(targets []Charge, op Operation, now time.Time, loc *time.Location) ([]Step, error) {
	if len(targets) == 0 {
		return nil, apperror.New(apperror.KindValidation, "no charges selected")
	}

	steps := make([]Step, 0, len(targets))
	for _, c := range targets {
		from := c.EffectiveStatus(now, loc)
		to, changed, err := Transition(from, op)
		if err != nil {
			if appErr, ok := err.(*apperror.Error); ok {
				if appErr.Metadata == nil {
					appErr.Metadata = map[string]string{}
				}
				appErr.Metadata["charge_id"] = c.ID
			}
			return nil, err
		}
		if !changed {
			continue
		}
		steps = append(steps, Step{ChargeID: c.ID, Room: c.Room, From: from, To: to})
	}
	return steps, nil
}

package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/pkg/apperror"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from    Status
		op      Operation
		to      Status
		changed bool
		errKind apperror.Kind
	}{
		{StatusPending, OpSubmitProof, StatusPendingReview, true, ""},
		{StatusOverdue, OpSubmitProof, StatusPendingReview, true, ""},
		{StatusPendingReview, OpSubmitProof, StatusPendingReview, false, ""},
		{StatusPaid, OpSubmitProof, "", false, apperror.KindPrecondition},

		{StatusPending, OpVerify, StatusPaid, true, ""},
		{StatusOverdue, OpVerify, StatusPaid, true, ""},
		{StatusPendingReview, OpVerify, StatusPaid, true, ""},
		{StatusPaid, OpVerify, StatusPaid, false, ""},

		{StatusPending, OpDelete, StatusPending, true, ""},
		{StatusPaid, OpDelete, StatusPaid, true, ""},

		{Status("Refunded"), OpVerify, "", false, apperror.KindValidation},
		{StatusPending, Operation("reject"), "", false, apperror.KindValidation},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"/"+string(tc.op), func(t *testing.T) {
			next, changed, err := Transition(tc.from, tc.op)
			if tc.errKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.errKind, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
			assert.Equal(t, tc.changed, changed)
		})
	}
}

func charge(id string, status Status, due string) Charge {
	d, _ := time.Parse(DateLayout, due)
	return Charge{ID: id, Room: "101", Amount: decimal.NewFromInt(100), DueDate: d, Status: status}
}

func TestPlanRejectsEmptyTargets(t *testing.T) {
	_, err := Plan(nil, OpVerify, midJanuary, bangkok)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestPlanChecksEveryTargetBeforeAnyStep(t *testing.T) {
	targets := []Charge{
		charge("a", StatusPending, "2024-01-31"),
		charge("b", StatusPaid, "2024-01-31"),
	}

	steps, err := Plan(targets, OpSubmitProof, midJanuary, bangkok)

	assert.Nil(t, steps)
	require.True(t, apperror.IsKind(err, apperror.KindPrecondition))
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "b", appErr.Metadata["charge_id"])
}

func TestPlanDropsNoOps(t *testing.T) {
	targets := []Charge{
		charge("a", StatusPaid, "2024-01-31"),
		charge("b", StatusPendingReview, "2024-01-31"),
		charge("c", StatusPending, "2024-01-10"),
	}

	steps, err := Plan(targets, OpVerify, midJanuary, bangkok)

	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "b", steps[0].ChargeID)
	assert.Equal(t, StatusOverdue, steps[1].From)
	assert.Equal(t, StatusPaid, steps[1].To)
}

func TestPlanIsIdempotentAfterApplying(t *testing.T) {
	targets := []Charge{charge("a", StatusPending, "2024-01-31"), charge("b", StatusPendingReview, "2024-01-31")}

	steps, err := Plan(targets, OpVerify, midJanuary, bangkok)
	require.NoError(t, err)
	for i := range targets {
		for _, s := range steps {
			if s.ChargeID == targets[i].ID {
				targets[i].Status = s.To
			}
		}
	}

	again, err := Plan(targets, OpVerify, midJanuary, bangkok)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestParseStatusLegacySpellings(t *testing.T) {
	for raw, want := range map[string]Status{
		"Pending Review": StatusPendingReview,
		"pending_review": StatusPendingReview,
		"PAID":           StatusPaid,
		"":               StatusPending,
		"Overdue":        StatusOverdue,
	} {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseStatus("Cancelled")
	assert.True(t, apperror.IsKind(err, apperror.KindDataShape))
}

func TestNormalizeStoredOverdueBecomesPending(t *testing.T) {
	c, err := Normalize(record("a", "101", "Rent", 100, "2024-01-31", "Overdue"))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, c.Status)
	assert.Equal(t, "rent", c.Category)
}

func TestNormalizeDropsPaidAtUnlessPaid(t *testing.T) {
	rec := record("a", "101", "rent", 100, "2024-01-31", "Pending")
	ts := time.Now()
	rec.PaidAt = &ts

	c, err := Normalize(rec)
	require.NoError(t, err)
	assert.Nil(t, c.PaidAt)
}

func TestNormalizeAcceptsTimestampDueDate(t *testing.T) {
	c, err := Normalize(record("a", "101", "rent", 100, "2024-01-31T00:00:00+07:00", "Pending"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01", c.MonthLabel())
}

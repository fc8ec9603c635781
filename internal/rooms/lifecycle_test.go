package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apt-be-svc/internal/models"
	"apt-be-svc/pkg/apperror"
)

func TestApply(t *testing.T) {
	vacant := State{Status: models.RoomVacant, TenantName: models.NoTenant}
	occupied := State{Status: models.RoomOccupied, TenantName: "Somchai"}
	repairEmpty := State{Status: models.RoomMaintenance, TenantName: models.NoTenant}
	repairLived := State{Status: models.RoomMaintenance, TenantName: "Somchai"}

	cases := []struct {
		name    string
		from    State
		op      Operation
		tenant  string
		want    State
		errKind apperror.Kind
	}{
		{"register vacant", vacant, OpRegister, " Anong ", State{models.RoomOccupied, "Anong"}, ""},
		{"register occupied", occupied, OpRegister, "Anong", State{}, apperror.KindPrecondition},
		{"register without name", vacant, OpRegister, "-", State{}, apperror.KindValidation},
		{"register under repair", repairEmpty, OpRegister, "Anong", State{}, apperror.KindPrecondition},
		{"vacate", occupied, OpVacate, "", vacant, ""},
		{"vacate vacant", vacant, OpVacate, "", State{}, apperror.KindPrecondition},
		{"maintenance from vacant", vacant, OpStartMaintenance, "", repairEmpty, ""},
		{"maintenance keeps tenant", occupied, OpStartMaintenance, "", repairLived, ""},
		{"maintenance twice", repairEmpty, OpStartMaintenance, "", State{}, apperror.KindPrecondition},
		{"finish with tenant", repairLived, OpFinishRepair, "", occupied, ""},
		{"finish without tenant", repairEmpty, OpFinishRepair, "", vacant, ""},
		{"finish ignores caller tenant", repairEmpty, OpFinishRepair, "Intruder", vacant, ""},
		{"finish when not in repair", occupied, OpFinishRepair, "", State{}, apperror.KindPrecondition},
		{"unknown op", vacant, Operation("demolish"), "", State{}, apperror.KindValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.from, tc.op, tc.tenant)
			if tc.errKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.errKind, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, Validate(got))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(State{Status: models.RoomVacant, TenantName: "-"}))
	assert.NoError(t, Validate(State{Status: models.RoomMaintenance, TenantName: "Somchai"}))
	assert.Error(t, Validate(State{Status: models.RoomOccupied, TenantName: "-"}))
	assert.Error(t, Validate(State{Status: models.RoomVacant, TenantName: "Somchai"}))
	assert.Error(t, Validate(State{Status: "Demolished", TenantName: "-"}))
}

func TestNormalizeFillsPlaceholder(t *testing.T) {
	assert.Equal(t, models.NoTenant, Normalize(State{Status: models.RoomVacant}).TenantName)
	assert.Equal(t, "Anong", Normalize(State{Status: models.RoomOccupied, TenantName: "Anong"}).TenantName)
}

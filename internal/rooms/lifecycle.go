// Package rooms is the occupancy state machine of a room.
package rooms

import (
	"strings"

	"apt-be-svc/internal/models"
	"apt-be-svc/pkg/apperror"
)

// Operation drives a room between Vacant, Occupied and Maintenance.
type Operation string

const (
	OpRegister         Operation = "register"
	OpVacate           Operation = "vacate"
	OpStartMaintenance Operation = "start_maintenance"
	OpFinishRepair     Operation = "finish_repair"
)

// State is the part of a room the lifecycle owns.
type State struct {
	Status     string
	TenantName string
}

// Of extracts the lifecycle state of a room.
func Of(room models.Room) State {
	return State{Status: room.Status, TenantName: room.TenantName}
}

// HasTenant reports whether a tenant name is on file.
func (s State) HasTenant() bool {
	name := strings.TrimSpace(s.TenantName)
	return name != "" && name != models.NoTenant
}

// allowedFrom lists the statuses each operation may start from.
var allowedFrom = map[Operation][]string{
	OpRegister:         {models.RoomVacant},
	OpVacate:           {models.RoomOccupied},
	OpStartMaintenance: {models.RoomVacant, models.RoomOccupied},
	OpFinishRepair:     {models.RoomMaintenance},
}

// Apply computes the next state. tenantName is only read by OpRegister.
// OpFinishRepair never takes a target from the caller: the room goes back to
// Occupied when a tenant is on file and to Vacant otherwise.
func Apply(current State, op Operation, tenantName string) (State, error) {
	from, ok := allowedFrom[op]
	if !ok {
		return State{}, apperror.WithMetadata(apperror.KindValidation, "unknown room operation", map[string]string{"operation": string(op)})
	}
	if !contains(from, current.Status) {
		return State{}, apperror.WithMetadata(apperror.KindPrecondition, "room is not in a state that allows this operation", map[string]string{
			"status":    current.Status,
			"operation": string(op),
		})
	}

	switch op {
	case OpRegister:
		name := strings.TrimSpace(tenantName)
		if name == "" || name == models.NoTenant {
			return State{}, apperror.New(apperror.KindValidation, "tenant name is required")
		}
		return State{Status: models.RoomOccupied, TenantName: name}, nil
	case OpVacate:
		return State{Status: models.RoomVacant, TenantName: models.NoTenant}, nil
	case OpStartMaintenance:
		return State{Status: models.RoomMaintenance, TenantName: current.TenantName}, nil
	default:
		if current.HasTenant() {
			return State{Status: models.RoomOccupied, TenantName: current.TenantName}, nil
		}
		return State{Status: models.RoomVacant, TenantName: models.NoTenant}, nil
	}
}

// Validate checks the tenant invariant: a tenant is on file iff the room is Occupied.
// Rooms under maintenance may or may not keep one.
func Validate(s State) error {
	switch s.Status {
	case models.RoomOccupied:
		if !s.HasTenant() {
			return apperror.New(apperror.KindValidation, "occupied room needs a tenant name")
		}
	case models.RoomVacant:
		if s.HasTenant() {
			return apperror.New(apperror.KindValidation, "vacant room cannot have a tenant name")
		}
	case models.RoomMaintenance:
	default:
		return apperror.WithMetadata(apperror.KindValidation, "unknown room status", map[string]string{"status": s.Status})
	}
	return nil
}

// Normalize fills the tenant placeholder for rooms without one.
func Normalize(s State) State {
	if !s.HasTenant() {
		s.TenantName = models.NoTenant
	}
	return s
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

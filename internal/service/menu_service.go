package service

import (
	"sort"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/internal/models/response"
	"apt-be-svc/pkg/apperror"
)

//go:generate go run go.uber.org/mock/mockgen -source=menu_service.go -destination=../mocks/menu_service_mock.go -package=mocks

// MenuService interface defines menu service methods
type MenuService interface {
	GetMenusByRole(role string) ([]response.MenuResponse, error)
}

// menuService implements MenuService interface
type menuService struct {
	menus map[string][]response.MenuResponse
}

// NewMenuService creates a new menu service
func NewMenuService() MenuService {
	return &menuService{
		menus: map[string][]response.MenuResponse{
			inbox.RoleAdmin: {
				{Code: "dashboard", Name: "Dashboard", Path: "/dashboard", Order: 1, IsActive: true},
				{Code: "rooms", Name: "Rooms", Path: "/rooms", Order: 2, IsActive: true},
				{Code: "billing", Name: "Billing", Path: "/billing", Order: 3, IsActive: true},
				{Code: "maintenance", Name: "Maintenance", Path: "/maintenance", Order: 4, IsActive: true},
				{Code: "parcels", Name: "Parcels", Path: "/parcels", Order: 5, IsActive: true},
			},
			inbox.RoleTenant: {
				{Code: "tenant_home", Name: "Home", Path: "/home", Order: 1, IsActive: true},
				{Code: "tenant_bill", Name: "Payments", Path: "/payments", Order: 2, IsActive: true},
				{Code: "parcels", Name: "My Parcels", Path: "/my-parcels", Order: 3, IsActive: true},
			},
		},
	}
}

// GetMenusByRole returns the active screens of a role, in display order
func (s *menuService) GetMenusByRole(role string) ([]response.MenuResponse, error) {
	menus, ok := s.menus[role]
	if !ok {
		return nil, apperror.WithMetadata(apperror.KindValidation, "unknown role", map[string]string{"role": role})
	}

	var activeMenus []response.MenuResponse
	for _, menu := range menus {
		if menu.IsActive {
			activeMenus = append(activeMenus, menu)
		}
	}
	sort.SliceStable(activeMenus, func(i, j int) bool { return activeMenus[i].Order < activeMenus[j].Order })

	return activeMenus, nil
}

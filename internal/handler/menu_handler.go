package handler

import (
	"github.com/gin-gonic/gin"

	"apt-be-svc/internal/middleware"
	"apt-be-svc/internal/service"
	"apt-be-svc/pkg/logger"
	"apt-be-svc/pkg/utils"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menuService service.MenuService
	logger      *logger.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService service.MenuService, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

// GetMenus handles GET /api/v1/menus
// @Summary Get menus for the caller
// @Description Get list of menus accessible by the caller's role
// @Tags menus
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.MenuResponse} "Menus retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/menus [get]
func (h *MenuHandler) GetMenus(c *gin.Context) {
	viewer, ok := middleware.ViewerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	menus, err := h.menuService.GetMenusByRole(viewer.Role)
	if err != nil {
		h.logger.WithError(err).WithField("role", viewer.Role).Error("Failed to get menus")
		utils.ErrorFromService(c, "Failed to get menus", err)
		return
	}

	utils.SuccessResponse(c, "Menus retrieved successfully", menus)
}

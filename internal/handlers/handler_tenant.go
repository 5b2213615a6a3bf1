package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/dto"
	"github.com/tfarhq/tfar_backend/internal/middleware"
)

// tenantHandler handles HTTP requests related to tenants and memberships.
type tenantHandler struct {
	tenantService ports.TenantService
}

func newTenantHandler(ts ports.TenantService) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers tenant and membership routes.
// Tenant creation and membership grants are administrative operations; the
// service layer enforces the admin check.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService ports.TenantService) {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.GET("", h.listUserTenants)
		tenants.POST("", h.createTenant)
		tenants.POST("/:tenant_id/members", h.addMember)
	}
}

func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

func (h *tenantHandler) listUserTenants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tenants, err := h.tenantService.ListUserTenants(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants))
}

func (h *tenantHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	tenantID := c.Param("tenant_id")

	err := h.tenantService.AddMember(c.Request.Context(), userID, req.UserID, tenantID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Member added",
		slog.String("tenant_id", tenantID),
		slog.String("target_user_id", req.UserID),
		slog.String("role", string(req.Role)))
	c.Status(http.StatusNoContent)
}

package dto

import (
	"time"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// --- Tenant DTOs ---

// CreateTenantRequest defines data for creating a new tenant.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID  string    `json:"tenantID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		CreatedBy: t.CreatedBy,
	}
}

// ListTenantsResponse wraps a list of tenants.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToListTenantsResponse converts a slice of domain.Tenant to DTO.
func ToListTenantsResponse(ts []domain.Tenant) ListTenantsResponse {
	list := make([]TenantResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTenantResponse(&t)
	}
	return ListTenantsResponse{Tenants: list}
}

// --- Membership DTOs ---

// AddMemberRequest defines data for granting a user access to a tenant.
type AddMemberRequest struct {
	UserID string                `json:"userID" binding:"required"`
	Role   domain.MembershipRole `json:"role" binding:"required,oneof=preparer reviewer"`
}

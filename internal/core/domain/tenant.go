package domain

import "time"

// Tenant represents one client organization whose asset register is isolated
// from every other tenant's. Tenants are created administratively and never
// mutated by the ingestion or export paths.
type Tenant struct {
	TenantID string `json:"tenantID"` // Primary Key (e.g., UUID)
	Name     string `json:"name"`     // Unique client name
	AuditFields
}

// MembershipRole defines the possible roles a user can have within a tenant.
type MembershipRole string

const (
	RolePreparer MembershipRole = "preparer" // May upload, view and export
	RoleReviewer MembershipRole = "reviewer" // May view and export only
)

// Membership grants a user access to a tenant with a specific role.
// Unique per (user, tenant).
type Membership struct {
	UserID   string         `json:"userID"`
	TenantID string         `json:"tenantID"`
	Role     MembershipRole `json:"role"`
	JoinedAt time.Time      `json:"joinedAt"`
}

// TenantAction enumerates the operations gated by a tenant membership.
type TenantAction string

const (
	ActionView   TenantAction = "view"
	ActionUpload TenantAction = "upload"
	ActionExport TenantAction = "export"
)

// Permits reports whether a role may perform the given action.
// Upload is restricted to preparers; view and export are open to any member.
func (r MembershipRole) Permits(action TenantAction) bool {
	switch action {
	case ActionUpload:
		return r == RolePreparer
	case ActionView, ActionExport:
		return r == RolePreparer || r == RoleReviewer
	default:
		return false
	}
}

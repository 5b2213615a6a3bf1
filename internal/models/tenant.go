package models

import "time"

// Tenant represents a tenant (client organization) row in the database.
type Tenant struct {
	TenantID string `json:"tenantID" db:"tenant_id"`
	Name     string `json:"name" db:"name"`
	AuditFields
}

// Membership represents a (user, tenant, role) grant row.
type Membership struct {
	UserID   string    `json:"userID" db:"user_id"`
	TenantID string    `json:"tenantID" db:"tenant_id"`
	Role     string    `json:"role" db:"role"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

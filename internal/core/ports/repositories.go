package ports

import (
	"context"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// Note: Specific method signatures might evolve. Context is included for potential cancellation/timeouts.

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TenantRepository defines persistence operations for Tenants and Memberships.
type TenantRepository interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	// ListTenantsByUserID returns the tenants the user is a member of,
	// ordered by tenant name.
	ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error)
	AddMembership(ctx context.Context, membership domain.Membership) error
	FindMembership(ctx context.Context, userID, tenantID string) (*domain.Membership, error)
}

// AssetRepository defines persistence operations for TFAR records.
// Saving a batch implies saving its upload audit entry atomically: either
// every record and the audit entry exist, or none do.
type AssetRepository interface {
	SaveRecordsWithUpload(ctx context.Context, records []domain.AssetRecord, upload domain.UploadAudit) error
	// ListRecordsByTenant returns records newest-first for dashboard views.
	ListRecordsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.AssetRecord, error)
	// ListRecordsForExport returns every record of the tenant ordered by asset id.
	ListRecordsForExport(ctx context.Context, tenantID string) ([]domain.AssetRecord, error)
}

// AuditRepository defines persistence operations for the append-only audit trail.
type AuditRepository interface {
	SaveExportEntry(ctx context.Context, entry domain.ExportAudit) error
	ListUploadsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.UploadAudit, error)
}

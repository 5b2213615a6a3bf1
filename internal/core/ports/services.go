package ports

import (
	"context"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// UserService manages user accounts.
type UserService interface {
	CreateUser(ctx context.Context, username, password, name string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TenantAuthorizer is the authorization gate consulted before any
// tenant-scoped operation.
type TenantAuthorizer interface {
	// ResolveSelectedTenant picks the tenant an operation targets: an
	// explicitly requested id wins, then the caller's previously selected id,
	// then the first accessible tenant by name. A user with no memberships
	// gets apperrors.ErrNoTenantSelected.
	ResolveSelectedTenant(ctx context.Context, userID, requestedTenantID, lastTenantID string) (*domain.Tenant, error)
	// AuthorizeTenantAction returns the caller's role when the action is
	// permitted, or apperrors.ErrForbidden. Upload requires the preparer
	// role; view and export are open to any member.
	AuthorizeTenantAction(ctx context.Context, userID, tenantID string, action domain.TenantAction) (domain.MembershipRole, error)
}

// TenantService manages tenants and memberships (administrative surface).
type TenantService interface {
	TenantAuthorizer
	CreateTenant(ctx context.Context, name, creatorUserID string) (*domain.Tenant, error)
	ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error)
	AddMember(ctx context.Context, addingUserID, targetUserID, tenantID string, role domain.MembershipRole) error
}

// IngestRequest carries everything one ingestion call needs.
type IngestRequest struct {
	FileBytes         []byte
	Filename          string
	UserID            string
	RequestedTenantID string // explicit tenant selection, may be empty
	LastTenantID      string // caller-remembered selection, may be empty
	SourceIP          string // best-effort client address
}

// IngestionService drives the end-to-end upload pipeline.
type IngestionService interface {
	IngestWorkbook(ctx context.Context, req IngestRequest) (*domain.UploadAudit, error)
}

// RegisterService is the read side of the asset register: listing and export.
type RegisterService interface {
	ListRecords(ctx context.Context, userID, requestedTenantID, lastTenantID string, limit, offset int) ([]domain.AssetRecord, *domain.Tenant, error)
	ListUploads(ctx context.Context, userID, requestedTenantID, lastTenantID string, limit, offset int) ([]domain.UploadAudit, *domain.Tenant, error)
	ExportCSV(ctx context.Context, userID, requestedTenantID, lastTenantID string) ([]byte, *domain.ExportAudit, error)
}

// ServiceContainer bundles the service implementations handed to the routers.
type ServiceContainer struct {
	User      UserService
	Tenant    TenantService
	Ingestion IngestionService
	Register  RegisterService
}

package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, userID)
	var tenants []domain.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]domain.Tenant)
	}
	return tenants, args.Error(1)
}

func (m *MockTenantRepository) AddMembership(ctx context.Context, membership domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockTenantRepository) FindMembership(ctx context.Context, userID, tenantID string) (*domain.Membership, error) {
	args := m.Called(ctx, userID, tenantID)
	var membership *domain.Membership
	if args.Get(0) != nil {
		membership = args.Get(0).(*domain.Membership)
	}
	return membership, args.Error(1)
}

// --- Mock TenantAuthorizer ---

type MockTenantAuthorizer struct {
	mock.Mock
}

func (m *MockTenantAuthorizer) ResolveSelectedTenant(ctx context.Context, userID, requestedTenantID, lastTenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, userID, requestedTenantID, lastTenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantAuthorizer) AuthorizeTenantAction(ctx context.Context, userID, tenantID string, action domain.TenantAction) (domain.MembershipRole, error) {
	args := m.Called(ctx, userID, tenantID, action)
	return args.Get(0).(domain.MembershipRole), args.Error(1)
}

// --- Mock AssetRepository ---

type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) SaveRecordsWithUpload(ctx context.Context, records []domain.AssetRecord, upload domain.UploadAudit) error {
	args := m.Called(ctx, records, upload)
	return args.Error(0)
}

func (m *MockAssetRepository) ListRecordsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.AssetRecord, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var records []domain.AssetRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AssetRecord)
	}
	return records, args.Error(1)
}

func (m *MockAssetRepository) ListRecordsForExport(ctx context.Context, tenantID string) ([]domain.AssetRecord, error) {
	args := m.Called(ctx, tenantID)
	var records []domain.AssetRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AssetRecord)
	}
	return records, args.Error(1)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveExportEntry(ctx context.Context, entry domain.ExportAudit) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListUploadsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.UploadAudit, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	var uploads []domain.UploadAudit
	if args.Get(0) != nil {
		uploads = args.Get(0).([]domain.UploadAudit)
	}
	return uploads, args.Error(1)
}

package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tfarhq/tfar_backend/internal/apperrors"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/core/services"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	mockUserRepo   *MockUserRepository
	service        ports.TenantService
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTenantService(suite.mockTenantRepo, suite.mockUserRepo)
}

// --- CreateTenant Tests ---

func (suite *TenantServiceTestSuite) TestCreateTenant_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, IsAdmin: true}, nil).Once()
	suite.mockTenantRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.Name == "Acme Pty Ltd" && t.TenantID != "" && t.CreatedBy == adminID
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, "Acme Pty Ltd", adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(tenant)
	suite.Equal("Acme Pty Ltd", tenant.Name)
	suite.NotEmpty(tenant.TenantID)
	suite.mockTenantRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_NonAdminForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, IsAdmin: false}, nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, "Acme Pty Ltd", userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(tenant)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "SaveTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_DuplicateName() {
	ctx := context.Background()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, IsAdmin: true}, nil).Once()
	suite.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).
		Return(apperrors.ErrDuplicate).Once()

	tenant, err := suite.service.CreateTenant(ctx, "Acme Pty Ltd", adminID)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(tenant)
}

// --- AddMember Tests ---

func (suite *TenantServiceTestSuite) TestAddMember_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	targetID := uuid.NewString()
	tenantID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, IsAdmin: true}, nil).Once()
	suite.mockTenantRepo.On("FindTenantByID", ctx, tenantID).
		Return(&domain.Tenant{TenantID: tenantID, Name: "Acme Pty Ltd"}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetID).
		Return(&domain.User{UserID: targetID}, nil).Once()
	suite.mockTenantRepo.On("AddMembership", ctx, mock.MatchedBy(func(m domain.Membership) bool {
		return m.UserID == targetID && m.TenantID == tenantID && m.Role == domain.RoleReviewer
	})).Return(nil).Once()

	err := suite.service.AddMember(ctx, adminID, targetID, tenantID, domain.RoleReviewer)

	suite.Require().NoError(err)
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestAddMember_InvalidRole() {
	ctx := context.Background()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, IsAdmin: true}, nil).Once()

	err := suite.service.AddMember(ctx, adminID, uuid.NewString(), uuid.NewString(), "owner")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "AddMembership", mock.Anything, mock.Anything)
}

// --- ResolveSelectedTenant Tests ---

func (suite *TenantServiceTestSuite) TestResolveSelectedTenant_RequestedWins() {
	ctx := context.Background()
	userID := uuid.NewString()
	requested := uuid.NewString()
	expected := &domain.Tenant{TenantID: requested, Name: "Acme Pty Ltd"}

	suite.mockTenantRepo.On("FindTenantByID", ctx, requested).Return(expected, nil).Once()

	tenant, err := suite.service.ResolveSelectedTenant(ctx, userID, requested, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(expected, tenant)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "ListTenantsByUserID", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestResolveSelectedTenant_RequestedUnknownIsForbidden() {
	ctx := context.Background()
	requested := uuid.NewString()

	suite.mockTenantRepo.On("FindTenantByID", ctx, requested).Return(nil, apperrors.ErrNotFound).Once()

	tenant, err := suite.service.ResolveSelectedTenant(ctx, uuid.NewString(), requested, "")

	// Existence of tenant ids must not leak to non-members.
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(tenant)
}

func (suite *TenantServiceTestSuite) TestResolveSelectedTenant_LastSelectionUsed() {
	ctx := context.Background()
	lastID := uuid.NewString()
	expected := &domain.Tenant{TenantID: lastID, Name: "Acme Pty Ltd"}

	suite.mockTenantRepo.On("FindTenantByID", ctx, lastID).Return(expected, nil).Once()

	tenant, err := suite.service.ResolveSelectedTenant(ctx, uuid.NewString(), "", lastID)

	suite.Require().NoError(err)
	suite.Equal(expected, tenant)
}

func (suite *TenantServiceTestSuite) TestResolveSelectedTenant_StaleLastFallsThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	staleID := uuid.NewString()
	fallback := domain.Tenant{TenantID: uuid.NewString(), Name: "Beta Holdings"}

	suite.mockTenantRepo.On("FindTenantByID", ctx, staleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTenantRepo.On("ListTenantsByUserID", ctx, userID).
		Return([]domain.Tenant{fallback}, nil).Once()

	tenant, err := suite.service.ResolveSelectedTenant(ctx, userID, "", staleID)

	suite.Require().NoError(err)
	suite.Equal(fallback.TenantID, tenant.TenantID)
}

func (suite *TenantServiceTestSuite) TestResolveSelectedTenant_NoMemberships() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockTenantRepo.On("ListTenantsByUserID", ctx, userID).
		Return([]domain.Tenant{}, nil).Once()

	tenant, err := suite.service.ResolveSelectedTenant(ctx, userID, "", "")

	suite.Require().ErrorIs(err, apperrors.ErrNoTenantSelected)
	suite.Nil(tenant)
}

// --- AuthorizeTenantAction Tests ---

func (suite *TenantServiceTestSuite) TestAuthorizeTenantAction_PreparerMayUpload() {
	ctx := context.Background()
	userID := uuid.NewString()
	tenantID := uuid.NewString()

	suite.mockTenantRepo.On("FindMembership", ctx, userID, tenantID).
		Return(&domain.Membership{UserID: userID, TenantID: tenantID, Role: domain.RolePreparer}, nil).Once()

	role, err := suite.service.AuthorizeTenantAction(ctx, userID, tenantID, domain.ActionUpload)

	suite.Require().NoError(err)
	suite.Equal(domain.RolePreparer, role)
}

func (suite *TenantServiceTestSuite) TestAuthorizeTenantAction_ReviewerMayNotUpload() {
	ctx := context.Background()
	userID := uuid.NewString()
	tenantID := uuid.NewString()

	suite.mockTenantRepo.On("FindMembership", ctx, userID, tenantID).
		Return(&domain.Membership{UserID: userID, TenantID: tenantID, Role: domain.RoleReviewer}, nil).Once()

	_, err := suite.service.AuthorizeTenantAction(ctx, userID, tenantID, domain.ActionUpload)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestAuthorizeTenantAction_ReviewerMayViewAndExport() {
	ctx := context.Background()
	userID := uuid.NewString()
	tenantID := uuid.NewString()
	membership := &domain.Membership{UserID: userID, TenantID: tenantID, Role: domain.RoleReviewer}

	suite.mockTenantRepo.On("FindMembership", ctx, userID, tenantID).Return(membership, nil).Twice()

	_, err := suite.service.AuthorizeTenantAction(ctx, userID, tenantID, domain.ActionView)
	suite.Require().NoError(err)
	_, err = suite.service.AuthorizeTenantAction(ctx, userID, tenantID, domain.ActionExport)
	suite.Require().NoError(err)
}

func (suite *TenantServiceTestSuite) TestAuthorizeTenantAction_NonMemberForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	tenantID := uuid.NewString()

	suite.mockTenantRepo.On("FindMembership", ctx, userID, tenantID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthorizeTenantAction(ctx, userID, tenantID, domain.ActionView)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

// --- ListUserTenants Tests ---

func (suite *TenantServiceTestSuite) TestListUserTenants_NilBecomesEmptySlice() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockTenantRepo.On("ListTenantsByUserID", ctx, userID).Return(nil, nil).Once()

	tenants, err := suite.service.ListUserTenants(ctx, userID)

	suite.Require().NoError(err)
	assert.NotNil(suite.T(), tenants)
	suite.Empty(tenants)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

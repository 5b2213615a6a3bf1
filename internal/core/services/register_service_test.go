package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tfarhq/tfar_backend/internal/apperrors"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/core/services"
)

type RegisterServiceTestSuite struct {
	suite.Suite
	mockAuthorizer *MockTenantAuthorizer
	mockAssetRepo  *MockAssetRepository
	mockAuditRepo  *MockAuditRepository
	service        ports.RegisterService

	userID string
	tenant *domain.Tenant
}

func (suite *RegisterServiceTestSuite) SetupTest() {
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewRegisterService(suite.mockAuthorizer, suite.mockAssetRepo, suite.mockAuditRepo)

	suite.userID = uuid.NewString()
	suite.tenant = &domain.Tenant{TenantID: uuid.NewString(), Name: "Acme Pty Ltd"}
}

func (suite *RegisterServiceTestSuite) expectResolveAndAuthorize(action domain.TenantAction, role domain.MembershipRole) {
	ctx := context.Background()
	suite.mockAuthorizer.On("ResolveSelectedTenant", ctx, suite.userID, suite.tenant.TenantID, "").
		Return(suite.tenant, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTenantAction", ctx, suite.userID, suite.tenant.TenantID, action).
		Return(role, nil).Once()
}

func sampleRecord(tenantID, assetID string) domain.AssetRecord {
	return domain.AssetRecord{
		RecordID:                 uuid.NewString(),
		TenantID:                 tenantID,
		AssetID:                  assetID,
		AssetDescription:         "Office printer",
		TaxStartDate:             time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
		DepreciationMethod:       "Prime Cost",
		PurchaseCost:             1200,
		TaxEffectiveLife:         5,
		OpeningCost:              1200,
		OpeningAccumDepreciation: 240,
		OpeningWDV:               960,
		Addition:                 0,
		Disposal:                 0,
		TaxDepreciation:          240,
		ClosingCost:              1200,
		ClosingAccumDepreciation: 480,
		ClosingWDV:               720,
	}
}

// --- ListRecords Tests ---

func (suite *RegisterServiceTestSuite) TestListRecords_Success() {
	ctx := context.Background()
	suite.expectResolveAndAuthorize(domain.ActionView, domain.RoleReviewer)
	expected := []domain.AssetRecord{sampleRecord(suite.tenant.TenantID, "FA-001")}

	suite.mockAssetRepo.On("ListRecordsByTenant", ctx, suite.tenant.TenantID, 50, 10).
		Return(expected, nil).Once()

	records, tenant, err := suite.service.ListRecords(ctx, suite.userID, suite.tenant.TenantID, "", 50, 10)

	suite.Require().NoError(err)
	suite.Equal(expected, records)
	suite.Equal(suite.tenant, tenant)
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestListRecords_Forbidden() {
	ctx := context.Background()
	suite.mockAuthorizer.On("ResolveSelectedTenant", ctx, suite.userID, suite.tenant.TenantID, "").
		Return(suite.tenant, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTenantAction", ctx, suite.userID, suite.tenant.TenantID, domain.ActionView).
		Return(domain.MembershipRole(""), apperrors.ErrForbidden).Once()

	records, tenant, err := suite.service.ListRecords(ctx, suite.userID, suite.tenant.TenantID, "", 100, 0)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(records)
	suite.Nil(tenant)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "ListRecordsByTenant", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ListUploads Tests ---

func (suite *RegisterServiceTestSuite) TestListUploads_Success() {
	ctx := context.Background()
	suite.expectResolveAndAuthorize(domain.ActionView, domain.RolePreparer)
	expected := []domain.UploadAudit{{
		UploadID:         uuid.NewString(),
		TenantID:         suite.tenant.TenantID,
		OriginalFilename: "assets.xlsx",
		RowCount:         3,
	}}

	suite.mockAuditRepo.On("ListUploadsByTenant", ctx, suite.tenant.TenantID, 100, 0).
		Return(expected, nil).Once()

	uploads, tenant, err := suite.service.ListUploads(ctx, suite.userID, suite.tenant.TenantID, "", 100, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, uploads)
	suite.Equal(suite.tenant, tenant)
}

// --- ExportCSV Tests ---

func (suite *RegisterServiceTestSuite) TestExportCSV_Success() {
	ctx := context.Background()
	suite.expectResolveAndAuthorize(domain.ActionExport, domain.RoleReviewer)
	records := []domain.AssetRecord{
		sampleRecord(suite.tenant.TenantID, "FA-001"),
		sampleRecord(suite.tenant.TenantID, "FA-002"),
	}

	suite.mockAssetRepo.On("ListRecordsForExport", ctx, suite.tenant.TenantID).
		Return(records, nil).Once()
	suite.mockAuditRepo.On("SaveExportEntry", ctx, mock.MatchedBy(func(e domain.ExportAudit) bool {
		return e.TenantID == suite.tenant.TenantID &&
			e.ExportedBy == suite.userID &&
			e.RowCount == 2 &&
			e.Filename == "tfar_export.csv"
	})).Return(nil).Once()

	data, audit, err := suite.service.ExportCSV(ctx, suite.userID, suite.tenant.TenantID, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(audit)
	suite.Equal("tfar_export.csv", audit.Filename)
	suite.Equal(2, audit.RowCount)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.Equal(append([]string{domain.ClientColumn}, domain.Columns...), rows[0])
	suite.Equal("Acme Pty Ltd", rows[1][0])
	suite.Equal("FA-001", rows[1][1])
	suite.Equal("2023-07-01", rows[1][3])
	suite.Equal("1200", rows[1][5])
	suite.Equal("720", rows[1][15])
	suite.Equal("FA-002", rows[2][1])

	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestExportCSV_QuotesEmbeddedCommas() {
	ctx := context.Background()
	suite.expectResolveAndAuthorize(domain.ActionExport, domain.RolePreparer)

	rec := sampleRecord(suite.tenant.TenantID, "FA-001")
	rec.AssetDescription = `Printer, "industrial"` + "\nsecond line"
	suite.mockAssetRepo.On("ListRecordsForExport", ctx, suite.tenant.TenantID).
		Return([]domain.AssetRecord{rec}, nil).Once()
	suite.mockAuditRepo.On("SaveExportEntry", ctx, mock.AnythingOfType("domain.ExportAudit")).
		Return(nil).Once()

	data, _, err := suite.service.ExportCSV(ctx, suite.userID, suite.tenant.TenantID, "")

	suite.Require().NoError(err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	// The value round-trips intact through RFC 4180 quoting.
	suite.Equal(rec.AssetDescription, rows[1][2])
}

func (suite *RegisterServiceTestSuite) TestExportCSV_EmptyRegister() {
	ctx := context.Background()
	suite.expectResolveAndAuthorize(domain.ActionExport, domain.RoleReviewer)

	suite.mockAssetRepo.On("ListRecordsForExport", ctx, suite.tenant.TenantID).
		Return([]domain.AssetRecord{}, nil).Once()
	suite.mockAuditRepo.On("SaveExportEntry", ctx, mock.MatchedBy(func(e domain.ExportAudit) bool {
		return e.RowCount == 0
	})).Return(nil).Once()

	data, audit, err := suite.service.ExportCSV(ctx, suite.userID, suite.tenant.TenantID, "")

	suite.Require().NoError(err)
	suite.Equal(0, audit.RowCount)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1) // header only
}

func (suite *RegisterServiceTestSuite) TestExportCSV_AuditFailureFailsExport() {
	ctx := context.Background()
	suite.expectResolveAndAuthorize(domain.ActionExport, domain.RolePreparer)

	suite.mockAssetRepo.On("ListRecordsForExport", ctx, suite.tenant.TenantID).
		Return([]domain.AssetRecord{sampleRecord(suite.tenant.TenantID, "FA-001")}, nil).Once()
	suite.mockAuditRepo.On("SaveExportEntry", ctx, mock.AnythingOfType("domain.ExportAudit")).
		Return(apperrors.ErrNotFound).Once()

	data, audit, err := suite.service.ExportCSV(ctx, suite.userID, suite.tenant.TenantID, "")

	suite.Require().Error(err)
	suite.Nil(data)
	suite.Nil(audit)
}

func TestRegisterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegisterServiceTestSuite))
}

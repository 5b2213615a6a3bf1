package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
)

const exportDateLayout = "2006-01-02"

// registerService is the read side of the asset register: record and audit
// listings for dashboards, and the audited CSV export.
type registerService struct {
	BaseService
	assetRepo ports.AssetRepository
	auditRepo ports.AuditRepository
}

// NewRegisterService creates a new register service with the provided dependencies
func NewRegisterService(authorizer ports.TenantAuthorizer, assetRepo ports.AssetRepository, auditRepo ports.AuditRepository) ports.RegisterService {
	return &registerService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		assetRepo:   assetRepo,
		auditRepo:   auditRepo,
	}
}

// Ensure registerService implements the RegisterService interface
var _ ports.RegisterService = (*registerService)(nil)

// resolveAndAuthorize resolves the target tenant and checks the action in one step.
func (s *registerService) resolveAndAuthorize(ctx context.Context, userID, requestedTenantID, lastTenantID string, action domain.TenantAction) (*domain.Tenant, error) {
	tenant, err := s.TenantAuthorizer.ResolveSelectedTenant(ctx, userID, requestedTenantID, lastTenantID)
	if err != nil {
		return nil, err
	}
	if _, err := s.TenantAuthorizer.AuthorizeTenantAction(ctx, userID, tenant.TenantID, action); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *registerService) ListRecords(ctx context.Context, userID, requestedTenantID, lastTenantID string, limit, offset int) ([]domain.AssetRecord, *domain.Tenant, error) {
	tenant, err := s.resolveAndAuthorize(ctx, userID, requestedTenantID, lastTenantID, domain.ActionView)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.assetRepo.ListRecordsByTenant(ctx, tenant.TenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("tenant_id", tenant.TenantID))
		return nil, nil, err
	}
	return records, tenant, nil
}

func (s *registerService) ListUploads(ctx context.Context, userID, requestedTenantID, lastTenantID string, limit, offset int) ([]domain.UploadAudit, *domain.Tenant, error) {
	tenant, err := s.resolveAndAuthorize(ctx, userID, requestedTenantID, lastTenantID, domain.ActionView)
	if err != nil {
		return nil, nil, err
	}
	uploads, err := s.auditRepo.ListUploadsByTenant(ctx, tenant.TenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list uploads", slog.String("tenant_id", tenant.TenantID))
		return nil, nil, err
	}
	return uploads, tenant, nil
}

// ExportCSV streams every record of the tenant as RFC 4180 CSV, ordered by
// asset id, with the tenant name prepended to each line. The export audit
// entry is written only after the full output is materialized, with the
// number of rows actually emitted.
func (s *registerService) ExportCSV(ctx context.Context, userID, requestedTenantID, lastTenantID string) ([]byte, *domain.ExportAudit, error) {
	tenant, err := s.resolveAndAuthorize(ctx, userID, requestedTenantID, lastTenantID, domain.ActionExport)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.assetRepo.ListRecordsForExport(ctx, tenant.TenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch records for export", slog.String("tenant_id", tenant.TenantID))
		return nil, nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{domain.ClientColumn}, domain.Columns...)
	if err := w.Write(header); err != nil {
		return nil, nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		line := []string{
			tenant.Name,
			r.AssetID,
			r.AssetDescription,
			r.TaxStartDate.Format(exportDateLayout),
			r.DepreciationMethod,
			strconv.FormatInt(r.PurchaseCost, 10),
			strconv.FormatInt(r.TaxEffectiveLife, 10),
			strconv.FormatInt(r.OpeningCost, 10),
			strconv.FormatInt(r.OpeningAccumDepreciation, 10),
			strconv.FormatInt(r.OpeningWDV, 10),
			strconv.FormatInt(r.Addition, 10),
			strconv.FormatInt(r.Disposal, 10),
			strconv.FormatInt(r.TaxDepreciation, 10),
			strconv.FormatInt(r.ClosingCost, 10),
			strconv.FormatInt(r.ClosingAccumDepreciation, 10),
			strconv.FormatInt(r.ClosingWDV, 10),
		}
		if err := w.Write(line); err != nil {
			return nil, nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, nil, fmt.Errorf("failed to flush CSV output: %w", err)
	}

	audit := domain.ExportAudit{
		ExportID:   uuid.NewString(),
		TenantID:   tenant.TenantID,
		ExportedBy: userID,
		Filename:   "tfar_export.csv",
		RowCount:   len(records),
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.SaveExportEntry(ctx, audit); err != nil {
		s.LogError(ctx, err, "Failed to save export audit entry",
			slog.String("tenant_id", tenant.TenantID),
			slog.String("export_id", audit.ExportID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Register exported",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("export_id", audit.ExportID),
		slog.Int("row_count", audit.RowCount))
	return buf.Bytes(), &audit, nil
}

package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/ingest"
)

// ingestionService drives the upload pipeline: tenant resolution and
// authorization, workbook parsing, header validation, row mapping, and the
// atomic persistence of the record batch with its audit entry.
type ingestionService struct {
	BaseService
	assetRepo ports.AssetRepository
}

// NewIngestionService creates a new ingestion service with the provided dependencies
func NewIngestionService(authorizer ports.TenantAuthorizer, assetRepo ports.AssetRepository) ports.IngestionService {
	return &ingestionService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		assetRepo:   assetRepo,
	}
}

// Ensure ingestionService implements the IngestionService interface
var _ ports.IngestionService = (*ingestionService)(nil)

// IngestWorkbook runs one upload end to end. The batch is all-or-nothing: any
// row failure aborts the call before anything is persisted, and the error
// carries the 1-based row number of the first offending row (the header row
// counts as row 1). A workbook whose data rows are all blank is a success
// with zero records and still produces an audit entry.
func (s *ingestionService) IngestWorkbook(ctx context.Context, req ports.IngestRequest) (*domain.UploadAudit, error) {
	tenant, err := s.TenantAuthorizer.ResolveSelectedTenant(ctx, req.UserID, req.RequestedTenantID, req.LastTenantID)
	if err != nil {
		return nil, err
	}
	if _, err := s.TenantAuthorizer.AuthorizeTenantAction(ctx, req.UserID, tenant.TenantID, domain.ActionUpload); err != nil {
		return nil, err
	}

	rows, err := ingest.ReadRows(req.FileBytes)
	if err != nil {
		s.LogWarn(ctx, "Rejected unreadable workbook",
			slog.String("filename", req.Filename),
			slog.String("error", err.Error()))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ingest.HeaderMismatchError{Expected: domain.Columns, Found: nil}
	}

	cols, err := ingest.ValidateHeader(rows[0])
	if err != nil {
		return nil, err
	}

	now := time.Now()
	records := make([]domain.AssetRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, header is row 1
		rec, ok, err := ingest.MapRow(row, cols, tenant.Name, rowNum)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		rec.RecordID = uuid.NewString()
		rec.TenantID = tenant.TenantID
		rec.OwnerUserID = req.UserID
		rec.UploadedAt = now
		records = append(records, *rec)
	}

	// Computed once from the raw bytes, reused for the audit entry.
	sum := sha256.Sum256(req.FileBytes)

	audit := domain.UploadAudit{
		UploadID:         uuid.NewString(),
		TenantID:         tenant.TenantID,
		UploadedBy:       req.UserID,
		OriginalFilename: req.Filename,
		RowCount:         len(records),
		SourceIP:         req.SourceIP,
		Checksum:         hex.EncodeToString(sum[:]),
		CreatedAt:        now,
	}

	if err := s.assetRepo.SaveRecordsWithUpload(ctx, records, audit); err != nil {
		s.LogError(ctx, err, "Failed to persist ingested batch",
			slog.String("tenant_id", tenant.TenantID),
			slog.String("upload_id", audit.UploadID))
		return nil, err
	}

	s.LogInfo(ctx, "Workbook ingested",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("upload_id", audit.UploadID),
		slog.Int("row_count", audit.RowCount))
	return &audit, nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/models"
	"github.com/tfarhq/tfar_backend/internal/utils/mapping"
)

type AssetRepository struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{db: db}
}

// Ensure AssetRepository implements ports.AssetRepository
var _ ports.AssetRepository = (*AssetRepository)(nil)

const insertRecordQuery = `
	INSERT INTO tfar_records (
		record_id, tenant_id, owner_user_id,
		asset_id, asset_description, tax_start_date, depreciation_method,
		purchase_cost, tax_effective_life, opening_cost, opening_accum_depreciation,
		opening_wdv, addition, disposal, tax_depreciation,
		closing_cost, closing_accum_depreciation, closing_wdv, uploaded_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

const insertUploadQuery = `
	INSERT INTO tfar_uploads (
		upload_id, tenant_id, uploaded_by, original_filename,
		row_count, source_ip, checksum, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

const recordColumns = `
	record_id, tenant_id, owner_user_id,
	asset_id, asset_description, tax_start_date, depreciation_method,
	purchase_cost, tax_effective_life, opening_cost, opening_accum_depreciation,
	opening_wdv, addition, disposal, tax_depreciation,
	closing_cost, closing_accum_depreciation, closing_wdv, uploaded_at
`

// SaveRecordsWithUpload persists an ingested batch and its upload audit entry
// inside one database transaction. Either every record and the audit entry
// are committed, or nothing is. A batch of zero records still writes the
// audit entry.
func (r *AssetRepository) SaveRecordsWithUpload(ctx context.Context, records []domain.AssetRecord, upload domain.UploadAudit) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op once the transaction is committed.
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		m := mapping.ToModelTfarRecord(rec)
		batch.Queue(insertRecordQuery,
			m.RecordID,
			m.TenantID,
			m.OwnerUserID,
			m.AssetID,
			m.AssetDescription,
			m.TaxStartDate,
			m.DepreciationMethod,
			m.PurchaseCost,
			m.TaxEffectiveLife,
			m.OpeningCost,
			m.OpeningAccumDepreciation,
			m.OpeningWDV,
			m.Addition,
			m.Disposal,
			m.TaxDepreciation,
			m.ClosingCost,
			m.ClosingAccumDepreciation,
			m.ClosingWDV,
			m.UploadedAt,
		)
	}
	mu := mapping.ToModelTfarUpload(upload)
	batch.Queue(insertUploadQuery,
		mu.UploadID,
		mu.TenantID,
		mu.UploadedBy,
		mu.OriginalFilename,
		mu.RowCount,
		mu.SourceIP,
		mu.Checksum,
		mu.CreatedAt,
	)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute record batch for upload %s: %w", upload.UploadID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit upload %s: %w", upload.UploadID, err)
	}
	return nil
}

func (r *AssetRepository) ListRecordsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.AssetRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + recordColumns + `
        FROM tfar_records
        WHERE tenant_id = $1
        ORDER BY uploaded_at DESC, asset_id
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *AssetRepository) ListRecordsForExport(ctx context.Context, tenantID string) ([]domain.AssetRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM tfar_records
        WHERE tenant_id = $1
        ORDER BY asset_id;
    `
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query export records for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]domain.AssetRecord, error) {
	records := []models.TfarRecord{}
	for rows.Next() {
		var m models.TfarRecord
		err := rows.Scan(
			&m.RecordID,
			&m.TenantID,
			&m.OwnerUserID,
			&m.AssetID,
			&m.AssetDescription,
			&m.TaxStartDate,
			&m.DepreciationMethod,
			&m.PurchaseCost,
			&m.TaxEffectiveLife,
			&m.OpeningCost,
			&m.OpeningAccumDepreciation,
			&m.OpeningWDV,
			&m.Addition,
			&m.Disposal,
			&m.TaxDepreciation,
			&m.ClosingCost,
			&m.ClosingAccumDepreciation,
			&m.ClosingWDV,
			&m.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", rows.Err())
	}
	return mapping.ToDomainTfarRecordSlice(records), nil
}

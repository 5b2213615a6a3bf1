package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/models"
	"github.com/tfarhq/tfar_backend/internal/utils/mapping"
)

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Ensure AuditRepository implements ports.AuditRepository
var _ ports.AuditRepository = (*AuditRepository)(nil)

func (r *AuditRepository) SaveExportEntry(ctx context.Context, entry domain.ExportAudit) error {
	m := mapping.ToModelTfarExport(entry)
	query := `
        INSERT INTO tfar_exports (export_id, tenant_id, exported_by, filename, row_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		m.ExportID,
		m.TenantID,
		m.ExportedBy,
		m.Filename,
		m.RowCount,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save export entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListUploadsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.UploadAudit, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT upload_id, tenant_id, uploaded_by, original_filename, row_count, source_ip, checksum, created_at
        FROM tfar_uploads
        WHERE tenant_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	uploads := []models.TfarUpload{}
	for rows.Next() {
		var m models.TfarUpload
		err := rows.Scan(
			&m.UploadID,
			&m.TenantID,
			&m.UploadedBy,
			&m.OriginalFilename,
			&m.RowCount,
			&m.SourceIP,
			&m.Checksum,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload row: %w", err)
		}
		uploads = append(uploads, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating upload rows: %w", rows.Err())
	}

	return mapping.ToDomainTfarUploadSlice(uploads), nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tfarhq/tfar_backend/internal/apperrors"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/models"
	"github.com/tfarhq/tfar_backend/internal/utils/mapping"
)

type TenantRepository struct {
	db *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{db: db}
}

// Ensure TenantRepository implements ports.TenantRepository
var _ ports.TenantRepository = (*TenantRepository)(nil)

func (r *TenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
        INSERT INTO tenants (tenant_id, name, created_at, created_by)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, m.TenantID, m.Name, m.CreatedAt, m.CreatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save tenant: %w", err)
	}
	return nil
}

func (r *TenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `
        SELECT tenant_id, name, created_at, created_by
        FROM tenants
        WHERE tenant_id = $1;
    `
	var m models.Tenant
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&m.TenantID, &m.Name, &m.CreatedAt, &m.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant by ID: %w", err)
	}
	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}

func (r *TenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	query := `
        SELECT t.tenant_id, t.name, t.created_at, t.created_by
        FROM tenants t
        JOIN memberships m ON m.tenant_id = t.tenant_id
        WHERE m.user_id = $1
        ORDER BY t.name;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants for user: %w", err)
	}
	defer rows.Close()

	tenants := []models.Tenant{}
	for rows.Next() {
		var m models.Tenant
		if err := rows.Scan(&m.TenantID, &m.Name, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan tenant row: %w", err)
		}
		tenants = append(tenants, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", rows.Err())
	}

	return mapping.ToDomainTenantSlice(tenants), nil
}

func (r *TenantRepository) AddMembership(ctx context.Context, membership domain.Membership) error {
	m := mapping.ToModelMembership(membership)
	query := `
        INSERT INTO memberships (user_id, tenant_id, role, joined_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, m.UserID, m.TenantID, m.Role, m.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to add membership: %w", err)
	}
	return nil
}

func (r *TenantRepository) FindMembership(ctx context.Context, userID, tenantID string) (*domain.Membership, error) {
	query := `
        SELECT user_id, tenant_id, role, joined_at
        FROM memberships
        WHERE user_id = $1 AND tenant_id = $2;
    `
	var m models.Membership
	err := r.db.QueryRow(ctx, query, userID, tenantID).Scan(&m.UserID, &m.TenantID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	membership := mapping.ToDomainMembership(m)
	return &membership, nil
}

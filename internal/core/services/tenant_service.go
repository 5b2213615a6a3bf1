package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tfarhq/tfar_backend/internal/apperrors"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
)

// tenantService manages tenants and memberships and acts as the
// authorization gate for every tenant-scoped operation.
type tenantService struct {
	BaseService
	tenantRepo ports.TenantRepository
	userRepo   ports.UserRepository
}

// NewTenantService creates a new tenant service with the provided dependencies
func NewTenantService(tenantRepo ports.TenantRepository, userRepo ports.UserRepository) ports.TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
	}
}

// Ensure tenantService implements the TenantService interface
var _ ports.TenantService = (*tenantService)(nil)

// CreateTenant creates a new tenant. Administrative operation.
func (s *tenantService) CreateTenant(ctx context.Context, name, creatorUserID string) (*domain.Tenant, error) {
	if err := s.requireAdmin(ctx, creatorUserID); err != nil {
		return nil, err
	}

	tenant := domain.Tenant{
		TenantID: uuid.NewString(),
		Name:     name,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now(),
			CreatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Tenant name already exists", slog.String("name", name))
		} else {
			s.LogError(ctx, err, "Failed to save tenant", slog.String("name", name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Tenant created",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("creator_id", creatorUserID))
	return &tenant, nil
}

// AddMember grants a user access to a tenant with a role. Administrative operation.
func (s *tenantService) AddMember(ctx context.Context, addingUserID, targetUserID, tenantID string, role domain.MembershipRole) error {
	if err := s.requireAdmin(ctx, addingUserID); err != nil {
		return err
	}
	if role != domain.RolePreparer && role != domain.RoleReviewer {
		return apperrors.ErrValidation
	}
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		return err
	}

	membership := domain.Membership{
		UserID:   targetUserID,
		TenantID: tenantID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.tenantRepo.AddMembership(ctx, membership); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to add membership",
				slog.String("target_user_id", targetUserID),
				slog.String("tenant_id", tenantID))
		}
		return err
	}

	s.LogInfo(ctx, "Membership added",
		slog.String("target_user_id", targetUserID),
		slog.String("tenant_id", tenantID),
		slog.String("role", string(role)))
	return nil
}

// ListUserTenants retrieves the tenants a user belongs to, ordered by name.
func (s *tenantService) ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error) {
	tenants, err := s.tenantRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants for user", slog.String("user_id", userID))
		return nil, err
	}
	if tenants == nil {
		return []domain.Tenant{}, nil
	}
	return tenants, nil
}

// ResolveSelectedTenant picks the tenant an operation targets. An explicitly
// requested tenant id wins; a caller-remembered id is used next; otherwise
// the first accessible tenant by name. The remembered id is only a hint, so
// a stale one falls through to the default rather than failing.
func (s *tenantService) ResolveSelectedTenant(ctx context.Context, userID, requestedTenantID, lastTenantID string) (*domain.Tenant, error) {
	if requestedTenantID != "" {
		tenant, err := s.tenantRepo.FindTenantByID(ctx, requestedTenantID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Do not reveal whether the tenant exists.
				return nil, apperrors.ErrForbidden
			}
			return nil, err
		}
		return tenant, nil
	}

	if lastTenantID != "" {
		tenant, err := s.tenantRepo.FindTenantByID(ctx, lastTenantID)
		if err == nil {
			return tenant, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	tenants, err := s.tenantRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants while resolving selection", slog.String("user_id", userID))
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, apperrors.ErrNoTenantSelected
	}
	return &tenants[0], nil
}

// AuthorizeTenantAction checks that the user holds a membership on the tenant
// permitting the action, and returns the membership role.
func (s *tenantService) AuthorizeTenantAction(ctx context.Context, userID, tenantID string, action domain.TenantAction) (domain.MembershipRole, error) {
	membership, err := s.tenantRepo.FindMembership(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of tenant",
				slog.String("user_id", userID),
				slog.String("tenant_id", tenantID))
			return "", apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find membership",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return "", err
	}

	if !membership.Role.Permits(action) {
		s.LogDebug(ctx, "Role does not permit action",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("role", string(membership.Role)),
			slog.String("action", string(action)))
		return "", apperrors.ErrForbidden
	}

	return membership.Role, nil
}

func (s *tenantService) requireAdmin(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return err
	}
	if !user.IsAdmin {
		s.LogDebug(ctx, "Non-admin attempted administrative operation", slog.String("user_id", userID))
		return apperrors.ErrForbidden
	}
	return nil
}

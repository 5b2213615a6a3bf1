package mapping

import (
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantSlice converts a slice of model Tenants to domain Tenants
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}

// ToModelMembership converts a domain Membership to a model Membership
func ToModelMembership(d domain.Membership) models.Membership {
	return models.Membership{
		UserID:   d.UserID,
		TenantID: d.TenantID,
		Role:     string(d.Role),
		JoinedAt: d.JoinedAt,
	}
}

// ToDomainMembership converts a model Membership to a domain Membership
func ToDomainMembership(m models.Membership) domain.Membership {
	return domain.Membership{
		UserID:   m.UserID,
		TenantID: m.TenantID,
		Role:     domain.MembershipRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

package mapping

import (
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/models"
)

// ToModelTfarRecord converts a domain AssetRecord to a model TfarRecord
func ToModelTfarRecord(d domain.AssetRecord) models.TfarRecord {
	return models.TfarRecord{
		RecordID:                 d.RecordID,
		TenantID:                 d.TenantID,
		OwnerUserID:              d.OwnerUserID,
		AssetID:                  d.AssetID,
		AssetDescription:         d.AssetDescription,
		TaxStartDate:             d.TaxStartDate,
		DepreciationMethod:       d.DepreciationMethod,
		PurchaseCost:             d.PurchaseCost,
		TaxEffectiveLife:         d.TaxEffectiveLife,
		OpeningCost:              d.OpeningCost,
		OpeningAccumDepreciation: d.OpeningAccumDepreciation,
		OpeningWDV:               d.OpeningWDV,
		Addition:                 d.Addition,
		Disposal:                 d.Disposal,
		TaxDepreciation:          d.TaxDepreciation,
		ClosingCost:              d.ClosingCost,
		ClosingAccumDepreciation: d.ClosingAccumDepreciation,
		ClosingWDV:               d.ClosingWDV,
		UploadedAt:               d.UploadedAt,
	}
}

// ToDomainTfarRecord converts a model TfarRecord to a domain AssetRecord
func ToDomainTfarRecord(m models.TfarRecord) domain.AssetRecord {
	return domain.AssetRecord{
		RecordID:                 m.RecordID,
		TenantID:                 m.TenantID,
		OwnerUserID:              m.OwnerUserID,
		AssetID:                  m.AssetID,
		AssetDescription:         m.AssetDescription,
		TaxStartDate:             m.TaxStartDate,
		DepreciationMethod:       m.DepreciationMethod,
		PurchaseCost:             m.PurchaseCost,
		TaxEffectiveLife:         m.TaxEffectiveLife,
		OpeningCost:              m.OpeningCost,
		OpeningAccumDepreciation: m.OpeningAccumDepreciation,
		OpeningWDV:               m.OpeningWDV,
		Addition:                 m.Addition,
		Disposal:                 m.Disposal,
		TaxDepreciation:          m.TaxDepreciation,
		ClosingCost:              m.ClosingCost,
		ClosingAccumDepreciation: m.ClosingAccumDepreciation,
		ClosingWDV:               m.ClosingWDV,
		UploadedAt:               m.UploadedAt,
	}
}

// ToDomainTfarRecordSlice converts a slice of model TfarRecords to domain AssetRecords
func ToDomainTfarRecordSlice(ms []models.TfarRecord) []domain.AssetRecord {
	ds := make([]domain.AssetRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTfarRecord(m)
	}
	return ds
}

// ToModelTfarUpload converts a domain UploadAudit to a model TfarUpload
func ToModelTfarUpload(d domain.UploadAudit) models.TfarUpload {
	return models.TfarUpload{
		UploadID:         d.UploadID,
		TenantID:         d.TenantID,
		UploadedBy:       d.UploadedBy,
		OriginalFilename: d.OriginalFilename,
		RowCount:         d.RowCount,
		SourceIP:         d.SourceIP,
		Checksum:         d.Checksum,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainTfarUpload converts a model TfarUpload to a domain UploadAudit
func ToDomainTfarUpload(m models.TfarUpload) domain.UploadAudit {
	return domain.UploadAudit{
		UploadID:         m.UploadID,
		TenantID:         m.TenantID,
		UploadedBy:       m.UploadedBy,
		OriginalFilename: m.OriginalFilename,
		RowCount:         m.RowCount,
		SourceIP:         m.SourceIP,
		Checksum:         m.Checksum,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainTfarUploadSlice converts a slice of model TfarUploads to domain UploadAudits
func ToDomainTfarUploadSlice(ms []models.TfarUpload) []domain.UploadAudit {
	ds := make([]domain.UploadAudit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTfarUpload(m)
	}
	return ds
}

// ToModelTfarExport converts a domain ExportAudit to a model TfarExport
func ToModelTfarExport(d domain.ExportAudit) models.TfarExport {
	return models.TfarExport{
		ExportID:   d.ExportID,
		TenantID:   d.TenantID,
		ExportedBy: d.ExportedBy,
		Filename:   d.Filename,
		RowCount:   d.RowCount,
		CreatedAt:  d.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// --- TFAR DTOs ---

// UploadResponse summarizes one successful ingestion.
type UploadResponse struct {
	UploadID         string    `json:"uploadID"`
	TenantID         string    `json:"tenantID"`
	OriginalFilename string    `json:"originalFilename"`
	RowCount         int       `json:"rowCount"`
	Checksum         string    `json:"checksum"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUploadResponse converts domain.UploadAudit to DTO.
func ToUploadResponse(u *domain.UploadAudit) UploadResponse {
	return UploadResponse{
		UploadID:         u.UploadID,
		TenantID:         u.TenantID,
		OriginalFilename: u.OriginalFilename,
		RowCount:         u.RowCount,
		Checksum:         u.Checksum,
		CreatedAt:        u.CreatedAt,
	}
}

// RecordResponse defines data returned for one asset register row.
type RecordResponse struct {
	RecordID                 string    `json:"recordID"`
	TenantID                 string    `json:"tenantID"`
	OwnerUserID              string    `json:"ownerUserID"`
	AssetID                  string    `json:"assetID"`
	AssetDescription         string    `json:"assetDescription"`
	TaxStartDate             string    `json:"taxStartDate"` // ISO-8601 date
	DepreciationMethod       string    `json:"depreciationMethod"`
	PurchaseCost             int64     `json:"purchaseCost"`
	TaxEffectiveLife         int64     `json:"taxEffectiveLife"`
	OpeningCost              int64     `json:"openingCost"`
	OpeningAccumDepreciation int64     `json:"openingAccumDepreciation"`
	OpeningWDV               int64     `json:"openingWDV"`
	Addition                 int64     `json:"addition"`
	Disposal                 int64     `json:"disposal"`
	TaxDepreciation          int64     `json:"taxDepreciation"`
	ClosingCost              int64     `json:"closingCost"`
	ClosingAccumDepreciation int64     `json:"closingAccumDepreciation"`
	ClosingWDV               int64     `json:"closingWDV"`
	UploadedAt               time.Time `json:"uploadedAt"`
}

// ToRecordResponse converts domain.AssetRecord to DTO.
func ToRecordResponse(r *domain.AssetRecord) RecordResponse {
	return RecordResponse{
		RecordID:                 r.RecordID,
		TenantID:                 r.TenantID,
		OwnerUserID:              r.OwnerUserID,
		AssetID:                  r.AssetID,
		AssetDescription:         r.AssetDescription,
		TaxStartDate:             r.TaxStartDate.Format("2006-01-02"),
		DepreciationMethod:       r.DepreciationMethod,
		PurchaseCost:             r.PurchaseCost,
		TaxEffectiveLife:         r.TaxEffectiveLife,
		OpeningCost:              r.OpeningCost,
		OpeningAccumDepreciation: r.OpeningAccumDepreciation,
		OpeningWDV:               r.OpeningWDV,
		Addition:                 r.Addition,
		Disposal:                 r.Disposal,
		TaxDepreciation:          r.TaxDepreciation,
		ClosingCost:              r.ClosingCost,
		ClosingAccumDepreciation: r.ClosingAccumDepreciation,
		ClosingWDV:               r.ClosingWDV,
		UploadedAt:               r.UploadedAt,
	}
}

// ListRecordsResponse wraps a page of asset register rows.
type ListRecordsResponse struct {
	TenantID string           `json:"tenantID"`
	Records  []RecordResponse `json:"records"`
}

// ToListRecordsResponse converts a slice of domain.AssetRecord to DTO.
func ToListRecordsResponse(tenantID string, rs []domain.AssetRecord) ListRecordsResponse {
	list := make([]RecordResponse, len(rs))
	for i, r := range rs {
		list[i] = ToRecordResponse(&r)
	}
	return ListRecordsResponse{TenantID: tenantID, Records: list}
}

// UploadAuditResponse defines data returned for one upload audit entry.
type UploadAuditResponse struct {
	UploadID         string    `json:"uploadID"`
	UploadedBy       string    `json:"uploadedBy"`
	OriginalFilename string    `json:"originalFilename"`
	RowCount         int       `json:"rowCount"`
	SourceIP         string    `json:"sourceIP"`
	Checksum         string    `json:"checksum"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ListUploadsResponse wraps a page of upload audit entries.
type ListUploadsResponse struct {
	TenantID string                `json:"tenantID"`
	Uploads  []UploadAuditResponse `json:"uploads"`
}

// ToListUploadsResponse converts a slice of domain.UploadAudit to DTO.
func ToListUploadsResponse(tenantID string, us []domain.UploadAudit) ListUploadsResponse {
	list := make([]UploadAuditResponse, len(us))
	for i, u := range us {
		list[i] = UploadAuditResponse{
			UploadID:         u.UploadID,
			UploadedBy:       u.UploadedBy,
			OriginalFilename: u.OriginalFilename,
			RowCount:         u.RowCount,
			SourceIP:         u.SourceIP,
			Checksum:         u.Checksum,
			CreatedAt:        u.CreatedAt,
		}
	}
	return ListUploadsResponse{TenantID: tenantID, Uploads: list}
}

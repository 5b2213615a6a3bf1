package domain

import "time"

// UploadAudit is the immutable log entry for one successful ingestion.
// Exactly one entry is created per successful upload, inside the same
// transaction that persists the record batch.
type UploadAudit struct {
	UploadID         string    `json:"uploadID"` // Primary Key (e.g., UUID)
	TenantID         string    `json:"tenantID"`
	UploadedBy       string    `json:"uploadedBy"` // UserID
	OriginalFilename string    `json:"originalFilename"`
	RowCount         int       `json:"rowCount"`
	SourceIP         string    `json:"sourceIP"` // Best effort, proxy aware
	Checksum         string    `json:"checksum"` // Hex SHA-256 of the raw file bytes
	CreatedAt        time.Time `json:"createdAt"`
}

// ExportAudit is the immutable log entry for one successful export.
type ExportAudit struct {
	ExportID   string    `json:"exportID"` // Primary Key (e.g., UUID)
	TenantID   string    `json:"tenantID"`
	ExportedBy string    `json:"exportedBy"` // UserID
	Filename   string    `json:"filename"`
	RowCount   int       `json:"rowCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

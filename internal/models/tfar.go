package models

import "time"

// TfarRecord represents one asset register row in the database.
// Rows are append-only; there is no update path.
type TfarRecord struct {
	RecordID    string `json:"recordID" db:"record_id"`
	TenantID    string `json:"tenantID" db:"tenant_id"`
	OwnerUserID string `json:"ownerUserID" db:"owner_user_id"`

	AssetID                  string    `json:"assetID" db:"asset_id"`
	AssetDescription         string    `json:"assetDescription" db:"asset_description"`
	TaxStartDate             time.Time `json:"taxStartDate" db:"tax_start_date"`
	DepreciationMethod       string    `json:"depreciationMethod" db:"depreciation_method"`
	PurchaseCost             int64     `json:"purchaseCost" db:"purchase_cost"`
	TaxEffectiveLife         int64     `json:"taxEffectiveLife" db:"tax_effective_life"`
	OpeningCost              int64     `json:"openingCost" db:"opening_cost"`
	OpeningAccumDepreciation int64     `json:"openingAccumDepreciation" db:"opening_accum_depreciation"`
	OpeningWDV               int64     `json:"openingWDV" db:"opening_wdv"`
	Addition                 int64     `json:"addition" db:"addition"`
	Disposal                 int64     `json:"disposal" db:"disposal"`
	TaxDepreciation          int64     `json:"taxDepreciation" db:"tax_depreciation"`
	ClosingCost              int64     `json:"closingCost" db:"closing_cost"`
	ClosingAccumDepreciation int64     `json:"closingAccumDepreciation" db:"closing_accum_depreciation"`
	ClosingWDV               int64     `json:"closingWDV" db:"closing_wdv"`

	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// TfarUpload represents one upload audit row. Append-only.
type TfarUpload struct {
	UploadID         string    `json:"uploadID" db:"upload_id"`
	TenantID         string    `json:"tenantID" db:"tenant_id"`
	UploadedBy       string    `json:"uploadedBy" db:"uploaded_by"`
	OriginalFilename string    `json:"originalFilename" db:"original_filename"`
	RowCount         int       `json:"rowCount" db:"row_count"`
	SourceIP         string    `json:"sourceIP" db:"source_ip"`
	Checksum         string    `json:"checksum" db:"checksum"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// TfarExport represents one export audit row. Append-only.
type TfarExport struct {
	ExportID   string    `json:"exportID" db:"export_id"`
	TenantID   string    `json:"tenantID" db:"tenant_id"`
	ExportedBy string    `json:"exportedBy" db:"exported_by"`
	Filename   string    `json:"filename" db:"filename"`
	RowCount   int       `json:"rowCount" db:"row_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

package domain

import "time"

// Columns lists the fifteen required TFAR headers, lower-case, in file order.
// Uploaded sheets must carry exactly these (order-independent), optionally
// plus a ClientColumn naming the tenant each row belongs to.
var Columns = []string{
	"asset id",
	"asset description",
	"tax start date",
	"depreciation method",
	"purchase cost",
	"tax effective life",
	"opening cost",
	"opening accumulated depreciation",
	"opening wdv",
	"addition",
	"disposal",
	"tax depreciation",
	"closing cost",
	"closing accumulated depreciation",
	"closing wdv",
}

// ClientColumn is the optional sixteenth header carrying the tenant name.
const ClientColumn = "client"

// Maximum lengths (in codepoints) for the string-typed TFAR fields.
const (
	AssetIDMaxLen            = 50
	AssetDescriptionMaxLen   = 250
	DepreciationMethodMaxLen = 50
)

// AssetRecord is one TFAR line item, scoped to a tenant and the user who
// uploaded it. Records are immutable once created; there is no update path.
type AssetRecord struct {
	RecordID    string `json:"recordID"` // Primary Key (e.g., UUID)
	TenantID    string `json:"tenantID"`
	OwnerUserID string `json:"ownerUserID"` // The uploading user

	AssetID                  string    `json:"assetID"`
	AssetDescription         string    `json:"assetDescription"`
	TaxStartDate             time.Time `json:"taxStartDate"`
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

	UploadedAt time.Time `json:"uploadedAt"` // Assigned at persistence time
}

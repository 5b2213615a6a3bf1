package models

import "time"

// AuditFields holds standard audit columns shared by mutable tables.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	CreatedBy string    `json:"createdBy" db:"created_by"`
}

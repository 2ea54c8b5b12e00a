package types

import (
	"time"
)

// BaseModel is embedded by every domain model persisted in the document
// store. CreatedAt is written once at insert time; UpdatedAt is refreshed by
// the store on every successful update.
type BaseModel struct {
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetDefaultBaseModel returns the base model applied to freshly created
// records: Active status and both timestamps set to now.
func GetDefaultBaseModel() BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

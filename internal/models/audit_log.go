package models

import "gorm.io/datatypes"

// AuditLog is one write made through the API. UserID is the account the
// write applied to; Changes holds the fields that mattered for the action.
type AuditLog struct {
	Base
	UserID       string            `gorm:"size:64;not null;index" json:"user_id"`
	Action       string            `gorm:"size:32;not null" json:"action"`
	ResourceType string            `gorm:"size:32;not null" json:"resource_type"`
	ResourceID   string            `gorm:"size:64" json:"resource_id"`
	IPAddress    string            `gorm:"size:45" json:"ip_address"`
	Changes      datatypes.JSONMap `json:"changes,omitempty"`
}

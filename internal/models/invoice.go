package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DeploymentEntry is one billable deployment. Every entry is priced at the
// account's deployment rate regardless of its details.
type DeploymentEntry struct {
	ID      string `json:"id"`
	Details string `json:"details"`
}

// CustomEntry is a free-form line item. Amount is signed; negative values act
// as deductions.
type CustomEntry struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is one account's invoice for one period. ID is the period id, so
// the primary key is the (id, user_id) pair.
type Invoice struct {
	ID                string                               `gorm:"primaryKey;size:16" json:"id"`
	UserID            string                               `gorm:"primaryKey;size:64" json:"user_id"`
	PeriodStart       time.Time                            `gorm:"not null;index" json:"period_start"`
	PeriodEnd         time.Time                            `gorm:"not null" json:"period_end"`
	AppDeployments    datatypes.JSONSlice[DeploymentEntry] `json:"app_deployments"`
	CustomEntries     datatypes.JSONSlice[CustomEntry]     `json:"custom_entries"`
	Meetings          int                                  `gorm:"not null;default:0" json:"meetings"`
	BaseRate          decimal.Decimal                      `gorm:"type:decimal(12,2);not null;default:0" json:"base_rate"`
	IsPaid            bool                                 `gorm:"not null;default:false" json:"is_paid"`
	ReceivedAmountEUR decimal.Decimal                      `gorm:"column:received_amount_eur;type:decimal(12,2);not null;default:0" json:"received_amount_eur"`
	Version           int                                  `gorm:"not null;default:1" json:"version"`
	CreatedAt         time.Time                            `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt         time.Time                            `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// Normalize replaces missing line item lists with empty ones.
func (i *Invoice) Normalize() {
	if i.AppDeployments == nil {
		i.AppDeployments = datatypes.JSONSlice[DeploymentEntry]{}
	}
	if i.CustomEntries == nil {
		i.CustomEntries = datatypes.JSONSlice[CustomEntry]{}
	}
}

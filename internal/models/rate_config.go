package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateConfig holds an account's pricing parameters.
type RateConfig struct {
	UserID           string          `gorm:"primaryKey;size:64" json:"user_id"`
	BaseRate         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"base_rate"`
	DeploymentRate   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"deployment_rate"`
	DeploymentLabel  string          `gorm:"size:100" json:"deployment_label"`
	MeetingRateUnit  int             `gorm:"not null;default:1" json:"meeting_rate_unit"`
	MeetingRateValue decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"meeting_rate_value"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/logger"
	"invoicer/internal/models"
	"invoicer/internal/pagination"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed so the
// audited write itself still succeeds.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if len(changes) > 0 {
		entry.Changes = datatypes.JSONMap(changes)
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.With("audit").Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

// List returns audit entries newest first, optionally filtered by account.
func (s *auditService) List(page pagination.PageRequest, userID string) (*pagination.PageResponse[models.AuditLog], error) {
	page = page.Normalize()

	query := s.db.Model(&models.AuditLog{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	if err := query.Scopes(page.Scope()).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page, total)
	return &resp, nil
}

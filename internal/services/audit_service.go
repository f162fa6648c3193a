package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"folio/internal/logger"
	"folio/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer. With a nil db entries are
// only written to the application log.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	if s.db == nil {
		logger.Get().Infow("audit",
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
			"changes", changesJSON,
		)
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		logger.Get().Errorw("failed to generate audit log id", "error", err)
		return
	}
	entry := &models.AuditLog{
		Base:         models.Base{ID: id.String()},
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

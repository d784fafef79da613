package service

import (
	"context"

	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	Record(ctx context.Context, userEmail string, action string, entityName string, entityID string, details interface{}) error
	ListForUser(ctx context.Context, userEmail string, limit int) ([]entity.AuditLog, error)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record writes one audit entry. An empty userEmail is stored as NULL.
func (s *auditService) Record(ctx context.Context, userEmail string, action string, entityName string, entityID string, details interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"details":   details,
	}

	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}
	if userEmail != "" {
		auditLog.UserEmail = &userEmail
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// ListForUser returns the newest entries for userEmail.
func (s *auditService) ListForUser(ctx context.Context, userEmail string, limit int) ([]entity.AuditLog, error) {
	logs, err := s.auditRepo.FindByUserEmail(s.db.WithContext(ctx), userEmail, limit)
	if err != nil {
		s.log.Warnf("Failed to find audit logs for %s: %+v", userEmail, err)
		return nil, err
	}
	return logs, nil
}

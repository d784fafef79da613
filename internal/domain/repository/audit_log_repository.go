package repository

import (
	"doctor-directory-bff/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByUserEmail(db *gorm.DB, email string, limit int) ([]entity.AuditLog, error)
}

package usecase

import (
	"context"
	"errors"

	"doctor-directory-bff/internal/converter"
	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/delivery/http/middleware"
	"doctor-directory-bff/internal/service"

	"github.com/sirupsen/logrus"
)

const activityLimit = 50

var ErrLoginRequired = errors.New("login required")

type AuditLogUsecase interface {
	GetMyActivity(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditService service.AuditService
}

func NewAuditLogUsecase(log *logrus.Logger, auditService service.AuditService) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditService: auditService,
	}
}

// GetMyActivity lists the caller's most recent audited actions.
func (u *auditLogUsecase) GetMyActivity(ctx context.Context) (*dto.AuditLogListResponse, error) {
	userEmail, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok {
		return nil, ErrLoginRequired
	}

	logs, err := u.auditService.ListForUser(ctx, userEmail, activityLimit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	logResponses := converter.AuditLogsToResponses(logs)

	return &dto.AuditLogListResponse{
		Logs:  logResponses,
		Total: len(logs),
	}, nil
}

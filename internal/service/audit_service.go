package service

import (
	"context"

	"evercare-appointment-api/internal/domain/entity"
	"evercare-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogAction(ctx context.Context, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogAction appends one audit trail entry. Audit failures are reported
// to the caller but must never fail the operation being audited.
func (s *auditService) LogAction(ctx context.Context, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Audit actions
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditService records successful mutations issued from the dashboard. The
// backend owns the authoritative history; this trail is for diagnostics.
type AuditService interface {
	LogCreate(ctx context.Context, actor string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, actor string, entityName string, entityID string, newValue interface{})
	LogDelete(ctx context.Context, actor string, entityName string, entityID string)
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{
		log: log,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, actor string, entityName string, entityID string, newValue interface{}) {
	s.entry(ctx, actor, AuditActionCreate, entityName, entityID).
		WithField("new_value", newValue).
		Info("audit")
}

// LogUpdate logs an update action with the values that were sent
func (s *auditService) LogUpdate(ctx context.Context, actor string, entityName string, entityID string, newValue interface{}) {
	s.entry(ctx, actor, AuditActionUpdate, entityName, entityID).
		WithField("new_value", newValue).
		Info("audit")
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(ctx context.Context, actor string, entityName string, entityID string) {
	s.entry(ctx, actor, AuditActionDelete, entityName, entityID).Info("audit")
}

func (s *auditService) entry(ctx context.Context, actor, action, entityName, entityID string) *logrus.Entry {
	return s.log.WithContext(ctx).WithFields(logrus.Fields{
		"actor":     actor,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
	})
}

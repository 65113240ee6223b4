package service

import (
	"context"
	"sync"
	"time"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	auditQueueSize    = 256
	auditWriteTimeout = 5 * time.Second
)

// AuditService records who changed what. Entries are written asynchronously:
// a failing or saturated audit trail never fails the request that caused it.
type AuditService interface {
	LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{})
	LogEvent(ctx context.Context, userID *uuid.UUID, action string)
	Stop()
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository

	queue    chan *entity.AuditLog
	wg       sync.WaitGroup
	stopOnce sync.Once
	mu       sync.RWMutex
	stopped  bool
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	s := &auditService{
		log:       log,
		auditRepo: auditRepo,
		queue:     make(chan *entity.AuditLog, auditQueueSize),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *auditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) {
	s.dispatch(userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.dispatch(userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) {
	s.dispatch(userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) LogEvent(ctx context.Context, userID *uuid.UUID, action string) {
	s.dispatch(userID, action, nil)
}

// Stop drains queued entries and waits for the worker. Safe to call twice.
func (s *auditService) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		close(s.queue)
		s.mu.Unlock()

		s.wg.Wait()
		s.log.Info("Audit service stopped")
	})
}

func (s *auditService) dispatch(userID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		s.log.Warnf("Audit service stopped, dropping %s entry", action)
		return
	}

	select {
	case s.queue <- auditLog:
	default:
		s.log.Warnf("Audit queue full, dropping %s entry", action)
	}
}

func (s *auditService) worker() {
	defer s.wg.Done()

	for auditLog := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		if err := s.auditRepo.Create(ctx, auditLog); err != nil {
			s.log.Warnf("Failed to create audit log: %+v", err)
		}
		cancel()
	}
}

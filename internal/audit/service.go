package audit

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/database/audit"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

const maxMessageLen = 500

// Origin identifies the request behind a change.
type Origin struct {
	RequestID string
	IPAddress string
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// LogCreate records the outcome of an insert.
func (s *Service) LogCreate(ctx context.Context, origin Origin, entityType string, entityID uint, err error) {
	s.record(ctx, origin, entities.AuditEventCreate, entityType, entityID,
		fmt.Sprintf("Created %s %d", entityType, entityID), err)
}

// LogUpdate records the outcome of an update.
func (s *Service) LogUpdate(ctx context.Context, origin Origin, entityType string, entityID uint, err error) {
	s.record(ctx, origin, entities.AuditEventUpdate, entityType, entityID,
		fmt.Sprintf("Updated %s %d", entityType, entityID), err)
}

// LogDelete records the outcome of a removal.
func (s *Service) LogDelete(ctx context.Context, origin Origin, entityType string, entityID uint, err error) {
	s.record(ctx, origin, entities.AuditEventDelete, entityType, entityID,
		fmt.Sprintf("Deleted %s %d", entityType, entityID), err)
}

// LogSeed records a demonstration data load.
func (s *Service) LogSeed(ctx context.Context, description string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventSeed,
		Action:      "seed",
		Description: truncate(description, maxMessageLen),
		Status:      entities.AuditStatusSuccess,
	}
	markFailure(event, err)
	s.write(ctx, event)
}

func (s *Service) record(ctx context.Context, origin Origin, eventType entities.AuditEventType, entityType string, entityID uint, description string, err error) {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      entityType + "_" + string(eventType),
		Description: description,
		EntityType:  entityType,
		RequestID:   origin.RequestID,
		IPAddress:   origin.IPAddress,
		Status:      entities.AuditStatusSuccess,
	}
	if entityID != 0 {
		event.EntityID = &entityID
	}
	markFailure(event, err)
	s.write(ctx, event)
}

func markFailure(event *entities.AuditEvent, err error) {
	if err == nil {
		return
	}
	event.Status = entities.AuditStatusFailed
	event.ErrorKind = database.KindOf(err).String()
	event.ErrorMsg = truncate(database.Message(err), maxMessageLen)
}

// write never fails the caller; a lost audit row is only logged.
func (s *Service) write(ctx context.Context, event *entities.AuditEvent) {
	if err := s.repo.LogEvent(context.WithoutCancel(ctx), event); err != nil {
		log.Printf("Failed to log audit event %s: %v", event.Action, err)
	}
}

// GetEvents retrieves a filtered page of audit events.
func (s *Service) GetEvents(ctx context.Context, filter audit.Filter) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, filter)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

// truncate shortens s to at most maxLen characters.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

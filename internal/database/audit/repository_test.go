package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	return db
}

func TestRepository_LogEvent(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	id := uint(3)
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      "genre_delete",
		Description: "Deleted genre 3",
		EntityType:  "genre",
		EntityID:    &id,
		Status:      entities.AuditStatusSuccess,
	}

	err := repo.LogEvent(context.Background(), event)
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	stored, err := repo.GetEventByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.EntityID)
	assert.Equal(t, uint(3), *stored.EntityID)
}

func TestRepository_GetEvents(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		err := repo.LogEvent(ctx, &entities.AuditEvent{
			EventType:  entities.AuditEventCreate,
			Action:     "book_create",
			EntityType: "book",
			Status:     entities.AuditStatusSuccess,
			CreatedAt:  time.Now().Add(time.Duration(-i) * time.Hour),
		})
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		err := repo.LogEvent(ctx, &entities.AuditEvent{
			EventType:  entities.AuditEventDelete,
			Action:     "seller_delete",
			EntityType: "seller",
			Status:     entities.AuditStatusFailed,
			ErrorKind:  "integrity_violation",
		})
		require.NoError(t, err)
	}

	t.Run("all events", func(t *testing.T) {
		events, total, err := repo.GetEvents(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(20), total)
		assert.Len(t, events, 20)
	})

	t.Run("by entity type", func(t *testing.T) {
		events, total, err := repo.GetEvents(ctx, Filter{EntityType: "seller"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		for _, e := range events {
			assert.Equal(t, "integrity_violation", e.ErrorKind)
		}
	})

	t.Run("by event type with pagination", func(t *testing.T) {
		events, total, err := repo.GetEvents(ctx, Filter{EventType: entities.AuditEventCreate, Limit: 10, Offset: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, events, 5)
	})

	t.Run("most recent first", func(t *testing.T) {
		events, _, err := repo.GetEvents(ctx, Filter{EntityType: "book", Limit: 2})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.True(t, events[0].CreatedAt.After(events[1].CreatedAt))
	})
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{Action: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}))
	require.NoError(t, repo.LogEvent(ctx, &entities.AuditEvent{Action: "new"}))

	deleted, err := repo.DeleteOldEvents(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, total, err := repo.GetEvents(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "new", events[0].Action)
}

func TestRepository_GetEventByID_Missing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetEventByID(context.Background(), 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

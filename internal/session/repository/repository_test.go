package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&sessionModel.Session{}))
	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	session := &sessionModel.Session{
		ID:        "sess-1",
		UserID:    7,
		Username:  "ayoub",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "ayoub", got.Username)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, sessionModel.ErrSessionNotFound)
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &sessionModel.Session{
		ID:        "sess-1",
		UserID:    7,
		Username:  "ayoub",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.Delete(ctx, "sess-1"))

	_, err := repo.GetByID(ctx, "sess-1")
	assert.ErrorIs(t, err, sessionModel.ErrSessionNotFound)
}

func TestRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &sessionModel.Session{
		ID: "stale", UserID: 1, Username: "a", ExpiresAt: now.Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &sessionModel.Session{
		ID: "fresh", UserID: 2, Username: "b", ExpiresAt: now.Add(time.Hour),
	}))

	deleted, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetByID(ctx, "stale")
	assert.ErrorIs(t, err, sessionModel.ErrSessionNotFound)

	_, err = repo.GetByID(ctx, "fresh")
	assert.NoError(t, err)
}

package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Deondre2002/Market/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderProduct{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestRepo(t *testing.T) *GormRepo {
	return New(initTestDB(t))
}

func TestCreateUser_Conflict(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := &models.User{Username: "alice", PasswordHash: "hash-1"}
	require.NoError(t, r.CreateUser(ctx, first))
	require.NotZero(t, first.ID)

	dup := &models.User{Username: "alice", PasswordHash: "hash-2"}
	require.ErrorIs(t, r.CreateUser(ctx, dup), ErrConflict)

	// Original row untouched, no second row created.
	var count int64
	require.NoError(t, r.DB.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	stored, err := r.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, first.ID, stored.ID)
	require.Equal(t, "hash-1", stored.PasswordHash)
}

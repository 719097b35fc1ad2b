package repo

import (
	"context"
	"testing"

	"project_management/be/biz/model/domain"
	"project_management/be/biz/model/errs"
	"project_management/be/biz/model/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	// every new connection would open an empty in-memory database
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(&storage.UserRecord{})
	assert.NoError(t, err)
	return db
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	u := &domain.User{
		Email:        "test@example.com",
		Name:         "test_name",
		PasswordHash: "hash",
	}

	created, err := r.Create(ctx, u)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, u.Email, created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	// Verify in DB
	var m storage.UserRecord
	err = db.First(&m, "user_id = ?", created.UserID).Error
	assert.NoError(t, err)
	assert.Equal(t, u.Email, m.Email)
	assert.Equal(t, "hash", m.PasswordHash)
}

func TestUserRepository_CreateDuplicatedEmail(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &domain.User{Email: "dup@example.com", Name: "a", PasswordHash: "h"})
	assert.NoError(t, err)

	_, err = r.Create(ctx, &domain.User{Email: "dup@example.com", Name: "b", PasswordHash: "h"})
	assert.Error(t, err)
	assert.True(t, errs.IsDuplicatedErr(err))
}

func TestUserRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	u := &storage.UserRecord{
		UserId:       "test_user_id",
		Email:        "test@example.com",
		Name:         "test_name",
		PasswordHash: "hash",
	}
	db.Create(u)

	// Test found
	found, err := r.FindByUserID(ctx, "test_user_id")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, u.UserId, found.UserID)
		assert.Equal(t, u.PasswordHash, found.PasswordHash)
	}

	// Test not found
	found, err = r.FindByUserID(ctx, "non_existent")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	u := &storage.UserRecord{
		UserId:       "test_user_id",
		Email:        "test@example.com",
		Name:         "test_name",
		PasswordHash: "hash",
	}
	db.Create(u)

	// Test found
	found, err := r.FindByEmail(ctx, "test@example.com")
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, u.Email, found.Email)
		assert.Equal(t, u.Name, found.Name)
	}

	// Test not found
	found, err = r.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

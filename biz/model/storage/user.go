package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	GormModel
	UserId       string `gorm:"size:64;not null;uniqueIndex"`  // 用户唯一索引
	Email        string `gorm:"size:254;not null;uniqueIndex"` // 用户唯一登录邮箱
	PasswordHash string `gorm:"size:128;not null"`             // bcrypt 哈希, 自带盐
	Name         string `gorm:"size:64;not null"`              // 用户姓名
}

func (UserRecord) TableName() string {
	return "users"
}

func (u *UserRecord) BeforeCreate(_ *gorm.DB) error {
	if u.UserId == "" {
		u.UserId = uuid.NewString()
	}
	return nil
}

package convert

import (
	"project_management/be/biz/model/domain"
	"project_management/be/biz/model/dto"
	"project_management/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:       u.UserID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UserID:       m.UserId,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserDomainToDTO drops the password hash.
func UserDomainToDTO(u *domain.User) *dto.User {
	if u == nil {
		return nil
	}
	return &dto.User{
		ID:    u.UserID,
		Email: u.Email,
		Name:  u.Name,
	}
}

package user

import (
	"context"
	"errors"

	"project_management/be/biz/dal/repo"
	"project_management/be/biz/db/mysql"
	"project_management/be/biz/model/domain"
	"project_management/be/biz/model/errs"
	"project_management/be/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Service struct {
	users repo.UserRepository
}

func New(users repo.UserRepository) *Service {
	return &Service{users: users}
}

func NewDefault() *Service {
	return New(repo.NewUserRepositoryGorm(mysql.GetDbConn()))
}

// Signup expects validated input and returns the created user.
func (s *Service) Signup(ctx context.Context, email, name, password string) (*domain.User, errs.Error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByEmail err: %v", err)
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.UserAlreadyExists
	}

	hash, err := encode.HashPassword(password)
	if errors.Is(err, encode.ErrPasswordTooLong) {
		return nil, errs.ParamError.SetMsg("password must be at most 72 bytes.")
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "HashPassword err: %v", err)
		return nil, errs.ServerError
	}

	u, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		// lost the race against a concurrent signup
		if errs.IsDuplicatedErr(err) {
			return nil, errs.UserAlreadyExists
		}
		hlog.CtxErrorf(ctx, "Create user err: %v", err)
		return nil, errs.ServerError
	}

	hlog.CtxInfof(ctx, "user created, user_id=%s", u.UserID)
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, errs.Error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByEmail err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotExist
	}

	ok, err := encode.ComparePassword(u.PasswordHash, password)
	if err != nil {
		hlog.CtxErrorf(ctx, "ComparePassword err: %v, user_id=%s", err, u.UserID)
		return nil, errs.ServerError
	}
	if !ok {
		return nil, errs.PasswordIncorrect
	}
	return u, nil
}

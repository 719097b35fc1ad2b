package handler

import (
	"context"
	"errors"
	"net/http"

	"project_management/be/biz/middleware/jwt"
	"project_management/be/biz/model/convert"
	"project_management/be/biz/model/dto"
	"project_management/be/biz/model/errs"
	"project_management/be/biz/service/user"
	"project_management/be/biz/util/resp"
	"project_management/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
)

// Signup 用户注册接口
//
//	@Tags			auth
//	@Summary		用户注册接口
//	@Description	校验邮箱、密码强度后创建用户, 返回的用户信息不包含密码
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.SignupReq	true	"signup request body"
//	@Success		201	{object}	dto.SignupResp
//	@Failure		400	{object}	dto.MessageResp
//	@Failure		500	{object}	dto.MessageResp
//	@Router			/auth/signup [POST]
func Signup(ctx context.Context, c *app.RequestContext) {
	var req dto.SignupReq
	if err := c.BindJSON(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindJSON err: %v", err)
		resp.FailResp(c, errs.ParamError)
		return
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "Validate err: %v", err)
		resp.FailResp(c, signupValidateErr(err))
		return
	}

	u, bizErr := user.NewDefault().Signup(ctx, req.Email, req.Name, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusCreated, dto.SignupResp{User: convert.UserDomainToDTO(u)})
}

// Login 用户登录接口
//
//	@Tags			auth
//	@Summary		用户登录接口
//	@Description	校验邮箱与密码, 成功后返回 HS256 签名的 authToken
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.LoginResp
//	@Failure		400	{object}	dto.MessageResp
//	@Failure		401	{object}	dto.MessageResp
//	@Failure		500	{object}	dto.MessageResp
//	@Router			/auth/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindJSON(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindJSON err: %v", err)
		resp.FailResp(c, errs.ParamError)
		return
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "Validate err: %v", err)
		resp.FailResp(c, errs.LoginFieldsMissing)
		return
	}

	u, bizErr := user.NewDefault().Login(ctx, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	token, _, err := jwt.GenerateToken(ctx, jwt.Payload{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
	})
	if err != nil {
		resp.FailResp(c, errs.ServerError)
		return
	}

	resp.SuccessResp(c, http.StatusOK, dto.LoginResp{AuthToken: token})
}

// Verify token校验接口
//
//	@Tags			auth
//	@Summary		token校验接口
//	@Description	返回 token 中携带的用户信息
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer authToken"
//	@Success		200				{object}	dto.VerifyResp
//	@Failure		401				{object}	dto.MessageResp
//	@Router			/auth/verify [GET]
func Verify(ctx context.Context, c *app.RequestContext) {
	payload := jwt.GetPayload(ctx)
	if payload.UserID == "" {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	resp.SuccessResp(c, http.StatusOK, dto.VerifyResp{
		ID:    payload.UserID,
		Email: payload.Email,
		Name:  payload.Name,
	})
}

// signupValidateErr reports missing fields before format problems.
func signupValidateErr(err error) errs.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.ParamError
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return errs.SignupFieldsMissing
		}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case validate.TagEmailFormat:
		return errs.EmailInvalid
	case validate.TagPasswordStrength:
		return errs.PasswordTooWeak
	case "max":
		return errs.ParamError.SetMsg(fe.Field() + " must be at most " + fe.Param() + " characters.")
	}
	return errs.ParamError
}

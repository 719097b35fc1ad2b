package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	StatusCode() int
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code   int32
	status int
	msg    string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) StatusCode() int {
	return bizErr.status
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.Code(), bizErr.StatusCode(), err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), bizErr.StatusCode(), msg)
}

func New(code int32, status int, msg string) Error {
	return &bizError{
		code:   code,
		status: status,
		msg:    msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success        = New(0, http.StatusOK, "success")
	ServerError    = New(1_0001, http.StatusInternalServerError, "Internal Server Error")
	ParamError     = New(1_0002, http.StatusBadRequest, "param error")
	Unauthorized   = New(1_0003, http.StatusUnauthorized, "user unauthorized")
	TooManyRequest = New(1_0004, http.StatusTooManyRequests, "too many request")
	RequestBlocked = New(1_0006, http.StatusForbidden, "request is blocked")

	SignupFieldsMissing = New(2_0001, http.StatusBadRequest, "Provide email, password and name")
	EmailInvalid        = New(2_0002, http.StatusBadRequest, "Provide a valid email address.")
	PasswordTooWeak     = New(2_0003, http.StatusBadRequest, "Password must have at least 6 characters and contain at least one number, one lowercase and one uppercase letter.")
	UserAlreadyExists   = New(2_0004, http.StatusBadRequest, "User already exists.")
	LoginFieldsMissing  = New(2_0005, http.StatusBadRequest, "Provide email and password.")
	UserNotExist        = New(2_0006, http.StatusUnauthorized, "User not found.")
	PasswordIncorrect   = New(2_0007, http.StatusUnauthorized, "Unable to authenticate the user")
)

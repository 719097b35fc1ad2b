package resp

import (
	"errors"
	"net/http"
	"testing"

	"project_management/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestFailResp(t *testing.T) {
	c := app.NewContext(0)
	FailResp(c, errs.UserAlreadyExists)
	assert.Equal(t, http.StatusBadRequest, c.Response.StatusCode())
	assert.JSONEq(t, `{"message":"User already exists."}`, string(c.Response.Body()))

	c = app.NewContext(0)
	FailResp(c, errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, c.Response.StatusCode())
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, string(c.Response.Body()))
}

func TestAbortWithErr(t *testing.T) {
	c := app.NewContext(0)
	AbortWithErr(c, errs.Unauthorized)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, c.Response.StatusCode())
	assert.JSONEq(t, `{"message":"user unauthorized"}`, string(c.Response.Body()))
}

func TestSuccessResp(t *testing.T) {
	c := app.NewContext(0)
	SuccessResp(c, http.StatusCreated, map[string]string{"authToken": "t"})
	assert.Equal(t, http.StatusCreated, c.Response.StatusCode())
	assert.JSONEq(t, `{"authToken":"t"}`, string(c.Response.Body()))
}

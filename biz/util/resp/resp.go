package resp

import (
	"project_management/be/biz/model/dto"
	"project_management/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func SuccessResp(c *app.RequestContext, httpCode int, data any) {
	c.JSON(httpCode, data)
}

// FailResp writes {message} with the status carried by the error.
// Errors that are not errs.Error are reported as errs.ServerError.
func FailResp(c *app.RequestContext, err error) {
	bizErr, ok := err.(errs.Error)
	if !ok {
		bizErr = errs.ServerError
	}
	c.JSON(bizErr.StatusCode(), &dto.MessageResp{Message: bizErr.Msg()})
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error) {
	c.AbortWithStatusJSON(bizErr.StatusCode(), &dto.MessageResp{Message: bizErr.Msg()})
}

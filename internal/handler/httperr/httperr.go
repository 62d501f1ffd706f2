package httperr

import (
	"car-rental-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the error middleware and writes resp.
// A nil err is replaced by one carrying msg so the failure is still logged.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	if id, ok := c.Get("request_id"); ok {
		resp.RequestID, _ = id.(string)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error envelope. Detail carries extra state for the client, such as
// the unchanged booking after a rejected edit.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the envelope and records err on the context for ErrorHandler to log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort writes the envelope for rejections that carry no underlying error, such as a missing token.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, NewResponse(status, msg, nil))
}

package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error body shape every endpoint emits.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// Abort records the original error on the gin context for the logging
// middleware and writes the public message.
func Abort(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

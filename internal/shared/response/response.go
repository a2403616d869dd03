package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every non-2xx response.
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// MessageBody is returned by delete operations, referencing the removed row.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as-is. Entity responses are flat JSON objects, not
// wrapped in an envelope.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, errorCode string, detail string) {
	c.JSON(status, ErrorBody{
		Detail: detail,
		Code:   errorCode,
	})
}

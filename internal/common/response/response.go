package response

import (
	"errors"
	"net/http"

	"circles/internal/common/errcode"
	"circles/internal/pkg/log"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, err error) {
	var e *errcode.Error
	if errors.As(err, &e) {
		c.JSON(e.Status, ErrorBody{Message: e.Message, Field: e.Field})
		return
	}
	log.Errorf("err: %+v", err)
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: "Internal server error"})
}

// Abort is Error for middleware, stopping the handler chain.
func Abort(c *gin.Context, err error) {
	c.Abort()
	Error(c, err)
}

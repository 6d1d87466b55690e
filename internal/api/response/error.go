package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Error is an error that already knows its HTTP status.
type Error struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Extras  string `json:"extras"`
}

func (e Error) Error() string {
	return e.Extras
}

func NewError(code int, message string) Error {
	return Error{
		Success: false,
		Code:    code,
		Extras:  message,
	}
}

// AbortWithError writes err as an error envelope. Errors that are not an Error use
// fallback as their status.
func AbortWithError(c *gin.Context, fallback int, err error) {
	var e Error
	if errors.As(err, &e) {
		ErrorResponse(c, e.Code, e.Extras)
		return
	}
	ErrorResponse(c, fallback, err.Error())
}

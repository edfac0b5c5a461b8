// Package web holds the small response helpers shared by all page handlers.
package web

import (
	"github.com/gin-gonic/gin"

	apperrors "cravio-admin/internal/common/errors"
)

// ErrorBody is the JSON error envelope returned by every handler.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondError maps an error to its HTTP status and writes the standard
// envelope. Auth failure details are never echoed to the client.
func RespondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if stderr, ok := apperrors.AsStandardError(err); ok {
		body := ErrorBody{Code: string(stderr.Code), Message: stderr.Message}
		if stderr.Code != apperrors.ErrCodeAuthFailure {
			body.Details = stderr.Details
		}
		c.JSON(status, body)
		return
	}
	c.JSON(status, ErrorBody{Code: "INTERNAL", Message: err.Error()})
}

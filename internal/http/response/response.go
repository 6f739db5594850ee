package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/foodmap-backend/internal/domain/directory"
)

const internalErrorMessage = "internal server error"

type APIError struct {
	Message  string              `json:"message"`
	Code     string              `json:"code,omitempty"`
	Problems []directory.Problem `json:"problems,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes the error envelope. Messages of 5xx responses are replaced with a
// generic one; callers log the cause.
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError {
		msg = internalErrorMessage
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondValidation(c *gin.Context, code string, err error, problems []directory.Problem) {
	msg := "invalid request"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{
			Message:  msg,
			Code:     code,
			Problems: problems,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, location string, payload any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

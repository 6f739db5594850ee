package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/http/response"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/apierr"
	"github.com/yungbote/foodmap-backend/internal/platform/ctxutil"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

const (
	codeInvalidID     = "invalid_id"
	codeInvalidJSON   = "invalid_json"
	codeIDMismatch    = "id_mismatch"
	codeValidation    = "validation_failed"
	codeNotFound      = "not_found"
	codeInternalError = "internal_error"
)

// writeError maps service failures onto the HTTP error envelope. Anything that is not a
// boundary error, a validation failure or a missing row becomes an opaque 500.
func writeError(c *gin.Context, log *logger.Logger, metrics *observability.Metrics, err error) {
	_ = c.Error(err)

	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		metrics.IncAPIError(apiErr.Code)
		response.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Err)
		return
	}

	var verr *directory.ValidationError
	if errors.As(err, &verr) {
		metrics.IncAPIError(codeValidation)
		response.RespondValidation(c, codeValidation, verr, verr.Problems)
		return
	}

	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation:
		metrics.IncAPIError(codeValidation)
		response.RespondValidation(c, codeValidation, err, nil)
		return
	case domainagg.CodeNotFound:
		metrics.IncAPIError(codeNotFound)
		response.RespondError(c, http.StatusNotFound, codeNotFound, err)
		return
	}

	fields := []interface{}{
		"method", c.Request.Method,
		"route", c.FullPath(),
		"error", err,
	}
	if code := domainagg.CodeOf(err); code != "" {
		fields = append(fields, "aggregate_code", string(code))
	}
	if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
		fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
	}
	log.Error("Request failed", fields...)
	metrics.IncAPIError(codeInternalError)
	response.RespondError(c, http.StatusInternalServerError, codeInternalError, err)
}

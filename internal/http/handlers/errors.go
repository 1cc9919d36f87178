package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/http/response"
)

// respondAggregateError maps aggregate error codes onto HTTP statuses.
// Precondition failures carry the validator's reasons list in the body.
func respondAggregateError(c *gin.Context, err error) {
	code := aggregates.CodeOf(err)
	switch code {
	case aggregates.CodeValidation:
		response.RespondError(c, http.StatusBadRequest, string(code), err)
	case aggregates.CodePreconditionFailed:
		response.RespondBlocked(c, aggregates.ReasonsOf(err))
	case aggregates.CodeNotFound:
		response.RespondError(c, http.StatusNotFound, string(code), err)
	case aggregates.CodeConflict:
		response.RespondError(c, http.StatusConflict, string(code), err)
	case aggregates.CodeRetryable:
		c.Header("Retry-After", "1")
		response.RespondError(c, http.StatusServiceUnavailable, string(code), err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

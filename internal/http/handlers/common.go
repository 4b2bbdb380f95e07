package handlers

import (
	"net/http"
	"strconv"

	"staffdesk/internal/http/middleware"
	"staffdesk/internal/query"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
// Keeps a stable "message" key for the portal frontend.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// PathID parses the :id route param, responding 400 on garbage.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

// ListResponse is the shared paged list envelope.
func ListResponse(items any, meta query.PageMeta) gin.H {
	return gin.H{"items": items, "meta": meta}
}

// MustIdentity resolves the acting user from the session, refusing the
// request when it is missing instead of defaulting a placeholder identity.
func MustIdentity(c *gin.Context) (string, bool) {
	identity := middleware.ActingIdentity(c)
	if identity == "" {
		RespondError(c, http.StatusUnauthorized, "authenticated user required", nil)
		return "", false
	}
	return identity, true
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rentflow-solutions/property-management-service/internal/ledger"
	"github.com/rentflow-solutions/property-management-service/internal/model"
	"github.com/rentflow-solutions/property-management-service/internal/service"
	"github.com/rentflow-solutions/property-management-service/internal/store"
)

// respondError maps domain errors onto HTTP statuses: validation
// problems are the client's fault, missing records are 404, anything
// else is an internal failure and gets logged with the request id.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err), errors.Is(err, ledger.ErrNegativeDays):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// idParam parses the :id path segment.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// dateQuery parses an optional YYYY-MM-DD query parameter, defaulting
// to today when absent.
func dateQuery(c *gin.Context, name string) (model.Date, bool) {
	v := c.Query(name)
	if v == "" {
		return model.Today(), true
	}
	d, err := model.ParseDate(v)
	if err != nil {
		badRequest(c, err.Error())
		return model.Date{}, false
	}
	return d, true
}

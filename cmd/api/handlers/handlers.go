package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/dto"
	"opsdesk/cmd/api/services"
	"opsdesk/cmd/api/trace"
	"opsdesk/cmd/internal/logger"
	"opsdesk/pagination"
)

// StatusClientClosedRequest is returned when the caller went away mid-query.
const StatusClientClosedRequest = 499

// Options controls what failure detail reaches clients.
type Options struct {
	// ExposeErrors adds the internal error text to failure envelopes.
	// It must be false in production.
	ExposeErrors bool
}

// respondList runs list with the request's query string and writes
// {success, data: {<itemsKey>: [...], pagination: {...}}}.
func respondList[T any](c *gin.Context, opts Options, itemsKey, failMsg string, list func(context.Context, map[string]string) (pagination.Result[T], error)) {
	raw := pagination.FirstValues(c.Request.URL.Query())
	res, err := list(c.Request.Context(), raw)
	if err != nil {
		respondError(c, opts, failMsg, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Data: gin.H{
			itemsKey:     res.Items,
			"pagination": res.Pagination,
		},
	})
}

func respondItem[T any](c *gin.Context, opts Options, itemKey, failMsg string, item *T, err error) {
	if err != nil {
		respondError(c, opts, failMsg, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: gin.H{itemKey: item}})
}

func respondError(c *gin.Context, opts Options, failMsg string, err error) {
	status := http.StatusInternalServerError
	message := failMsg
	switch {
	case errors.Is(err, pagination.ErrCancelled):
		status = StatusClientClosedRequest
		message = "Request cancelled"
	case errors.Is(err, services.ErrInvalidID):
		status = http.StatusBadRequest
		message = "Invalid id"
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		message = "Resource not found"
	}

	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     status,
		"error":      err.Error(),
	}
	if status == http.StatusInternalServerError {
		logger.ErrorWithFields(failMsg, fields)
	} else {
		logger.DebugWithFields(message, fields)
	}

	body := dto.Envelope{Success: false, Message: message}
	if opts.ExposeErrors {
		body.Error = err.Error()
	}
	c.JSON(status, body)
}

package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
)

// RequestIDKey is the gin context key under which the request-id middleware
// stores the identifier echoed in every envelope's meta.
const RequestIDKey = "requestID"

// Envelope is the uniform wrapper every /api/v1 response uses.
type Envelope struct {
	Data  any        `json:"data"`
	Meta  Meta       `json:"meta"`
	Error *ErrorBody `json:"error"`
}

// Meta carries the request identifier and, for list responses, pagination.
type Meta struct {
	RequestID string `json:"requestId"`
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
	Total     int    `json:"total,omitempty"`
}

// ErrorBody is the envelope-level error shape.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// OK sends a 200 envelope with the given payload.
func OK(c *gin.Context, data any) {
	JSON(c, http.StatusOK, data)
}

// Created sends a 201 envelope with the given payload.
func Created(c *gin.Context, data any) {
	JSON(c, http.StatusCreated, data)
}

// JSON sends an envelope with the given status and payload.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Data: data,
		Meta: Meta{RequestID: requestID(c)},
	})
}

// Page sends a 200 envelope with list payload and pagination meta.
func Page[T any](c *gin.Context, items []T, page, pageSize, total int) {
	// Avoid JSON outputting null for an empty result set
	if items == nil {
		items = make([]T, 0)
	}
	c.JSON(http.StatusOK, Envelope{
		Data: items,
		Meta: Meta{
			RequestID: requestID(c),
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
		},
	})
}

// Error sends an error envelope. It checks if the error is an AppError to
// determine the status code, otherwise defaults to 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, Envelope{
			Meta:  Meta{RequestID: requestID(c)},
			Error: &ErrorBody{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Envelope{
		Meta:  Meta{RequestID: requestID(c)},
		Error: &ErrorBody{Code: "INTERNAL", Message: "internal server error"},
	})
}

// AbortError sends an error envelope and aborts the remaining handlers.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

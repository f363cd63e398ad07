package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"recordquery/internal/http/middleware"
	"recordquery/internal/service"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 9457 problem-details body extended with a machine-readable
// code, the request id and the time the error was produced.
type Problem struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	Instance  string `json:"instance"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

var errInvalidID = errors.New("invalid id")

// classify maps an error to a status, a code and a client-safe detail.
// 5xx details never include the underlying cause.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, errInvalidID):
		return fiber.StatusBadRequest, "INVALID_ID", err.Error()
	case errors.Is(err, service.ErrInvalidFilterInput):
		return fiber.StatusBadRequest, "INVALID_FILTER", err.Error()
	case errors.Is(err, service.ErrInvalidPaginationInput):
		return fiber.StatusBadRequest, "INVALID_PAGINATION", err.Error()
	case errors.Is(err, service.ErrInvalidSortInput):
		return fiber.StatusBadRequest, "INVALID_SORT", err.Error()
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "record not found"
	case errors.Is(err, service.ErrAggregation):
		return fiber.StatusInternalServerError, "AGGREGATION_ERROR", "statistics could not be computed"
	case errors.Is(err, service.ErrPersistence):
		return fiber.StatusInternalServerError, "PERSISTENCE_ERROR", "the data store could not complete the request"
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusBadRequest:
			return fe.Code, "BAD_REQUEST", "bad request"
		case fiber.StatusNotFound:
			return fe.Code, "NOT_FOUND", "resource not found"
		case fiber.StatusMethodNotAllowed:
			return fe.Code, "METHOD_NOT_ALLOWED", "method not allowed"
		}
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, "INTERNAL_ERROR", "internal server error"
		}
		return fe.Code, "REQUEST_ERROR", fe.Message
	}
	return fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
}

func problemType(code string) string {
	return "/problems/" + strings.ReplaceAll(strings.ToLower(code), "_", "-")
}

// writeProblem writes a problem-details response without leaking internal errors.
func writeProblem(c *fiber.Ctx, status int, code, detail string) error {
	p := Problem{
		Type:      problemType(code),
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		Instance:  c.OriginalURL(),
		Code:      code,
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	c.Status(status)
	if err := c.JSON(p); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, ProblemContentType)
	return nil
}

// writeError classifies err and writes it. Server-side failures are logged with their cause.
func writeError(c *fiber.Ctx, err error) error {
	status, code, detail := classify(err)
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.Path()),
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	}
	return writeProblem(c, status, code, detail)
}

// ErrorHandler returns a Fiber global error handler that renders problem details.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, err)
	}
}

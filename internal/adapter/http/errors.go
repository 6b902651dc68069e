package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const genericMessage = "An internal error occurred"

// apiError carries the exact JSON body for the caller. Cause is logged, never
// sent.
type apiError struct {
	Status int
	Body   fiber.Map
	Cause  error
}

func (e *apiError) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	if msg, ok := e.Body["error"].(string); ok {
		return msg
	}
	return fiber.ErrInternalServerError.Message
}

func (e *apiError) Unwrap() error { return e.Cause }

func badRequest(msg string) *apiError {
	return &apiError{Status: fiber.StatusBadRequest, Body: fiber.Map{"error": msg}}
}

func internalError(msg string, cause error) *apiError {
	return &apiError{
		Status: fiber.StatusInternalServerError,
		Body:   fiber.Map{"error": msg, "message": genericMessage},
		Cause:  cause,
	}
}

// ErrorHandler is the Fiber error handler for the whole app.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *apiError
	if errors.As(err, &ae) {
		if ae.Status >= fiber.StatusInternalServerError {
			slog.Error("request failed",
				"request_id", requestID(c), "method", c.Method(), "path", c.Path(),
				"status", ae.Status, "error", ae.Cause)
		}
		return c.Status(ae.Status).JSON(ae.Body)
	}

	status := fiber.StatusInternalServerError
	msg := fiber.ErrInternalServerError.Message
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		status, msg = fe.Code, fe.Message
	}
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"request_id", requestID(c), "method", c.Method(), "path", c.Path(), "error", err)
	}
	body := fiber.Map{"error": msg}
	if status >= fiber.StatusInternalServerError {
		body["message"] = genericMessage
	}
	return c.Status(status).JSON(body)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"portfolio-server/internal/config"
	"portfolio-server/internal/domain"
	"portfolio-server/internal/model"
	"portfolio-server/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const (
	invalidLocaleMsg   = "Invalid locale. Use 'en' or 'es'"
	messageRequiredMsg = "Message is required"
)

// ProfileResolver is the read side used by the handlers; *usecase.Resolver
// implements it.
type ProfileResolver interface {
	ResolvePrimary(ctx context.Context, locale domain.Locale) (domain.ResumeData, bool, error)
	ResolveFallback(locale domain.Locale) (domain.ResumeData, error)
	Locales(ctx context.Context) ([]domain.Locale, error)
	Ping(ctx context.Context) error
}

type ResumeRenderer interface {
	Render(ctx context.Context, data domain.ResumeData) ([]byte, error)
}

type ContactSubmitter interface {
	Submit(ctx context.Context, req usecase.ContactRequest) error
}

type Handler struct {
	profiles ProfileResolver
	resumes  ResumeRenderer
	contact  ContactSubmitter
	fallback bool
}

// NewHandler wires the endpoints. With fallback set, a locale without an
// active record is served from the bundled snapshot instead of a 404.
func NewHandler(p ProfileResolver, r ResumeRenderer, c ContactSubmitter, fallback bool) *Handler {
	return &Handler{profiles: p, resumes: r, contact: c, fallback: fallback}
}

func (h *Handler) resolve(ctx context.Context, locale domain.Locale) (domain.ResumeData, bool, error) {
	data, found, err := h.profiles.ResolvePrimary(ctx, locale)
	if err != nil || found || !h.fallback {
		return data, found, err
	}
	slog.Info("no active profile, serving bundled snapshot", "locale", locale)
	data, err = h.profiles.ResolveFallback(locale)
	if err != nil {
		return domain.ResumeData{}, false, err
	}
	return data, true, nil
}

// GetPortfolio serves GET /api/portfolio.
func (h *Handler) GetPortfolio(c *fiber.Ctx) error {
	locale, err := domain.ParseLocale(c.Query("locale"))
	if err != nil {
		return badRequest(invalidLocaleMsg)
	}

	data, found, err := h.resolve(c.UserContext(), locale)
	if err != nil {
		return internalError("Failed to fetch portfolio data", err)
	}
	if !found {
		return &apiError{Status: fiber.StatusNotFound, Body: fiber.Map{
			"error": fmt.Sprintf("No active portfolio found for locale '%s'", locale),
			"hint":  "Make sure you have seeded the database with portfolio data.",
		}}
	}

	return c.JSON(fiber.Map{
		"locale":    locale,
		"portfolio": model.ToViewModelWithEducation(data),
	})
}

// GetResume serves GET /api/resume as a PDF attachment, or inline when
// download=false.
func (h *Handler) GetResume(c *fiber.Ctx) error {
	locale, err := domain.ParseLocale(c.Query("locale"))
	if err != nil {
		return badRequest(invalidLocaleMsg)
	}
	download := c.Query("download") != "false"

	data, found, err := h.resolve(c.UserContext(), locale)
	if err != nil {
		return internalError("Failed to generate resume PDF", err)
	}
	if !found {
		return &apiError{Status: fiber.StatusNotFound, Body: fiber.Map{
			"error": fmt.Sprintf("No active resume found for locale '%s'", locale),
			"hint":  "Make sure you have seeded the database with resume data.",
		}}
	}

	pdf, err := h.resumes.Render(c.UserContext(), data)
	if err != nil {
		return internalError("Failed to generate resume PDF", err)
	}

	filename := usecase.FilenameFor(data.Person.FullName, locale)
	disposition := "attachment"
	if !download {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(pdf)))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`%s; filename="%s"`, disposition, filename))
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600, s-maxage=3600, stale-while-revalidate=86400")
	return c.Send(pdf)
}

// PostContact serves POST /api/contact.
func (h *Handler) PostContact(c *fiber.Ctx) error {
	// decoded directly so bodies sent without a JSON Content-Type still parse;
	// BodyParser would reject them
	var req usecase.ContactRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return &apiError{
			Status: fiber.StatusInternalServerError,
			Body:   fiber.Map{"error": "Failed to send message"},
			Cause:  fmt.Errorf("decode contact body: %w", err),
		}
	}

	err := h.contact.Submit(c.UserContext(), req)
	if errors.Is(err, usecase.ErrMessageRequired) {
		return badRequest(messageRequiredMsg)
	}
	if err != nil {
		var missing *config.MissingEnvError
		if errors.As(err, &missing) {
			slog.Error("contact mail transport not configured", "missing", missing.Vars)
		}
		return &apiError{
			Status: fiber.StatusInternalServerError,
			Body:   fiber.Map{"error": "Failed to send message"},
			Cause:  err,
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GetLocales lists the locales that have an active record.
func (h *Handler) GetLocales(c *fiber.Ctx) error {
	locales, err := h.profiles.Locales(c.UserContext())
	if err != nil {
		return internalError("Failed to list locales", err)
	}
	return c.JSON(fiber.Map{"locales": locales})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.profiles.Ping(c.UserContext()); err != nil {
		slog.Warn("health check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"portfolio-server/internal/domain"
	"portfolio-server/templates"
)

// Renderer prints an HTML document to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

var ErrInvalidPDF = errors.New("renderer returned invalid PDF output")

// ResumeService renders resolved resume data to a PDF.
type ResumeService struct {
	renderer Renderer
	tpl      *template.Template
	css      template.CSS
	now      func() time.Time
}

// NewResumeService parses the embedded template. now may be nil to use the
// system clock.
func NewResumeService(r Renderer, now func() time.Time) (*ResumeService, error) {
	tpl, err := template.ParseFS(templates.FS, "resume.html")
	if err != nil {
		return nil, fmt.Errorf("parse resume template: %w", err)
	}
	css, err := templates.FS.ReadFile("style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &ResumeService{renderer: r, tpl: tpl, css: template.CSS(css), now: now}, nil
}

// RenderHTML produces the self-contained HTML page for data. The output only
// depends on data and the service clock.
func (s *ResumeService) RenderHTML(data domain.ResumeData) (string, error) {
	doc := BuildDocument(data, s.now())

	var buf bytes.Buffer
	if err := s.tpl.Execute(&buf, map[string]any{"Doc": doc, "CSS": s.css}); err != nil {
		return "", fmt.Errorf("execute resume template: %w", err)
	}
	return buf.String(), nil
}

// Render returns the PDF bytes of the resume.
func (s *ResumeService) Render(ctx context.Context, data domain.ResumeData) ([]byte, error) {
	html, err := s.RenderHTML(data)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return nil, fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(pdf))
	}
	slog.Debug("resume rendered", "locale", data.Locale, "bytes", len(pdf))
	return pdf, nil
}

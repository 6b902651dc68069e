// Command render_profile renders a profile record to HTML, and to PDF when a
// Chrome binary is available, without a database.
//
//	go run ./tools -locale es -out resume-data/generated
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio-server/internal/config"
	"portfolio-server/internal/content"
	"portfolio-server/internal/domain"
	"portfolio-server/internal/model"
	"portfolio-server/internal/usecase"
	"portfolio-server/pkg/infrastructure"
)

func main() {
	localeFlag := flag.String("locale", "en", "locale of the bundled snapshot to render")
	in := flag.String("file", "", "profile record JSON to render instead of the snapshot")
	outDir := flag.String("out", ".", "output directory")
	at := flag.String("at", "", "render date (YYYY-MM-DD) used for Present; defaults to today")
	noPDF := flag.Bool("html-only", false, "skip the PDF stage")
	flag.Parse()

	locale, err := domain.ParseLocale(*localeFlag)
	if err != nil {
		fail("locale %q: %v", *localeFlag, err)
	}

	var rec *domain.ProfileRecord
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			fail("read profile: %v", err)
		}
		if rec, err = content.Decode(b); err != nil {
			fail("decode profile: %v", err)
		}
		if rec.Locale == "" {
			rec.Locale = locale.String()
		}
	} else if rec, err = content.Snapshot(locale); err != nil {
		fail("snapshot: %v", err)
	}
	if err := model.ValidateProfile(rec); err != nil {
		fail("invalid profile: %v", err)
	}
	data := usecase.Normalize(rec)

	now := time.Now
	if *at != "" {
		t, err := time.Parse(time.DateOnly, *at)
		if err != nil {
			fail("parse -at: %v", err)
		}
		now = func() time.Time { return t }
	}

	cfg := config.RendererConfig{ChromePath: os.Getenv("CHROME_PATH"), Timeout: 60 * time.Second}
	svc, err := usecase.NewResumeService(infrastructure.NewChromedpRenderer(cfg), now)
	if err != nil {
		fail("resume service: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fail("create out: %v", err)
	}
	base := strings.TrimSuffix(usecase.FilenameFor(data.Person.FullName, data.Locale), ".pdf")

	html, err := svc.RenderHTML(data)
	if err != nil {
		fail("render html: %v", err)
	}
	htmlPath := filepath.Join(*outDir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		fail("write html: %v", err)
	}
	fmt.Printf("wrote %s\n", htmlPath)

	if *noPDF {
		return
	}
	pdf, err := svc.Render(context.Background(), data)
	if err != nil {
		fail("render pdf: %v", err)
	}
	pdfPath := filepath.Join(*outDir, base+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		fail("write pdf: %v", err)
	}
	fmt.Printf("wrote %s\n", pdfPath)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

package usecase

import (
	"regexp"
	"strings"

	"portfolio-server/internal/domain"
)

var (
	filenameStrip      = regexp.MustCompile(`[^a-zA-Z0-9\s\v]`)
	filenameWhitespace = regexp.MustCompile(`[\s\v]+`)
)

// FilenameFor builds the download name of the resume PDF: ASCII letters,
// digits and whitespace (including \v, which RE2 leaves out of \s) survive, whitespace runs become one hyphen, the result
// is lower-cased and suffixed with -Resume.pdf ("en") or -CV.pdf (others).
func FilenameFor(fullName string, locale domain.Locale) string {
	name := filenameStrip.ReplaceAllString(fullName, "")
	name = filenameWhitespace.ReplaceAllString(name, "-")
	name = strings.ToLower(name)

	suffix := "CV"
	if locale == domain.LocaleEN {
		suffix = "Resume"
	}
	return name + "-" + suffix + ".pdf"
}

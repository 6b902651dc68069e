// Package templates holds the resume HTML template and its stylesheet.
package templates

import "embed"

//go:embed resume.html style.css
var FS embed.FS

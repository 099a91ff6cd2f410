// Package render turns a recipe document into a self-contained HTML page.
// Rendering is pure string building: no store access, no external resources
// in the output.
package render

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"savora/models"
)

// ErrInvalidInput is returned when the renderer is handed a document without
// a recipe body. Upstream validation should make this unreachable, so it is
// a loud contract violation rather than a blank page.
var ErrInvalidInput = errors.New("invalid recipe data")

// Render produces the full HTML document for a recipe. Apart from the
// generated-on date in the footer, output is deterministic for a given
// document. Any panic inside the section builders is recovered here and
// surfaced as a render failure instead of escaping the boundary.
func Render(doc *models.RecipeDocument) (string, error) {
	return renderAt(doc, time.Now())
}

func renderAt(doc *models.RecipeDocument, now time.Time) (out string, err error) {
	if doc == nil || doc.Recipe == nil {
		return "", ErrInvalidInput
	}
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("render failed: %v", r)
		}
	}()

	recipe := doc.Recipe
	locale := recipe.Locale
	if locale == "" {
		locale = "en"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="` + html.EscapeString(locale) + "\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>" + html.EscapeString(recipe.Title) + " - Recipe</title>\n")
	b.WriteString("<style>" + pageStyle + "</style>\n")
	b.WriteString("</head>\n<body>\n<div class=\"recipe-container\">\n")

	for _, s := range buildSections(recipe, now) {
		s.write(&b)
	}

	b.WriteString("</div>\n</body>\n</html>")
	return b.String(), nil
}

// Package render produces the recipe detail page and card fragments.
//
// The two templates are fixed-structure HTML filled by substitution; output
// is deterministic for identical input. Instead of hardcoded Go string
// constants the templates are embedded files that a project can override.
//
// Lookup chain (highest to lowest priority):
//  1. <configDir>/templates/<name>.tmpl (project-level, version-controlled)
//  2. Embedded default (fallback)
package render

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/whale1510/recipectl/internal/debug"
	"github.com/whale1510/recipectl/internal/recipe"
)

//go:embed templates/detail.html.tmpl templates/card.html.tmpl
var defaultTemplates embed.FS

const (
	detailTemplate = "detail.html.tmpl"
	cardTemplate   = "card.html.tmpl"
)

// Renderer resolves and executes the recipe templates.
type Renderer struct {
	// ConfigDir is the project .recipectl/ directory. When non-empty,
	// <ConfigDir>/templates/ is checked before the embedded defaults.
	ConfigDir string
}

// cardData is the card template payload: the recipe plus the two paths that
// differ between the site root index and recipes/index.html.
type cardData struct {
	*recipe.Recipe
	ImgPath  string
	LinkPath string
}

// DetailPage renders the standalone detail page for r.
func (rn Renderer) DetailPage(r *recipe.Recipe) (string, error) {
	return rn.execute(detailTemplate, r)
}

// Card renders the card fragment for r. With forIndex true the image and
// link paths are relative to the site root (index.html); otherwise they are
// relative to recipes/index.html.
func (rn Renderer) Card(r *recipe.Recipe, forIndex bool) (string, error) {
	data := cardData{Recipe: r}
	if forIndex {
		data.ImgPath = "assets/img/recipes/" + r.Image
		data.LinkPath = "recipes/" + r.Category + "/" + r.Slug + ".html"
	} else {
		data.ImgPath = "../assets/img/recipes/" + r.Image
		data.LinkPath = r.Category + "/" + r.Slug + ".html"
	}
	return rn.execute(cardTemplate, data)
}

func (rn Renderer) execute(name string, data interface{}) (string, error) {
	text, source, err := rn.resolve(name)
	if err != nil {
		return "", err
	}
	debug.Logf("render: loaded %s from %s\n", name, source)

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template %s (%s): %w", name, source, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return sb.String(), nil
}

// resolve returns the template text and a description of where it came from.
func (rn Renderer) resolve(name string) (string, string, error) {
	if rn.ConfigDir != "" {
		path := filepath.Join(rn.ConfigDir, "templates", name)
		data, err := os.ReadFile(path) // #nosec G304 -- path is constructed from the config dir
		if err == nil {
			return string(data), path, nil
		}
		if !os.IsNotExist(err) {
			return "", "", fmt.Errorf("read template override %s: %w", path, err)
		}
	}

	data, err := defaultTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", "", fmt.Errorf("embedded template %s: %w", name, err)
	}
	return string(data), "embedded default", nil
}

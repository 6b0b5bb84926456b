// Package view turns panel view-models into HTML fragments for the web page
// and plain text for the terminal. Both share template names, so a panel
// action does not care which front-end it renders for.
package view

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/cozy-creator/comfy-panel/internal/i18n"
)

//go:embed templates
var templateFS embed.FS

// Template names shared by both formats.
const (
	PyTorchStatus   = "pytorch"
	PyTorchVersions = "pytorch_versions"
	PythonStatus    = "python"
	PythonEnvs      = "python_envs"
	Deps            = "deps"
	DepsResult      = "deps_output"
	Nodes           = "nodes"
	Search          = "search"
	Diagnostics     = "diagnostics"
	Launcher        = "launcher"
	LogList         = "logs"
	System          = "system"
	PresetList      = "presets"
	HistoryList     = "history"

	// HTMLPage is the full page and only exists in the HTML set.
	HTMLPage = "page"
)

type Renderer interface {
	Render(loc i18n.Localizer, name string, data any) (string, error)
}

// templateData is what every template sees: .L for messages, .D for the
// view-model.
type templateData struct {
	L i18n.Localizer
	D any
}

var funcs = map[string]any{
	"yesno": func(loc i18n.Localizer, v bool) string {
		if v {
			return loc.T("common.yes")
		}
		return loc.T("common.no")
	},
}

type HTMLRenderer struct {
	tmpl *htmltemplate.Template
}

func NewHTML() (*HTMLRenderer, error) {
	tmpl, err := htmltemplate.New("html").Funcs(funcs).ParseFS(templateFS, "templates/html/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Render(loc i18n.Localizer, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, templateData{L: loc, D: data}); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

type TextRenderer struct {
	tmpl *texttemplate.Template
}

func NewText() (*TextRenderer, error) {
	tmpl, err := texttemplate.New("text").Funcs(funcs).ParseFS(templateFS, "templates/text/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &TextRenderer{tmpl: tmpl}, nil
}

func (r *TextRenderer) Render(loc i18n.Localizer, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, templateData{L: loc, D: data}); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

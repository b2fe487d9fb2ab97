// Package render merges mapped form fields into the embedded form templates
// and assembles the result into final fixed-layout PDF documents.
package render

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/omize10/probatepath-sub002/internal/logger"
	"github.com/omize10/probatepath-sub002/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer-level errors.
var (
	// ErrTemplateNotFound is returned when no template exists for a form code.
	ErrTemplateNotFound = errors.New("no template registered for form code")
	// ErrRenderFailed is returned when template execution or PDF assembly
	// fails for a form. The wrapped message names the failing form code.
	ErrRenderFailed = errors.New("form rendering failed")
)

// DocumentRenderer produces a finished document for one form. The interface
// exists so the orchestration layer can substitute a test double.
type DocumentRenderer interface {
	// Render merges the mapped fields into the form's template and assembles
	// the final PDF. Render honors ctx cancellation and never partially
	// writes: a returned document is complete or the error names the form.
	Render(ctx context.Context, caseID uuid.UUID, code models.FormCode, fields interface{}) (models.GeneratedDocument, error)
}

// Renderer is the template-driven PDF assembler for the court form set.
type Renderer struct {
	tmpl *template.Template
	log  *logger.Logger
}

// New parses the embedded form templates and returns a ready Renderer.
func New(log *logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
	}
	tmpl, err := template.New("forms").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse form templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

// Render implements DocumentRenderer.
func (r *Renderer) Render(ctx context.Context, caseID uuid.UUID, code models.FormCode, fields interface{}) (models.GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return models.GeneratedDocument{}, fmt.Errorf("%w: form %s: %v", ErrRenderFailed, code, err)
	}

	text, err := r.executeTemplate(code, fields)
	if err != nil {
		return models.GeneratedDocument{}, err
	}

	content, err := assemblePDF(text)
	if err != nil {
		return models.GeneratedDocument{}, fmt.Errorf("%w: form %s: %v", ErrRenderFailed, code, err)
	}

	if err := ctx.Err(); err != nil {
		return models.GeneratedDocument{}, fmt.Errorf("%w: form %s: %v", ErrRenderFailed, code, err)
	}

	r.log.Info("Form rendered", map[string]interface{}{
		"case_id":   caseID.String(),
		"form_code": string(code),
		"bytes":     len(content),
	})

	return models.GeneratedDocument{
		ID:          uuid.New(),
		CaseID:      caseID,
		FormCode:    code,
		Content:     content,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// executeTemplate runs the form's template against its mapped fields and
// returns the laid-out text.
func (r *Renderer) executeTemplate(code models.FormCode, fields interface{}) (string, error) {
	name := strings.ToLower(string(code)) + ".tmpl"
	tmpl := r.tmpl.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, code)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fields); err != nil {
		return "", fmt.Errorf("%w: form %s: %v", ErrRenderFailed, code, err)
	}
	return buf.String(), nil
}

// Layout constants for the assembled page.
const (
	headingSize = 14.0
	sectionSize = 12.0
	bodySize    = 10.5
	lineHeight  = 5.5
)

// assemblePDF lays the rendered text into an A4 portrait document. The text
// uses a small line protocol: "# " marks the form heading, "## " a section
// heading, "- " a list item; everything else is body text.
func assemblePDF(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, " \t")
		switch {
		case trimmed == "":
			pdf.Ln(lineHeight / 2)
		case strings.HasPrefix(trimmed, "## "):
			pdf.SetFont("Helvetica", "B", sectionSize)
			pdf.MultiCell(0, lineHeight+1, strings.TrimPrefix(trimmed, "## "), "", "L", false)
		case strings.HasPrefix(trimmed, "# "):
			pdf.SetFont("Helvetica", "B", headingSize)
			pdf.MultiCell(0, lineHeight+2, strings.TrimPrefix(trimmed, "# "), "", "C", false)
		case strings.HasPrefix(trimmed, "- "):
			pdf.SetFont("Helvetica", "", bodySize)
			pdf.SetX(26)
			pdf.MultiCell(0, lineHeight, strings.TrimPrefix(trimmed, "- "), "", "L", false)
			pdf.SetX(20)
		default:
			pdf.SetFont("Helvetica", "", bodySize)
			pdf.MultiCell(0, lineHeight, trimmed, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

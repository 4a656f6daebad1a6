// Package page assembles complete wiki pages (song, album, producer) from
// form snapshots.
//
// Every generate action goes through the same steps: the snapshot is parsed
// into typed values, validated, and then either rendered or rejected. See
// Generate.
package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Render errors for assemblers used out of order.
var (
	ErrNotValidated = errors.New("page has not been validated")
	ErrRejected     = errors.New("page has been rejected")
)

// Assembler is a page generator working on its own copy of a form snapshot.
// Parse, Validate and Accept must be called before Render.
type Assembler interface {
	// Kind names the page type for logs.
	Kind() string
	// Parse normalizes the snapshot. Malformed values become empty and are
	// reported by Validate.
	Parse()
	// Validate checks parsed values. It also reports whether findings hint
	// that the category list is stale.
	Validate() (Findings, bool)
	// Accept decides whether validated page may be rendered. Page with fatal
	// findings is rejected unless ignoreErrors is set.
	Accept(ignoreErrors bool) State
	// Render produces page markup. It fails with ErrNotValidated or
	// ErrRejected when page was not accepted.
	Render() (string, error)
}

// gate keeps assembler state between steps.
type gate struct {
	state  State
	fatal  bool
	forced bool
}

func (g *gate) parsed() {
	g.state, g.fatal, g.forced = StateParsed, false, false
}

func (g *gate) validated(res Findings) {
	g.state, g.fatal = StateValidated, res.HasFatal()
}

func (g *gate) Accept(ignoreErrors bool) State {
	if g.state == StateValidated && g.fatal {
		if ignoreErrors {
			g.forced = true
		} else {
			g.state = StateRejected
		}
	}
	return g.state
}

func (g *gate) renderable() error {
	switch {
	case g.state == StateRejected:
		return ErrRejected
	case g.state != StateValidated:
		return ErrNotValidated
	case g.fatal && !g.forced:
		return ErrRejected
	}
	return nil
}

// Outcome is the result of a single generate action.
type Outcome struct {
	ID                  uuid.UUID `json:"id"`
	Kind                string    `json:"kind"`
	State               State     `json:"state"`
	Findings            Findings  `json:"findings"`
	RecommendCategories bool      `json:"recommendCategories"`
	Output              string    `json:"output,omitempty"`
}

// Generate runs parse, validate, accept and render steps. Page is rendered when
// there are no fatal findings or when ignoreErrors is set, otherwise outcome
// is left in rejected state without output. Returned error is only set when
// template could not be expanded.
func Generate(a Assembler, ignoreErrors bool, log *zap.Logger) (*Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	out := &Outcome{ID: id, Kind: a.Kind(), State: StateIdle}
	log = log.Named(a.Kind()).With(zap.Stringer("id", id))

	a.Parse()
	out.State = StateParsed

	out.Findings, out.RecommendCategories = a.Validate()
	out.State = StateValidated
	for _, f := range out.Findings {
		log.Debug("Validation finding", zap.Stringer("severity", f.Severity), zap.String("field", f.Field), zap.String("message", f.Message))
	}

	if out.State = a.Accept(ignoreErrors); out.State == StateRejected {
		log.Info("Page rejected", zap.Int("findings", len(out.Findings)))
		return out, nil
	}
	if out.Findings.HasFatal() {
		log.Warn("Ignoring validation errors", zap.Error(out.Findings.Err()))
	}

	if out.Output, err = a.Render(); err != nil {
		return out, fmt.Errorf("unable to render %s page: %w", a.Kind(), err)
	}
	out.State = StateRendered
	log.Debug("Page rendered", zap.Int("size", len(out.Output)))
	return out, nil
}

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Wikitext uses double braces everywhere, templates use <% %> instead.
var templates = template.Must(template.New("page").
	Delims("<%", "%>").
	Funcs(sprig.FuncMap()).
	ParseFS(templatesFS, "templates/*.tmpl"))

func expand(name string, values any) (string, error) {
	buf := new(bytes.Buffer)
	if err := templates.ExecuteTemplate(buf, name, values); err != nil {
		return "", fmt.Errorf("unable to expand template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

var reTextAreaLines = regexp.MustCompile(`\s*\n\s*`)

// textArea trims multi-line input and joins its lines with line breaks.
func textArea(s string) string {
	return reTextAreaLines.ReplaceAllString(strings.TrimSpace(s), "<br />")
}

// displayTitle returns directive fixing page title display: MediaWiki
// capitalizes the first letter and shows underscores as spaces.
func displayTitle(title string) string {
	switch {
	case strings.Contains(title, "_"):
		return "{{DISPLAYTITLE:" + title + "}}"
	case title != "" && title[0] >= 'a' && title[0] <= 'z':
		return "{{Lowercase}}"
	}
	return ""
}

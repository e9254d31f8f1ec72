package httpapi

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageDashboard   = "dashboard.html"
	pageTeamSummary = "team.html"
	pageWaiverWire  = "waiverwire.html"

	fragmentTeamPicks = "team_picks.html"
)

var (
	pageNames     = []string{pageDashboard, pageTeamSummary, pageWaiverWire}
	fragmentNames = []string{fragmentTeamPicks}
)

// views holds one template set per page, each layered over the shared
// layout, plus standalone htmx fragments.
type views struct {
	pages     map[string]*template.Template
	fragments map[string]*template.Template
}

var viewFuncs = template.FuncMap{
	"rating": func(r *float64) string {
		if r == nil {
			return "N/A"
		}
		return strconv.FormatFloat(*r, 'f', 2, 64)
	},
	"fixed1": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64)
	},
	"verdictStyle": func(label string) string {
		return draft.Pick{Verdict: label}.ParsedVerdict().Style()
	},
	"transactionStyle": func(transacType string) string {
		switch {
		case transaction.FilterAdds.Matches(transacType):
			return "bg-green-50"
		case transaction.FilterDrops.Matches(transacType):
			return "bg-red-50"
		default:
			return "bg-gray-50"
		}
	},
	"date": func(t time.Time) string {
		return t.UTC().Format(time.DateOnly)
	},
	"plural": func(n int, word string) string {
		if n == 1 {
			return strconv.Itoa(n) + " " + word
		}
		return strconv.Itoa(n) + " " + word + "s"
	},
	"waiverURL": waiverWireURL,
	"add": func(a, b int) int {
		return a + b
	},
}

func loadViews() (*views, error) {
	base, err := template.New("layout.html").Funcs(viewFuncs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}

	out := &views{
		pages:     make(map[string]*template.Template, len(pageNames)),
		fragments: make(map[string]*template.Template, len(fragmentNames)),
	}
	for _, name := range pageNames {
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := page.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", name, err)
		}
		out.pages[name] = page
	}
	for _, name := range fragmentNames {
		fragment, err := template.New(name).Funcs(viewFuncs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse fragment template %s: %w", name, err)
		}
		out.fragments[name] = fragment
	}
	return out, nil
}

func (v *views) renderPage(ctx context.Context, w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %s", name)
	}
	return renderHTML(ctx, w, status, tmpl, "layout.html", data)
}

func (v *views) renderFragment(ctx context.Context, w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := v.fragments[name]
	if !ok {
		return fmt.Errorf("unknown fragment template %s", name)
	}
	return renderHTML(ctx, w, status, tmpl, name, data)
}

// renderHTML executes into a pooled buffer so a template failure never
// leaves a half-written response.
func renderHTML(ctx context.Context, w http.ResponseWriter, status int, tmpl *template.Template, name string, data any) error {
	_, span := startSpan(ctx, "httpapi.renderHTML", attribute.String("template", name))
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
	return nil
}

func waiverWireURL(week int, filter string) string {
	q := url.Values{}
	q.Set("week", strconv.Itoa(week))
	if filter != "" {
		q.Set("type", filter)
	}
	return "/waiverwire?" + q.Encode()
}

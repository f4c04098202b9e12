package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/complytrack/complytrack/internal/config"
	"github.com/complytrack/complytrack/internal/ctxkeys"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"capitalize": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"fileSize": func(size int64) string {
		if size <= 0 {
			return "N/A"
		}
		return fmt.Sprintf("%d KB", (size+512)/1024)
	},
	"safeHTML": func(s string) template.HTML {
		// only used for markdown output rendered by goldmark
		return template.HTML(s)
	},
	"statusClass": func(status string) string {
		switch status {
		case "completed":
			return "bg-green-100 text-green-800"
		case "overdue":
			return "bg-red-100 text-red-800"
		default:
			return "bg-yellow-100 text-yellow-800"
		}
	},
	"tierClass": func(tier string) string {
		switch tier {
		case "federal":
			return "bg-blue-100 text-blue-800"
		case "state":
			return "bg-purple-100 text-purple-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
}

// pages maps a page template name to its parsed layout+page set. Parsed
// once at startup; a malformed template is a programming error.
var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		panic(fmt.Sprintf("ui: read templates: %v", err))
	}

	parsed := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}
		t := template.New("layout.html").Funcs(funcs)
		t, err = t.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			panic(fmt.Sprintf("ui: parse %s: %v", name, err))
		}
		parsed[name] = t
	}
	return parsed
}

// Page is the envelope every template receives: sanitized config, the
// current path for nav highlighting, and the page's own data.
type Page struct {
	Cfg  *config.Config
	Path string
	Data any
}

// Render writes the named page template. On template failure the response
// is a plain 500; partial output may already be on the wire, which is
// acceptable for an internal tool.
func Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, ok := pages[name]
	if !ok {
		slog.Error("render failed", "error", "unknown template", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	p := Page{
		Cfg:  ctxkeys.Config(r.Context()),
		Path: ctxkeys.URLPath(r.Context()),
		Data: data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := t.ExecuteTemplate(w, "layout.html", p)
	if err != nil {
		slog.Error("render failed", "error", err, "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

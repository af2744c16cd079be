// Package web sirve la vista de timeline renderizada en el servidor.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/domain/timeline"
	"pet-activity-log/internal/observability"
	"pet-activity-log/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Options struct {
	Timeline timeline.Options
	// Refresh es el intervalo de re-fetch de la página (meta refresh).
	Refresh time.Duration
	Now     func() time.Time
}

type pageData struct {
	Clock          string
	Slots          []timeline.Slot
	Since          []timeline.SinceEntry
	Categories     []acts.Category
	RefreshSeconds int
	Error          string
}

var funcs = template.FuncMap{
	"color": func(t acts.Type) template.CSS {
		c, _ := t.Category()
		return template.CSS(c.Color)
	},
	"contrast": func(t acts.Type) template.CSS {
		c, _ := t.Category()
		return template.CSS(c.Contrast)
	},
	"label": func(t acts.Type) string { return t.Label() },
}

var page = template.Must(template.New("timeline.html").Funcs(funcs).ParseFS(templateFS, "templates/timeline.html"))

func RegisterRoutes(r chi.Router, svc *acts.Service, opts Options, log logger.Logger) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Refresh <= 0 {
		opts.Refresh = 10 * time.Second
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: static assets missing: " + err.Error())
	}

	r.Get("/", timelinePageHandler(svc, opts, log))
	r.Post("/acts", quickAddHandler(svc, log))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}

func timelinePageHandler(svc *acts.Service, opts Options, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := opts.Now()

		data := pageData{
			Clock:          timeline.ClockLabel(now, opts.Timeline.Location),
			Categories:     acts.Categories(),
			RefreshSeconds: int(opts.Refresh / time.Second),
		}

		items, err := svc.List(r.Context())
		if err != nil {
			// La página se muestra igual (vacía); el próximo refresh reintenta.
			log.Error("timeline list failed", map[string]any{"err": err})
			data.Error = "could not load activities"
		}
		data.Slots = timeline.Build(now, items, opts.Timeline)
		data.Since = timeline.Since(now, items)

		var buf bytes.Buffer
		if err := page.Execute(&buf, data); err != nil {
			log.Error("timeline render failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(buf.Bytes())
	}
}

// quickAddHandler es el submit del modal: crea un registro del tipo elegido, sin nota propia.
func quickAddHandler(svc *acts.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		typ := acts.Type(strings.TrimSpace(r.PostForm.Get("type")))
		a, err := svc.Create(r.Context(), acts.Input{Type: typ})
		if err != nil {
			if errors.Is(err, acts.ErrInvalidInput) {
				observability.RecordMutation("create", "invalid")
				http.Error(w, "data is not valid", http.StatusBadRequest)
				return
			}
			observability.RecordMutation("create", "error")
			log.Error("quick add failed", map[string]any{"err": err, "type": typ})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Info("act created", map[string]any{"id": a.ID, "type": a.Type, "via": "web"})
		observability.RecordMutation("create", "ok")
		observability.RecordActWritten(a.Time)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

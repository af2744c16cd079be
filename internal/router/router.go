package router

import (
	"net/http"
	"time"

	_ "pet-activity-log/docs"
	mem "pet-activity-log/internal/adapters/storage/memory"
	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/domain/timeline"
	"pet-activity-log/internal/middleware"
	"pet-activity-log/internal/platform/logger"
	"pet-activity-log/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil, usa el repo in-memory.
	Repo acts.Repository

	// Opcional: destino de los cambios (Kafka). nil = no-op.
	Notifier acts.Notifier

	Logger   logger.Logger
	Timeline timeline.Options

	// Reloj inyectable para tests.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	repo := opts.Repo
	if repo == nil {
		repo = mem.NewActRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	svc := acts.NewService(repo, acts.WithNotifier(opts.Notifier), acts.WithClock(now))

	acts.RegisterRoutes(r, svc, log)
	web.RegisterRoutes(r, svc, web.Options{
		Timeline: opts.Timeline,
		Now:      now,
	}, log)

	return r
}

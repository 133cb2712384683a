package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jaekwang-park/tasklist/internal/http/handler"
	"github.com/jaekwang-park/tasklist/internal/middleware"
	"github.com/jaekwang-park/tasklist/internal/service"
)

func NewRouter(taskSvc *service.TaskService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// Unknown verbs get the generic envelope, never a 405.
	r.MethodNotAllowed(handler.InvalidMethod)

	r.Handle("/metrics", promhttp.Handler())
	r.Method(http.MethodGet, "/health", handler.NewHealthHandler())

	tasks := handler.NewTaskHandler(taskSvc, logger)
	r.Get("/tasks", tasks.Get)
	r.Post("/tasks", tasks.Create)
	r.Put("/tasks", tasks.Update)
	r.Delete("/tasks", tasks.Delete)

	return r
}

// nostalgic/routes/router.go
package routes

import (
	"net/http"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 60 * time.Second

// NewRouter mounts every API route behind the shared middleware stack.
func NewRouter(
	auth *controllers.AuthController,
	contents *controllers.ContentController,
	images *controllers.ImageController,
	health *controllers.HealthController,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.Trace)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Mount("/api/user", UserRoutes(auth))
	r.Mount("/api/content", ContentRoutes(contents, auth))
	r.Mount("/api/userimage", UserImageRoutes(images, auth))
	r.Mount("/api/contentimage", ContentImageRoutes(images, auth))
	r.Get("/health", health.HealthCheck)
	return r
}

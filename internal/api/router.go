package api

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	apiContext "qrstudio/internal/api/context"
	"qrstudio/internal/api/handlers"
	"qrstudio/internal/api/middleware"
)

type Dependencies struct {
	RenderHandler  *handlers.RenderHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler *handlers.MetricsHandler
}

func NewRouter(deps *Dependencies) *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Export))

	router.POST("/api/v1/qr/render",
		chain(deps.RenderHandler.Render, middleware.RequestID, middleware.RateLimit("render")))
	router.POST("/api/v1/qr/render/logo",
		chain(deps.RenderHandler.RenderWithLogo, middleware.RequestID, middleware.RateLimit("render")))
	router.GET("/api/v1/qr/preview",
		chain(deps.RenderHandler.Preview, middleware.RequestID, middleware.RateLimit("preview")))

	return router
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		// Inject params into context
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}

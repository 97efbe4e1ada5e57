package main

import (
	"fmt"
	"log"
	"net/http"

	"qrstudio/internal/api"
	"qrstudio/internal/api/handlers"
	"qrstudio/internal/engine/render"
	"qrstudio/internal/pkg/logger"
	"qrstudio/internal/platform/config"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	defaults, err := defaultOptions(cfg.Render)
	if err != nil {
		log.Fatalf("Invalid render defaults: %v", err)
	}

	// Handlers
	metrics := handlers.NewMetrics()
	renderHandler := handlers.NewRenderHandler(defaults, cfg.Limits.MaxLogoBytes, metrics)
	healthHandler := handlers.NewHealthHandler()
	metricsHandler := handlers.NewMetricsHandler(metrics)

	// Router
	deps := &api.Dependencies{
		RenderHandler:  renderHandler,
		HealthHandler:  healthHandler,
		MetricsHandler: metricsHandler,
	}
	router := api.NewRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("Server starting on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// defaultOptions converts the config defaults into a render.Options template
// that requests are merged over.
func defaultOptions(cfg config.RenderConfig) (render.Options, error) {
	opts := render.Options{
		Size:            cfg.DefaultSize,
		ErrorCorrection: render.ErrorCorrection(cfg.DefaultErrorCorrection),
		Margin:          cfg.DefaultMargin,
		Frame:           render.FrameType(cfg.DefaultFrame),
		Shape:           render.Shape(cfg.DefaultShape),
		BottomTextSize:  cfg.DefaultBottomTextSize,
	}

	var err error
	if opts.Foreground, err = render.ParseColor(cfg.DefaultForeground); err != nil {
		return opts, fmt.Errorf("default_foreground: %w", err)
	}
	if opts.Background, err = render.ParseColor(cfg.DefaultBackground); err != nil {
		return opts, fmt.Errorf("default_background: %w", err)
	}
	if opts.FrameColor, err = render.ParseColor(cfg.DefaultFrameColor); err != nil {
		return opts, fmt.Errorf("default_frame_color: %w", err)
	}
	if opts.BottomTextColor, err = render.ParseColor(cfg.DefaultBottomTextColor); err != nil {
		return opts, fmt.Errorf("default_bottom_text_color: %w", err)
	}
	return opts, nil
}

package handlers

import (
	"encoding/json"
	"image/color"
	"net/http"
	"time"

	"qrstudio/internal/engine/render"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	// Exercise the full pipeline once, caption included, so a broken encoder
	// or font face shows up here instead of on the first user render.
	_, err := render.Render(render.Options{
		Text:            "health-check",
		Size:            render.MinSize,
		Foreground:      color.RGBA{A: 0xff},
		Background:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ErrorCorrection: render.ECMedium,
		Margin:          4,
		Frame:           render.FrameNone,
		Shape:           render.ShapeSquare,
		BottomText:      "ok",
		BottomTextColor: color.RGBA{A: 0xff},
		BottomTextSize:  render.MinBottomTextSize,
	}, nil)
	if err != nil {
		checks["pipeline"] = "unhealthy: " + err.Error()
	} else {
		checks["pipeline"] = "healthy"
	}

	status := "healthy"
	for _, check := range checks {
		if len(check) >= 9 && check[:9] == "unhealthy" {
			status = "degraded"
			break
		}
	}

	response := struct {
		Status    string            `json:"status"`
		Timestamp int64             `json:"timestamp"`
		Checks    map[string]string `json:"checks"`
	}{
		Status:    status,
		Timestamp: time.Now().Unix(),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

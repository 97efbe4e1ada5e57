package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"

	"qrstudio/internal/engine/render"
	apierrors "qrstudio/internal/pkg/errors"
)

type RenderHandler struct {
	defaults     render.Options
	maxLogoBytes int64
	metrics      *Metrics
}

func NewRenderHandler(defaults render.Options, maxLogoBytes int64, metrics *Metrics) *RenderHandler {
	if maxLogoBytes <= 0 {
		maxLogoBytes = render.MaxLogoBytes
	}
	return &RenderHandler{
		defaults:     defaults,
		maxLogoBytes: maxLogoBytes,
		metrics:      metrics,
	}
}

type renderRequest struct {
	Text            string `json:"text"`
	Size            int    `json:"size"`
	ForegroundColor string `json:"foreground_color"`
	BackgroundColor string `json:"background_color"`
	ErrorCorrection string `json:"error_correction"`
	Margin          *int   `json:"margin"`
	Frame           string `json:"frame"`
	FrameColor      string `json:"frame_color"`
	Shape           string `json:"shape"`
	BottomText      string `json:"bottom_text"`
	BottomTextColor string `json:"bottom_text_color"`
	BottomTextSize  int    `json:"bottom_text_size"`
}

// buildOptions merges the request over the configured defaults.
func (h *RenderHandler) buildOptions(req *renderRequest) (render.Options, error) {
	opts := h.defaults
	opts.Text = req.Text

	if req.Size != 0 {
		opts.Size = req.Size
	}
	if req.ForegroundColor != "" {
		c, err := render.ParseColor(req.ForegroundColor)
		if err != nil {
			return opts, err
		}
		opts.Foreground = c
	}
	if req.BackgroundColor != "" {
		c, err := render.ParseColor(req.BackgroundColor)
		if err != nil {
			return opts, err
		}
		opts.Background = c
	}
	if req.ErrorCorrection != "" {
		opts.ErrorCorrection = render.ErrorCorrection(req.ErrorCorrection)
	}
	if req.Margin != nil {
		opts.Margin = *req.Margin
	}
	if req.Frame != "" {
		opts.Frame = render.FrameType(req.Frame)
	}
	if req.FrameColor != "" {
		c, err := render.ParseColor(req.FrameColor)
		if err != nil {
			return opts, err
		}
		opts.FrameColor = c
	}
	if req.Shape != "" {
		opts.Shape = render.Shape(req.Shape)
	}
	opts.BottomText = req.BottomText
	if req.BottomTextColor != "" {
		c, err := render.ParseColor(req.BottomTextColor)
		if err != nil {
			return opts, err
		}
		opts.BottomTextColor = c
	}
	if req.BottomTextSize != 0 {
		opts.BottomTextSize = req.BottomTextSize
	}

	return opts, opts.Validate()
}

// Render handles POST /api/v1/qr/render with a JSON body and responds with
// the PNG artifact.
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordInvalidInput()
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}

	opts, err := h.buildOptions(&req)
	if err != nil {
		h.metrics.RecordInvalidInput()
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	h.respondPNG(w, opts, nil)
}

// RenderWithLogo handles POST /api/v1/qr/render/logo as multipart form data:
// an "options" JSON part plus a "logo" file part.
func (h *RenderHandler) RenderWithLogo(w http.ResponseWriter, r *http.Request) {
	// Allow the logo limit plus headroom for the options part.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxLogoBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxLogoBytes + 1<<20); err != nil {
		h.metrics.RecordAssetRejection()
		apierrors.WriteError(w, http.StatusRequestEntityTooLarge, apierrors.ErrCodeAssetTooLarge,
			fmt.Sprintf("Upload exceeds %d bytes", h.maxLogoBytes), nil)
		return
	}

	var req renderRequest
	if raw := r.FormValue("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			h.metrics.RecordInvalidInput()
			apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Invalid options part", nil)
			return
		}
	}

	opts, err := h.buildOptions(&req)
	if err != nil {
		h.metrics.RecordInvalidInput()
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	var logo image.Image
	file, header, err := r.FormFile("logo")
	if err == nil {
		defer file.Close()
		if header.Size > h.maxLogoBytes {
			h.metrics.RecordAssetRejection()
			apierrors.WriteError(w, http.StatusRequestEntityTooLarge, apierrors.ErrCodeAssetTooLarge,
				fmt.Sprintf("Logo is %d bytes, limit is %d", header.Size, h.maxLogoBytes), nil)
			return
		}
		data, err := io.ReadAll(file)
		if err != nil {
			apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Cannot read logo upload", nil)
			return
		}
		logo, err = render.LoadLogo(data, h.maxLogoBytes)
		if err != nil {
			h.writeRenderError(w, err)
			return
		}
	}

	h.respondPNG(w, opts, logo)
}

// Preview handles GET /api/v1/qr/preview with query parameters, responding
// with a JSON envelope carrying a data URL for inline display.
func (h *RenderHandler) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size, _ := strconv.Atoi(q.Get("size"))
	textSize, _ := strconv.Atoi(q.Get("bottom_text_size"))

	req := renderRequest{
		Text:            q.Get("text"),
		Size:            size,
		ForegroundColor: q.Get("foreground_color"),
		BackgroundColor: q.Get("background_color"),
		ErrorCorrection: q.Get("error_correction"),
		Frame:           q.Get("frame"),
		FrameColor:      q.Get("frame_color"),
		Shape:           q.Get("shape"),
		BottomText:      q.Get("bottom_text"),
		BottomTextColor: q.Get("bottom_text_color"),
		BottomTextSize:  textSize,
	}
	if m := q.Get("margin"); m != "" {
		margin, err := strconv.Atoi(m)
		if err != nil {
			h.metrics.RecordInvalidInput()
			apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Invalid margin", nil)
			return
		}
		req.Margin = &margin
	}

	opts, err := h.buildOptions(&req)
	if err != nil {
		h.metrics.RecordInvalidInput()
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, err.Error(), nil)
		return
	}

	artifact, err := render.Render(opts, nil)
	if err != nil {
		h.writeRenderError(w, err)
		return
	}
	h.metrics.RecordRender()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		DataURL  string `json:"data_url"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Filename string `json:"filename"`
	}{
		DataURL:  artifact.DataURL(),
		Width:    artifact.Width,
		Height:   artifact.Height,
		Filename: artifact.Filename,
	})
}

func (h *RenderHandler) respondPNG(w http.ResponseWriter, opts render.Options, logo image.Image) {
	artifact, err := render.Render(opts, logo)
	if err != nil {
		h.writeRenderError(w, err)
		return
	}
	h.metrics.RecordRender()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Filename))
	w.Write(artifact.PNG)
}

func (h *RenderHandler) writeRenderError(w http.ResponseWriter, err error) {
	var encodingErr *render.EncodingError
	var assetErr *render.AssetTooLargeError
	var surfaceErr *render.SurfaceUnavailableError

	switch {
	case errors.As(err, &encodingErr):
		h.metrics.RecordEncodingFailure()
		apierrors.WriteError(w, http.StatusUnprocessableEntity, apierrors.ErrCodeEncodingFailed, err.Error(), nil)
	case errors.As(err, &assetErr):
		h.metrics.RecordAssetRejection()
		apierrors.WriteError(w, http.StatusRequestEntityTooLarge, apierrors.ErrCodeAssetTooLarge, err.Error(), nil)
	case errors.As(err, &surfaceErr):
		h.metrics.RecordSurfaceFailure()
		apierrors.WriteError(w, http.StatusInternalServerError, apierrors.ErrCodeSurfaceUnavailable, err.Error(), nil)
	default:
		h.metrics.RecordInvalidInput()
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidInput, err.Error(), nil)
	}
}

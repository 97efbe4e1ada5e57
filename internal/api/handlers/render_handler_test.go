package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qrstudio/internal/engine/render"
)

func testDefaults() render.Options {
	return render.Options{
		Size:            300,
		Foreground:      color.RGBA{A: 0xff},
		Background:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		ErrorCorrection: render.ECMedium,
		Margin:          4,
		Frame:           render.FrameNone,
		FrameColor:      color.RGBA{A: 0xff},
		Shape:           render.ShapeSquare,
		BottomTextColor: color.RGBA{A: 0xff},
		BottomTextSize:  16,
	}
}

func newTestHandler() *RenderHandler {
	return NewRenderHandler(testDefaults(), 0, NewMetrics())
}

func decodeErrorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("Error response is not JSON: %v", err)
	}
	return resp.Code
}

func TestRenderEndpoint(t *testing.T) {
	h := newTestHandler()

	body := `{"text":"https://example.com","frame":"simple","frame_color":"#ff0000"}`
	req := httptest.NewRequest("POST", "/api/v1/qr/render", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Render(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "qr-code-") {
		t.Errorf("Content-Disposition = %q, want generated filename", cd)
	}

	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 360 || b.Dy() != 360 {
		t.Errorf("Artifact is %dx%d, want 360x360", b.Dx(), b.Dy())
	}
}

func TestRenderEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Malformed JSON",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "Missing Text",
			body:       `{"size":300}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "Bad Color",
			body:       `{"text":"hi","foreground_color":"#nope"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "Capacity Exceeded",
			body:       `{"text":"` + strings.Repeat("a", 4000) + `","error_correction":"H"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "ENCODING_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			req := httptest.NewRequest("POST", "/api/v1/qr/render", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Render(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}
			if code := decodeErrorCode(t, w.Body); code != tt.wantCode {
				t.Errorf("Error code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestPreviewEndpoint(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("GET", "/api/v1/qr/preview?text=hello&bottom_text=Scan+Me", nil)
	w := httptest.NewRecorder()

	h.Preview(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		DataURL  string `json:"data_url"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Response is not JSON: %v", err)
	}
	if !strings.HasPrefix(resp.DataURL, "data:image/png;base64,") {
		t.Errorf("DataURL prefix wrong: %.40q", resp.DataURL)
	}
	if resp.Width != 300 || resp.Height != 340 {
		t.Errorf("Dimensions %dx%d, want 300x340", resp.Width, resp.Height)
	}
	if !strings.HasPrefix(resp.Filename, "qr-code-") {
		t.Errorf("Filename = %q, want qr-code-<timestamp>.png", resp.Filename)
	}
}

func multipartBody(t *testing.T, options string, logo []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("options", options); err != nil {
		t.Fatalf("Cannot write options part: %v", err)
	}
	if logo != nil {
		fw, err := mw.CreateFormFile("logo", "logo.png")
		if err != nil {
			t.Fatalf("Cannot create logo part: %v", err)
		}
		if _, err := fw.Write(logo); err != nil {
			t.Fatalf("Cannot write logo part: %v", err)
		}
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestRenderWithLogoEndpoint(t *testing.T) {
	var logoBuf bytes.Buffer
	if err := png.Encode(&logoBuf, image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatalf("Cannot encode logo fixture: %v", err)
	}

	t.Run("Accepted", func(t *testing.T) {
		h := newTestHandler()
		body, contentType := multipartBody(t, `{"text":"https://example.com"}`, logoBuf.Bytes())
		req := httptest.NewRequest("POST", "/api/v1/qr/render/logo", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		h.RenderWithLogo(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}
		if _, err := png.Decode(w.Body); err != nil {
			t.Errorf("Response is not a PNG: %v", err)
		}
	})

	t.Run("Oversized Logo Rejected", func(t *testing.T) {
		h := newTestHandler()
		oversized := append(append([]byte{}, logoBuf.Bytes()...), make([]byte, 6<<20)...)
		body, contentType := multipartBody(t, `{"text":"https://example.com"}`, oversized)
		req := httptest.NewRequest("POST", "/api/v1/qr/render/logo", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		h.RenderWithLogo(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("Status = %d, want 413", w.Code)
		}
		if code := decodeErrorCode(t, w.Body); code != "ASSET_TOO_LARGE" {
			t.Errorf("Error code = %q, want ASSET_TOO_LARGE", code)
		}
	})

	t.Run("No Logo Part Still Renders", func(t *testing.T) {
		h := newTestHandler()
		body, contentType := multipartBody(t, `{"text":"https://example.com"}`, nil)
		req := httptest.NewRequest("POST", "/api/v1/qr/render/logo", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()

		h.RenderWithLogo(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}
	})
}

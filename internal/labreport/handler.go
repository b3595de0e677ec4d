package labreport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"community-seva/internal/platform/httputil"
	"community-seva/internal/platform/sentinel"
)

// Analyzer reads a lab report through an external model.
// internal/agent provides the Gemini implementation.
type Analyzer interface {
	Analyse(ctx context.Context, report Report) (*Analysis, error)
}

type Handler struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewHandler accepts a nil analyzer; the endpoint then answers 503.
func NewHandler(analyzer Analyzer, logger *slog.Logger) *Handler {
	return &Handler{analyzer: analyzer, logger: logger}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/reports/analyse", h.HandleAnalyse)
}

// HandleAnalyse handles POST /reports/analyse with a multipart "report" file.
func (h *Handler) HandleAnalyse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)

	if h.analyzer == nil {
		httputil.WriteError(w, fmt.Errorf("lab report analysis is not configured: %w", sentinel.ErrUnavailable))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		httputil.BadRequest(w, "expected a multipart form no larger than 10 MiB")
		return
	}

	file, header, err := r.FormFile("report")
	if err != nil {
		httputil.BadRequest(w, "missing report file")
		return
	}
	defer file.Close()

	mimeType, err := DetectMimeType(header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(file, MaxUploadBytes+1)); err != nil {
		httputil.WriteError(w, fmt.Errorf("read report: %w", err))
		return
	}
	if buf.Len() > MaxUploadBytes {
		httputil.BadRequest(w, "report is larger than 10 MiB")
		return
	}
	if buf.Len() == 0 {
		httputil.BadRequest(w, "report is empty")
		return
	}

	start := time.Now()
	analysis, err := h.analyzer.Analyse(ctx, Report{Name: header.Filename, MimeType: mimeType, Data: buf.Bytes()})
	if err != nil {
		h.logger.ErrorContext(ctx, "lab report analysis failed",
			"request_id", requestID,
			"file", header.Filename,
			"error", err,
		)
		if errors.Is(err, sentinel.ErrUnavailable) {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusBadGateway, httputil.ErrorResponse{
			Error:       "analysis_failed",
			Description: "Unexpected error while analysing. Check your internet connection and try again.",
		})
		return
	}

	h.logger.InfoContext(ctx, "lab report analysed",
		"request_id", requestID,
		"mime_type", mimeType,
		"bytes", buf.Len(),
		"has_disease_risk", analysis.HasDiseaseRisk,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, analysis)
}

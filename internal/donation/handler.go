package donation

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"community-seva/internal/platform/httputil"
)

type Handler struct {
	svc    Service
	logger *slog.Logger
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/donations/catalog", h.HandleCatalog)
	r.Post("/donations/eligibility", h.HandleEligibility)
	r.Post("/donations/eligibility/report", h.HandleReport)
	r.Post("/donations/eligibility/report/send", h.HandleSendReport)
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, Catalog())
}

// HandleEligibility handles POST /donations/eligibility.
func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	screening, err := h.svc.Screen(r.Context(), req.ToIntake())
	if err != nil {
		h.fail(w, r, "screening failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromScreening(screening))
}

// HandleReport answers with the verdict as a PDF attachment.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	screening, pdf, err := h.svc.Report(r.Context(), req.ToIntake())
	if err != nil {
		h.fail(w, r, "report rendering failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="screening_%s.pdf"`, screening.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// HandleSendReport delivers the verdict PDF to the coordinator chat.
func (h *Handler) HandleSendReport(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	screening, err := h.svc.SendReport(r.Context(), req.ToIntake())
	if err != nil {
		h.fail(w, r, "report delivery failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, FromScreening(screening))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*IntakeRequest, bool) {
	var req IntakeRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.BadRequest(w, "invalid JSON body")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return nil, false
	}
	return &req, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	httputil.WriteError(w, err)
}

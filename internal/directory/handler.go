package directory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"community-seva/internal/eligibility"
	"community-seva/internal/platform/httputil"
)

type Handler struct {
	dir    *Directory
	logger *slog.Logger
}

func NewHandler(dir *Directory, logger *slog.Logger) *Handler {
	return &Handler{dir: dir, logger: logger}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/directory", func(r chi.Router) {
		r.Get("/districts", h.HandleDistricts)
		r.Get("/donors", h.HandleDonors)
		r.Post("/donors/{id}/request", h.HandleRequestDonor)
		r.Get("/banks", h.HandleBanks)
		r.Put("/banks/{id}/inventory", h.HandleUpdateInventory)
	})
}

// BankResponse adds the groups currently in stock to a bank.
type BankResponse struct {
	Bank
	AvailableGroups []eligibility.BloodGroup `json:"available_groups"`
}

func toBankResponse(b Bank) BankResponse {
	groups := groupsInStock(b.Inventory)
	if groups == nil {
		groups = []eligibility.BloodGroup{}
	}
	return BankResponse{Bank: b, AvailableGroups: groups}
}

type DonorRequestResponse struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

func (h *Handler) HandleDistricts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.dir.Districts())
}

// HandleDonors handles GET /directory/donors?blood_group=&district=.
func (h *Handler) HandleDonors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	donors := h.dir.Donors(DonorFilter{
		BloodGroup: q.Get("blood_group"),
		District:   q.Get("district"),
	})
	httputil.WriteJSON(w, http.StatusOK, donors)
}

func (h *Handler) HandleBanks(w http.ResponseWriter, r *http.Request) {
	banks := h.dir.Banks(r.URL.Query().Get("district"))
	resp := make([]BankResponse, len(banks))
	for i, b := range banks {
		resp[i] = toBankResponse(b)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateInventory replaces the inventory of the bank named in the path.
func (h *Handler) HandleUpdateInventory(w http.ResponseWriter, r *http.Request) {
	var inv Inventory
	if err := httputil.DecodeJSON(w, r, &inv); err != nil {
		httputil.BadRequest(w, "invalid JSON body")
		return
	}

	bank, err := h.dir.UpdateInventory(r.Context(), chi.URLParam(r, "id"), inv)
	if err != nil {
		h.fail(w, r, "inventory update failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBankResponse(*bank))
}

// HandleRequestDonor accepts an optional DonorRequest body.
func (h *Handler) HandleRequestDonor(w http.ResponseWriter, r *http.Request) {
	var req DonorRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		httputil.BadRequest(w, "invalid JSON body")
		return
	}

	id, err := h.dir.RequestDonor(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, "donor request failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, DonorRequestResponse{
		RequestID: id.String(),
		Message:   "Request sent. Details will be sent to your email.",
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.WarnContext(r.Context(), msg,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	httputil.WriteError(w, err)
}

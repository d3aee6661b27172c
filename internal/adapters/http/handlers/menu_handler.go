package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// MenuHandler serves the public menu and the admin dashboard.
type MenuHandler struct {
	svc ports.MenuService
}

// NewMenuHandler creates a new MenuHandler with the given service port.
func NewMenuHandler(svc ports.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// Menu handles GET /api/v1/menu.
func (h *MenuHandler) Menu(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Menu(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMenuResponse(m))
}

// ActiveOffers handles GET /api/v1/offers/active?limit=N.
func (h *MenuHandler) ActiveOffers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	offers, err := h.svc.ActiveOffers(r.Context(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(offers, dto.ToOfferResponse))
}

// Dashboard handles GET /api/v1/dashboard.
func (h *MenuHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(d))
}

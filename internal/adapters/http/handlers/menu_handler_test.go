package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
	"github.com/jsamuelsen11/menu-cms/mocks"
)

func newMenuHandler(t *testing.T) (*handlers.MenuHandler, *mocks.MockMenuService) {
	t.Helper()
	svc := mocks.NewMockMenuService(t)
	return handlers.NewMenuHandler(svc), svc
}

func TestMenu_GroupsByCategory(t *testing.T) {
	t.Parallel()
	h, svc := newMenuHandler(t)

	svc.EXPECT().Menu(mock.Anything).Return(&ports.Menu{
		Categories: []category.Category{validCategory()},
		Items:      []menuitem.MenuItem{validMenuItem()},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	h.Menu(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MenuResponse](t, rec)
	if len(resp.Categories) != 1 || len(resp.Categories[0].Items) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Categories[0].Name != "Starters" || resp.Categories[0].Items[0].Name != "Samosa" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestMenu_Error(t *testing.T) {
	t.Parallel()
	h, svc := newMenuHandler(t)

	svc.EXPECT().Menu(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	h.Menu(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestActiveOffers_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{"default", "", 0, http.StatusOK},
		{"explicit", "?limit=5", 5, http.StatusOK},
		{"zero", "?limit=0", -1, http.StatusBadRequest},
		{"not a number", "?limit=many", -1, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newMenuHandler(t)
			if tt.wantLimit >= 0 {
				svc.EXPECT().ActiveOffers(mock.Anything, tt.wantLimit).Return([]offer.Offer{validOffer()}, nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/active"+tt.query, nil)
			h.ActiveOffers(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				resp := decodeJSON[dto.ErrorResponse](t, rec)
				if len(resp.Errors) != 1 || resp.Errors[0].Location != "query.limit" {
					t.Errorf("errors = %+v, want query.limit", resp.Errors)
				}
				return
			}
			resp := decodeJSON[dto.ListResponse[dto.OfferResponse]](t, rec)
			if resp.Count != 1 || resp.Items[0].Headline != "Lunch deal" {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	h, svc := newMenuHandler(t)

	svc.EXPECT().Dashboard(mock.Anything).Return(&ports.Dashboard{
		Categories: 4, MenuItems: 27, Offers: 5, ActiveOffers: 2,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	h.Dashboard(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DashboardResponse](t, rec)
	if resp != (dto.DashboardResponse{Categories: 4, MenuItems: 27, Offers: 5, ActiveOffers: 2}) {
		t.Errorf("resp = %+v", resp)
	}
}

func TestDashboard_Error(t *testing.T) {
	t.Parallel()
	h, svc := newMenuHandler(t)

	svc.EXPECT().Dashboard(mock.Anything).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	h.Dashboard(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

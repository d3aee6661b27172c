package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
	"github.com/jsamuelsen11/menu-cms/mocks"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)
	svc.EXPECT().Login(mock.Anything, "open sesame").Return(&ports.Token{Value: "signed", ExpiresAt: testTime}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, dto.LoginRequest{Password: "open sesame"}))
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	resp := decodeJSON[dto.TokenResponse](t, rec)
	if resp.AccessToken != "signed" || resp.TokenType != "Bearer" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)
	svc.EXPECT().Login(mock.Anything, "guess").Return(nil, fmt.Errorf("wrong password: %w", domain.ErrUnauthorized))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, dto.LoginRequest{Password: "guess"}))
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate header")
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	t.Parallel()

	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, dto.LoginRequest{}))
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
)

const testMaxUpload = 1 << 20

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validCategory() category.Category {
	return category.Category{
		ID:          "01JCATSTARTERS",
		Name:        "Starters",
		Description: "Small plates",
		SquareImage: "https://cdn.example.com/categories/starters.png",
		Order:       1,
		CreatedAt:   testTime,
	}
}

func validMenuItem() menuitem.MenuItem {
	return menuitem.MenuItem{
		ID:         "01JITEMSAMOSA",
		Name:       "Samosa",
		CategoryID: "01JCATSTARTERS",
		Price:      4.5,
		Order:      1,
		CreatedAt:  testTime,
	}
}

func validOffer() offer.Offer {
	return offer.Offer{
		ID:          "01JOFFERLUNCH",
		Headline:    "Lunch deal",
		PriceBefore: 14,
		PriceAfter:  10,
		IsActive:    true,
		Order:       1,
		CreatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

// formFile is one file part of a multipart body.
type formFile struct {
	field, filename, contentType string
	content                      []byte
}

// mustJSON encodes v for use as a multipart data part.
func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode data part: %v", err)
	}
	return string(raw)
}

// multipartBody builds a multipart/form-data body with an optional data part
// and the given files. It returns the body and its Content-Type.
func multipartBody(t *testing.T, data string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	if data != "" {
		if err := mw.WriteField("data", data); err != nil {
			t.Fatalf("failed to write data part: %v", err)
		}
	}

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(f.content); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

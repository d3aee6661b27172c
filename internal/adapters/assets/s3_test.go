package assets_test

import (
	"context"
	"encoding/pem"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/assets"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/platform/config"
	"github.com/jsamuelsen11/menu-cms/internal/platform/httpclient"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

type recorded struct {
	method      string
	path        string
	contentType string
	body        string
}

// fakeS3 answers every request with status and body, recording what it saw.
type fakeS3 struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		method:      r.Method,
		path:        r.URL.Path,
		contentType: r.Header.Get("Content-Type"),
		body:        string(b),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	if body != "" {
		w.Header().Set("Content-Type", "application/xml")
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeS3) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newStore(t *testing.T, fake *fakeS3, publicBaseURL string) *assets.Store {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.DiscardHandler)
	hc := httpclient.New(&config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 10, Timeout: time.Second, HalfOpenLimit: 1},
	}, "object-storage", nil, logger)

	cfg := &config.AssetsConfig{
		Driver:          config.AssetsS3,
		Bucket:          "menu",
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		UsePathStyle:    true,
		PublicBaseURL:   publicBaseURL,
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
		MaxUploadBytes:  1 << 10,
	}

	client, err := assets.NewClient(context.Background(), cfg, hc.Doer())
	require.NoError(t, err)
	return assets.New(client, cfg, logger)
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{status: http.StatusOK}
	store := newStore(t, fake, "https://cdn.example.com/")

	ref, err := store.Upload(context.Background(), "categories", ports.Upload{
		Filename:    "Hero.PNG",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^https://cdn\.example\.com/categories/[0-9a-f-]{36}\.png$`), ref)

	req := fake.last(t)
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/menu/"+strings.TrimPrefix(ref, "https://cdn.example.com/"), req.path)
	assert.Equal(t, "image/png", req.contentType)
	assert.Contains(t, req.body, "png-bytes")
}

func TestNewClient_WithCABundle(t *testing.T) {
	tlsSrv := httptest.NewTLSServer(http.NotFoundHandler())
	t.Cleanup(tlsSrv.Close)

	bundle := filepath.Join(t.TempDir(), "ca.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: tlsSrv.Certificate().Raw})
	require.NoError(t, os.WriteFile(bundle, certPEM, 0o600))
	t.Setenv("AWS_CA_BUNDLE", bundle)

	fake := &fakeS3{status: http.StatusOK}
	store := newStore(t, fake, "")

	_, err := store.Upload(context.Background(), "categories", ports.Upload{
		Filename:    "hero.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, fake.last(t).method)
}

func TestUpload_BareKeyWithoutPublicURL(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{status: http.StatusOK}
	store := newStore(t, fake, "")

	ref, err := store.Upload(context.Background(), "special-offers", ports.Upload{
		Filename: "offer",
		Body:     strings.NewReader("\x89PNG\r\n\x1a\nrest"),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^special-offers/[0-9a-f-]{36}\.png$`), ref)
	assert.Equal(t, "image/png", fake.last(t).contentType)
}

func TestUpload_TooLarge(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{status: http.StatusOK}
	store := newStore(t, fake, "")

	_, err := store.Upload(context.Background(), "menu-items", ports.Upload{
		Filename: "big.jpg",
		Body:     strings.NewReader(strings.Repeat("x", 2<<10)),
	})
	require.ErrorIs(t, err, domain.ErrUploadFailed)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.requests, "oversized upload must not reach storage")
}

func TestUpload_TranslatesErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "access denied",
			status:  http.StatusForbidden,
			body:    `<Error><Code>AccessDenied</Code><Message>denied</Message></Error>`,
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "missing bucket",
			status:  http.StatusNotFound,
			body:    `<Error><Code>NoSuchBucket</Code><Message>no bucket</Message></Error>`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    `<Error><Code>SlowDown</Code><Message>busy</Message></Error>`,
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newStore(t, &fakeS3{status: tt.status, body: tt.body}, "")

			_, err := store.Upload(context.Background(), "categories", ports.Upload{
				Filename:    "a.jpg",
				ContentType: "image/jpeg",
				Body:        strings.NewReader("jpeg"),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUploadFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDelete_StripsPublicURL(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{status: http.StatusNoContent}
	store := newStore(t, fake, "https://cdn.example.com")

	err := store.Delete(context.Background(), "https://cdn.example.com/menu-items/abc.jpg")
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/menu/menu-items/abc.jpg", req.path)
}

func TestDelete_EmptyRefIsNoop(t *testing.T) {
	t.Parallel()

	fake := &fakeS3{status: http.StatusNoContent}
	store := newStore(t, fake, "")

	require.NoError(t, store.Delete(context.Background(), ""))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Empty(t, fake.requests)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	var d assets.Discard
	ref, err := d.Upload(context.Background(), "categories", ports.Upload{Filename: "a.jpg"})
	assert.Empty(t, ref)
	assert.True(t, errors.Is(err, domain.ErrUploadFailed))
	assert.NoError(t, d.Delete(context.Background(), "categories/a.jpg"))
}

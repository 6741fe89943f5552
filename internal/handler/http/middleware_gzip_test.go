package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	const payload = `{"payload":{"item":[]}}`

	tests := []struct {
		name           string
		path           string
		acceptEncoding string
		explicitStatus bool
		wantGzipped    bool
	}{
		{"compressed when accepted", "/search", "gzip", true, true},
		{"compressed with implicit status", "/search", "deflate, gzip, br", false, true},
		{"plain when not accepted", "/search", "", true, false},
		{"metrics left alone", "/metrics", "gzip", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if tt.explicitStatus {
					w.WriteHeader(http.StatusOK)
				}
				_, _ = w.Write([]byte(payload))
			})

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, gunzip(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rr.Body.String())
			}
		})
	}
}

func TestGZip_DecodesRequestBody(t *testing.T) {
	const body = `{"params":{"searchText":"ACME"}}`

	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received = string(data)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(gzipBytes(t, body)))
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, body, received)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, closed)
	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

func TestGZip_PanicLeavesResponseToRecoverer(t *testing.T) {
	research := &fakeResearchService{
		searchFn: func(context.Context, models.SearchRequest) ([]byte, error) {
			panic("boom")
		},
	}
	router := NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"params":{"searchText":"ACME"}}`))
	req.Header.Set("Accept-Encoding", "gzip")
	rr := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
}

func TestGZip_PanicOverRealServer(t *testing.T) {
	research := &fakeResearchService{
		searchFn: func(context.Context, models.SearchRequest) ([]byte, error) {
			panic("boom")
		},
	}
	srv := httptest.NewServer(NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop()).Init())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/search", strings.NewReader(`{"params":{"searchText":"ACME"}}`))
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestGZip_EmptyResponseNotCompressed(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := serve(handler, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

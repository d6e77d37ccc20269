// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/mock"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestAuth(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseCalled bool
		parseErr    error
		wantCode    int
		wantAccount string
	}{
		{name: "valid token", header: "Bearer good", parseCalled: true, wantCode: http.StatusOK, wantAccount: testAccount},
		{name: "lowercase scheme", header: "bearer good", parseCalled: true, wantCode: http.StatusOK, wantAccount: testAccount},
		{name: "no header", wantCode: http.StatusUnauthorized},
		{name: "missing token", header: "Bearer", wantCode: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantCode: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", parseCalled: true, parseErr: service.ErrTokenIsExpiredOrInvalid, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthService(ctrl)
			if tt.parseCalled {
				auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
					Return(models.Token{AccountID: testAccount}, tt.parseErr)
			}

			h := &Handler{services: &service.Services{AuthService: auth}, logger: logger.Nop()}

			var gotAccount string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAccount, _ = utils.GetAccountIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantAccount, gotAccount)
		})
	}
}

// ─────────────────────────────────────────────
// withBodyHash
// ─────────────────────────────────────────────

func TestWithBodyHash(t *testing.T) {
	body := []byte(`{"objects":[]}`)
	valid := utils.NewHasher(testHashKey).SumHex(body)

	tests := []struct {
		name      string
		key       string
		signature string
		wantCode  int
	}{
		{name: "valid signature", key: testHashKey, signature: valid, wantCode: http.StatusOK},
		{name: "wrong signature", key: testHashKey, signature: strings.Repeat("0", 64), wantCode: http.StatusBadRequest},
		{name: "signed with other key", key: testHashKey, signature: utils.NewHasher("other").SumHex(body), wantCode: http.StatusBadRequest},
		{name: "unsigned request", key: testHashKey, wantCode: http.StatusOK},
		{name: "no server key", signature: strings.Repeat("0", 64), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, nil, tt.key, logger.Nop())

			var seen []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = io.ReadAll(r.Body)
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(hashHeader, tt.signature)
			}
			rec := httptest.NewRecorder()
			h.withBodyHash(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, body, seen, "body must be readable downstream")
			}
		})
	}
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_InflatesRequest(t *testing.T) {
	var seen []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = io.ReadAll(r.Body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte(`{"a":1}`))))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"a":1}`, string(seen))
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_Response(t *testing.T) {
	payload := map[string]string{"message": strings.Repeat("object ", 100)}

	tests := []struct {
		name         string
		accept       string
		handler      http.HandlerFunc
		wantEncoding string
	}{
		{
			name:   "json is compressed",
			accept: "gzip, deflate",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = utils.WriteJSON(w, payload, http.StatusOK)
			},
			wantEncoding: "gzip",
		},
		{
			name: "client without gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = utils.WriteJSON(w, payload, http.StatusOK)
			},
		},
		{
			name:   "plain text is not compressed",
			accept: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad request", http.StatusBadRequest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			rec := httptest.NewRecorder()
			withGZip(tt.handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantEncoding, rec.Header().Get("Content-Encoding"))
			if tt.wantEncoding != "gzip" {
				return
			}

			zr, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			var got map[string]string
			require.NoError(t, json.NewDecoder(zr).Decode(&got))
			assert.Equal(t, payload, got)
		})
	}
}

// ─────────────────────────────────────────────
// withLogging / responseWriter
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, body: "hello", wantLevel: "info"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "info"},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()
			(&Handler{logger: logger.Nop()}).withLogging(next).ServeHTTP(rec, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, float64(len(tt.body)), entry["size"])
			assert.Equal(t, "/api/version", entry["uri"])
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Same(t, rec, w.Unwrap())

	// the recorder cannot be hijacked
	_, _, err = w.Hijack()
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Post("/items", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) })
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/items", http.StatusOK},
		{http.MethodPost, "/items", http.StatusCreated},
		{http.MethodDelete, "/items", http.StatusNotFound},
		{http.MethodPut, "/items/1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

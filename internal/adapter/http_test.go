// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func testToken(t *testing.T, d time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("objsync", "acc-1", d, "sign-key")
	require.NoError(t, err)
	return token.String()
}

// newTestTransport creates an httpTransport pointed at the test server.
func newTestTransport(t *testing.T, serverURL string) *httpTransport {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey, Token: testToken(t, time.Hour)}

	tr, err := newHTTPTransport(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return tr
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── NewHTTPTransport ─────────────────────────────────────────────────────────

func TestNewHTTPTransport_InvalidAddress(t *testing.T) {
	_, err := NewHTTPTransport(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "trims slash", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "empty", in: "", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SaveAll ──────────────────────────────────────────────────────────────────

func TestSaveAll_Success(t *testing.T) {
	obj := models.SyncObject{ID: "a", Type: models.ObjectTypePassword, Data: []byte("x"), DataChecksum: "c1"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/objects/save", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.True(t, utils.NewHasher(testHashKey).Equal(body, r.Header.Get(hashHeader)))

		var req models.SaveRequest
		assert.NoError(t, json.Unmarshal(body, &req))

		saved := make([]models.SyncObject, 0, len(req.Objects))
		for _, o := range req.Objects {
			o.Data = nil
			saved = append(saved, o)
		}
		writeJSON(t, w, http.StatusOK, models.SaveResponse{Objects: saved})
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).SaveAll(context.Background(), []models.SyncObject{obj})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].DataChecksum)
}

func TestSaveAll_InvalidChecksum(t *testing.T) {
	remote := models.SyncObject{ID: "a", Type: models.ObjectTypePassword, DataChecksum: "c2"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.SaveResponse{
			Objects: []models.SyncObject{remote},
			Errors: []models.APIError{
				{ObjectID: "a", Message: "checksum mismatch", Code: models.APIErrorCodeInvalidChecksum},
				{ObjectID: "b", Message: "bad type", Code: models.APIErrorCodeInvalid},
			},
		})
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).SaveAll(context.Background(), []models.SyncObject{{ID: "a"}, {ID: "b"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var apiErrs *APIErrors
	require.ErrorAs(t, err, &apiErrs)
	assert.Equal(t, []string{"a"}, apiErrs.InvalidChecksumIDs())
	require.Len(t, apiErrs.Others(), 1)
	assert.Equal(t, "b", apiErrs.Others()[0].ObjectID)
	require.Len(t, apiErrs.Objects, 1)
	assert.Equal(t, "c2", apiErrs.Objects[0].DataChecksum)
}

func TestSaveAll_ConflictWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("conflict"))
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).SaveAll(context.Background(), []models.SyncObject{{ID: "a"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	var apiErrs *APIErrors
	assert.False(t, errors.As(err, &apiErrs))
}

func TestSaveAll_NotAuthenticated(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "expired token", token: testToken(t, time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTransport(t, srv.URL)
			tr.SetToken(tt.token)
			tr.now = func() time.Time { return time.Now().Add(time.Hour) }

			_, err := tr.SaveAll(context.Background(), []models.SyncObject{{ID: "a"}})
			assert.ErrorIs(t, err, ErrNotAuthenticated)
		})
	}

	assert.Zero(t, calls.Load())
}

func TestSaveAll_NetworkUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	tr := newTestTransport(t, srv.URL)
	srv.Close()

	_, err := tr.SaveAll(context.Background(), []models.SyncObject{{ID: "a"}})
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestSaveAll_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestTransport(t, srv.URL).SaveAll(ctx, []models.SyncObject{{ID: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetworkUnavailable)
}

// ── FetchChecksums / FetchAll ────────────────────────────────────────────────

func TestFetchChecksums_FollowsPages(t *testing.T) {
	pages := map[string]models.ChecksumsPage{
		"": {
			Checksums: []models.ObjectChecksum{{ID: "1"}},
			PageInfo:  models.PageInfo{HasNextPage: true, EndCursor: "p1"},
		},
		"p1": {
			Checksums: []models.ObjectChecksum{{ID: "2"}},
			PageInfo:  models.PageInfo{HasNextPage: true, EndCursor: "p2"},
		},
		"p2": {
			Checksums: []models.ObjectChecksum{{ID: "3", Deleted: true}},
			PageInfo:  models.PageInfo{HasNextPage: false, EndCursor: "p3"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/checksums", r.URL.Path)
		var req models.FetchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []models.ObjectType{models.ObjectTypeLink}, req.Types)
		writeJSON(t, w, http.StatusOK, pages[req.After])
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).FetchChecksums(context.Background(),
		models.FetchRequest{Types: []models.ObjectType{models.ObjectTypeLink}})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[2].ID)
	assert.True(t, got[2].Deleted)
}

func TestFetchChecksums_RepeatedCursorStops(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusOK, models.ChecksumsPage{
			Checksums: []models.ObjectChecksum{{ID: "1"}},
			PageInfo:  models.PageInfo{HasNextPage: true, EndCursor: "same"},
		})
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).FetchChecksums(context.Background(), models.FetchRequest{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.EqualValues(t, 2, calls.Load())
}

func TestFetchAll_ResolvesDataURLs(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/objects/fetch", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ObjectsPage{Objects: []models.SyncObject{
			{ID: "inline", Data: []byte("inline")},
			{ID: "remote", DataURL: srvURL + "/blobs/remote"},
		}})
	})
	mux.HandleFunc("/blobs/remote", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("remote-bytes"))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	srvURL = srv.URL

	got, err := newTestTransport(t, srv.URL).FetchAll(context.Background(), models.FetchRequest{WithDataURL: true})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("inline"), got[0].Data)
	assert.Equal(t, []byte("remote-bytes"), got[1].Data)
	assert.Empty(t, got[1].DataURL)
}

func TestFetchAll_DataURLFailure(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/objects/fetch", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ObjectsPage{Objects: []models.SyncObject{
			{ID: "remote", DataURL: srvURL + "/blobs/missing"},
		}})
	})
	mux.HandleFunc("/blobs/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	srvURL = srv.URL

	_, err := newTestTransport(t, srv.URL).FetchAll(context.Background(), models.FetchRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote")
}

func TestFetchAll_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestTransport(t, srv.URL).FetchAll(context.Background(), models.FetchRequest{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Delete / PrepareDirectUpload / Version ───────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/delete", r.URL.Path)
		var req models.DeleteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ObjectTypeFile, req.Type)
		writeJSON(t, w, http.StatusOK, models.DeleteResponse{Deleted: 7})
	}))
	defer srv.Close()

	n, err := newTestTransport(t, srv.URL).Delete(context.Background(), models.DeleteRequest{Type: models.ObjectTypeFile})

	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestPrepareDirectUpload(t *testing.T) {
	tests := []struct {
		name    string
		uploads []models.DirectUpload
		wantErr error
	}{
		{
			name:    "one target per intent",
			uploads: []models.DirectUpload{{ID: "a", URL: "http://blob/a", BlobSignedID: "s-a"}},
		},
		{
			name:    "count mismatch",
			uploads: nil,
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/objects/direct_upload", r.URL.Path)
				writeJSON(t, w, http.StatusOK, models.DirectUploadResponse{Uploads: tt.uploads})
			}))
			defer srv.Close()

			got, err := newTestTransport(t, srv.URL).PrepareDirectUpload(context.Background(),
				[]models.DirectUploadIntent{{ID: "a", Checksum: "c", ByteSize: 3}})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.uploads, got)
		})
	}
}

func TestVersion(t *testing.T) {
	want := models.BuildInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

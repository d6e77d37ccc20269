package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
)

// hashHeader carries the HMAC-SHA256 of the request body.
const hashHeader = "HashSHA256"

type httpTransport struct {
	client *utils.HTTPClient
	blobs  *utils.HTTPClient
	hasher *utils.Hasher

	limiter     *rate.Limiter
	concurrency int

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and keys the body signer with appCfg.HashKey.
//
// Blob transfers share one rate limiter when adapterCfg.TransferRateLimit is
// positive, and data-url downloads run adapterCfg.TransferConcurrency at a
// time.
func NewHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Transport, error) {
	return newHTTPTransport(adapterCfg, appCfg, logger)
}

func newHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (*httpTransport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	concurrency := adapterCfg.TransferConcurrency
	if concurrency <= 0 {
		concurrency = config.DefaultTransferConcurrency
	}

	t := &httpTransport{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		blobs:       utils.NewHTTPClient("", 0),
		hasher:      utils.NewHasher(appCfg.HashKey),
		limiter:     newTransferLimiter(adapterCfg.TransferRateLimit),
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
	}
	t.SetToken(appCfg.Token)

	return t, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores the bearer token attached to every API request.
func (h *httpTransport) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the transport.
func (h *httpTransport) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SaveAll implements [Transport]. POST /api/objects/save.
func (h *httpTransport) SaveAll(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
	var result models.SaveResponse
	resp, err := h.post(ctx, "/api/objects/save", models.SaveRequest{Objects: objects}, &result)
	if err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}
	if err = mapSaveError(resp); err != nil {
		return nil, err
	}

	return result.Objects, nil
}

// FetchChecksums implements [Transport]. POST /api/objects/checksums.
func (h *httpTransport) FetchChecksums(ctx context.Context, req models.FetchRequest) ([]models.ObjectChecksum, error) {
	var all []models.ObjectChecksum

	for {
		var page models.ChecksumsPage
		resp, err := h.post(ctx, "/api/objects/checksums", req, &page)
		if err != nil {
			return nil, fmt.Errorf("fetch checksums request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		all = append(all, page.Checksums...)
		next, ok := nextPage(req, page.PageInfo)
		if !ok {
			return all, nil
		}
		req = next
	}
}

// FetchAll implements [Transport]. POST /api/objects/fetch.
func (h *httpTransport) FetchAll(ctx context.Context, req models.FetchRequest) ([]models.SyncObject, error) {
	var all []models.SyncObject

	for {
		var page models.ObjectsPage
		resp, err := h.post(ctx, "/api/objects/fetch", req, &page)
		if err != nil {
			return nil, fmt.Errorf("fetch request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		all = append(all, page.Objects...)
		next, ok := nextPage(req, page.PageInfo)
		if !ok {
			break
		}
		req = next
	}

	if err := h.resolveDataURLs(ctx, all); err != nil {
		return nil, err
	}

	return all, nil
}

// nextPage returns the request of the following page, or false on the last one.
func nextPage(req models.FetchRequest, info models.PageInfo) (models.FetchRequest, bool) {
	if !info.HasNextPage || info.EndCursor == "" || info.EndCursor == req.After {
		return req, false
	}
	req.After = info.EndCursor
	return req, true
}

// resolveDataURLs downloads the payload of every object served by data url,
// h.concurrency downloads at a time.
func (h *httpTransport) resolveDataURLs(ctx context.Context, objects []models.SyncObject) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)

	for i := range objects {
		if objects[i].DataURL == "" || objects[i].Data != nil {
			continue
		}
		g.Go(func() error {
			data, err := h.DownloadBlob(gctx, objects[i].DataURL)
			if err != nil {
				return fmt.Errorf("download data of %s: %w", objects[i].ID, err)
			}
			objects[i].Data = data
			objects[i].DataURL = ""
			return nil
		})
	}

	return g.Wait()
}

// Delete implements [Transport]. POST /api/objects/delete.
func (h *httpTransport) Delete(ctx context.Context, req models.DeleteRequest) (int, error) {
	var result models.DeleteResponse
	resp, err := h.post(ctx, "/api/objects/delete", req, &result)
	if err != nil {
		return 0, fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.Deleted, nil
}

// PrepareDirectUpload implements [Transport]. POST /api/objects/direct_upload.
func (h *httpTransport) PrepareDirectUpload(ctx context.Context, intents []models.DirectUploadIntent) ([]models.DirectUpload, error) {
	var result models.DirectUploadResponse
	resp, err := h.post(ctx, "/api/objects/direct_upload", models.DirectUploadRequest{Objects: intents}, &result)
	if err != nil {
		return nil, fmt.Errorf("prepare direct upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if len(result.Uploads) != len(intents) {
		return nil, fmt.Errorf("%w: %d upload targets for %d intents", ErrParse, len(result.Uploads), len(intents))
	}

	return result.Uploads, nil
}

// Version implements [Transport]. GET /api/version.
func (h *httpTransport) Version(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo
	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("version request: %w", networkError(ctx, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}
	return info, nil
}

// post sends body as signed JSON to an authenticated endpoint and decodes a
// 2xx response into result.
func (h *httpTransport) post(ctx context.Context, path string, body, result any) (*resty.Response, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	if sum := h.hasher.SumHex(payload); sum != "" {
		req.SetHeader(hashHeader, sum)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(result).
		Post(path)
	if err != nil {
		return nil, networkError(ctx, err)
	}

	return resp, nil
}

// authedRequest fails fast with ErrNotAuthenticated when the token is
// missing or expired.
func (h *httpTransport) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	if exp, err := utils.TokenExpiry(token); err == nil && !exp.IsZero() && !exp.After(h.now()) {
		return nil, fmt.Errorf("%w: token expired at %s", ErrNotAuthenticated, exp.Format(time.RFC3339))
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// networkError keeps context errors as they are and marks everything else
// as a network failure.
func networkError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
}

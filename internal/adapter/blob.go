package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/models"
)

// limiterChunk is the largest read charged against the limiter at once.
const limiterChunk = 32 << 10

// newTransferLimiter returns a byte rate limiter shared by every transfer of
// the transport, or nil when bytesPerSecond is not positive.
func newTransferLimiter(bytesPerSecond int) *rate.Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSecond), max(bytesPerSecond, limiterChunk))
}

// limitedReader throttles reads of r through limiter.
type limitedReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func throttle(ctx context.Context, r io.Reader, limiter *rate.Limiter) io.Reader {
	if limiter == nil {
		return r
	}
	return &limitedReader{ctx: ctx, r: r, limiter: limiter}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if len(p) > limiterChunk {
		p = p[:limiterChunk]
	}

	n, err := l.r.Read(p)
	if n > 0 {
		if waitErr := l.limiter.WaitN(l.ctx, n); waitErr != nil {
			return n, waitErr
		}
	}
	return n, err
}

// UploadBlob implements [Transport]. It PUTs data to the signed upload URL
// with the headers returned by PrepareDirectUpload. No bearer token is sent;
// the signed id authorizes the upload.
func (h *httpTransport) UploadBlob(ctx context.Context, upload models.DirectUpload, data []byte) error {
	log := logger.FromContext(ctx)

	resp, err := h.blobs.R().
		SetContext(ctx).
		SetHeaders(upload.Headers).
		SetBody(throttle(ctx, bytes.NewReader(data), h.limiter)).
		Put(upload.URL)
	if err != nil {
		log.Err(err).
			Str("func", "httpTransport.UploadBlob").
			Str("object_id", upload.ID).
			Msg("blob upload failed")
		return fmt.Errorf("upload blob request: %w", networkError(ctx, err))
	}

	return mapHTTPError(resp)
}

// DownloadBlob implements [Transport].
func (h *httpTransport) DownloadBlob(ctx context.Context, url string) ([]byte, error) {
	resp, err := h.blobs.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("download blob request: %w", networkError(ctx, err))
	}

	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		msg, _ := io.ReadAll(io.LimitReader(body, 4<<10))
		return nil, fmt.Errorf("download blob: http %d: %s", resp.StatusCode(), bytes.TrimSpace(msg))
	}

	data, err := io.ReadAll(throttle(ctx, body, h.limiter))
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", networkError(ctx, err))
	}

	return data, nil
}

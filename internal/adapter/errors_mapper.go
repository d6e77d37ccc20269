package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-object-sync/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapSaveError turns 409 and 422 save responses carrying per-object errors
// into [*APIErrors]. Other statuses fall back to mapHTTPError.
func mapSaveError(resp *resty.Response) error {
	var status error
	switch resp.StatusCode() {
	case http.StatusConflict:
		status = ErrConflict
	case http.StatusUnprocessableEntity:
		status = ErrUnprocessable
	default:
		return mapHTTPError(resp)
	}

	var body models.SaveResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || len(body.Errors) == 0 {
		return mapHTTPError(resp)
	}

	return &APIErrors{
		Errors:  body.Errors,
		Objects: body.Objects,
		status:  status,
	}
}

// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into a sentinel-wrapped error.
// The Coros service answers most application failures with HTTP 200 and
// an envelope result code; this only covers transport-level failures.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := statusSentinels[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}

// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

// tokenHeader is the header the Coros API reads the session token from.
// The value is the same opaque string the web UI keeps in its
// CPL-coros-token cookie.
const tokenHeader = "accessToken"

type httpCorosAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPCorosAdapter constructs the HTTP/REST implementation of
// [CorosAdapter]. It normalises and validates the base URL from
// apiCfg.BaseURL and configures the underlying resty client with the
// resolved base URL, request timeout and a retry policy for transient
// failures (network errors and 5xx responses).
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPCorosAdapter(apiCfg config.API, logger *logger.Logger) (CorosAdapter, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid coros api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetRetryCount(apiCfg.RetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &httpCorosAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [CorosAdapter]. It stores token (whitespace-trimmed)
// for use in the accessToken header of all subsequent requests.
func (h *httpCorosAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [CorosAdapter].
func (h *httpCorosAdapter) Token() string {
	return h.token
}

// Login implements [CorosAdapter]. It POSTs the account name and password
// digest to POST /account/login and stores the returned access token via
// SetToken.
func (h *httpCorosAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/account/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	var data models.LoginData
	if err = decodeEnvelope(resp, &data); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if data.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token in response")
	}

	h.SetToken(data.AccessToken)
	h.logger.Debug().Str("account", req.Account).Msg("logged in to coros training center")

	return data.AccessToken, nil
}

// QueryActivities implements [CorosAdapter]. It GETs one page of
// GET /activity/query and decodes the page payload.
func (h *httpCorosAdapter) QueryActivities(ctx context.Context, page, size int) (models.ActivityPage, error) {
	resp, err := h.request(ctx).
		SetQueryParam("size", strconv.Itoa(size)).
		SetQueryParam("pageNumber", strconv.Itoa(page)).
		Get("/activity/query")
	if err != nil {
		return models.ActivityPage{}, fmt.Errorf("query activities request: %w", err)
	}

	var data models.ActivityPage
	if err = decodeEnvelope(resp, &data); err != nil {
		return models.ActivityPage{}, fmt.Errorf("query activities: %w", err)
	}

	return data, nil
}

// ActivityDetail implements [CorosAdapter]. It POSTs the form-encoded
// detail query the web UI uses and decodes the summary block.
func (h *httpCorosAdapter) ActivityDetail(ctx context.Context, labelID string, sport models.SportType) (models.ActivityDetail, error) {
	resp, err := h.request(ctx).
		SetFormData(map[string]string{
			"labelId":   labelID,
			"sportType": strconv.Itoa(int(sport)),
		}).
		Post("/activity/detail/query")
	if err != nil {
		return models.ActivityDetail{}, fmt.Errorf("activity detail request: %w", err)
	}

	var data models.ActivityDetail
	if err = decodeEnvelope(resp, &data); err != nil {
		return models.ActivityDetail{}, fmt.Errorf("activity detail: %w", err)
	}

	return data, nil
}

// DownloadURL implements [CorosAdapter]. It asks the service to export
// the activity and returns the produced file's URL.
func (h *httpCorosAdapter) DownloadURL(ctx context.Context, labelID string, sport models.SportType, fileType models.FileType) (string, error) {
	resp, err := h.request(ctx).
		SetQueryParam("labelId", labelID).
		SetQueryParam("sportType", strconv.Itoa(int(sport))).
		SetQueryParam("fileType", strconv.Itoa(int(fileType))).
		Get("/activity/detail/download")
	if err != nil {
		return "", fmt.Errorf("download url request: %w", err)
	}

	var data models.DownloadData
	if err = decodeEnvelope(resp, &data); err != nil {
		return "", fmt.Errorf("download url: %w", err)
	}
	if data.FileURL == "" {
		return "", fmt.Errorf("download url: %w: no file url in response", ErrNotFound)
	}

	return data.FileURL, nil
}

// FetchFile implements [CorosAdapter]. The export URL is absolute, so it
// bypasses the configured base URL.
func (h *httpCorosAdapter) FetchFile(ctx context.Context, fileURL string) ([]byte, error) {
	resp, err := h.request(ctx).Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("fetch file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}

	return resp.Body(), nil
}

// UploadFIT implements [CorosAdapter]. It POSTs the multipart import
// request the web UI sends: a jsonParameter part (an empty JSON object)
// and the sportData file part.
func (h *httpCorosAdapter) UploadFIT(ctx context.Context, filename string, payload []byte) error {
	resp, err := h.request(ctx).
		SetMultipartField("jsonParameter", "", "application/json", strings.NewReader("{}")).
		SetMultipartField("sportData", filename, "application/octet-stream", bytes.NewReader(payload)).
		Post("/activity/fit/import")
	if err != nil {
		return fmt.Errorf("upload fit request: %w", err)
	}

	if err = decodeEnvelope(resp, nil); err != nil {
		return fmt.Errorf("upload fit: %w", err)
	}

	return nil
}

// DeleteActivity implements [CorosAdapter].
func (h *httpCorosAdapter) DeleteActivity(ctx context.Context, labelID string) error {
	resp, err := h.request(ctx).
		SetQueryParam("labelId", labelID).
		Get("/activity/delete")
	if err != nil {
		return fmt.Errorf("delete activity request: %w", err)
	}

	if err = decodeEnvelope(resp, nil); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	return nil
}

// UpdateActivity implements [CorosAdapter].
func (h *httpCorosAdapter) UpdateActivity(ctx context.Context, upd models.ActivityUpdate) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(upd).
		Post("/activity/update")
	if err != nil {
		return fmt.Errorf("update activity request: %w", err)
	}

	if err = decodeEnvelope(resp, nil); err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	return nil
}

// request builds an outbound request with the session token (when held)
// and a fresh trace ID for log correlation.
func (h *httpCorosAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Trace-Id", uuid.NewString())
	if h.token != "" {
		req.SetHeader(tokenHeader, h.token)
	}
	return req
}

// decodeEnvelope maps HTTP-level failures, unwraps the Coros response
// envelope and, when out is non-nil, decodes the data payload into it.
// A result code other than "0000" is returned as *APIError.
func decodeEnvelope(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	if env.Result != models.ResultOK {
		return &APIError{Code: env.Result, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}

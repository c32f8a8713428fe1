// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) (CorosAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	coros, err := NewHTTPCorosAdapter(config.API{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return coros, srv
}

func writeEnvelope(w http.ResponseWriter, result, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	payload := map[string]any{"result": result, "message": message}
	if data != nil {
		payload["data"] = data
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://teamapi.coros.com", want: "https://teamapi.coros.com"},
		{in: "teamapi.coros.com", want: "https://teamapi.coros.com"},
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: "  https://teamapi.coros.com  ", want: "https://teamapi.coros.com"},
		{in: "", wantErr: true},
		{in: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPCorosAdapter_Login(t *testing.T) {
	var received models.LoginRequest
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/account/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Trace-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeEnvelope(w, "0000", "OK", map[string]string{"accessToken": "issued-token"})
	}))

	token, err := coros.Login(context.Background(), models.LoginRequest{
		Account:        "user@example.com",
		PasswordDigest: "5f4dcc3b5aa765d61d8327deb882cf99",
		AccountType:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, "issued-token", coros.Token(), "login must store the issued token")
	assert.Equal(t, 2, received.AccountType)
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", received.PasswordDigest)
}

func TestHTTPCorosAdapter_Login_BadCredentials(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, "1001", "account or password error", nil)
	}))

	_, err := coros.Login(context.Background(), models.LoginRequest{Account: "x", PasswordDigest: "y"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "1001", apiErr.Code)
	assert.Equal(t, "account or password error", apiErr.Message)
}

func TestHTTPCorosAdapter_QueryActivities(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/query", r.URL.Path)
		require.Equal(t, "20", r.URL.Query().Get("size"))
		require.Equal(t, "3", r.URL.Query().Get("pageNumber"))
		require.Equal(t, "session-token", r.Header.Get("accessToken"))
		writeEnvelope(w, "0000", "OK", map[string]any{
			"count": 57,
			"dataList": []map[string]any{
				{"labelId": "4500000000000001", "name": "Morning Run", "sportType": 100},
			},
		})
	}))

	coros.SetToken("session-token")
	page, err := coros.QueryActivities(context.Background(), 3, 20)
	require.NoError(t, err)
	assert.Equal(t, 57, page.Count)
	require.Len(t, page.Activities, 1)
	assert.Equal(t, "4500000000000001", page.Activities[0].LabelID)
	assert.Equal(t, models.Run, page.Activities[0].SportType)
}

func TestHTTPCorosAdapter_QueryActivities_Unauthorized(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := coros.QueryActivities(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPCorosAdapter_ActivityDetail_SendsForm(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/detail/query", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "4500000000000001", r.PostFormValue("labelId"))
		require.Equal(t, "200", r.PostFormValue("sportType"))
		writeEnvelope(w, "0000", "OK", map[string]any{
			"summary": map[string]string{"name": "Evening Ride"},
		})
	}))

	detail, err := coros.ActivityDetail(context.Background(), "4500000000000001", models.Bike)
	require.NoError(t, err)
	assert.Equal(t, "Evening Ride", detail.Summary.Name)
}

func TestHTTPCorosAdapter_DownloadURL(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/detail/download", r.URL.Path)
		require.Equal(t, "4500000000000001", r.URL.Query().Get("labelId"))
		require.Equal(t, "100", r.URL.Query().Get("sportType"))
		require.Equal(t, "4", r.URL.Query().Get("fileType"))
		writeEnvelope(w, "0000", "OK", map[string]string{"fileUrl": "https://files.example.com/a.fit"})
	}))

	fileURL, err := coros.DownloadURL(context.Background(), "4500000000000001", models.Run, models.FIT)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/a.fit", fileURL)
}

func TestHTTPCorosAdapter_DownloadURL_Missing(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, "0000", "OK", map[string]string{})
	}))

	_, err := coros.DownloadURL(context.Background(), "4500000000000001", models.Run, models.FIT)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPCorosAdapter_FetchFile(t *testing.T) {
	fileSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("fit-bytes"))
	}))
	t.Cleanup(fileSrv.Close)

	coros, _ := newTestAdapter(t, http.NotFoundHandler())

	payload, err := coros.FetchFile(context.Background(), fileSrv.URL+"/export/a.fit")
	require.NoError(t, err)
	assert.Equal(t, []byte("fit-bytes"), payload)
}

func TestHTTPCorosAdapter_UploadFIT_MultipartShape(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/fit/import", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "{}", r.MultipartForm.Value["jsonParameter"][0])

		file, header, err := r.FormFile("sportData")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "workout.fit.gz", header.Filename)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x1f, 0x8b, 0x08}, body)

		writeEnvelope(w, "0000", "OK", nil)
	}))

	err := coros.UploadFIT(context.Background(), "workout.fit.gz", []byte{0x1f, 0x8b, 0x08})
	require.NoError(t, err)
}

func TestHTTPCorosAdapter_DeleteActivity(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/delete", r.URL.Path)
		require.Equal(t, "4500000000000001", r.URL.Query().Get("labelId"))
		writeEnvelope(w, "0000", "OK", nil)
	}))

	require.NoError(t, coros.DeleteActivity(context.Background(), "4500000000000001"))
}

func TestHTTPCorosAdapter_UpdateActivity(t *testing.T) {
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activity/update", r.URL.Path)
		var upd models.ActivityUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		assert.Equal(t, "4500000000000001", upd.LabelID)
		assert.Equal(t, "Renamed", upd.Name)
		writeEnvelope(w, "0000", "OK", nil)
	}))

	require.NoError(t, coros.UpdateActivity(context.Background(), models.ActivityUpdate{
		LabelID: "4500000000000001",
		Name:    "Renamed",
	}))
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			err := coros.DeleteActivity(context.Background(), "x")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPCorosAdapter_Retries5xx(t *testing.T) {
	attempts := 0
	coros, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeEnvelope(w, "0000", "OK", map[string]any{"count": 0, "dataList": []any{}})
	}))
	// Default config in newTestAdapter has no retries; build one with.
	srvAdapter := coros.(*httpCorosAdapter)
	srvAdapter.client.SetRetryCount(1)

	_, err := coros.QueryActivities(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

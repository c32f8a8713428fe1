// SPDX-License-Identifier: Apache-2.0

package fakecoros

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlenski/corostc/internal/adapter"
	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

// md5("demo")
const demoDigest = "fe01ce2a7fbac8fafaed7c982a04e229"

func newTestServer(t *testing.T) (*Server, adapter.CorosAdapter) {
	t.Helper()

	srv := New(logger.Nop())
	srv.AddAccount("demo", demoDigest)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	srv.SetBaseURL(ts.URL)

	coros, err := adapter.NewHTTPCorosAdapter(config.API{
		BaseURL:        ts.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return srv, coros
}

func seedActivity(srv *Server, labelID, name string, sport models.SportType, start time.Time) {
	srv.AddActivity(models.Activity{
		LabelID:   labelID,
		Name:      name,
		SportType: sport,
		Date:      start.Year()*10000 + int(start.Month())*100 + start.Day(),
		StartTime: start.Unix(),
		EndTime:   start.Add(45 * time.Minute).Unix(),
		TotalTime: 45 * 60,
	})
}

func TestServer_LoginAndList(t *testing.T) {
	srv, coros := newTestServer(t)
	ctx := context.Background()

	seedActivity(srv, "4500000000000001", "Morning Run", models.Run, time.Now().Add(-2*time.Hour))

	token, err := coros.Login(ctx, models.LoginRequest{
		Account:        "demo",
		PasswordDigest: demoDigest,
		AccountType:    2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	page, err := coros.QueryActivities(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Activities, 1)
	assert.Equal(t, "Morning Run", page.Activities[0].Name)
}

func TestServer_Login_WrongPassword(t *testing.T) {
	_, coros := newTestServer(t)

	_, err := coros.Login(context.Background(), models.LoginRequest{
		Account:        "demo",
		PasswordDigest: "0000deadbeef0000",
	})
	require.Error(t, err)

	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "1001", apiErr.Code)
}

func TestServer_RequiresSession(t *testing.T) {
	_, coros := newTestServer(t)

	_, err := coros.QueryActivities(context.Background(), 1, 20)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestServer_SingleSession_NewLoginDisplacesOld(t *testing.T) {
	srv, coros := newTestServer(t)
	ctx := context.Background()

	first, err := coros.Login(ctx, models.LoginRequest{Account: "demo", PasswordDigest: demoDigest})
	require.NoError(t, err)

	// A second login (a "browser" logging in elsewhere) invalidates the
	// first token, matching the real service's one-session-per-account
	// behavior.
	second := srv.TokenFor("demo")
	require.NotEqual(t, first, second)

	coros.SetToken(first)
	_, err = coros.QueryActivities(ctx, 1, 20)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	coros.SetToken(second)
	_, err = coros.QueryActivities(ctx, 1, 20)
	assert.NoError(t, err)
}

func TestServer_DownloadFlow(t *testing.T) {
	srv, coros := newTestServer(t)
	ctx := context.Background()

	seedActivity(srv, "4500000000000001", "Morning Run", models.Run, time.Now().Add(-2*time.Hour))
	srv.SetExport("4500000000000001", models.TCX, []byte("<TrainingCenterDatabase/>"))
	coros.SetToken(srv.TokenFor("demo"))

	fileURL, err := coros.DownloadURL(ctx, "4500000000000001", models.Run, models.TCX)
	require.NoError(t, err)

	payload, err := coros.FetchFile(ctx, fileURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("<TrainingCenterDatabase/>"), payload)
}

func TestServer_DownloadURL_UnknownActivity(t *testing.T) {
	srv, coros := newTestServer(t)
	coros.SetToken(srv.TokenFor("demo"))

	_, err := coros.DownloadURL(context.Background(), "4599999999999999", models.Run, models.FIT)
	require.Error(t, err)

	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "1003", apiErr.Code)
}

func TestServer_DeleteAndUpdate(t *testing.T) {
	srv, coros := newTestServer(t)
	ctx := context.Background()

	seedActivity(srv, "4500000000000001", "Morning Run", models.Run, time.Now().Add(-26*time.Hour))
	seedActivity(srv, "4500000000000002", "Evening Ride", models.Bike, time.Now().Add(-2*time.Hour))
	coros.SetToken(srv.TokenFor("demo"))

	require.NoError(t, coros.UpdateActivity(ctx, models.ActivityUpdate{
		LabelID: "4500000000000002",
		Name:    "Commute",
	}))

	require.NoError(t, coros.DeleteActivity(ctx, "4500000000000001"))

	page, err := coros.QueryActivities(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Activities, 1)
	assert.Equal(t, "Commute", page.Activities[0].Name)
}

func TestServer_ActivityDetail(t *testing.T) {
	srv, coros := newTestServer(t)

	seedActivity(srv, "4500000000000001", "Hill Repeats", models.Run, time.Now().Add(-2*time.Hour))
	coros.SetToken(srv.TokenFor("demo"))

	detail, err := coros.ActivityDetail(context.Background(), "4500000000000001", models.Run)
	require.NoError(t, err)
	assert.Equal(t, "Hill Repeats", detail.Summary.Name)
}

func TestServer_ImportFIT_RejectsGarbage(t *testing.T) {
	srv, coros := newTestServer(t)
	coros.SetToken(srv.TokenFor("demo"))

	err := coros.UploadFIT(context.Background(), "junk.fit", []byte("definitely not fit data"))
	require.Error(t, err)

	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "1002", apiErr.Code)
}

func TestServer_Pagination(t *testing.T) {
	srv, coros := newTestServer(t)
	ctx := context.Background()

	base := time.Now().Add(-100 * time.Hour)
	for i := 0; i < 5; i++ {
		seedActivity(srv, string(rune('a'+i))+"500000000000001", "Run", models.Run, base.Add(time.Duration(i)*time.Hour))
	}
	coros.SetToken(srv.TokenFor("demo"))

	page1, err := coros.QueryActivities(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page1.Count)
	assert.Len(t, page1.Activities, 2)

	page3, err := coros.QueryActivities(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3.Activities, 1)

	page4, err := coros.QueryActivities(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page4.Activities)
}

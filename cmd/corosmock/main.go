// SPDX-License-Identifier: Apache-2.0

// corosmock serves a local stand-in for the Coros Training Center API,
// for development and manual testing of the other commands without
// touching (or invalidating) a real account's session.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dlenski/corostc/internal/fakecoros"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/service"
	"github.com/dlenski/corostc/models"
)

func main() {
	var (
		addr     string
		account  string
		password string
		baseURL  string
	)
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&account, "account", "demo", "seeded account name")
	flag.StringVar(&password, "password", "demo", "seeded account password")
	flag.StringVar(&baseURL, "base-url", "", "externally visible origin (default derived from -addr)")
	flag.Parse()

	if baseURL == "" {
		host := addr
		if strings.HasPrefix(host, ":") {
			host = "localhost" + host
		}
		baseURL = "http://" + host
	}

	log := logger.NewLogger("corosmock")

	srv := fakecoros.New(log)
	srv.SetBaseURL(baseURL)
	srv.AddAccount(account, service.DigestPassword(password))
	seedActivities(srv)

	fmt.Fprintf(os.Stderr, "corosmock listening on %s (account %s)\n", addr, account)
	log.Info().Str("addr", addr).Str("base_url", baseURL).Msg("starting fake Coros API")

	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}

// seedActivities populates a couple of listing entries so corosdown and
// the browser have something to show right after login.
func seedActivities(srv *fakecoros.Server) {
	now := time.Now().Add(-24 * time.Hour).Truncate(time.Hour)

	for i, seed := range []struct {
		name  string
		sport models.SportType
		km    float64
		mins  int64
	}{
		{"Morning Run", models.Run, 8.2, 44},
		{"Evening Ride", models.Bike, 31.5, 75},
		{"Lunch Walk", models.Walk, 2.4, 28},
	} {
		start := now.Add(-time.Duration(i*26) * time.Hour)
		srv.AddActivity(models.Activity{
			LabelID:   fmt.Sprintf("45000000000000%02d", i+1),
			Name:      seed.name,
			SportType: seed.sport,
			Date:      start.Year()*10000 + int(start.Month())*100 + start.Day(),
			StartTime: start.Unix(),
			EndTime:   start.Unix() + seed.mins*60,
			Distance:  seed.km * 1000,
			TotalTime: seed.mins * 60,
		})
	}
}

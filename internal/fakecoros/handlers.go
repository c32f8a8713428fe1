// SPDX-License-Identifier: Apache-2.0

package fakecoros

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tormoder/fit"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

// Result codes mimicking the real service's envelope. Only "0000" has a
// documented meaning; the failure codes are arbitrary non-zero strings.
const (
	resultUnauthorized = "1001"
	resultBadRequest   = "1002"
	resultNotFound     = "1003"
)

type envelope struct {
	Result  string `json:"result"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope{Result: models.ResultOK, Message: "OK", Data: data})
}

func writeResult(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(envelope{Result: code, Message: message})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, resultBadRequest, "malformed login request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	digest, ok := s.accounts[req.Account]
	if !ok || digest != req.PasswordDigest {
		logger.FromRequest(r).Info().Str("account", req.Account).Msg("login rejected")
		writeResult(w, resultUnauthorized, "account or password incorrect")
		return
	}

	token := s.issueTokenLocked(req.Account)
	logger.FromRequest(r).Info().Str("account", req.Account).Msg("login ok, previous session displaced")
	writeOK(w, models.LoginData{AccessToken: token})
}

func (s *Server) queryActivities(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	page, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	if size < 1 {
		size = 20
	}
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := (page - 1) * size
	end := start + size
	if start > len(s.activities) {
		start = len(s.activities)
	}
	if end > len(s.activities) {
		end = len(s.activities)
	}

	writeOK(w, models.ActivityPage{
		Count:      len(s.activities),
		Activities: s.activities[start:end],
	})
}

func (s *Server) activityDetail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeResult(w, resultBadRequest, "malformed detail request")
		return
	}
	labelID := r.PostFormValue("labelId")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.activities {
		if a.LabelID == labelID {
			writeOK(w, models.ActivityDetail{Summary: models.ActivitySummary{Name: a.Name}})
			return
		}
	}
	writeResult(w, resultNotFound, "activity not found")
}

func (s *Server) downloadURL(w http.ResponseWriter, r *http.Request) {
	labelID := r.URL.Query().Get("labelId")
	ftCode, _ := strconv.Atoi(r.URL.Query().Get("fileType"))
	ft := models.FileType(ftCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	key := labelID + ft.Ext()
	if _, ok := s.exports[key]; !ok {
		writeResult(w, resultNotFound, "no export available")
		return
	}

	writeOK(w, models.DownloadData{
		FileURL: fmt.Sprintf("%s/export/%s", s.baseURL, key),
	})
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	s.mu.Lock()
	payload, ok := s.exports[file]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(payload)
}

func (s *Server) importFIT(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeResult(w, resultBadRequest, "malformed import request")
		return
	}

	file, header, err := r.FormFile("sportData")
	if err != nil {
		writeResult(w, resultBadRequest, "missing sportData part")
		return
	}
	defer file.Close()

	var body io.Reader = file
	if strings.HasSuffix(header.Filename, ".gz") {
		zr, zerr := gzip.NewReader(file)
		if zerr != nil {
			writeResult(w, resultBadRequest, "corrupt gzip payload")
			return
		}
		defer zr.Close()
		body = zr
	}

	decoded, err := fit.Decode(body)
	if err != nil {
		writeResult(w, resultBadRequest, "unparseable fit file")
		return
	}

	act := models.Activity{
		LabelID:   fmt.Sprintf("%d", time.Now().UnixNano()),
		Name:      strings.TrimSuffix(strings.TrimSuffix(header.Filename, ".gz"), ".fit"),
		SportType: models.Run,
	}
	if af, aerr := decoded.Activity(); aerr == nil && len(af.Sessions) > 0 {
		start := af.Sessions[0].StartTime.UTC()
		act.StartTime = start.Unix()
		act.EndTime = start.Unix()
		act.Date = start.Year()*10000 + int(start.Month())*100 + start.Day()
	}

	s.mu.Lock()
	s.activities = append([]models.Activity{act}, s.activities...)
	for _, ft := range []models.FileType{models.CSV, models.GPX, models.KML, models.TCX, models.FIT} {
		s.exports[act.LabelID+ft.Ext()] = []byte("fake " + ft.String() + " export of " + act.LabelID)
	}
	s.mu.Unlock()

	logger.FromRequest(r).Info().Str("labelId", act.LabelID).Msg("fit import accepted")
	writeOK(w, nil)
}

func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request) {
	labelID := r.URL.Query().Get("labelId")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.activities {
		if a.LabelID == labelID {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			writeOK(w, nil)
			return
		}
	}
	writeResult(w, resultNotFound, "activity not found")
}

func (s *Server) updateActivity(w http.ResponseWriter, r *http.Request) {
	var upd models.ActivityUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeResult(w, resultBadRequest, "malformed update request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.activities {
		if a.LabelID == upd.LabelID {
			if upd.Name != "" {
				s.activities[i].Name = upd.Name
			}
			writeOK(w, nil)
			return
		}
	}
	writeResult(w, resultNotFound, "activity not found")
}

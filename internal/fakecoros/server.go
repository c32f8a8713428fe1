// SPDX-License-Identifier: Apache-2.0

// Package fakecoros is an in-process stand-in for the Coros Training
// Center web API. The real service enforces a single active session per
// account, which makes developing against it destructive: every CLI
// login kicks the developer's browser session. The fake implements the
// same endpoints and the same single-session rule, so integration tests
// can assert that the token-reuse workaround actually works.
package fakecoros

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

// Server holds the fake service's state. All state is in memory and
// guarded by mu; a Server is safe for concurrent use.
type Server struct {
	logger *logger.Logger
	jwtKey []byte

	mu sync.Mutex
	// accounts maps account name to the expected MD5 password digest.
	accounts map[string]string
	// sessions maps account name to its one currently valid token.
	// Issuing a new token replaces the old one: the single-session rule.
	sessions map[string]string
	// activities is the service-side listing, newest first.
	activities []models.Activity
	// exports maps labelID+ext to synthesized export file bytes.
	exports map[string][]byte
	// baseURL is the externally visible origin, used to build fileUrl
	// values. Set via SetBaseURL once the listener address is known.
	baseURL string
}

// New creates an empty fake service. Seed accounts and activities with
// AddAccount and AddActivity.
func New(log *logger.Logger) *Server {
	return &Server{
		logger:   log,
		jwtKey:   []byte(uuid.NewString()),
		accounts: make(map[string]string),
		sessions: make(map[string]string),
		exports:  make(map[string][]byte),
	}
}

// SetBaseURL records the origin the server is reachable at, so download
// responses can carry absolute file URLs like the real service.
func (s *Server) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = baseURL
}

// AddAccount registers an account. passwordDigest is the MD5 hex digest
// the login endpoint expects.
func (s *Server) AddAccount(account, passwordDigest string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account] = passwordDigest
}

// AddActivity prepends an activity to the listing (the service lists
// newest first) and synthesizes export payloads for every file type.
func (s *Server) AddActivity(act models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]models.Activity{act}, s.activities...)
	for _, ft := range []models.FileType{models.CSV, models.GPX, models.KML, models.TCX, models.FIT} {
		s.exports[act.LabelID+ft.Ext()] = []byte("fake " + ft.String() + " export of " + act.LabelID)
	}
}

// SetExport overrides the synthesized export bytes for one activity and
// format.
func (s *Server) SetExport(labelID string, ft models.FileType, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[labelID+ft.Ext()] = payload
}

// TokenFor mints a valid session token for account outside the login
// endpoint, the way a browser login would. The previous token (if any)
// is invalidated, exactly like the real service.
func (s *Server) TokenFor(account string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueTokenLocked(account)
}

func (s *Server) issueTokenLocked(account string) string {
	claims := jwt.RegisteredClaims{
		Subject:   account,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		ID:        uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		// Signing an HS256 token with a valid key cannot fail at runtime.
		panic(err)
	}

	s.sessions[account] = token
	return token
}

// Router assembles the chi router covering the API surface the corostc
// client uses.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/account/login", s.login)
		r.Get("/export/{file}", s.export)
	})

	// routes behind the accessToken header
	router.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Get("/activity/query", s.queryActivities)
		r.Post("/activity/detail/query", s.activityDetail)
		r.Get("/activity/detail/download", s.downloadURL)
		r.Post("/activity/fit/import", s.importFIT)
		r.Get("/activity/delete", s.deleteActivity)
		r.Post("/activity/update", s.updateActivity)
	})

	return router
}

// withLogging times each request and attaches a request-scoped logger to
// the context so handlers can pick it up via logger.FromRequest.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLogger := s.logger.With().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Logger()
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
		reqLogger.Debug().
			Dur("duration", time.Since(start)).
			Send()
	})
}

// withSession enforces the single-session rule: the presented token must
// be a validly signed JWT and must be the account's current token.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("accessToken")
		if raw == "" {
			writeResult(w, resultUnauthorized, "access token required")
			return
		}

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			return s.jwtKey, nil
		})
		if err != nil || !token.Valid {
			writeResult(w, resultUnauthorized, "invalid access token")
			return
		}

		account, _ := token.Claims.GetSubject()

		s.mu.Lock()
		current := s.sessions[account]
		s.mu.Unlock()

		if current != raw {
			// A newer login displaced this session.
			writeResult(w, resultUnauthorized, "session has been invalidated by a new login")
			return
		}

		next.ServeHTTP(w, r)
	})
}

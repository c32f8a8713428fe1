// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dlenski/corostc/internal/adapter"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/models"
)

type authService struct {
	storages *store.Storages
	coros    adapter.CorosAdapter
	logger   *logger.Logger
}

// NewAuthService constructs the [AuthService].
func NewAuthService(storages *store.Storages, coros adapter.CorosAdapter, logger *logger.Logger) AuthService {
	return &authService{storages: storages, coros: coros, logger: logger}
}

// Connect implements [AuthService].
func (a *authService) Connect(ctx context.Context, creds Credentials) (models.Session, error) {
	// An explicitly supplied token wins: it is how a browser session is
	// shared with the CLI without triggering a login.
	if creds.AccessToken != "" {
		session := models.Session{
			Account:     creds.Username,
			AccessToken: creds.AccessToken,
			ObtainedAt:  time.Now(),
		}
		if err := a.adopt(ctx, session); err != nil {
			return models.Session{}, err
		}
		return session, nil
	}

	// Next preference: the session persisted by a previous run.
	persisted, err := a.storages.Sessions.Get(ctx)
	if err == nil {
		a.coros.SetToken(persisted.AccessToken)
		if probeErr := a.probe(ctx); probeErr == nil {
			a.logger.Debug().Str("account", persisted.Account).Msg("reusing persisted session")
			return persisted, nil
		}

		// Stale token; discard it before falling back to a fresh login.
		a.logger.Debug().Str("account", persisted.Account).Msg("persisted session rejected, discarding")
		if delErr := a.storages.Sessions.Delete(ctx); delErr != nil {
			return models.Session{}, fmt.Errorf("discard stale session: %w", delErr)
		}
	} else if !errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, fmt.Errorf("read persisted session: %w", err)
	}

	// Last resort: log in. This invalidates any other session the
	// account holds, including a browser's.
	if creds.Username == "" || creds.Password == "" {
		return models.Session{}, ErrCredentialsRequired
	}

	token, err := a.coros.Login(ctx, models.LoginRequest{
		Account:        creds.Username,
		PasswordDigest: DigestPassword(creds.Password),
		AccountType:    2,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	session := models.Session{
		Account:     creds.Username,
		AccessToken: token,
		ObtainedAt:  time.Now(),
	}
	if err := a.storages.Sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	a.coros.SetToken("")
	if err := a.storages.Sessions.Delete(ctx); err != nil {
		return fmt.Errorf("delete persisted session: %w", err)
	}
	return nil
}

// adopt installs an externally supplied token: it must survive a probe
// before it is persisted for later runs.
func (a *authService) adopt(ctx context.Context, session models.Session) error {
	a.coros.SetToken(session.AccessToken)

	if err := a.probe(ctx); err != nil {
		a.coros.SetToken("")
		return fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}

	if err := a.storages.Sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// probe performs the cheapest authenticated call the API offers (a
// one-row listing) to check that the current token works.
func (a *authService) probe(ctx context.Context) error {
	_, err := a.coros.QueryActivities(ctx, 1, 1)
	return err
}

// DigestPassword computes the lower-case hex MD5 digest the login
// endpoint expects instead of the plaintext password.
func DigestPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

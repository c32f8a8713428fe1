// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Session is the locally persisted Coros login session. The service
// enforces a single active session per account: any fresh login
// invalidates tokens held by other clients (including a browser tab).
// Persisting the token lets repeated CLI invocations reuse one session
// instead of stealing it each time.
type Session struct {
	// Account is the login the session belongs to. Empty when the token
	// was supplied externally (for example copied from the browser's
	// CPL-coros-token cookie) and the account name is unknown.
	Account string `json:"account"`

	// AccessToken is the opaque credential sent in the accessToken
	// request header. Interchangeable with the browser cookie value.
	AccessToken string `json:"access_token"`

	// ObtainedAt records when the token was acquired or last verified.
	ObtainedAt time.Time `json:"obtained_at"`
}

// SPDX-License-Identifier: Apache-2.0

package models

// LoginRequest is the body of POST /account/login. PasswordDigest must be
// the lower-case hex MD5 of the plaintext password; the service never
// receives the plaintext.
type LoginRequest struct {
	Account string `json:"account"`
	// PasswordDigest is md5hex(password).
	PasswordDigest string `json:"pwd"`
	// AccountType is always 2 for email/username logins.
	AccountType int `json:"accountType"`
}

// ActivityUpdate is the body of POST /activity/update. Zero-valued fields
// are omitted so the service only touches attributes the caller set.
type ActivityUpdate struct {
	LabelID string `json:"labelId"`
	Name    string `json:"name,omitempty"`
}

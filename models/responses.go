// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// ResultOK is the Coros API result code that signals success. Every JSON
// response wraps its payload in an envelope carrying this code.
const ResultOK = "0000"

// Envelope is the common JSON wrapper of all Coros API responses.
type Envelope struct {
	// Result is the service status code; ResultOK means success.
	Result string `json:"result"`

	// Message is the human-readable status text accompanying Result.
	Message string `json:"message"`

	// Data is the operation-specific payload, decoded by the caller.
	Data json.RawMessage `json:"data"`
}

// LoginData is the payload of POST /account/login.
type LoginData struct {
	AccessToken string `json:"accessToken"`
}

// ActivityPage is the payload of GET /activity/query: one page of the
// account's activities plus the total count across all pages.
type ActivityPage struct {
	Count      int        `json:"count"`
	Activities []Activity `json:"dataList"`
}

// DownloadData is the payload of GET /activity/detail/download.
type DownloadData struct {
	FileURL string `json:"fileUrl"`
}

// ActivityDetail is the payload of POST /activity/detail/query. Only the
// summary block is consumed by this client.
type ActivityDetail struct {
	Summary ActivitySummary `json:"summary"`
}

// ActivitySummary carries the per-activity summary fields used for
// filename derivation.
type ActivitySummary struct {
	Name string `json:"name"`
}

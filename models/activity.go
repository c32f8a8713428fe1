// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"time"
)

// Activity is a single training activity as returned by the Coros
// Training Center listing endpoint. Numeric time fields are kept in their
// wire representation; use the accessor methods to obtain proper
// time.Time values.
type Activity struct {
	// LabelID is the service-side identifier of the activity. It is the
	// value used in all per-activity API calls and in web UI URLs.
	LabelID string `json:"labelId"`

	// Name is the user-visible activity title (e.g. "Morning Run").
	Name string `json:"name"`

	// SportType is the Coros sport code for the activity. Unknown codes
	// are preserved as-is.
	SportType SportType `json:"sportType"`

	// Date is the local calendar day of the activity encoded as a decimal
	// yyyymmdd integer (e.g. 20260830).
	Date int `json:"date"`

	// StartTime and EndTime are unix timestamps in seconds.
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`

	// StartTimezone and EndTimezone are UTC offsets counted in 15-minute
	// units (e.g. -32 for UTC-8, 8 for UTC+2).
	StartTimezone int `json:"startTimezone"`
	EndTimezone   int `json:"endTimezone"`

	// Distance is the total distance in meters.
	Distance float64 `json:"distance"`

	// TotalTime is the total elapsed duration in seconds.
	TotalTime int64 `json:"totalTime"`
}

// Day returns the activity's local calendar day decoded from the yyyymmdd
// wire integer. The returned time is midnight UTC of that day; only the
// date components are meaningful.
func (a Activity) Day() time.Time {
	return time.Date(a.Date/10000, time.Month(a.Date/100%100), a.Date%100, 0, 0, 0, 0, time.UTC)
}

// StartsAt returns the activity start as a time.Time carrying the
// activity's own UTC offset.
func (a Activity) StartsAt() time.Time {
	return time.Unix(a.StartTime, 0).In(QuarterHourZone(a.StartTimezone))
}

// EndsAt returns the activity end as a time.Time carrying the activity's
// own UTC offset.
func (a Activity) EndsAt() time.Time {
	return time.Unix(a.EndTime, 0).In(QuarterHourZone(a.EndTimezone))
}

// Duration returns the total elapsed time of the activity.
func (a Activity) Duration() time.Duration {
	return time.Duration(a.TotalTime) * time.Second
}

// QuarterHourZone builds a fixed time.Location from an offset counted in
// 15-minute units, the encoding Coros uses for activity timezones.
func QuarterHourZone(quarters int) *time.Location {
	offset := quarters * 15 * 60
	sign := "+"
	if offset < 0 {
		sign = "-"
	}
	abs := offset
	if abs < 0 {
		abs = -abs
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, abs%3600/60)
	return time.FixedZone(name, offset)
}

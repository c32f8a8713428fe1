// SPDX-License-Identifier: Apache-2.0

// Package fitmatch resolves the service-side identity of a freshly
// uploaded FIT file. The import endpoint does not return the new
// activity's label ID, so the uploader decodes the FIT session start time
// and looks for the listed activity that starts at the same moment.
package fitmatch

import (
	"fmt"
	"io"
	"time"

	"github.com/tormoder/fit"

	"github.com/dlenski/corostc/models"
)

// DefaultTolerance is the maximum clock drift allowed between the FIT
// session start time and the listed activity start time.
const DefaultTolerance = time.Second

// SessionStart decodes a FIT file and returns the start time of its first
// session message.
func SessionStart(r io.Reader) (time.Time, error) {
	f, err := fit.Decode(r)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode fit file: %w", err)
	}

	activity, err := f.Activity()
	if err != nil {
		return time.Time{}, fmt.Errorf("fit file is not an activity: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return time.Time{}, fmt.Errorf("fit file has no session messages")
	}

	start := activity.Sessions[0].StartTime
	if start.IsZero() {
		return time.Time{}, fmt.Errorf("fit session has no start time")
	}

	// FIT timestamps without zone information are UTC.
	return start.UTC(), nil
}

// Match returns the activity whose start time is within tolerance of
// start, or false when none (or more than one moment cannot be decided).
// The first match in slice order wins, mirroring the service's
// newest-first listing.
func Match(activities []models.Activity, start time.Time, tolerance time.Duration) (models.Activity, bool) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	for _, a := range activities {
		diff := a.StartsAt().Sub(start)
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			return a, true
		}
	}

	return models.Activity{}, false
}

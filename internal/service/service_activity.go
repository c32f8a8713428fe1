// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/dlenski/corostc/internal/adapter"
	"github.com/dlenski/corostc/internal/fitmatch"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/models"
)

// listBatchSize is the page size used when walking the full activity
// listing.
const listBatchSize = 100

type activityService struct {
	storages   *store.Storages
	coros      adapter.CorosAdapter
	webBaseURL string
	logger     *logger.Logger
}

// NewActivityService constructs the [ActivityService].
func NewActivityService(storages *store.Storages, coros adapter.CorosAdapter, webBaseURL string, logger *logger.Logger) ActivityService {
	return &activityService{
		storages:   storages,
		coros:      coros,
		webBaseURL: strings.TrimRight(webBaseURL, "/"),
		logger:     logger,
	}
}

// ListAll implements [ActivityService]. It pages through the listing
// endpoint until the service-reported total is covered, verifying on
// every page that the total has not moved underfoot.
func (s *activityService) ListAll(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	total := -1

	for page := 1; ; page++ {
		startIndex := listBatchSize * (page - 1)
		endIndex := startIndex + listBatchSize - 1

		s.logger.Debug().
			Int("page", page).
			Int("from", startIndex).
			Int("through", endIndex).
			Msg("fetching page of activities")

		result, err := s.coros.QueryActivities(ctx, page, listBatchSize)
		if err != nil {
			return nil, fmt.Errorf("fetch activities page %d: %w", page, err)
		}

		activities = append(activities, result.Activities...)

		if total == -1 {
			total = result.Count
		}
		if total != result.Count {
			return nil, fmt.Errorf("%w: %d became %d", ErrListingUnstable, total, result.Count)
		}
		if endIndex >= total-1 || len(result.Activities) == 0 {
			break
		}
	}

	return activities, nil
}

// Latest implements [ActivityService].
func (s *activityService) Latest(ctx context.Context) (models.Activity, error) {
	result, err := s.coros.QueryActivities(ctx, 1, 1)
	if err != nil {
		return models.Activity{}, fmt.Errorf("fetch latest activity: %w", err)
	}
	if len(result.Activities) == 0 {
		return models.Activity{}, ErrNoActivities
	}

	return result.Activities[0], nil
}

// Download implements [ActivityService]. The export is a two-step
// exchange: ask the service to produce the file, then fetch the bytes
// from the returned URL.
func (s *activityService) Download(ctx context.Context, labelID string, fileType models.FileType) ([]byte, error) {
	sport := s.sportOf(ctx, labelID)

	fileURL, err := s.coros.DownloadURL(ctx, labelID, sport, fileType)
	if err != nil {
		return nil, fmt.Errorf("resolve download url for %s: %w", labelID, err)
	}

	payload, err := s.coros.FetchFile(ctx, fileURL)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", labelID, err)
	}

	return payload, nil
}

// ExportFilename implements [ActivityService]. Failures to fetch or
// sanitize the title are not fatal; the label ID always works as a name.
func (s *activityService) ExportFilename(ctx context.Context, labelID string, fileType models.FileType, numbered bool) string {
	name := ""
	if !numbered {
		detail, err := s.coros.ActivityDetail(ctx, labelID, s.sportOf(ctx, labelID))
		if err != nil {
			s.logger.Warn().Err(err).Str("label_id", labelID).Msg("could not fetch activity title for filename")
		} else {
			name = sanitizeFilename(detail.Summary.Name)
		}
	}
	if name == "" {
		name = labelID
	}

	return name + fileType.Ext()
}

// Upload implements [ActivityService].
func (s *activityService) Upload(ctx context.Context, r io.Reader, filename string, gzipCompress bool) (models.Activity, bool, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return models.Activity{}, false, fmt.Errorf("read fit file: %w", err)
	}

	payload := raw
	uploadName := filename
	if gzipCompress {
		payload, err = gzipPayload(raw, filename)
		if err != nil {
			return models.Activity{}, false, fmt.Errorf("compress fit file: %w", err)
		}
		uploadName = filename + ".gz"
	}

	if err = s.coros.UploadFIT(ctx, uploadName, payload); err != nil {
		return models.Activity{}, false, fmt.Errorf("upload %s: %w", filename, err)
	}

	// The import response does not carry the new activity's ID. Decode
	// the FIT session start time and find the listing entry that starts
	// at the same moment.
	start, err := fitmatch.SessionStart(bytes.NewReader(raw))
	if err != nil {
		s.logger.Warn().Err(err).Str("file", filename).Msg("cannot determine activity id without a parseable fit session")
		return models.Activity{}, false, nil
	}

	activities, err := s.ListAll(ctx)
	if err != nil {
		return models.Activity{}, false, fmt.Errorf("relist activities after upload: %w", err)
	}

	matched, found := fitmatch.Match(activities, start, fitmatch.DefaultTolerance)
	if !found {
		s.logger.Warn().
			Time("start_time", start).
			Str("file", filename).
			Msg("uploaded fit file but cannot find a matching activity")
		return models.Activity{}, false, nil
	}

	if err := s.storages.Activities.Upsert(ctx, matched); err != nil {
		s.logger.Warn().Err(err).Str("label_id", matched.LabelID).Msg("could not cache uploaded activity")
	}

	return matched, true, nil
}

// Delete implements [ActivityService].
func (s *activityService) Delete(ctx context.Context, labelID string) error {
	if err := s.coros.DeleteActivity(ctx, labelID); err != nil {
		return fmt.Errorf("delete activity %s: %w", labelID, err)
	}

	if err := s.storages.Activities.Delete(ctx, labelID); err != nil {
		s.logger.Warn().Err(err).Str("label_id", labelID).Msg("could not remove deleted activity from cache")
	}

	return nil
}

// Rename implements [ActivityService].
func (s *activityService) Rename(ctx context.Context, labelID, name string) error {
	err := s.coros.UpdateActivity(ctx, models.ActivityUpdate{LabelID: labelID, Name: name})
	if err != nil {
		return fmt.Errorf("rename activity %s: %w", labelID, err)
	}

	cached, getErr := s.storages.Activities.Get(ctx, labelID)
	if getErr == nil {
		cached.Name = name
		if upErr := s.storages.Activities.Upsert(ctx, cached); upErr != nil {
			s.logger.Warn().Err(upErr).Str("label_id", labelID).Msg("could not update renamed activity in cache")
		}
	}

	return nil
}

// WebURL implements [ActivityService].
func (s *activityService) WebURL(labelID string, sport models.SportType) string {
	return fmt.Sprintf("%s/activity-detail?labelId=%s&sportType=%d", s.webBaseURL, labelID, int(sport))
}

// sportOf looks the activity's sport up in the local cache. The per-
// activity endpoints want a sportType parameter but accept the generic
// Run code for any activity, so a cache miss falls back to that.
func (s *activityService) sportOf(ctx context.Context, labelID string) models.SportType {
	cached, err := s.storages.Activities.Get(ctx, labelID)
	if err != nil {
		return models.Run
	}
	return cached.SportType
}

// sanitizeFilename flattens an activity title into a safe filename
// fragment: NFKD fold, drop non-ASCII, keep only letters and underscores
// within each word, join words with underscores.
func sanitizeFilename(name string) string {
	folded := norm.NFKD.String(name)
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)

	var parts []string
	for _, word := range strings.Fields(ascii) {
		var b strings.Builder
		for _, r := range word {
			if unicode.IsLetter(r) || r == '_' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}

	return strings.Join(parts, "_")
}

// gzipPayload compresses raw with the original filename recorded in the
// gzip header, matching what the web uploader produces.
func gzipPayload(raw []byte, filename string) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Name = filename

	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

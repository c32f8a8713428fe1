// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

type activityRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivityRepository returns the SQLite-backed [ActivityRepository].
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *activityRepository) Upsert(ctx context.Context, activities ...models.Activity) error {
	for _, act := range activities {
		_, err := a.DB.ExecContext(ctx, upsertActivity,
			act.LabelID,
			act.Name,
			int(act.SportType),
			act.Date,
			act.StartTime,
			act.EndTime,
			act.StartTimezone,
			act.EndTimezone,
			act.Distance,
			act.TotalTime,
		)
		if err != nil {
			a.logger.Err(err).
				Str("func", "activityRepository.Upsert").
				Str("label_id", act.LabelID).
				Msg("failed to execute upsert for activity")
			return fmt.Errorf("failed to cache activity (label_id=%s): %w", act.LabelID, err)
		}
	}

	return nil
}

func (a *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]models.Activity, error) {
	query, args, err := buildListActivitiesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build activity list query: %w", err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		a.logger.Err(err).
			Str("func", "activityRepository.List").
			Msg("failed to execute query for cached activities")
		return nil, fmt.Errorf("failed to query cached activities: %w", err)
	}
	defer rows.Close()

	var items []models.Activity
	for rows.Next() {
		item, scanErr := scanActivity(rows)
		if scanErr != nil {
			a.logger.Err(scanErr).
				Str("func", "activityRepository.List").
				Msg("failed to scan activity row")
			return nil, fmt.Errorf("failed to scan activity row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		a.logger.Err(rowsErr).
			Str("func", "activityRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating activity rows: %w", rowsErr)
	}

	return items, nil
}

func (a *activityRepository) Get(ctx context.Context, labelID string) (models.Activity, error) {
	row := a.DB.QueryRowContext(ctx, getSingleActivity, labelID)

	item, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activity{}, ErrActivityNotFound
	}
	if err != nil {
		a.logger.Err(err).
			Str("func", "activityRepository.Get").
			Str("label_id", labelID).
			Msg("failed to scan activity row")
		return models.Activity{}, fmt.Errorf("failed to read cached activity: %w", err)
	}

	return item, nil
}

func (a *activityRepository) Delete(ctx context.Context, labelIDs ...string) error {
	if len(labelIDs) == 0 {
		return nil
	}

	query, args, err := buildDeleteActivitiesQuery(labelIDs)
	if err != nil {
		return fmt.Errorf("failed to build activity delete query: %w", err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		a.logger.Err(err).
			Str("func", "activityRepository.Delete").
			Msg("failed to delete cached activities")
		return fmt.Errorf("failed to delete cached activities: %w", err)
	}

	return nil
}

func (a *activityRepository) PruneExcept(ctx context.Context, keep []string) error {
	query, args, err := buildPruneExceptQuery(keep)
	if err != nil {
		return fmt.Errorf("failed to build activity prune query: %w", err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		a.logger.Err(err).
			Str("func", "activityRepository.PruneExcept").
			Msg("failed to prune cached activities")
		return fmt.Errorf("failed to prune cached activities: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (models.Activity, error) {
	var item models.Activity
	var sport int

	err := row.Scan(
		&item.LabelID,
		&item.Name,
		&sport,
		&item.Date,
		&item.StartTime,
		&item.EndTime,
		&item.StartTimezone,
		&item.EndTimezone,
		&item.Distance,
		&item.TotalTime,
	)
	if err != nil {
		return models.Activity{}, err
	}

	item.SportType = models.SportType(sport)
	return item, nil
}

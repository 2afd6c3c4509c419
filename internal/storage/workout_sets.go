package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftcoach/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoSets is returned when a last-set lookup finds no history for the
// exercise.
var ErrNoSets = errors.New("no logged sets for exercise")

// InsertSet persists one completed set and returns the stored row.
func (db *DB) InsertSet(ctx context.Context, userID int, set models.WorkoutSet) (*models.SetRow, error) {
	row := &models.SetRow{
		ID:           uuid.NewString(),
		UserID:       userID,
		ExerciseID:   set.ExerciseID,
		ExerciseName: set.ExerciseName,
		WeightKg:     set.WeightKg,
		Reps:         set.Reps,
		RPE:          set.RPE,
		Notes:        set.Notes,
		LoggedAt:     time.Now().UTC(),
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_sets (id, user_id, exercise_id, exercise_name, weight_kg, reps, rpe, notes, logged_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		row.ID, row.UserID, row.ExerciseID, row.ExerciseName, row.WeightKg, row.Reps, row.RPE, row.Notes, row.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting workout set: %w", err)
	}
	return row, nil
}

// LastSet returns the most recently logged set for an exercise, or ErrNoSets.
func (db *DB) LastSet(ctx context.Context, userID int, exerciseID string) (*models.SetRow, error) {
	var r models.SetRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, exercise_id, exercise_name, weight_kg, reps, rpe, notes, logged_at
		 FROM workout_sets
		 WHERE user_id = $1 AND exercise_id = $2
		 ORDER BY logged_at DESC
		 LIMIT 1`,
		userID, exerciseID,
	).Scan(&r.ID, &r.UserID, &r.ExerciseID, &r.ExerciseName, &r.WeightKg, &r.Reps, &r.RPE, &r.Notes, &r.LoggedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSets
	}
	if err != nil {
		return nil, fmt.Errorf("querying last set: %w", err)
	}
	return &r, nil
}

// RecentSets returns up to limit sets most recently logged by the user.
func (db *DB) RecentSets(ctx context.Context, userID, limit int) ([]models.SetRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, exercise_id, exercise_name, weight_kg, reps, rpe, notes, logged_at
		 FROM workout_sets
		 WHERE user_id = $1
		 ORDER BY logged_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent sets: %w", err)
	}
	defer rows.Close()

	var result []models.SetRow
	for rows.Next() {
		var r models.SetRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.ExerciseID, &r.ExerciseName,
			&r.WeightKg, &r.Reps, &r.RPE, &r.Notes, &r.LoggedAt); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/liftcoach/internal/models"
)

// UpsertPersonalRecord records a new best for an exercise when the estimated
// one-rep max beats the stored record. Returns true when the record changed.
func (db *DB) UpsertPersonalRecord(ctx context.Context, pr models.PersonalRecord) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO personal_records (user_id, exercise_id, exercise_name, weight_kg, reps, estimated_1rm, achieved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, exercise_id) DO UPDATE
		 SET exercise_name = EXCLUDED.exercise_name,
		     weight_kg = EXCLUDED.weight_kg,
		     reps = EXCLUDED.reps,
		     estimated_1rm = EXCLUDED.estimated_1rm,
		     achieved_at = EXCLUDED.achieved_at
		 WHERE EXCLUDED.estimated_1rm > personal_records.estimated_1rm`,
		pr.UserID, pr.ExerciseID, pr.ExerciseName, pr.WeightKg, pr.Reps, pr.Estimated1RM, pr.AchievedAt)
	if err != nil {
		return false, fmt.Errorf("upserting personal record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPersonalRecords returns all records for a user, strongest first.
func (db *DB) ListPersonalRecords(ctx context.Context, userID int) ([]models.PersonalRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, exercise_id, exercise_name, weight_kg, reps, estimated_1rm, achieved_at
		 FROM personal_records
		 WHERE user_id = $1
		 ORDER BY estimated_1rm DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying personal records: %w", err)
	}
	defer rows.Close()

	var result []models.PersonalRecord
	for rows.Next() {
		var pr models.PersonalRecord
		var achievedAt time.Time
		if err := rows.Scan(&pr.UserID, &pr.ExerciseID, &pr.ExerciseName,
			&pr.WeightKg, &pr.Reps, &pr.Estimated1RM, &achievedAt); err != nil {
			return nil, fmt.Errorf("scanning personal record: %w", err)
		}
		pr.AchievedAt = achievedAt
		result = append(result, pr)
	}
	return result, rows.Err()
}

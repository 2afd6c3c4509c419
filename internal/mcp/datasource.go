package mcp

import (
	"context"

	"github.com/claude/liftcoach/internal/models"
	"github.com/claude/liftcoach/internal/storage"
)

// DataSource abstracts the set log for MCP tools. *storage.DB satisfies it;
// tests substitute an in-memory fake.
type DataSource interface {
	InsertSet(ctx context.Context, userID int, set models.WorkoutSet) (*models.SetRow, error)
	LastSet(ctx context.Context, userID int, exerciseID string) (*models.SetRow, error)
	RecentSets(ctx context.Context, userID, limit int) ([]models.SetRow, error)
	UpsertPersonalRecord(ctx context.Context, pr models.PersonalRecord) (bool, error)
	ListPersonalRecords(ctx context.Context, userID int) ([]models.PersonalRecord, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)

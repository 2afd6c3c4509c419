package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftcoach/internal/coach"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) exerciseCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(coach.Catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) splitCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(coach.SplitExplanations)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) recentSets(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	sets, err := h.ds.RecentSets(ctx, uid, 50)
	if err != nil {
		return nil, err
	}
	records, err := h.ds.ListPersonalRecords(ctx, uid)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"recent_sets":      sets,
		"personal_records": records,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

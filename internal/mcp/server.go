package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all coaching tools and resources
// registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftCoach training server. Log sets, get progression recommendations, generate training plans, periodize blocks, and build hybrid weekly schedules. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProgression, Handler: h.getProgression},
		server.ServerTool{Tool: toolLogSet, Handler: h.logSet},
		server.ServerTool{Tool: toolInterpretEffort, Handler: h.interpretEffort},
		server.ServerTool{Tool: toolGetFormCues, Handler: h.getFormCues},
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGetSplitRecommendations, Handler: h.getSplitRecommendations},
		server.ServerTool{Tool: toolCalculatePeriodization, Handler: h.calculatePeriodization},
		server.ServerTool{Tool: toolOptimizeHybridSchedule, Handler: h.optimizeHybridSchedule},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resSplitCatalog, Handler: h.splitCatalog},
		server.ServerResource{Resource: resRecentSets, Handler: h.recentSets},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"liftcoach://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("The built-in exercise library with muscle groups, equipment, and programming defaults"),
	mcp.WithMIMEType("application/json"),
)

var resSplitCatalog = mcp.NewResource(
	"liftcoach://split_catalog",
	"Split Catalog",
	mcp.WithResourceDescription("Available training splits with day counts and descriptions"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSets = mcp.NewResource(
	"liftcoach://recent_sets",
	"Recent Sets",
	mcp.WithResourceDescription("The 50 most recently logged sets plus current personal records"),
	mcp.WithMIMEType("application/json"),
)

package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type manageIndexersInput struct {
	Action      string         `json:"action" jsonschema:"one of list, test, add, update, or delete"`
	IndexerID   *int64         `json:"indexer_id,omitempty" jsonschema:"indexer to operate on (required for test, update, and delete)"`
	IndexerData map[string]any `json:"indexer_data,omitempty" jsonschema:"indexer definition passed through to Radarr (required for add and update)"`
}

type indexerSummary struct {
	ID                      int64   `json:"id"`
	Name                    string  `json:"name"`
	Implementation          string  `json:"implementation,omitempty"`
	EnableRss               bool    `json:"enable_rss"`
	EnableAutomaticSearch   bool    `json:"enable_automatic_search"`
	EnableInteractiveSearch bool    `json:"enable_interactive_search"`
	Priority                int     `json:"priority,omitempty"`
	Tags                    []int64 `json:"tags"`
}

type manageIndexersResult struct {
	Success    bool             `json:"success"`
	Action     string           `json:"action"`
	Indexers   []indexerSummary `json:"indexers,omitempty"`
	Indexer    map[string]any   `json:"indexer,omitempty"`
	TestResult map[string]any   `json:"test_result,omitempty"`
	Deleted    bool             `json:"deleted,omitempty"`
	Message    string           `json:"message,omitempty"`
}

func (s *Server) handleManageIndexers(ctx context.Context, _ *mcp.CallToolRequest, in manageIndexersInput) (*mcp.CallToolResult, any, error) {
	// Validate everything up front so a bad request never reaches upstream.
	switch in.Action {
	case "list":
	case "test", "update", "delete":
		if in.IndexerID == nil || *in.IndexerID <= 0 {
			return s.failInput("manage_indexers", fmt.Sprintf("indexer_id is required for action %q", in.Action))
		}
		if in.Action == "update" && len(in.IndexerData) == 0 {
			return s.failInput("manage_indexers", "indexer_data is required for action \"update\"")
		}
	case "add":
		if len(in.IndexerData) == 0 {
			return s.failInput("manage_indexers", "indexer_data is required for action \"add\"")
		}
	default:
		return s.failInput("manage_indexers", fmt.Sprintf("invalid action %q: must be list, test, add, update, or delete", in.Action))
	}

	switch in.Action {
	case "list":
		indexers, err := s.api.GetIndexers(ctx)
		if err != nil {
			return s.fail(ctx, "manage_indexers", "listing indexers failed", err)
		}
		summaries := make([]indexerSummary, 0, len(indexers))
		for _, idx := range indexers {
			summaries = append(summaries, indexerSummary{
				ID:                      idx.ID,
				Name:                    idx.Name,
				Implementation:          idx.Implementation,
				EnableRss:               idx.EnableRss,
				EnableAutomaticSearch:   idx.EnableAutomaticSearch,
				EnableInteractiveSearch: idx.EnableInteractiveSearch,
				Priority:                idx.Priority,
				Tags:                    idx.Tags,
			})
		}
		return ok(manageIndexersResult{Success: true, Action: in.Action, Indexers: summaries})

	case "test":
		result, err := s.api.TestIndexer(ctx, *in.IndexerID)
		if err != nil {
			return s.fail(ctx, "manage_indexers", fmt.Sprintf("testing indexer %d failed", *in.IndexerID), err)
		}
		return ok(manageIndexersResult{Success: true, Action: in.Action, TestResult: result})

	case "add":
		indexer, err := s.api.AddIndexer(ctx, in.IndexerData)
		if err != nil {
			return s.fail(ctx, "manage_indexers", "adding indexer failed", err)
		}
		return ok(manageIndexersResult{Success: true, Action: in.Action, Indexer: indexer})

	case "update":
		indexer, err := s.api.UpdateIndexer(ctx, *in.IndexerID, in.IndexerData)
		if err != nil {
			return s.fail(ctx, "manage_indexers", fmt.Sprintf("updating indexer %d failed", *in.IndexerID), err)
		}
		return ok(manageIndexersResult{Success: true, Action: in.Action, Indexer: indexer})

	default: // delete
		if _, err := s.api.DeleteIndexer(ctx, *in.IndexerID); err != nil {
			return s.fail(ctx, "manage_indexers", fmt.Sprintf("deleting indexer %d failed", *in.IndexerID), err)
		}
		return ok(manageIndexersResult{
			Success: true,
			Action:  in.Action,
			Deleted: true,
			Message: fmt.Sprintf("indexer %d deleted", *in.IndexerID),
		})
	}
}

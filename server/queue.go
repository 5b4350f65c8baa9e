package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/radarr-mcp/radarr"
)

type getQueueInput struct {
	Page     int    `json:"page,omitempty" jsonschema:"page number (default 1)"`
	PageSize int    `json:"page_size,omitempty" jsonschema:"items per page (default 20)"`
	Sort     string `json:"sort,omitempty" jsonschema:"upstream sort key (default progress)"`
}

type queueEntry struct {
	ID             int64    `json:"id"`
	MovieTitle     string   `json:"movie_title,omitempty"`
	Title          string   `json:"title,omitempty"`
	Status         string   `json:"status,omitempty"`
	Size           float64  `json:"size,omitempty"`
	SizeLeft       float64  `json:"sizeleft,omitempty"`
	Progress       float64  `json:"progress"`
	ETA            string   `json:"eta,omitempty"`
	Quality        string   `json:"quality,omitempty"`
	Protocol       string   `json:"protocol,omitempty"`
	DownloadClient string   `json:"download_client,omitempty"`
	OutputPath     string   `json:"output_path,omitempty"`
	StatusMessages []string `json:"status_messages,omitempty"`
}

type getQueueResult struct {
	Success      bool         `json:"success"`
	Page         int          `json:"page"`
	PageSize     int          `json:"page_size"`
	TotalRecords int          `json:"total_records"`
	Queue        []queueEntry `json:"queue"`
}

func (s *Server) handleGetDownloadQueue(ctx context.Context, _ *mcp.CallToolRequest, in getQueueInput) (*mcp.CallToolResult, any, error) {
	page := in.Page
	if page <= 0 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	sortKey := in.Sort
	if sortKey == "" {
		sortKey = "progress"
	}

	queue, err := s.api.GetQueue(ctx, page, pageSize, sortKey)
	if err != nil {
		return s.fail(ctx, "get_download_queue", "fetching download queue failed", err)
	}

	entries := make([]queueEntry, 0, len(queue.Records))
	for _, item := range queue.Records {
		entry := queueEntry{
			ID:             item.ID,
			Title:          item.Title,
			Status:         item.Status,
			Size:           item.Size,
			SizeLeft:       item.SizeLeft,
			Progress:       downloadProgress(item),
			ETA:            item.EstimatedCompletionTime,
			Quality:        qualityName(item.Quality),
			Protocol:       item.Protocol,
			DownloadClient: item.DownloadClient,
			OutputPath:     item.OutputPath,
			StatusMessages: statusMessageTitles(item.StatusMessages),
		}
		if item.Movie != nil {
			entry.MovieTitle = item.Movie.Title
		}
		entries = append(entries, entry)
	}

	return ok(getQueueResult{
		Success:      true,
		Page:         queue.Page,
		PageSize:     queue.PageSize,
		TotalRecords: queue.TotalRecords,
		Queue:        entries,
	})
}

// downloadProgress reports the upstream percentage when present and
// otherwise derives one from the byte counts.
func downloadProgress(item radarr.QueueItem) float64 {
	if item.Progress > 0 {
		return item.Progress
	}
	if item.Size <= 0 {
		return 0
	}
	return (item.Size - item.SizeLeft) / item.Size * 100
}

func statusMessageTitles(msgs []radarr.StatusMessage) []string {
	var out []string
	for _, m := range msgs {
		if m.Title != "" {
			out = append(out, m.Title)
		}
	}
	return out
}

type manageQueueInput struct {
	QueueID          int64  `json:"queue_id" jsonschema:"ID of the queue item"`
	Action           string `json:"action" jsonschema:"one of remove, retry, or ignore"`
	RemoveFromClient bool   `json:"remove_from_client,omitempty" jsonschema:"for remove: also delete from the download client (default false)"`
}

type manageQueueResult struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	QueueID int64  `json:"queue_id"`
	Message string `json:"message"`
}

func (s *Server) handleManageDownloadQueue(ctx context.Context, _ *mcp.CallToolRequest, in manageQueueInput) (*mcp.CallToolResult, any, error) {
	if in.QueueID <= 0 {
		return s.failInput("manage_download_queue", "queue_id is required")
	}

	switch in.Action {
	case "remove":
		if _, err := s.api.DeleteQueueItem(ctx, in.QueueID, in.RemoveFromClient); err != nil {
			return s.fail(ctx, "manage_download_queue", fmt.Sprintf("removing queue item %d failed", in.QueueID), err)
		}
		return ok(manageQueueResult{
			Success: true,
			Action:  in.Action,
			QueueID: in.QueueID,
			Message: fmt.Sprintf("queue item %d removed", in.QueueID),
		})
	case "retry":
		if _, err := s.api.GrabQueueItem(ctx, in.QueueID); err != nil {
			return s.fail(ctx, "manage_download_queue", fmt.Sprintf("retrying queue item %d failed", in.QueueID), err)
		}
		return ok(manageQueueResult{
			Success: true,
			Action:  in.Action,
			QueueID: in.QueueID,
			Message: fmt.Sprintf("queue item %d sent back to the download client", in.QueueID),
		})
	case "ignore":
		// Drops the queue entry while leaving the download in the client.
		if _, err := s.api.DeleteQueueItem(ctx, in.QueueID, false); err != nil {
			return s.fail(ctx, "manage_download_queue", fmt.Sprintf("ignoring queue item %d failed", in.QueueID), err)
		}
		return ok(manageQueueResult{
			Success: true,
			Action:  in.Action,
			QueueID: in.QueueID,
			Message: fmt.Sprintf("queue item %d ignored", in.QueueID),
		})
	default:
		return s.failInput("manage_download_queue", fmt.Sprintf("invalid action %q: must be remove, retry, or ignore", in.Action))
	}
}

type getWantedInput struct {
	Page     int `json:"page,omitempty" jsonschema:"page number (default 1)"`
	PageSize int `json:"page_size,omitempty" jsonschema:"items per page (default 20)"`
}

type wantedMovie struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Year           int    `json:"year,omitempty"`
	Status         string `json:"status,omitempty"`
	QualityProfile string `json:"quality_profile,omitempty"`
	SizeOnDisk     int64  `json:"size_on_disk"`
	Overview       string `json:"overview"`
	TmdbID         int64  `json:"tmdb_id,omitempty"`
	ImdbID         string `json:"imdb_id,omitempty"`
}

type getWantedResult struct {
	Success      bool          `json:"success"`
	Page         int           `json:"page"`
	TotalRecords int           `json:"total_records"`
	WantedMovies []wantedMovie `json:"wanted_movies"`
}

func (s *Server) handleGetWantedMovies(ctx context.Context, _ *mcp.CallToolRequest, in getWantedInput) (*mcp.CallToolResult, any, error) {
	page := in.Page
	if page <= 0 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	wanted, err := s.api.GetWantedMissing(ctx, page, pageSize)
	if err != nil {
		return s.fail(ctx, "get_wanted_movies", "fetching wanted movies failed", err)
	}

	entries := make([]wantedMovie, 0, len(wanted.Records))
	for _, m := range wanted.Records {
		entries = append(entries, wantedMovie{
			ID:             m.ID,
			Title:          m.Title,
			Year:           m.Year,
			Status:         m.Status,
			QualityProfile: profileName(m.QualityProfile),
			SizeOnDisk:     m.SizeOnDisk,
			Overview:       truncate(m.Overview, libraryOverviewLen),
			TmdbID:         m.TmdbID,
			ImdbID:         m.ImdbID,
		})
	}

	return ok(getWantedResult{
		Success:      true,
		Page:         wanted.Page,
		TotalRecords: wanted.TotalRecords,
		WantedMovies: entries,
	})
}

package server

import (
	"context"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/radarr-mcp/radarr"
)

const maxReleaseResults = 20

type searchReleasesInput struct {
	MovieID int64  `json:"movie_id" jsonschema:"library ID of the movie to search releases for"`
	SortBy  string `json:"sort_by,omitempty" jsonschema:"sort order: seeders, quality, or size (default seeders)"`
}

type releaseEntry struct {
	GUID             string   `json:"guid"`
	Title            string   `json:"title"`
	Size             int64    `json:"size,omitempty"`
	Age              int      `json:"age,omitempty"`
	Seeders          int      `json:"seeders"`
	Leechers         int      `json:"leechers"`
	Quality          string   `json:"quality,omitempty"`
	Indexer          string   `json:"indexer,omitempty"`
	DownloadURL      string   `json:"download_url,omitempty"`
	Approved         bool     `json:"approved"`
	RejectionReasons []string `json:"rejection_reasons,omitempty"`
}

type searchReleasesResult struct {
	Success       bool           `json:"success"`
	MovieID       int64          `json:"movie_id"`
	ReleasesCount int            `json:"releases_count"`
	Releases      []releaseEntry `json:"releases"`
}

func (s *Server) handleSearchMovieReleases(ctx context.Context, _ *mcp.CallToolRequest, in searchReleasesInput) (*mcp.CallToolResult, any, error) {
	if in.MovieID <= 0 {
		return s.failInput("search_movie_releases", "movie_id is required")
	}

	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = "seeders"
	}
	switch sortBy {
	case "seeders", "quality", "size":
	default:
		return s.failInput("search_movie_releases", fmt.Sprintf("invalid sort_by %q: must be seeders, quality, or size", in.SortBy))
	}

	releases, err := s.api.SearchReleases(ctx, in.MovieID)
	if err != nil {
		return s.fail(ctx, "search_movie_releases", fmt.Sprintf("release search for movie %d failed", in.MovieID), err)
	}

	sortReleases(releases, sortBy)
	if len(releases) > maxReleaseResults {
		releases = releases[:maxReleaseResults]
	}

	entries := make([]releaseEntry, 0, len(releases))
	for _, r := range releases {
		entries = append(entries, releaseEntry{
			GUID:             r.GUID,
			Title:            r.Title,
			Size:             r.Size,
			Age:              r.Age,
			Seeders:          r.Seeders,
			Leechers:         r.Leechers,
			Quality:          qualityName(r.Quality),
			Indexer:          r.Indexer,
			DownloadURL:      r.DownloadURL,
			Approved:         r.Approved,
			RejectionReasons: r.Rejections,
		})
	}

	return ok(searchReleasesResult{
		Success:       true,
		MovieID:       in.MovieID,
		ReleasesCount: len(entries),
		Releases:      entries,
	})
}

// sortReleases orders candidates best-first for the requested key. Missing
// numeric fields decode to zero and sort last.
func sortReleases(releases []radarr.Release, sortBy string) {
	switch sortBy {
	case "quality":
		sort.SliceStable(releases, func(i, j int) bool {
			return qualityID(releases[i].Quality) > qualityID(releases[j].Quality)
		})
	case "size":
		sort.SliceStable(releases, func(i, j int) bool {
			return releases[i].Size > releases[j].Size
		})
	default:
		sort.SliceStable(releases, func(i, j int) bool {
			return releases[i].Seeders > releases[j].Seeders
		})
	}
}

func qualityID(q *radarr.Quality) int64 {
	if q == nil {
		return 0
	}
	return q.Quality.ID
}

type downloadReleaseInput struct {
	ReleaseGUID string `json:"release_guid" jsonschema:"GUID of the release to download"`
	MovieID     int64  `json:"movie_id" jsonschema:"library ID of the movie the release belongs to"`
}

type downloadReleaseResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Release map[string]any `json:"release,omitempty"`
}

func (s *Server) handleDownloadRelease(ctx context.Context, _ *mcp.CallToolRequest, in downloadReleaseInput) (*mcp.CallToolResult, any, error) {
	if in.ReleaseGUID == "" {
		return s.failInput("download_release", "release_guid is required")
	}
	if in.MovieID <= 0 {
		return s.failInput("download_release", "movie_id is required")
	}

	result, err := s.api.GrabRelease(ctx, in.ReleaseGUID, in.MovieID)
	if err != nil {
		return s.fail(ctx, "download_release", "sending release to download client failed", err)
	}

	s.logger.Info().Int64("movieId", in.MovieID).Msg("Release sent to download client")

	return ok(downloadReleaseResult{
		Success: true,
		Message: "release sent to download client",
		Release: result,
	})
}

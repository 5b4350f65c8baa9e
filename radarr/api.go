package radarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// LookupMovies searches the upstream metadata index by free-text term.
func (c *Client) LookupMovies(ctx context.Context, term string) ([]Movie, error) {
	params := url.Values{}
	params.Set("term", term)

	var movies []Movie
	if err := c.get(ctx, "movie/lookup?"+params.Encode(), &movies); err != nil {
		return nil, fmt.Errorf("failed to look up movies: %w", err)
	}
	return movies, nil
}

// LookupMovieByTMDB fetches lookup metadata for a single TMDB id.
func (c *Client) LookupMovieByTMDB(ctx context.Context, tmdbID string) (*Movie, error) {
	params := url.Values{}
	params.Set("tmdbId", tmdbID)

	var movie Movie
	if err := c.get(ctx, "movie/lookup/tmdb?"+params.Encode(), &movie); err != nil {
		return nil, fmt.Errorf("failed to look up movie by TMDB id: %w", err)
	}
	return &movie, nil
}

// GetMovies retrieves all movies in the library.
func (c *Client) GetMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.get(ctx, "movie", &movies); err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}
	c.logger.Debug().Int("count", len(movies)).Msg("Retrieved movies from Radarr")
	return movies, nil
}

// GetMovieByID retrieves a single library entry.
func (c *Client) GetMovieByID(ctx context.Context, movieID int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("movie/%d", movieID), &movie); err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", movieID, err)
	}
	return &movie, nil
}

// AddMovie creates a new library entry.
func (c *Client) AddMovie(ctx context.Context, req *AddMovieRequest) (*Movie, error) {
	var movie Movie
	if err := c.post(ctx, "movie", req, &movie); err != nil {
		return nil, fmt.Errorf("failed to add movie: %w", err)
	}
	return &movie, nil
}

// GetQualityProfiles lists the configured quality profiles.
func (c *Client) GetQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.get(ctx, "qualityprofile", &profiles); err != nil {
		return nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}
	return profiles, nil
}

// GetRootFolders lists the configured root folders.
func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "rootfolder", &folders); err != nil {
		return nil, fmt.Errorf("failed to get root folders: %w", err)
	}
	return folders, nil
}

// SearchReleases runs an interactive release search for a movie.
func (c *Client) SearchReleases(ctx context.Context, movieID int64) ([]Release, error) {
	var releases []Release
	if err := c.get(ctx, fmt.Sprintf("release?movieId=%d", movieID), &releases); err != nil {
		return nil, fmt.Errorf("failed to search releases: %w", err)
	}
	c.logger.Debug().Int64("movie_id", movieID).Int("count", len(releases)).Msg("Retrieved releases")
	return releases, nil
}

// GrabRelease asks upstream to download a specific release.
func (c *Client) GrabRelease(ctx context.Context, guid string, movieID int64) (map[string]any, error) {
	body := map[string]any{
		"guid":    guid,
		"movieId": movieID,
	}

	var result map[string]any
	if err := c.post(ctx, "release", body, &result); err != nil {
		return nil, fmt.Errorf("failed to grab release: %w", err)
	}
	return result, nil
}

// GetMovieHistory fetches the download history for a movie.
func (c *Client) GetMovieHistory(ctx context.Context, movieID int64) (*HistoryPage, error) {
	var history HistoryPage
	if err := c.get(ctx, fmt.Sprintf("history/movie?movieId=%d", movieID), &history); err != nil {
		return nil, fmt.Errorf("failed to get movie history: %w", err)
	}
	return &history, nil
}

// GetQueue fetches one page of the download queue.
func (c *Client) GetQueue(ctx context.Context, page, pageSize int, sortKey string) (*QueuePage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortKey", sortKey)

	var queue QueuePage
	if err := c.get(ctx, "queue?"+params.Encode(), &queue); err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	return &queue, nil
}

// DeleteQueueItem removes a queue item, optionally also from the
// download client. Returns the HTTP status code.
func (c *Client) DeleteQueueItem(ctx context.Context, queueID int64, removeFromClient bool) (int, error) {
	endpoint := fmt.Sprintf("queue/%d?removeFromClient=%t", queueID, removeFromClient)
	status, err := c.del(ctx, endpoint)
	if err != nil {
		return status, fmt.Errorf("failed to delete queue item %d: %w", queueID, err)
	}
	return status, nil
}

// GrabQueueItem retries a failed or stalled queue item.
func (c *Client) GrabQueueItem(ctx context.Context, queueID int64) (map[string]any, error) {
	var result map[string]any
	if err := c.post(ctx, fmt.Sprintf("queue/grab/%d", queueID), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to retry queue item %d: %w", queueID, err)
	}
	return result, nil
}

// GetWantedMissing fetches one page of monitored-but-missing movies,
// sorted by title.
func (c *Client) GetWantedMissing(ctx context.Context, page, pageSize int) (*WantedPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortKey", "title")

	var wanted WantedPage
	if err := c.get(ctx, "wanted/missing?"+params.Encode(), &wanted); err != nil {
		return nil, fmt.Errorf("failed to get wanted movies: %w", err)
	}
	return &wanted, nil
}

// GetIndexers lists the configured indexers.
func (c *Client) GetIndexers(ctx context.Context) ([]Indexer, error) {
	var indexers []Indexer
	if err := c.get(ctx, "indexer", &indexers); err != nil {
		return nil, fmt.Errorf("failed to get indexers: %w", err)
	}
	return indexers, nil
}

// TestIndexer asks upstream to test an indexer's connectivity.
func (c *Client) TestIndexer(ctx context.Context, indexerID int64) (map[string]any, error) {
	var result map[string]any
	if err := c.post(ctx, fmt.Sprintf("indexer/test/%d", indexerID), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to test indexer %d: %w", indexerID, err)
	}
	return result, nil
}

// AddIndexer creates an indexer from an upstream-shaped configuration
// document, passed through unchanged.
func (c *Client) AddIndexer(ctx context.Context, data map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.post(ctx, "indexer", data, &result); err != nil {
		return nil, fmt.Errorf("failed to add indexer: %w", err)
	}
	return result, nil
}

// UpdateIndexer replaces an indexer configuration.
func (c *Client) UpdateIndexer(ctx context.Context, indexerID int64, data map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.put(ctx, fmt.Sprintf("indexer/%d", indexerID), data, &result); err != nil {
		return nil, fmt.Errorf("failed to update indexer %d: %w", indexerID, err)
	}
	return result, nil
}

// DeleteIndexer removes an indexer. Returns the HTTP status code.
func (c *Client) DeleteIndexer(ctx context.Context, indexerID int64) (int, error) {
	status, err := c.del(ctx, fmt.Sprintf("indexer/%d", indexerID))
	if err != nil {
		return status, fmt.Errorf("failed to delete indexer %d: %w", indexerID, err)
	}
	return status, nil
}

// GetCalendar fetches movies with release dates in the given window.
// Dates are YYYY-MM-DD.
func (c *Client) GetCalendar(ctx context.Context, start, end string) ([]Movie, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)

	var movies []Movie
	if err := c.get(ctx, "calendar?"+params.Encode(), &movies); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	return movies, nil
}

// GetSystemStatus fetches the upstream instance description.
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.get(ctx, "system/status", &status); err != nil {
		return nil, fmt.Errorf("failed to get system status: %w", err)
	}
	return &status, nil
}

// GetHealth fetches the upstream health checks.
func (c *Client) GetHealth(ctx context.Context) ([]HealthCheck, error) {
	var checks []HealthCheck
	if err := c.get(ctx, "health", &checks); err != nil {
		return nil, fmt.Errorf("failed to get health checks: %w", err)
	}
	return checks, nil
}

// GetDiskSpace fetches the upstream disk space report.
func (c *Client) GetDiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	if err := c.get(ctx, "diskspace", &disks); err != nil {
		return nil, fmt.Errorf("failed to get disk space: %w", err)
	}
	return disks, nil
}

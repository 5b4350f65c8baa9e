package radarr

import "context"

// API defines the upstream operations the tool handlers depend on.
// *Client implements it; tests substitute mocks.
type API interface {
	// Movie operations
	LookupMovies(ctx context.Context, term string) ([]Movie, error)
	LookupMovieByTMDB(ctx context.Context, tmdbID string) (*Movie, error)
	GetMovies(ctx context.Context) ([]Movie, error)
	GetMovieByID(ctx context.Context, movieID int64) (*Movie, error)
	AddMovie(ctx context.Context, req *AddMovieRequest) (*Movie, error)

	// Reference data
	GetQualityProfiles(ctx context.Context) ([]QualityProfile, error)
	GetRootFolders(ctx context.Context) ([]RootFolder, error)

	// Releases and history
	SearchReleases(ctx context.Context, movieID int64) ([]Release, error)
	GrabRelease(ctx context.Context, guid string, movieID int64) (map[string]any, error)
	GetMovieHistory(ctx context.Context, movieID int64) (*HistoryPage, error)

	// Queue operations
	GetQueue(ctx context.Context, page, pageSize int, sortKey string) (*QueuePage, error)
	DeleteQueueItem(ctx context.Context, queueID int64, removeFromClient bool) (int, error)
	GrabQueueItem(ctx context.Context, queueID int64) (map[string]any, error)
	GetWantedMissing(ctx context.Context, page, pageSize int) (*WantedPage, error)

	// Indexer operations
	GetIndexers(ctx context.Context) ([]Indexer, error)
	TestIndexer(ctx context.Context, indexerID int64) (map[string]any, error)
	AddIndexer(ctx context.Context, data map[string]any) (map[string]any, error)
	UpdateIndexer(ctx context.Context, indexerID int64, data map[string]any) (map[string]any, error)
	DeleteIndexer(ctx context.Context, indexerID int64) (int, error)

	// Calendar and system
	GetCalendar(ctx context.Context, start, end string) ([]Movie, error)
	GetSystemStatus(ctx context.Context) (*SystemStatus, error)
	GetHealth(ctx context.Context) ([]HealthCheck, error)
	GetDiskSpace(ctx context.Context) ([]DiskSpace, error)
}

var _ API = (*Client)(nil)

package server

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/s0up4200/radarr-mcp/config"
	"github.com/s0up4200/radarr-mcp/radarr"
)

// mockAPI substitutes the upstream gateway. Each method delegates to its
// function field when set and counts every call either way.
type mockAPI struct {
	calls map[string]int

	lookupMoviesFn     func(ctx context.Context, term string) ([]radarr.Movie, error)
	lookupByTMDBFn     func(ctx context.Context, tmdbID string) (*radarr.Movie, error)
	getMoviesFn        func(ctx context.Context) ([]radarr.Movie, error)
	getMovieByIDFn     func(ctx context.Context, movieID int64) (*radarr.Movie, error)
	addMovieFn         func(ctx context.Context, req *radarr.AddMovieRequest) (*radarr.Movie, error)
	getProfilesFn      func(ctx context.Context) ([]radarr.QualityProfile, error)
	getRootFoldersFn   func(ctx context.Context) ([]radarr.RootFolder, error)
	searchReleasesFn   func(ctx context.Context, movieID int64) ([]radarr.Release, error)
	grabReleaseFn      func(ctx context.Context, guid string, movieID int64) (map[string]any, error)
	getMovieHistoryFn  func(ctx context.Context, movieID int64) (*radarr.HistoryPage, error)
	getQueueFn         func(ctx context.Context, page, pageSize int, sortKey string) (*radarr.QueuePage, error)
	deleteQueueItemFn  func(ctx context.Context, queueID int64, removeFromClient bool) (int, error)
	grabQueueItemFn    func(ctx context.Context, queueID int64) (map[string]any, error)
	getWantedMissingFn func(ctx context.Context, page, pageSize int) (*radarr.WantedPage, error)
	getIndexersFn      func(ctx context.Context) ([]radarr.Indexer, error)
	testIndexerFn      func(ctx context.Context, indexerID int64) (map[string]any, error)
	addIndexerFn       func(ctx context.Context, data map[string]any) (map[string]any, error)
	updateIndexerFn    func(ctx context.Context, indexerID int64, data map[string]any) (map[string]any, error)
	deleteIndexerFn    func(ctx context.Context, indexerID int64) (int, error)
	getCalendarFn      func(ctx context.Context, start, end string) ([]radarr.Movie, error)
	getSystemStatusFn  func(ctx context.Context) (*radarr.SystemStatus, error)
	getHealthFn        func(ctx context.Context) ([]radarr.HealthCheck, error)
	getDiskSpaceFn     func(ctx context.Context) ([]radarr.DiskSpace, error)
}

var _ radarr.API = (*mockAPI)(nil)

func newMockAPI() *mockAPI {
	return &mockAPI{calls: make(map[string]int)}
}

func (m *mockAPI) record(name string) {
	m.calls[name]++
}

func (m *mockAPI) totalCalls() int {
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *mockAPI) LookupMovies(ctx context.Context, term string) ([]radarr.Movie, error) {
	m.record("LookupMovies")
	if m.lookupMoviesFn != nil {
		return m.lookupMoviesFn(ctx, term)
	}
	return nil, nil
}

func (m *mockAPI) LookupMovieByTMDB(ctx context.Context, tmdbID string) (*radarr.Movie, error) {
	m.record("LookupMovieByTMDB")
	if m.lookupByTMDBFn != nil {
		return m.lookupByTMDBFn(ctx, tmdbID)
	}
	return &radarr.Movie{}, nil
}

func (m *mockAPI) GetMovies(ctx context.Context) ([]radarr.Movie, error) {
	m.record("GetMovies")
	if m.getMoviesFn != nil {
		return m.getMoviesFn(ctx)
	}
	return nil, nil
}

func (m *mockAPI) GetMovieByID(ctx context.Context, movieID int64) (*radarr.Movie, error) {
	m.record("GetMovieByID")
	if m.getMovieByIDFn != nil {
		return m.getMovieByIDFn(ctx, movieID)
	}
	return &radarr.Movie{}, nil
}

func (m *mockAPI) AddMovie(ctx context.Context, req *radarr.AddMovieRequest) (*radarr.Movie, error) {
	m.record("AddMovie")
	if m.addMovieFn != nil {
		return m.addMovieFn(ctx, req)
	}
	return &radarr.Movie{}, nil
}

func (m *mockAPI) GetQualityProfiles(ctx context.Context) ([]radarr.QualityProfile, error) {
	m.record("GetQualityProfiles")
	if m.getProfilesFn != nil {
		return m.getProfilesFn(ctx)
	}
	return nil, nil
}

func (m *mockAPI) GetRootFolders(ctx context.Context) ([]radarr.RootFolder, error) {
	m.record("GetRootFolders")
	if m.getRootFoldersFn != nil {
		return m.getRootFoldersFn(ctx)
	}
	return nil, nil
}

func (m *mockAPI) SearchReleases(ctx context.Context, movieID int64) ([]radarr.Release, error) {
	m.record("SearchReleases")
	if m.searchReleasesFn != nil {
		return m.searchReleasesFn(ctx, movieID)
	}
	return nil, nil
}

func (m *mockAPI) GrabRelease(ctx context.Context, guid string, movieID int64) (map[string]any, error) {
	m.record("GrabRelease")
	if m.grabReleaseFn != nil {
		return m.grabReleaseFn(ctx, guid, movieID)
	}
	return nil, nil
}

func (m *mockAPI) GetMovieHistory(ctx context.Context, movieID int64) (*radarr.HistoryPage, error) {
	m.record("GetMovieHistory")
	if m.getMovieHistoryFn != nil {
		return m.getMovieHistoryFn(ctx, movieID)
	}
	return &radarr.HistoryPage{}, nil
}

func (m *mockAPI) GetQueue(ctx context.Context, page, pageSize int, sortKey string) (*radarr.QueuePage, error) {
	m.record("GetQueue")
	if m.getQueueFn != nil {
		return m.getQueueFn(ctx, page, pageSize, sortKey)
	}
	return &radarr.QueuePage{}, nil
}

func (m *mockAPI) DeleteQueueItem(ctx context.Context, queueID int64, removeFromClient bool) (int, error) {
	m.record("DeleteQueueItem")
	if m.deleteQueueItemFn != nil {
		return m.deleteQueueItemFn(ctx, queueID, removeFromClient)
	}
	return 200, nil
}

func (m *mockAPI) GrabQueueItem(ctx context.Context, queueID int64) (map[string]any, error) {
	m.record("GrabQueueItem")
	if m.grabQueueItemFn != nil {
		return m.grabQueueItemFn(ctx, queueID)
	}
	return nil, nil
}

func (m *mockAPI) GetWantedMissing(ctx context.Context, page, pageSize int) (*radarr.WantedPage, error) {
	m.record("GetWantedMissing")
	if m.getWantedMissingFn != nil {
		return m.getWantedMissingFn(ctx, page, pageSize)
	}
	return &radarr.WantedPage{}, nil
}

func (m *mockAPI) GetIndexers(ctx context.Context) ([]radarr.Indexer, error) {
	m.record("GetIndexers")
	if m.getIndexersFn != nil {
		return m.getIndexersFn(ctx)
	}
	return nil, nil
}

func (m *mockAPI) TestIndexer(ctx context.Context, indexerID int64) (map[string]any, error) {
	m.record("TestIndexer")
	if m.testIndexerFn != nil {
		return m.testIndexerFn(ctx, indexerID)
	}
	return nil, nil
}

func (m *mockAPI) AddIndexer(ctx context.Context, data map[string]any) (map[string]any, error) {
	m.record("AddIndexer")
	if m.addIndexerFn != nil {
		return m.addIndexerFn(ctx, data)
	}
	return nil, nil
}

func (m *mockAPI) UpdateIndexer(ctx context.Context, indexerID int64, data map[string]any) (map[string]any, error) {
	m.record("UpdateIndexer")
	if m.updateIndexerFn != nil {
		return m.updateIndexerFn(ctx, indexerID, data)
	}
	return nil, nil
}

func (m *mockAPI) DeleteIndexer(ctx context.Context, indexerID int64) (int, error) {
	m.record("DeleteIndexer")
	if m.deleteIndexerFn != nil {
		return m.deleteIndexerFn(ctx, indexerID)
	}
	return 200, nil
}

func (m *mockAPI) GetCalendar(ctx context.Context, start, end string) ([]radarr.Movie, error) {
	m.record("GetCalendar")
	if m.getCalendarFn != nil {
		return m.getCalendarFn(ctx, start, end)
	}
	return nil, nil
}

func (m *mockAPI) GetSystemStatus(ctx context.Context) (*radarr.SystemStatus, error) {
	m.record("GetSystemStatus")
	if m.getSystemStatusFn != nil {
		return m.getSystemStatusFn(ctx)
	}
	return &radarr.SystemStatus{}, nil
}

func (m *mockAPI) GetHealth(ctx context.Context) ([]radarr.HealthCheck, error) {
	m.record("GetHealth")
	if m.getHealthFn != nil {
		return m.getHealthFn(ctx)
	}
	return nil, nil
}

func (m *mockAPI) GetDiskSpace(ctx context.Context) ([]radarr.DiskSpace, error) {
	m.record("GetDiskSpace")
	if m.getDiskSpaceFn != nil {
		return m.getDiskSpaceFn(ctx)
	}
	return nil, nil
}

func newTestServer(t *testing.T, api radarr.API) *Server {
	t.Helper()
	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 4200, Path: "/mcp"}
	return New(api, cfg, "test", zerolog.Nop())
}

package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/radarr-mcp/radarr"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestReadMovieLibrary(t *testing.T) {
	library := []radarr.Movie{
		{ID: 1, Title: "Have It", Monitored: true, HasFile: true},
		{ID: 2, Title: "Want It", Monitored: true, HasFile: false},
		{ID: 3, Title: "Ignored", Monitored: false, HasFile: false},
	}

	newServer := func(t *testing.T) *Server {
		api := newMockAPI()
		api.getMoviesFn = func(ctx context.Context) ([]radarr.Movie, error) {
			return library, nil
		}
		return newTestServer(t, api)
	}

	decode := func(t *testing.T, res *mcp.ReadResourceResult) getMoviesResult {
		t.Helper()
		require.Len(t, res.Contents, 1)
		assert.Equal(t, "application/json", res.Contents[0].MIMEType)

		var result getMoviesResult
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &result))
		return result
	}

	t.Run("all", func(t *testing.T) {
		srv := newServer(t)
		res, err := srv.readMovieLibrary(context.Background(), readRequest("radarr://movies/all"))
		require.NoError(t, err)

		result := decode(t, res)
		assert.Equal(t, 3, result.TotalCount)
	})

	t.Run("monitored", func(t *testing.T) {
		srv := newServer(t)
		res, err := srv.readMovieLibrary(context.Background(), readRequest("radarr://movies/monitored"))
		require.NoError(t, err)

		result := decode(t, res)
		assert.Equal(t, 2, result.TotalCount)
	})

	t.Run("unmonitored", func(t *testing.T) {
		srv := newServer(t)
		res, err := srv.readMovieLibrary(context.Background(), readRequest("radarr://movies/unmonitored"))
		require.NoError(t, err)

		result := decode(t, res)
		require.Len(t, result.Movies, 1)
		assert.Equal(t, "Ignored", result.Movies[0].Title)
	})

	t.Run("wanted delegates to the missing list", func(t *testing.T) {
		api := newMockAPI()
		api.getWantedMissingFn = func(ctx context.Context, page, pageSize int) (*radarr.WantedPage, error) {
			return &radarr.WantedPage{
				Page:         1,
				TotalRecords: 1,
				Records:      []radarr.Movie{{ID: 2, Title: "Want It"}},
			}, nil
		}
		srv := newTestServer(t, api)

		res, err := srv.readMovieLibrary(context.Background(), readRequest("radarr://movies/wanted"))
		require.NoError(t, err)

		var result getWantedResult
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &result))
		require.Len(t, result.WantedMovies, 1)
		assert.Equal(t, "Want It", result.WantedMovies[0].Title)
		assert.Equal(t, 0, api.calls["GetMovies"])
	})

	t.Run("unknown filter falls back to the whole library", func(t *testing.T) {
		srv := newServer(t)
		res, err := srv.readMovieLibrary(context.Background(), readRequest("radarr://movies/favorites"))
		require.NoError(t, err)

		result := decode(t, res)
		assert.Equal(t, 3, result.TotalCount)
	})
}

func TestReadMovieDetails(t *testing.T) {
	t.Run("fetches by parsed id with history", func(t *testing.T) {
		api := newMockAPI()
		api.getMovieByIDFn = func(ctx context.Context, movieID int64) (*radarr.Movie, error) {
			assert.Equal(t, int64(42), movieID)
			return &radarr.Movie{ID: 42, Title: "The Answer"}, nil
		}
		api.getMovieHistoryFn = func(ctx context.Context, movieID int64) (*radarr.HistoryPage, error) {
			return &radarr.HistoryPage{Records: []radarr.HistoryRecord{{EventType: "grabbed"}}}, nil
		}
		srv := newTestServer(t, api)

		res, err := srv.readMovieDetails(context.Background(), readRequest("radarr://movie/42"))
		require.NoError(t, err)

		var result movieDetailsResult
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "The Answer", result.Movie.Title)
		require.Len(t, result.Movie.History, 1)
		assert.Equal(t, 1, api.calls["GetMovieHistory"])
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		api := newMockAPI()
		srv := newTestServer(t, api)

		_, err := srv.readMovieDetails(context.Background(), readRequest("radarr://movie/latest"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid movie id")
		assert.Equal(t, 0, api.totalCalls())
	})
}

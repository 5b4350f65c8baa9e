package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/radarr-mcp/radarr"
)

func TestGetCalendar(t *testing.T) {
	t.Run("default end is thirty days after start", func(t *testing.T) {
		api := newMockAPI()
		api.getCalendarFn = func(ctx context.Context, start, end string) ([]radarr.Movie, error) {
			assert.Equal(t, "2024-01-01", start)
			assert.Equal(t, "2024-01-31", end)
			return nil, nil
		}
		srv := newTestServer(t, api)

		_, out, err := srv.handleGetCalendar(context.Background(), nil, getCalendarInput{StartDate: "2024-01-01"})
		require.NoError(t, err)

		result, isOK := out.(getCalendarResult)
		require.True(t, isOK)
		assert.True(t, result.Success)
		assert.Equal(t, "2024-01-01 to 2024-01-31", result.DateRange)
	})

	t.Run("default start is today", func(t *testing.T) {
		today := time.Now().Format(calendarDateFormat)

		api := newMockAPI()
		api.getCalendarFn = func(ctx context.Context, start, end string) ([]radarr.Movie, error) {
			assert.Equal(t, today, start)
			return nil, nil
		}
		srv := newTestServer(t, api)

		_, out, err := srv.handleGetCalendar(context.Background(), nil, getCalendarInput{})
		require.NoError(t, err)

		_, isOK := out.(getCalendarResult)
		assert.True(t, isOK)
	})

	t.Run("explicit range passes through", func(t *testing.T) {
		api := newMockAPI()
		api.getCalendarFn = func(ctx context.Context, start, end string) ([]radarr.Movie, error) {
			assert.Equal(t, "2024-06-01", start)
			assert.Equal(t, "2024-06-07", end)
			return []radarr.Movie{
				{ID: 1, Title: "Upcoming", Year: 2024, PhysicalRelease: "2024-06-03"},
			}, nil
		}
		srv := newTestServer(t, api)

		_, out, err := srv.handleGetCalendar(context.Background(), nil, getCalendarInput{StartDate: "2024-06-01", EndDate: "2024-06-07"})
		require.NoError(t, err)

		result := out.(getCalendarResult)
		assert.Equal(t, 1, result.MoviesCount)
		assert.Equal(t, "2024-06-03", result.Movies[0].PhysicalRelease)
	})

	t.Run("malformed dates never reach upstream", func(t *testing.T) {
		api := newMockAPI()
		srv := newTestServer(t, api)

		_, out, err := srv.handleGetCalendar(context.Background(), nil, getCalendarInput{StartDate: "June 1st"})
		require.NoError(t, err)

		result, isErr := out.(errorResult)
		require.True(t, isErr)
		assert.Contains(t, result.Error, "invalid start_date")

		_, out, err = srv.handleGetCalendar(context.Background(), nil, getCalendarInput{StartDate: "2024-06-01", EndDate: "soon"})
		require.NoError(t, err)

		result, isErr = out.(errorResult)
		require.True(t, isErr)
		assert.Contains(t, result.Error, "invalid end_date")

		assert.Equal(t, 0, api.totalCalls())
	})
}

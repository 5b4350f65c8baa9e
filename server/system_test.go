package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/radarr-mcp/radarr"
)

func TestGetSystemDefaults(t *testing.T) {
	t.Run("summarizes profiles and folders", func(t *testing.T) {
		api := newMockAPI()
		api.getProfilesFn = func(ctx context.Context) ([]radarr.QualityProfile, error) {
			return []radarr.QualityProfile{
				{
					ID:     4,
					Name:   "HD-1080p",
					Cutoff: radarr.QualityRef{ID: 7, Name: "Bluray-1080p"},
					Items: []radarr.ProfileItem{
						{Quality: radarr.QualityRef{Name: "WEBDL-1080p"}, Allowed: true},
						{Quality: radarr.QualityRef{Name: "Bluray-1080p"}, Allowed: true},
						{Quality: radarr.QualityRef{Name: "DVD"}, Allowed: false},
					},
				},
			}, nil
		}
		api.getRootFoldersFn = func(ctx context.Context) ([]radarr.RootFolder, error) {
			return []radarr.RootFolder{
				{
					ID: 1, Path: "/data/movies", Accessible: true, FreeSpace: 1 << 40,
					UnmappedFolders: []radarr.UnmappedFolder{{Name: "stray"}},
				},
			}, nil
		}
		srv := newTestServer(t, api)

		_, out, err := srv.handleGetSystemDefaults(context.Background(), nil, getSystemDefaultsInput{})
		require.NoError(t, err)

		result, isOK := out.(systemDefaultsResult)
		require.True(t, isOK)
		assert.True(t, result.Success)

		require.Len(t, result.QualityProfiles, 1)
		profile := result.QualityProfiles[0]
		assert.Equal(t, "HD-1080p", profile.Name)
		assert.Equal(t, "Bluray-1080p", profile.Cutoff)
		// Disallowed tiers are excluded.
		assert.Equal(t, []string{"WEBDL-1080p", "Bluray-1080p"}, profile.Qualities)

		require.Len(t, result.RootFolders, 1)
		folder := result.RootFolders[0]
		assert.Equal(t, "/data/movies", folder.Path)
		assert.Equal(t, 1, folder.UnmappedFolders)
	})

	t.Run("profile failure becomes error envelope", func(t *testing.T) {
		api := newMockAPI()
		api.getProfilesFn = func(ctx context.Context) ([]radarr.QualityProfile, error) {
			return nil, errors.New("unavailable")
		}
		srv := newTestServer(t, api)

		_, out, err := srv.handleGetSystemDefaults(context.Background(), nil, getSystemDefaultsInput{})
		require.NoError(t, err)

		result, isErr := out.(errorResult)
		require.True(t, isErr)
		assert.Contains(t, result.Error, "unavailable")
		assert.Equal(t, 0, api.calls["GetRootFolders"])
	})
}

func TestGetSystemStatus(t *testing.T) {
	api := newMockAPI()
	api.getSystemStatusFn = func(ctx context.Context) (*radarr.SystemStatus, error) {
		return &radarr.SystemStatus{
			Version:      "5.2.6.8376",
			OsName:       "ubuntu",
			OsVersion:    "22.04",
			Branch:       "master",
			IsProduction: true,
			IsLinux:      true,
			Mode:         "console",
		}, nil
	}
	api.getHealthFn = func(ctx context.Context) ([]radarr.HealthCheck, error) {
		return []radarr.HealthCheck{
			{Source: "IndexerStatusCheck", Type: "warning", Message: "indexer unavailable"},
		}, nil
	}
	api.getDiskSpaceFn = func(ctx context.Context) ([]radarr.DiskSpace, error) {
		return []radarr.DiskSpace{
			{Path: "/data", FreeSpace: 100, TotalSpace: 1000},
		}, nil
	}
	srv := newTestServer(t, api)

	_, out, err := srv.handleGetSystemStatus(context.Background(), nil, getSystemStatusInput{})
	require.NoError(t, err)

	result, isOK := out.(systemStatusResult)
	require.True(t, isOK)
	assert.True(t, result.Success)
	assert.Equal(t, "5.2.6.8376", result.SystemInfo.Version)
	assert.True(t, result.SystemInfo.IsProduction)
	assert.True(t, result.SystemInfo.IsLinux)
	assert.Equal(t, "console", result.SystemInfo.Mode)
	require.Len(t, result.HealthChecks, 1)
	assert.Equal(t, "warning", result.HealthChecks[0].Type)
	require.Len(t, result.DiskSpace, 1)
	assert.Equal(t, int64(100), result.DiskSpace[0].FreeSpace)
}

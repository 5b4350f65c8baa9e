package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type getSystemDefaultsInput struct{}

type qualityProfileSummary struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Cutoff    string   `json:"cutoff,omitempty"`
	Qualities []string `json:"qualities"`
}

type rootFolderSummary struct {
	ID              int64  `json:"id"`
	Path            string `json:"path"`
	Accessible      bool   `json:"accessible"`
	FreeSpace       int64  `json:"free_space"`
	UnmappedFolders int    `json:"unmapped_folders"`
}

type systemDefaultsResult struct {
	Success         bool                    `json:"success"`
	QualityProfiles []qualityProfileSummary `json:"quality_profiles"`
	RootFolders     []rootFolderSummary     `json:"root_folders"`
}

func (s *Server) handleGetSystemDefaults(ctx context.Context, _ *mcp.CallToolRequest, _ getSystemDefaultsInput) (*mcp.CallToolResult, any, error) {
	profiles, err := s.api.GetQualityProfiles(ctx)
	if err != nil {
		return s.fail(ctx, "get_system_defaults", "fetching quality profiles failed", err)
	}

	folders, err := s.api.GetRootFolders(ctx)
	if err != nil {
		return s.fail(ctx, "get_system_defaults", "fetching root folders failed", err)
	}

	profileSummaries := make([]qualityProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		var qualities []string
		for _, item := range p.Items {
			if item.Allowed && item.Quality.Name != "" {
				qualities = append(qualities, item.Quality.Name)
			}
		}
		profileSummaries = append(profileSummaries, qualityProfileSummary{
			ID:        p.ID,
			Name:      p.Name,
			Cutoff:    p.Cutoff.Name,
			Qualities: qualities,
		})
	}

	folderSummaries := make([]rootFolderSummary, 0, len(folders))
	for _, f := range folders {
		folderSummaries = append(folderSummaries, rootFolderSummary{
			ID:              f.ID,
			Path:            f.Path,
			Accessible:      f.Accessible,
			FreeSpace:       f.FreeSpace,
			UnmappedFolders: len(f.UnmappedFolders),
		})
	}

	return ok(systemDefaultsResult{
		Success:         true,
		QualityProfiles: profileSummaries,
		RootFolders:     folderSummaries,
	})
}

type getSystemStatusInput struct{}

type systemInfo struct {
	Version           string `json:"version,omitempty"`
	BuildTime         string `json:"build_time,omitempty"`
	IsDebug           bool   `json:"is_debug"`
	IsProduction      bool   `json:"is_production"`
	IsAdmin           bool   `json:"is_admin"`
	IsUserInteractive bool   `json:"is_user_interactive"`
	StartupPath       string `json:"startup_path,omitempty"`
	AppData           string `json:"app_data,omitempty"`
	OsName            string `json:"os_name,omitempty"`
	OsVersion         string `json:"os_version,omitempty"`
	IsMonoRuntime     bool   `json:"is_mono_runtime"`
	IsMono            bool   `json:"is_mono"`
	IsLinux           bool   `json:"is_linux"`
	IsWindows         bool   `json:"is_windows"`
	Mode              string `json:"mode,omitempty"`
	Branch            string `json:"branch,omitempty"`
	Authentication    string `json:"authentication,omitempty"`
	SqliteVersion     string `json:"sqlite_version,omitempty"`
	MigrationVersion  int    `json:"migration_version,omitempty"`
	URLBase           string `json:"url_base,omitempty"`
	RuntimeVersion    string `json:"runtime_version,omitempty"`
}

type healthCheckEntry struct {
	Source  string `json:"source,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
	WikiURL string `json:"wiki_url,omitempty"`
}

type diskSpaceEntry struct {
	Path       string `json:"path"`
	Label      string `json:"label,omitempty"`
	FreeSpace  int64  `json:"free_space"`
	TotalSpace int64  `json:"total_space"`
}

type systemStatusResult struct {
	Success      bool               `json:"success"`
	SystemInfo   systemInfo         `json:"system_info"`
	HealthChecks []healthCheckEntry `json:"health_checks"`
	DiskSpace    []diskSpaceEntry   `json:"disk_space"`
}

func (s *Server) handleGetSystemStatus(ctx context.Context, _ *mcp.CallToolRequest, _ getSystemStatusInput) (*mcp.CallToolResult, any, error) {
	status, err := s.api.GetSystemStatus(ctx)
	if err != nil {
		return s.fail(ctx, "get_system_status", "fetching system status failed", err)
	}

	health, err := s.api.GetHealth(ctx)
	if err != nil {
		return s.fail(ctx, "get_system_status", "fetching health checks failed", err)
	}

	disks, err := s.api.GetDiskSpace(ctx)
	if err != nil {
		return s.fail(ctx, "get_system_status", "fetching disk space failed", err)
	}

	healthEntries := make([]healthCheckEntry, 0, len(health))
	for _, h := range health {
		healthEntries = append(healthEntries, healthCheckEntry{
			Source:  h.Source,
			Type:    h.Type,
			Message: h.Message,
			WikiURL: h.WikiURL,
		})
	}

	diskEntries := make([]diskSpaceEntry, 0, len(disks))
	for _, d := range disks {
		diskEntries = append(diskEntries, diskSpaceEntry{
			Path:       d.Path,
			Label:      d.Label,
			FreeSpace:  d.FreeSpace,
			TotalSpace: d.TotalSpace,
		})
	}

	return ok(systemStatusResult{
		Success: true,
		SystemInfo: systemInfo{
			Version:           status.Version,
			BuildTime:         status.BuildTime,
			IsDebug:           status.IsDebug,
			IsProduction:      status.IsProduction,
			IsAdmin:           status.IsAdmin,
			IsUserInteractive: status.IsUserInteractive,
			StartupPath:       status.StartupPath,
			AppData:           status.AppData,
			OsName:            status.OsName,
			OsVersion:         status.OsVersion,
			IsMonoRuntime:     status.IsMonoRuntime,
			IsMono:            status.IsMono,
			IsLinux:           status.IsLinux,
			IsWindows:         status.IsWindows,
			Mode:              status.Mode,
			Branch:            status.Branch,
			Authentication:    status.Authentication,
			SqliteVersion:     status.SqliteVersion,
			MigrationVersion:  status.MigrationVersion,
			URLBase:           status.URLBase,
			RuntimeVersion:    status.RuntimeVersion,
		},
		HealthChecks: healthEntries,
		DiskSpace:    diskEntries,
	})
}

package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/radarr-mcp/radarr"
)

const (
	maxSearchResults  = 10
	maxHistoryEntries = 10

	searchOverviewLen  = 200
	libraryOverviewLen = 100
)

type searchMoviesInput struct {
	Query string `json:"query" jsonschema:"title or keyword to search for"`
	Year  *int   `json:"year,omitempty" jsonschema:"restrict results to this release year"`
}

type movieSearchEntry struct {
	Title    string         `json:"title"`
	Year     int            `json:"year,omitempty"`
	TmdbID   int64          `json:"tmdb_id,omitempty"`
	ImdbID   string         `json:"imdb_id,omitempty"`
	Overview string         `json:"overview"`
	Runtime  int            `json:"runtime,omitempty"`
	Status   string         `json:"status,omitempty"`
	Genres   []string       `json:"genres"`
	Ratings  map[string]any `json:"ratings,omitempty"`
	Poster   string         `json:"poster,omitempty"`
}

type searchMoviesResult struct {
	Success      bool               `json:"success"`
	ResultsCount int                `json:"results_count"`
	Movies       []movieSearchEntry `json:"movies"`
}

func (s *Server) handleSearchMovies(ctx context.Context, _ *mcp.CallToolRequest, in searchMoviesInput) (*mcp.CallToolResult, any, error) {
	if in.Query == "" {
		return s.failInput("search_movies", "query is required")
	}

	term := in.Query
	if in.Year != nil {
		term = fmt.Sprintf("%s %d", in.Query, *in.Year)
	}

	movies, err := s.api.LookupMovies(ctx, term)
	if err != nil {
		return s.fail(ctx, "search_movies", "movie lookup failed", err)
	}

	entries := make([]movieSearchEntry, 0, maxSearchResults)
	for _, m := range movies {
		entries = append(entries, movieSearchEntry{
			Title:    m.Title,
			Year:     m.Year,
			TmdbID:   m.TmdbID,
			ImdbID:   m.ImdbID,
			Overview: truncate(m.Overview, searchOverviewLen),
			Runtime:  m.Runtime,
			Status:   m.Status,
			Genres:   m.Genres,
			Ratings:  m.Ratings,
			Poster:   posterURL(m.Images),
		})
		if len(entries) == maxSearchResults {
			break
		}
	}

	return ok(searchMoviesResult{
		Success:      true,
		ResultsCount: len(entries),
		Movies:       entries,
	})
}

type addMovieInput struct {
	MovieID          string  `json:"movie_id" jsonschema:"TMDB ID of the movie to add"`
	QualityProfileID *int64  `json:"quality_profile_id,omitempty" jsonschema:"quality profile to assign; defaults to the first configured profile"`
	RootFolderPath   *string `json:"root_folder_path,omitempty" jsonschema:"root folder to store the movie under; defaults to the first configured folder"`
	Monitored        *bool   `json:"monitored,omitempty" jsonschema:"monitor the movie for releases (default true)"`
	SearchOnAdd      *bool   `json:"search_on_add,omitempty" jsonschema:"search for releases immediately after adding (default true)"`
}

type addedMovie struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year,omitempty"`
	TmdbID     int64  `json:"tmdb_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Monitored  bool   `json:"monitored"`
	RootFolder string `json:"root_folder,omitempty"`
}

type addMovieResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Movie   addedMovie `json:"movie"`
}

func (s *Server) handleAddMovie(ctx context.Context, _ *mcp.CallToolRequest, in addMovieInput) (*mcp.CallToolResult, any, error) {
	if in.MovieID == "" {
		return s.failInput("add_movie", "movie_id is required")
	}

	lookup, err := s.api.LookupMovieByTMDB(ctx, in.MovieID)
	if err != nil {
		return s.fail(ctx, "add_movie", fmt.Sprintf("movie lookup for TMDB ID %s failed", in.MovieID), err)
	}
	if lookup == nil || lookup.Title == "" {
		return s.failInput("add_movie", fmt.Sprintf("no movie found for TMDB ID %s", in.MovieID))
	}

	profileID := int64(1)
	if in.QualityProfileID != nil {
		profileID = *in.QualityProfileID
	} else {
		profiles, err := s.api.GetQualityProfiles(ctx)
		if err != nil {
			return s.fail(ctx, "add_movie", "fetching quality profiles failed", err)
		}
		if len(profiles) > 0 {
			profileID = profiles[0].ID
		}
	}

	rootFolder := "/movies"
	if in.RootFolderPath != nil {
		rootFolder = *in.RootFolderPath
	} else {
		folders, err := s.api.GetRootFolders(ctx)
		if err != nil {
			return s.fail(ctx, "add_movie", "fetching root folders failed", err)
		}
		if len(folders) > 0 {
			rootFolder = folders[0].Path
		}
	}

	monitored := true
	if in.Monitored != nil {
		monitored = *in.Monitored
	}
	searchOnAdd := true
	if in.SearchOnAdd != nil {
		searchOnAdd = *in.SearchOnAdd
	}

	added, err := s.api.AddMovie(ctx, &radarr.AddMovieRequest{
		Title:            lookup.Title,
		Year:             lookup.Year,
		TmdbID:           lookup.TmdbID,
		ImdbID:           lookup.ImdbID,
		TitleSlug:        lookup.TitleSlug,
		Images:           lookup.Images,
		Runtime:          lookup.Runtime,
		Overview:         lookup.Overview,
		Genres:           lookup.Genres,
		Ratings:          lookup.Ratings,
		QualityProfileID: profileID,
		RootFolderPath:   rootFolder,
		Monitored:        monitored,
		AddOptions:       &radarr.AddMovieOptions{SearchForMovie: searchOnAdd},
	})
	if err != nil {
		return s.fail(ctx, "add_movie", fmt.Sprintf("adding %q failed", lookup.Title), err)
	}

	s.logger.Info().Str("title", added.Title).Int64("tmdbId", added.TmdbID).Msg("Added movie to library")

	return ok(addMovieResult{
		Success: true,
		Message: fmt.Sprintf("successfully added %s (%d)", added.Title, added.Year),
		Movie: addedMovie{
			ID:         added.ID,
			Title:      added.Title,
			Year:       added.Year,
			TmdbID:     added.TmdbID,
			Status:     added.Status,
			Monitored:  added.Monitored,
			RootFolder: added.RootFolderPath,
		},
	})
}

type getMoviesInput struct {
	Monitored        *bool  `json:"monitored,omitempty" jsonschema:"only movies with this monitored state"`
	Status           string `json:"status,omitempty" jsonschema:"only movies with this status, e.g. released or announced"`
	QualityProfileID *int64 `json:"quality_profile_id,omitempty" jsonschema:"only movies assigned this quality profile"`
}

type movieFileInfo struct {
	RelativePath string `json:"relative_path,omitempty"`
	Size         int64  `json:"size,omitempty"`
	Quality      string `json:"quality,omitempty"`
}

type libraryMovie struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Year           int            `json:"year,omitempty"`
	Status         string         `json:"status,omitempty"`
	Monitored      bool           `json:"monitored"`
	HasFile        bool           `json:"has_file"`
	QualityProfile string         `json:"quality_profile,omitempty"`
	SizeOnDisk     int64          `json:"size_on_disk"`
	Overview       string         `json:"overview"`
	FileInfo       *movieFileInfo `json:"file_info,omitempty"`
}

type getMoviesResult struct {
	Success    bool           `json:"success"`
	TotalCount int            `json:"total_count"`
	Movies     []libraryMovie `json:"movies"`
}

func (s *Server) handleGetMovies(ctx context.Context, _ *mcp.CallToolRequest, in getMoviesInput) (*mcp.CallToolResult, any, error) {
	movies, err := s.api.GetMovies(ctx)
	if err != nil {
		return s.fail(ctx, "get_movies", "listing library failed", err)
	}

	entries := make([]libraryMovie, 0, len(movies))
	for _, m := range movies {
		if in.Monitored != nil && m.Monitored != *in.Monitored {
			continue
		}
		if in.Status != "" && m.Status != in.Status {
			continue
		}
		if in.QualityProfileID != nil && m.QualityProfileID != *in.QualityProfileID {
			continue
		}

		entry := libraryMovie{
			ID:             m.ID,
			Title:          m.Title,
			Year:           m.Year,
			Status:         m.Status,
			Monitored:      m.Monitored,
			HasFile:        m.HasFile,
			QualityProfile: profileName(m.QualityProfile),
			SizeOnDisk:     m.SizeOnDisk,
			Overview:       truncate(m.Overview, libraryOverviewLen),
		}
		if m.HasFile && m.MovieFile != nil {
			entry.FileInfo = &movieFileInfo{
				RelativePath: m.MovieFile.RelativePath,
				Size:         m.MovieFile.Size,
				Quality:      qualityName(m.MovieFile.Quality),
			}
		}
		entries = append(entries, entry)
	}

	return ok(getMoviesResult{
		Success:    true,
		TotalCount: len(entries),
		Movies:     entries,
	})
}

type getMovieDetailsInput struct {
	MovieID        int64 `json:"movie_id" jsonschema:"library ID of the movie"`
	IncludeFiles   *bool `json:"include_files,omitempty" jsonschema:"include file details (default true)"`
	IncludeHistory bool  `json:"include_history,omitempty" jsonschema:"include recent download history (default false)"`
}

type movieFileDetails struct {
	ID           int64          `json:"id,omitempty"`
	RelativePath string         `json:"relative_path,omitempty"`
	Size         int64          `json:"size,omitempty"`
	DateAdded    string         `json:"date_added,omitempty"`
	Quality      string         `json:"quality,omitempty"`
	MediaInfo    map[string]any `json:"media_info,omitempty"`
}

type movieHistoryEntry struct {
	EventType   string         `json:"event_type,omitempty"`
	Date        string         `json:"date,omitempty"`
	SourceTitle string         `json:"source_title,omitempty"`
	Quality     string         `json:"quality,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

type movieDetails struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Year           int                 `json:"year,omitempty"`
	TmdbID         int64               `json:"tmdb_id,omitempty"`
	ImdbID         string              `json:"imdb_id,omitempty"`
	Overview       string              `json:"overview"`
	Status         string              `json:"status,omitempty"`
	Monitored      bool                `json:"monitored"`
	HasFile        bool                `json:"has_file"`
	Runtime        int                 `json:"runtime,omitempty"`
	Genres         []string            `json:"genres"`
	Ratings        map[string]any      `json:"ratings,omitempty"`
	QualityProfile string              `json:"quality_profile,omitempty"`
	RootFolderPath string              `json:"root_folder_path,omitempty"`
	SizeOnDisk     int64               `json:"size_on_disk"`
	FileDetails    *movieFileDetails   `json:"file_details,omitempty"`
	History        []movieHistoryEntry `json:"history,omitempty"`
}

type movieDetailsResult struct {
	Success bool         `json:"success"`
	Movie   movieDetails `json:"movie"`
}

func (s *Server) handleGetMovieDetails(ctx context.Context, _ *mcp.CallToolRequest, in getMovieDetailsInput) (*mcp.CallToolResult, any, error) {
	if in.MovieID <= 0 {
		return s.failInput("get_movie_details", "movie_id is required")
	}

	m, err := s.api.GetMovieByID(ctx, in.MovieID)
	if err != nil {
		return s.fail(ctx, "get_movie_details", fmt.Sprintf("fetching movie %d failed", in.MovieID), err)
	}

	details := movieDetails{
		ID:             m.ID,
		Title:          m.Title,
		Year:           m.Year,
		TmdbID:         m.TmdbID,
		ImdbID:         m.ImdbID,
		Overview:       m.Overview,
		Status:         m.Status,
		Monitored:      m.Monitored,
		HasFile:        m.HasFile,
		Runtime:        m.Runtime,
		Genres:         m.Genres,
		Ratings:        m.Ratings,
		QualityProfile: profileName(m.QualityProfile),
		RootFolderPath: m.RootFolderPath,
		SizeOnDisk:     m.SizeOnDisk,
	}

	includeFiles := in.IncludeFiles == nil || *in.IncludeFiles
	if includeFiles && m.MovieFile != nil {
		details.FileDetails = &movieFileDetails{
			ID:           m.MovieFile.ID,
			RelativePath: m.MovieFile.RelativePath,
			Size:         m.MovieFile.Size,
			DateAdded:    m.MovieFile.DateAdded,
			Quality:      qualityName(m.MovieFile.Quality),
			MediaInfo:    m.MovieFile.MediaInfo,
		}
	}

	if in.IncludeHistory {
		history, err := s.api.GetMovieHistory(ctx, in.MovieID)
		if err != nil {
			return s.fail(ctx, "get_movie_details", fmt.Sprintf("fetching history for movie %d failed", in.MovieID), err)
		}
		records := history.Records
		if len(records) > maxHistoryEntries {
			records = records[:maxHistoryEntries]
		}
		entries := make([]movieHistoryEntry, 0, len(records))
		for _, rec := range records {
			entries = append(entries, movieHistoryEntry{
				EventType:   rec.EventType,
				Date:        rec.Date,
				SourceTitle: rec.SourceTitle,
				Quality:     qualityName(rec.Quality),
				Data:        rec.Data,
			})
		}
		details.History = entries
	}

	return ok(movieDetailsResult{Success: true, Movie: details})
}

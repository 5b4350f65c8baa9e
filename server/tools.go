package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_movies",
		Description: "Search for movies by title or keyword to find candidates for adding to the library.",
	}, s.handleSearchMovies)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_movie",
		Description: "Add a movie to the Radarr library by TMDB ID, optionally triggering an automatic release search.",
	}, s.handleAddMovie)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_movies",
		Description: "List movies in the library, optionally filtered by monitored state, status, or quality profile.",
	}, s.handleGetMovies)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_movie_details",
		Description: "Get detailed information about a library movie, including file details and download history.",
	}, s.handleGetMovieDetails)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_movie_releases",
		Description: "Search indexers for downloadable releases of a library movie.",
	}, s.handleSearchMovieReleases)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "download_release",
		Description: "Send a specific release to the download client.",
	}, s.handleDownloadRelease)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_download_queue",
		Description: "Show the current download queue with progress and status for each item.",
	}, s.handleGetDownloadQueue)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "manage_download_queue",
		Description: "Remove, retry, or ignore an item in the download queue.",
	}, s.handleManageDownloadQueue)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_system_defaults",
		Description: "List the configured quality profiles and root folders.",
	}, s.handleGetSystemDefaults)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wanted_movies",
		Description: "List monitored movies that are missing from disk.",
	}, s.handleGetWantedMovies)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "manage_indexers",
		Description: "List, test, add, update, or delete release indexers.",
	}, s.handleManageIndexers)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Show upcoming movie releases in a date range.",
	}, s.handleGetCalendar)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_system_status",
		Description: "Report Radarr system information, health checks, and disk space.",
	}, s.handleGetSystemStatus)
}

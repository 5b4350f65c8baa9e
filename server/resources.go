package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	moviesResourcePrefix = "radarr://movies/"
	movieResourcePrefix  = "radarr://movie/"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "radarr://movies/{filter}",
		Name:        "movie-library",
		Description: "Movies in the library, filtered by all, wanted, monitored, or unmonitored.",
		MIMEType:    "application/json",
	}, s.readMovieLibrary)

	s.mcpServer.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "radarr://movie/{movie_id}",
		Name:        "movie-details",
		Description: "Detailed information about a single library movie.",
		MIMEType:    "application/json",
	}, s.readMovieDetails)
}

func (s *Server) readMovieLibrary(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	filter := strings.TrimPrefix(req.Params.URI, moviesResourcePrefix)

	var out any
	var err error
	switch filter {
	case "wanted":
		_, out, err = s.handleGetWantedMovies(ctx, nil, getWantedInput{})
	case "monitored":
		monitored := true
		_, out, err = s.handleGetMovies(ctx, nil, getMoviesInput{Monitored: &monitored})
	case "unmonitored":
		monitored := false
		_, out, err = s.handleGetMovies(ctx, nil, getMoviesInput{Monitored: &monitored})
	default:
		// Anything else, including "all", is the whole library.
		_, out, err = s.handleGetMovies(ctx, nil, getMoviesInput{})
	}
	if err != nil {
		return nil, err
	}

	return s.resourceJSON(req.Params.URI, out)
}

func (s *Server) readMovieDetails(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw := strings.TrimPrefix(req.Params.URI, movieResourcePrefix)
	movieID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id %q in resource URI", raw)
	}

	_, out, err := s.handleGetMovieDetails(ctx, nil, getMovieDetailsInput{MovieID: movieID, IncludeHistory: true})
	if err != nil {
		return nil, err
	}

	return s.resourceJSON(req.Params.URI, out)
}

func (s *Server) resourceJSON(uri string, out any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding resource contents: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/radarr-mcp/radarr"
)

// errorResult is the in-band failure envelope. Tool handlers never return
// protocol-level errors for upstream failures or bad arguments; the caller
// always gets a result object, with this shape on failure.
type errorResult struct {
	Error string `json:"error"`
}

// fail logs the failure and wraps it into the in-band envelope.
func (s *Server) fail(ctx context.Context, tool, msg string, err error) (*mcp.CallToolResult, any, error) {
	evt := s.logger.Error().Str("tool", tool)
	if err != nil {
		evt = evt.Err(err)
		msg = msg + ": " + err.Error()
	}
	evt.Msg(msg)
	return nil, errorResult{Error: msg}, nil
}

// failInput rejects bad arguments without touching upstream.
func (s *Server) failInput(tool, msg string) (*mcp.CallToolResult, any, error) {
	s.logger.Warn().Str("tool", tool).Msg(msg)
	return nil, errorResult{Error: msg}, nil
}

func ok(out any) (*mcp.CallToolResult, any, error) {
	return nil, out, nil
}

// truncate caps s at n runes, appending an ellipsis when anything was cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// qualityName pulls the tier name out of Radarr's nested quality envelope.
func qualityName(q *radarr.Quality) string {
	if q == nil {
		return ""
	}
	return q.Quality.Name
}

// profileName resolves a quality profile to its display name.
func profileName(p *radarr.QualityProfile) string {
	if p == nil {
		return ""
	}
	return p.Name
}

// posterURL picks the poster artwork for a movie, preferring the remote URL.
func posterURL(images []radarr.Image) string {
	for _, img := range images {
		if img.CoverType != "poster" {
			continue
		}
		if img.RemoteURL != "" {
			return img.RemoteURL
		}
		return img.URL
	}
	return ""
}

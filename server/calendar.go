package server

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	calendarDateFormat  = "2006-01-02"
	calendarDefaultSpan = 30 * 24 * time.Hour
	calendarOverviewLen = 150
)

type getCalendarInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"start of the range as YYYY-MM-DD (default today)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"end of the range as YYYY-MM-DD (default 30 days after start)"`
}

type calendarEntry struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Year            int    `json:"year,omitempty"`
	Status          string `json:"status,omitempty"`
	Monitored       bool   `json:"monitored"`
	HasFile         bool   `json:"has_file"`
	InCinemas       string `json:"in_cinemas,omitempty"`
	PhysicalRelease string `json:"physical_release,omitempty"`
	DigitalRelease  string `json:"digital_release,omitempty"`
	QualityProfile  string `json:"quality_profile,omitempty"`
	Overview        string `json:"overview"`
}

type getCalendarResult struct {
	Success     bool            `json:"success"`
	DateRange   string          `json:"date_range"`
	MoviesCount int             `json:"movies_count"`
	Movies      []calendarEntry `json:"movies"`
}

func (s *Server) handleGetCalendar(ctx context.Context, _ *mcp.CallToolRequest, in getCalendarInput) (*mcp.CallToolResult, any, error) {
	start := in.StartDate
	if start == "" {
		start = time.Now().Format(calendarDateFormat)
	}
	startTime, err := time.Parse(calendarDateFormat, start)
	if err != nil {
		return s.failInput("get_calendar", fmt.Sprintf("invalid start_date %q: expected YYYY-MM-DD", in.StartDate))
	}

	end := in.EndDate
	if end == "" {
		end = startTime.Add(calendarDefaultSpan).Format(calendarDateFormat)
	} else if _, err := time.Parse(calendarDateFormat, end); err != nil {
		return s.failInput("get_calendar", fmt.Sprintf("invalid end_date %q: expected YYYY-MM-DD", in.EndDate))
	}

	movies, err := s.api.GetCalendar(ctx, start, end)
	if err != nil {
		return s.fail(ctx, "get_calendar", "fetching calendar failed", err)
	}

	entries := make([]calendarEntry, 0, len(movies))
	for _, m := range movies {
		entries = append(entries, calendarEntry{
			ID:              m.ID,
			Title:           m.Title,
			Year:            m.Year,
			Status:          m.Status,
			Monitored:       m.Monitored,
			HasFile:         m.HasFile,
			InCinemas:       m.InCinemas,
			PhysicalRelease: m.PhysicalRelease,
			DigitalRelease:  m.DigitalRelease,
			QualityProfile:  profileName(m.QualityProfile),
			Overview:        truncate(m.Overview, calendarOverviewLen),
		})
	}

	return ok(getCalendarResult{
		Success:     true,
		DateRange:   start + " to " + end,
		MoviesCount: len(entries),
		Movies:      entries,
	})
}

// Package radarr provides a client for the Radarr v3 REST API.
//
// The client is a thin gateway: it joins the configured base URL with the
// versioned API path, attaches the X-Api-Key header, and decodes JSON
// responses into the partially-optional record types in types.go. It
// keeps no state of its own; every read is a fresh upstream fetch and
// every mutation is a direct proxy to an upstream endpoint.
//
// Create a client once at startup and share it:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := radarr.NewClient("http://localhost:7878", "api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	movies, err := client.GetMovies(ctx)
//
// # Error Handling
//
// Non-2xx responses surface as *APIError with the status code and a
// truncated body; connection failures wrap ErrNoConnection with the
// original cause. The gateway never retries; retry policy belongs to
// callers.
package radarr

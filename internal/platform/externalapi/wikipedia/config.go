// Package wikipedia provides a client for the Wikipedia REST page summary API.
package wikipedia

import "time"

// DefaultBaseURL is the public Wikipedia REST API root.
const DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Config holds configuration for the Wikipedia API client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://en.wikipedia.org/api/rest_v1")
	UserAgent string        // User-Agent header; Wikipedia asks clients to identify themselves
	Timeout   time.Duration // HTTP request timeout
}

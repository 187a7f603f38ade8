// Package dto defines data transfer objects for the Wikipedia REST API responses.
package dto

// SummaryResponse represents the JSON response from the page/summary endpoint.
// Only the fields the client reads are decoded.
type SummaryResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

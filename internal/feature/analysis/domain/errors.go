// Package domain defines domain-level errors for the analysis feature.
package domain

import "errors"

// Domain errors for the analysis pipeline.
var (
	// ErrCompanyNameRequired is returned when the company name is empty or blank.
	// No external call is made in that case.
	ErrCompanyNameRequired = errors.New("company name is required")

	// ErrLookupFailed indicates that the reference API could not be reached
	// or answered with a non-success status.
	ErrLookupFailed = errors.New("reference lookup failed")

	// ErrEmptyExtract indicates that the reference API returned no summary text.
	ErrEmptyExtract = errors.New("reference lookup returned an empty extract")

	// ErrDisambiguation indicates that the reference API returned a disambiguation page.
	ErrDisambiguation = errors.New("reference lookup returned a disambiguation page")

	// ErrGenerationFailed wraps failures of the generative model API.
	// It is not recovered and aborts the run.
	ErrGenerationFailed = errors.New("text generation failed")
)

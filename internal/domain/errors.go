package domain

import "errors"

var (
	// ErrConfiguration is fatal at startup: missing API key, fonts, or catalog.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstreamGeneration wraps any failure of the text-generation call.
	ErrUpstreamGeneration = errors.New("draft generation failed")
	// ErrMissingDraft means a download was requested before a successful compose.
	ErrMissingDraft = errors.New("no generated draft in session")
	// ErrUnknownDesignation means a role is neither a registry key nor "Other" with text.
	ErrUnknownDesignation = errors.New("unknown designation")
	ErrInvalidRequest     = errors.New("invalid request")
)

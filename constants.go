package main

import "time"

// Route constants
const (
	RouteHome        = "/"
	RouteSuggestions = "/get_suggestions"
	RouteHealthz     = "/healthz"
	RouteStatic      = "/static"
)

// Configuration defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultRateLimitRPS    = 5
	DefaultRateLimitBurst  = 10
	DefaultStaticCacheAge  = 5 * time.Minute
	DefaultSuggestionLimit = 0 // no cap
	MaxFormMemory          = 1 << 20
)

// Error message constants
const (
	ErrorMalformedInput  = "malformed feedback"
	ErrorContradiction   = "feedback contradicts earlier guesses"
	ErrorInvalidForm     = "could not read form data"
	ErrorTooManyRequests = "Too many requests. Please slow down."
)

// Header constants
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderRequestID  = "X-Request-Id"
)

const PageTitle = "Подсказка для Wordle"

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

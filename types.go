package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"podskazka/internal/hint"
)

// App holds the server configuration and the state shared by all requests.
// Source is read-only; a fresh hint.Game is built for every request.
type App struct {
	Source          *hint.Source
	IsProduction    bool
	SuggestionLimit int           // Maximum words returned, 0 for all
	StaticCacheAge  time.Duration // max-age for /static in production
	RateLimitRPS    int
	RateLimitBurst  int
	LimiterMap      map[string]*rate.Limiter
	LimiterMutex    sync.Mutex // Protects LimiterMap
	StartTime       time.Time
}

// newApp builds an App around src using the environment for everything else.
func newApp(src *hint.Source) *App {
	return &App{
		Source:          src,
		IsProduction:    isProductionEnv(),
		SuggestionLimit: getEnvInt("SUGGESTION_LIMIT", DefaultSuggestionLimit),
		StaticCacheAge:  getEnvDuration("STATIC_CACHE_AGE", DefaultStaticCacheAge),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		LimiterMap:      make(map[string]*rate.Limiter),
		StartTime:       time.Now(),
	}
}

// envName returns the human-readable environment name.
func (app *App) envName() string {
	if app.IsProduction {
		return "production"
	}
	return "development"
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"podskazka/internal/hint"
)

func main() {
	_ = godotenv.Load()

	production := isProductionEnv()
	setupLogging(production)
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	src, err := loadSource(os.Getenv("WORDS_FILE"))
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}

	app := newApp(src)
	logInfo("Starting podskazka in %s mode", app.envName())
	logInfo("Loaded %d words from dictionary", src.Len())

	startServer(app.newRouter())
}

// loadSource reads the dictionary at path, or returns the bundled one when
// path is empty.
func loadSource(path string) (*hint.Source, error) {
	if path == "" {
		logInfo("Using bundled dictionary")
		return hint.DefaultSource(), nil
	}
	logInfo("Loading words from %s", path)
	src, err := hint.LoadSourceFile(path)
	if err != nil {
		return nil, err
	}
	if src.Len() == 0 {
		return nil, errors.New("dictionary " + path + " has no usable words")
	}
	return src, nil
}

// newRouter wires middleware, templates and routes.
func (app *App) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(app.cacheHeadersMiddleware())

	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		router.LoadHTMLGlob("dist/templates/*.html")
		router.Static(RouteStatic, "./dist/static")
	} else {
		logInfo("Serving development assets from source directories")
		router.LoadHTMLGlob("templates/*.html")
		router.Static(RouteStatic, "./static")
	}

	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteSuggestions, app.rateLimitMiddleware(), app.suggestionsHandler)
	router.POST(RouteSuggestions, app.rateLimitMiddleware(), app.suggestionsHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func startServer(router *gin.Engine) {
	port := getEnv("PORT", DefaultPort)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

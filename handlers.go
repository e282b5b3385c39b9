package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/samber/lo"

	"podskazka/internal/hint"
	"podskazka/internal/types"
)

// homeHandler renders the board page.
func (app *App) homeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":       PageTitle,
		"wordLength":  hint.WordLength,
		"wordsLoaded": app.Source.Len(),
	})
}

// suggestionsHandler builds a Game from the posted feedback and returns the
// dictionary words that still fit. Feedback arrives either as form fields
// (word=codes, one per guess) or as a JSON SuggestionRequest.
func (app *App) suggestionsHandler(c *gin.Context) {
	logger := requestLogger(c.Request.Context())
	game := hint.NewGame()

	var importErr error
	if c.ContentType() == binding.MIMEJSON {
		var req types.SuggestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn().Err(err).Msg("invalid JSON payload")
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorMalformedInput})
			return
		}
		if len(req.Guesses) == 0 {
			app.respondSuggestions(c, game, []string{})
			return
		}
		importErr = game.ImportFeedback(lo.Map(req.Guesses, func(g types.Guess, _ int) hint.Feedback {
			return normalizeFeedback(g.Word, g.Codes)
		}))
	} else {
		data, err := collectFormData(c)
		if err != nil {
			logger.Warn().Err(err).Msg("invalid form payload")
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorInvalidForm})
			return
		}
		logger.Debug().Interface("data", data).Msg("collected feedback")
		if len(data) == 0 {
			app.respondSuggestions(c, game, []string{})
			return
		}
		importErr = game.ImportUserData(data)
	}

	switch {
	case errors.Is(importErr, hint.ErrMalformedInput):
		logger.Info().Err(importErr).Msg("rejected feedback")
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorMalformedInput + ": " + importErr.Error()})
		return
	case errors.Is(importErr, hint.ErrContradictoryConstraint):
		logger.Info().Err(importErr).Msg("rejected feedback")
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Error: ErrorContradiction + ": " + importErr.Error()})
		return
	case importErr != nil:
		logger.Error().Err(importErr).Msg("failed to apply feedback")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: importErr.Error()})
		return
	}

	words := game.Suggestions(app.Source)
	logger.Debug().Str("pattern", game.Pattern()).Int("matches", len(words)).Msg("suggestions computed")
	app.respondSuggestions(c, game, words)
}

// respondSuggestions writes the word list, or the full report when asked for
// with ?report=1.
func (app *App) respondSuggestions(c *gin.Context, game *hint.Game, words []string) {
	c.Header(HeaderTotalCount, strconv.Itoa(len(words)))
	if c.Query("report") == "1" {
		c.JSON(http.StatusOK, types.NewReport(game, words, app.SuggestionLimit))
		return
	}
	c.JSON(http.StatusOK, types.Limit(words, app.SuggestionLimit))
}

// collectFormData reads word=codes pairs from the query string and the
// request body, URL-encoded or multipart.
func collectFormData(c *gin.Context) (map[string]string, error) {
	if err := c.Request.ParseMultipartForm(MaxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	data := make(map[string]string, len(c.Request.Form))
	for key, values := range c.Request.Form {
		if key == "report" || len(values) == 0 {
			continue
		}
		fb := normalizeFeedback(key, values[0])
		data[fb.Word] = fb.Codes
	}
	return data, nil
}

// normalizeFeedback trims both parts, lower-cases the word and upper-cases
// the codes.
func normalizeFeedback(word, codes string) hint.Feedback {
	return hint.Feedback{
		Word:  strings.ToLower(strings.TrimSpace(word)),
		Codes: strings.ToUpper(strings.TrimSpace(codes)),
	}
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, types.Health{
		Status:      "ok",
		Env:         app.envName(),
		WordsLoaded: app.Source.Len(),
		Uptime:      formatUptime(time.Since(app.StartTime)),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

package types

// Guess is one guessed word with its status codes, e.g. {"ветка", "BYYYB"}.
type Guess struct {
	Word  string `json:"word" binding:"required"`
	Codes string `json:"codes" binding:"required"`
}

// SuggestionRequest is the JSON form of the suggestion request. Guesses are
// applied in order.
type SuggestionRequest struct {
	Guesses []Guess `json:"guesses" binding:"dive"`
}

// Report describes the derived constraints along with the matching words.
type Report struct {
	Pattern string   `json:"pattern"`
	Present []string `json:"present"`
	Absent  []string `json:"absent"`
	Total   int      `json:"total"`
	Words   []string `json:"words"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Health struct {
	Status      string `json:"status"`
	Env         string `json:"env"`
	WordsLoaded int    `json:"words_loaded"`
	Uptime      string `json:"uptime"`
	Timestamp   string `json:"timestamp"`
}

package hint

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

//go:embed dictionary.txt
var bundledDictionary string

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Source is an ordered, duplicate-free list of candidate words. It is never
// modified after construction.
type Source struct {
	words []string
}

// NewSource returns a Source over words, keeping the first occurrence of any
// duplicate.
func NewSource(words ...string) *Source {
	return &Source{words: lo.Uniq(words)}
}

// ReadSource parses a newline-delimited word list. Lines are trimmed and
// lower-cased; anything that is not a five-letter word is skipped.
func ReadSource(r io.Reader) (*Source, error) {
	var words []string
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if !IsWord(w) {
			log.Debug().Str("word", w).Msg("skipping dictionary entry")
			skipped++
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Info().Int("skipped", skipped).Int("kept", len(words)).Msg("dictionary entries skipped")
	}
	return NewSource(words...), nil
}

// LoadSourceFile reads a word list from path.
func LoadSourceFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSource(f)
}

// DefaultSource returns the bundled dictionary. It is parsed once and shared.
func DefaultSource() *Source {
	defaultOnce.Do(func() {
		src, err := ReadSource(strings.NewReader(bundledDictionary))
		if err != nil {
			log.Error().Err(err).Msg("failed to parse bundled dictionary")
			src = NewSource()
		}
		defaultSource = src
	})
	return defaultSource
}

// Words returns a copy of the words in order.
func (s *Source) Words() []string {
	return slices.Clone(s.words)
}

// Len returns the number of words.
func (s *Source) Len() int {
	return len(s.words)
}

// Contains reports whether word is in the source.
func (s *Source) Contains(word string) bool {
	return slices.Contains(s.words, word)
}

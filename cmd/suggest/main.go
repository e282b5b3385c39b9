// Command suggest prints the dictionary words that fit a set of Wordle
// feedback rows given on the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"podskazka/internal/hint"
	"podskazka/internal/types"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		dictPath    string
		limit       int
		showPattern bool
		jsonOutput  bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [flags] word=CODES...",
		Short: "List dictionary words consistent with Wordle feedback",
		Long: `Each argument is one guessed word and its feedback, one code per letter:
  B  letter is not in the answer
  Y  letter is in the answer at another position
  G  letter is at this position`,
		Example: `  suggest ветка=BYYYB сокол=YBYBB
  suggest --pattern --limit 10 крона=BBBBB
  suggest --dict words.txt --json шалаш=GBBBB`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			feedback, err := parseArgs(args)
			if err != nil {
				return err
			}

			src := hint.DefaultSource()
			if dictPath != "" {
				if src, err = hint.LoadSourceFile(dictPath); err != nil {
					return err
				}
			}
			log.Debug().Int("words", src.Len()).Str("dict", dictPath).Msg("dictionary loaded")

			game := hint.NewGame()
			if err := game.ImportFeedback(feedback); err != nil {
				return err
			}
			words := game.Suggestions(src)

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(types.NewReport(game, words, limit))
			}
			if showPattern {
				fmt.Fprintln(out, game.Pattern())
			}
			for _, w := range types.Limit(words, limit) {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dictPath, "dict", "d", "", "dictionary file, one word per line (default: bundled list)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most N words (0 prints all)")
	cmd.Flags().BoolVarP(&showPattern, "pattern", "p", false, "print the derived pattern before the words")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print a JSON report instead of plain words")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// parseArgs splits word=CODES arguments, keeping their order.
func parseArgs(args []string) ([]hint.Feedback, error) {
	for _, arg := range args {
		if !strings.Contains(arg, "=") {
			return nil, fmt.Errorf("%w: argument %q is not word=CODES", hint.ErrMalformedInput, arg)
		}
	}
	return lo.Map(args, func(arg string, _ int) hint.Feedback {
		word, codes, _ := strings.Cut(arg, "=")
		return hint.Feedback{
			Word:  strings.ToLower(strings.TrimSpace(word)),
			Codes: strings.ToUpper(strings.TrimSpace(codes)),
		}
	}), nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"grimoire/core/cache"
	"grimoire/core/config"
	"grimoire/core/database"
	"grimoire/core/logger"
	"grimoire/core/storage"
	"grimoire/feature/words"
	"grimoire/feature/words/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Look up a word from the command line",
	Long:  `Runs the same lookup as GET /words/{word}: cache, database, then enrichment. Enriched words are persisted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		refresh, _ := cmd.Flags().GetBool("refresh")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		store, err := cache.New(cfg.Cache)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer store.Close()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		ctx, cancel := ctxTimeout(cmd.Context(), cfg.Enrichment.GenerativeTimeoutSeconds+30)
		defer cancel()

		svc, err := newWordService(ctx, cfg, logg, db, store, client, nil)
		if err != nil {
			return err
		}

		lookup := svc.Lookup
		if refresh {
			lookup = svc.Refresh
		}
		logg.Info("Looking up word...", zap.String("word", args[0]), zap.Bool("refresh", refresh))
		result, err := lookup(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if result.Status == words.StatusNotFound {
				return enc.Encode(map[string]any{"word": args[0], "status": result.Status, "suggestions": result.Suggestions})
			}
			return enc.Encode(result.Record)
		}
		printLookup(os.Stdout, result)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("json", false, "Print the raw JSON record")
	lookupCmd.Flags().Bool("refresh", false, "Re-enrich the word, replacing the stored entry")
}

const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

func printLookup(w io.Writer, result *words.LookupResult) {
	if result.Status == words.StatusNotFound {
		fmt.Fprintf(w, "\n%sWord not found%s\n", colorRed, colorReset)
		if len(result.Suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s\n", strings.Join(result.Suggestions, ", "))
		}
		return
	}

	r := result.Record
	fmt.Fprintln(w, "\n--- Word Entry ---")
	fmt.Fprintf(w, "Word:           %s\n", r.Word)
	if r.Phonetic != nil {
		fmt.Fprintf(w, "Pronunciation:  %s\n", r.Phonetic.IPA)
	}
	if m := r.LearningMetadata; m != nil {
		fmt.Fprintf(w, "CEFR:           %s\n", orDash(string(m.CEFRLevel)))
		if m.FrequencyRank > 0 {
			fmt.Fprintf(w, "Frequency:      #%d (%s)\n", m.FrequencyRank, m.FrequencyBand)
		}
	}
	fmt.Fprintf(w, "Cache:          %s\n", result.CacheStatus)

	color := colorGreen
	if pct := r.DataCompleteness.CompletenessPercentage; pct < 50 {
		color = colorRed
	} else if pct < 100 {
		color = colorYellow
	}
	fmt.Fprintf(w, "Completeness:   %s%d%%%s\n", color, r.DataCompleteness.CompletenessPercentage, colorReset)
	if len(r.DataCompleteness.MissingFields) > 0 {
		fmt.Fprintf(w, "Missing:        %s\n", strings.Join(r.DataCompleteness.MissingFields, ", "))
	}
	if !result.Persisted {
		fmt.Fprintf(w, "%sNot persisted, the entry will be enriched again next time%s\n", colorYellow, colorReset)
	}

	fmt.Fprintln(w, "\nDefinitions:")
	for i, d := range r.Definitions {
		fmt.Fprintf(w, "%d. (%s) %s\n", i+1, d.PartOfSpeech, d.Definition)
		for _, ex := range d.Examples {
			fmt.Fprintf(w, "     \"%s\" [%s]\n", ex.ExampleText, ex.ContextType)
		}
	}

	if g := r.GrammaticalInfo; g != nil && g.Irregularities.Any() {
		fmt.Fprintln(w, "\nIrregular forms:")
		for _, n := range g.Irregularities.Notes {
			fmt.Fprintf(w, "- %s\n", n)
		}
	}

	if len(r.RelatedWords) > 0 {
		fmt.Fprintln(w, "\nRelated:")
		for _, rel := range r.RelatedWords {
			fmt.Fprintf(w, "- %-12s %-10s %.2f\n", rel.Word, rel.Relationship, rel.Strength)
		}
	}
	fmt.Fprintln(w, "------------------")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

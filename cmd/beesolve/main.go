// Package main provides the CLI entrypoint for beesolve.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/beesolve/beesolve/internal/browse"
	"github.com/beesolve/beesolve/internal/config"
	"github.com/beesolve/beesolve/internal/dictionary"
	"github.com/beesolve/beesolve/internal/model"
	"github.com/beesolve/beesolve/internal/puzzle"
	"github.com/beesolve/beesolve/internal/report"
	"github.com/beesolve/beesolve/internal/solver"
	"github.com/beesolve/beesolve/internal/store"
)

const appShortName = "beesolve"

const defaultPuzzleLetters = 7

var (
	solveDict   string
	solveFold   bool
	solvePlain  bool
	solveNoSave bool

	historySince  string
	historyLast   int
	historyLetter string

	puzzleDict    string
	puzzleLetters int
	puzzleSeed    int64
	puzzleSolve   bool

	browseDict string
	browseFold bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logErrf("%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "beesolve <required> <extra>",
		Short:         "Finds answers to the spelling bee puzzle",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolveCmd,
	}

	rootCmd.Flags().StringVarP(&solveDict, "dict", "d", dictionary.DefaultPath, "path to a dictionary file (one word per line)")
	rootCmd.Flags().BoolVar(&solveFold, "fold", false, "lowercase puzzle letters and candidates before solving")
	rootCmd.Flags().BoolVar(&solvePlain, "plain", false, "print accepted words only, without scores")
	rootCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "do not record the solve in history")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPuzzleCmd())
	rootCmd.AddCommand(newBrowseCmd())

	return rootCmd
}

func runSolveCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &solveDict, fileCfg.Solve.Dict)
	applyBoolConfig(cmd, "fold", &solveFold, fileCfg.Solve.Fold)
	applyBoolConfig(cmd, "plain", &solvePlain, fileCfg.Solve.Plain)

	save := !solveNoSave
	if fileCfg.Solve.Save != nil && !cmd.Flags().Changed("no-save") {
		save = *fileCfg.Solve.Save
	}

	cfg, err := parsePuzzleArgs(args, solveFold)
	if err != nil {
		return err
	}
	cfg.DictPath = solveDict
	cfg.Plain = solvePlain
	cfg.Save = save

	words, err := dictionary.Load(cfg.DictPath)
	if err != nil {
		return dictLoadError(err)
	}
	if cfg.Fold {
		words = dictionary.Fold(words)
	}

	startedAt := time.Now()
	answers := solver.FindAll(words, cfg.Required, cfg.Extra)
	durationMs := time.Since(startedAt).Milliseconds()

	if cfg.Plain {
		if err := report.RenderPlain(os.Stdout, answers); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		useColor := report.ShouldUseColor(os.Stdout, false)
		if err := report.RenderAnswers(os.Stdout, answers, useColor); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if cfg.Save {
		saveSolve(cfg, startedAt, durationMs, len(words), answers)
	}
	return nil
}

// saveSolve records the run in history. Failures are reported but never
// fail the solve itself.
func saveSolve(cfg model.SolveConfig, solvedAt time.Time, durationMs int64, candidates int, answers []solver.Answer) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	rec := model.SolveRecord{
		SolvedAt:       solvedAt,
		Required:       string(cfg.Required),
		Extra:          cfg.Extra,
		DictPath:       cfg.DictPath,
		CandidateCount: candidates,
		AnswerCount:    len(answers),
		DurationMs:     durationMs,
	}
	for _, ans := range answers {
		if ans.Pangram {
			rec.PangramCount++
		}
		if ans.Score > rec.BestScore {
			rec.BestScore = ans.Score
			rec.BestWord = ans.Word
		}
	}

	if _, err := st.InsertSolve(context.Background(), rec, answers); err != nil {
		logErrf("failed to save solve: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past solves",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N solves")
	cmd.Flags().StringVar(&historyLetter, "letter", "", "filter by required letter")
	return cmd
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLetter != "" && len([]rune(historyLetter)) != 1 {
		return fmt.Errorf("--letter must be a single character")
	}

	cfg := model.HistoryConfig{
		Since:  sinceTime,
		Last:   historyLast,
		Letter: historyLetter,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	rep, err := report.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := report.RenderHistory(os.Stdout, rep); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Draw a random puzzle from the dictionary",
		Args:  cobra.NoArgs,
		RunE:  runPuzzleCmd,
	}
	cmd.Flags().StringVarP(&puzzleDict, "dict", "d", dictionary.DefaultPath, "path to a dictionary file (one word per line)")
	cmd.Flags().IntVar(&puzzleLetters, "letters", defaultPuzzleLetters, "distinct letters in the puzzle")
	cmd.Flags().Int64Var(&puzzleSeed, "seed", 0, "random seed (0 uses the current time)")
	cmd.Flags().BoolVar(&puzzleSolve, "solve", false, "also print the puzzle's answers")
	return cmd
}

func runPuzzleCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &puzzleDict, fileCfg.Solve.Dict)
	applyIntConfig(cmd, "letters", &puzzleLetters, fileCfg.Puzzle.Letters)

	words, err := dictionary.Load(puzzleDict)
	if err != nil {
		return dictLoadError(err)
	}
	// Proper nouns and possessives make poor puzzles.
	candidates := dictionary.Filter(dictionary.Fold(words), dictionary.ASCIILower)

	gen := puzzle.New()
	if cmd.Flags().Changed("seed") {
		gen = puzzle.NewSeeded(puzzleSeed)
	}
	p, err := gen.Draw(candidates, puzzleLetters)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Puzzle: [%c] %s\n", p.Required, p.Extra); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !puzzleSolve {
		return nil
	}
	answers := solver.FindAll(candidates, p.Required, p.Extra)
	useColor := report.ShouldUseColor(os.Stdout, false)
	if err := report.RenderAnswers(os.Stdout, answers, useColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <required> <extra>",
		Short: "Browse answers interactively",
		Args:  cobra.ExactArgs(2),
		RunE:  runBrowseCmd,
	}
	cmd.Flags().StringVarP(&browseDict, "dict", "d", dictionary.DefaultPath, "path to a dictionary file (one word per line)")
	cmd.Flags().BoolVar(&browseFold, "fold", false, "lowercase puzzle letters and candidates before solving")
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &browseDict, fileCfg.Solve.Dict)
	applyBoolConfig(cmd, "fold", &browseFold, fileCfg.Solve.Fold)

	cfg, err := parsePuzzleArgs(args, browseFold)
	if err != nil {
		return err
	}

	words, err := dictionary.Load(browseDict)
	if err != nil {
		return dictLoadError(err)
	}
	if cfg.Fold {
		words = dictionary.Fold(words)
	}
	answers := solver.FindAll(words, cfg.Required, cfg.Extra)

	browseModel := browse.NewModel(cfg.Required, cfg.Extra, answers)
	program := tea.NewProgram(browseModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

// parsePuzzleArgs validates the positional puzzle parameters. The
// required argument must be a single character; extras may be empty,
// duplicated, or overlap with the required letter.
func parsePuzzleArgs(args []string, fold bool) (model.SolveConfig, error) {
	required := args[0]
	extra := args[1]
	if fold {
		required = strings.ToLower(required)
		extra = strings.ToLower(extra)
	}
	runes := []rune(required)
	if len(runes) != 1 {
		return model.SolveConfig{}, fmt.Errorf("required letter must be a single character, got %q", args[0])
	}
	return model.SolveConfig{
		Required: runes[0],
		Extra:    extra,
		Fold:     fold,
	}, nil
}

func dictLoadError(err error) error {
	return fmt.Errorf("%s error: Failed to load dictionary (%v)", appShortName, err)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# beesolve configuration
# Uncomment a value to enable it. CLI flags override config values.

[solve]
# dict = %q   # Dictionary file, one word per line
# fold = false                   # Lowercase letters and candidates before solving
# plain = false                  # Print accepted words only, without scores
# save = true                    # Record solves in history

[puzzle]
# letters = %d                    # Distinct letters in a generated puzzle
`,
		dictionary.DefaultPath,
		defaultPuzzleLetters,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

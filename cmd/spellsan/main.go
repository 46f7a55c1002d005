// Package main provides the CLI entrypoint for spellsan.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spellsan/spellsan/internal/config"
	"github.com/spellsan/spellsan/internal/dashboard"
	"github.com/spellsan/spellsan/internal/model"
	"github.com/spellsan/spellsan/internal/progress"
	"github.com/spellsan/spellsan/internal/report"
	"github.com/spellsan/spellsan/internal/scramble"
	"github.com/spellsan/spellsan/internal/store"
	"github.com/spellsan/spellsan/internal/tui"
	"github.com/spellsan/spellsan/internal/wordlist"
)

const (
	defaultMode     = "random"
	defaultTimer    = 45
	defaultAutosave = 10
	defaultLast     = 10
)

var (
	practiceMode     string
	practiceLetter   string
	practiceTimer    int
	practiceAutosave int
	practiceWordList string

	progressPlain bool
	progressLast  int

	resetForce bool

	wordlistPath  string
	wordlistForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spellsan",
		Short:         "TUI spelling trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "practice mode: random or alphabet")
	rootCmd.Flags().StringVar(&practiceLetter, "letter", "", "letter filter (implies alphabet mode)")
	rootCmd.Flags().IntVar(&practiceTimer, "timer", defaultTimer, "seconds per word")
	rootCmd.Flags().IntVar(&practiceAutosave, "autosave", defaultAutosave, "seconds between progress autosaves")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "word list path")

	rootCmd.AddCommand(newProgressCmd())
	rootCmd.AddCommand(newLettersCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordlistCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyStringConfig(cmd, "letter", &practiceLetter, fileCfg.Practice.Letter)
	applyIntConfig(cmd, "timer", &practiceTimer, fileCfg.Practice.TimerSeconds)
	applyIntConfig(cmd, "autosave", &practiceAutosave, fileCfg.Practice.SaveSeconds)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordListPath)

	cfg, err := buildPracticeConfig()
	if err != nil {
		return err
	}

	corpus, err := wordlist.LoadWords(cfg.WordListPath)
	if err != nil {
		return wordListLoadError(cfg.WordListPath, err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	tracker := progress.NewTracker(st)
	selector := progress.NewSelector()
	record := tracker.Load(context.Background())
	words := selector.SelectPracticeSet(record, corpus, cfg.Mode, cfg.Letter)
	if len(words) == 0 {
		return fmt.Errorf("no words available for letter %q", strings.ToUpper(cfg.Letter))
	}

	m := tui.NewModel(cfg, tracker, scramble.New(), words)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildPracticeConfig() (model.Config, error) {
	mode := model.Mode(strings.ToLower(strings.TrimSpace(practiceMode)))
	letter := strings.TrimSpace(practiceLetter)
	if letter != "" {
		mode = model.ModeAlphabet
	}
	switch mode {
	case model.ModeRandom, model.ModeAlphabet:
	default:
		return model.Config{}, fmt.Errorf("--mode must be random or alphabet")
	}
	if mode == model.ModeAlphabet {
		if len(letter) != 1 || !isLetter(letter[0]) {
			return model.Config{}, fmt.Errorf("--letter must be a single letter A-Z")
		}
	}
	if practiceTimer <= 0 {
		return model.Config{}, fmt.Errorf("--timer must be > 0")
	}
	if practiceAutosave <= 0 {
		return model.Config{}, fmt.Errorf("--autosave must be > 0")
	}
	path := practiceWordList
	if path == "" {
		path = config.DefaultWordListPath()
	}
	return model.Config{
		Mode:         mode,
		Letter:       letter,
		TimerSeconds: practiceTimer,
		SaveSeconds:  practiceAutosave,
		WordListPath: path,
	}, nil
}

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show progress dashboard",
		Args:  cobra.NoArgs,
		RunE:  runProgressCmd,
	}
	cmd.Flags().BoolVar(&progressPlain, "plain", false, "print a plain report instead of the dashboard")
	cmd.Flags().IntVar(&progressLast, "last", defaultLast, "sessions to show in the plain report")
	return cmd
}

func runProgressCmd(cmd *cobra.Command, _ []string) error {
	corpus := loadCorpusOrStarter()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if progressPlain {
		record := st.Load(context.Background())
		rep := report.Build(record, corpus)
		out := cmd.OutOrStdout()
		if err := report.RenderSummary(out, rep.Record); err != nil {
			return err
		}
		if err := report.RenderTrend(out, rep.Record, terminalWidth()); err != nil {
			return err
		}
		if err := report.RenderLetterTable(out, rep.Letters); err != nil {
			return err
		}
		return report.RenderSessions(out, rep.Record, progressLast)
	}

	m := dashboard.NewModel(st, corpus)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newLettersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "letters",
		Short: "Show per-letter mastery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus := loadCorpusOrStarter()
			st, err := store.Open(config.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
			record := st.Load(context.Background())
			return report.RenderLetterTable(cmd.OutOrStdout(),
				progress.AlphabetProgress(record, corpus))
		},
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

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Write the starter word list",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := wordlistPath
			if path == "" {
				path = config.DefaultWordListPath()
			}
			if err := wordlist.WriteStarter(path, wordlistForce); err != nil {
				return err
			}
			logErrf("Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&wordlistPath, "path", "", "output path (default: XDG config)")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite an existing word list")
	return cmd
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all progress",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !resetForce {
				return fmt.Errorf("refusing to delete progress without --force")
			}
			st, err := store.Open(config.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
			if err := progress.NewTracker(st).Reset(context.Background()); err != nil {
				return err
			}
			logErrln("Progress reset.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&resetForce, "force", false, "confirm deletion")
	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export progress as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(config.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
			data, err := progress.NewTracker(st).Export(context.Background())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			logErrf("Wrote %s\n", args[0])
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a progress JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import: %w", err)
			}
			st, err := store.Open(config.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
			if err := progress.NewTracker(st).Import(context.Background(), data); err != nil {
				return err
			}
			logErrln("Progress imported.")
			return nil
		},
	}
}

// loadCorpusOrStarter falls back to the embedded corpus so read-only views
// still work before a word list is installed.
func loadCorpusOrStarter() []string {
	path := practiceWordList
	if path == "" {
		path = config.DefaultWordListPath()
	}
	corpus, err := wordlist.LoadWords(path)
	if err != nil {
		return wordlist.StarterWords()
	}
	return corpus
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# spellsan configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q            # Practice mode: random or alphabet
# letter = ""          # Letter filter for alphabet mode
# timer = %d           # Seconds per word
# autosave = %d        # Seconds between progress autosaves
# wordlist = ""        # Word list path (default: XDG config)
`,
		defaultMode,
		defaultTimer,
		defaultAutosave,
	)
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		"Install the starter list: spellsan wordlist",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package main provides the CLI entrypoint for chatlens.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avasilev/chatlens/internal/analysis"
	"github.com/avasilev/chatlens/internal/chatlog"
	"github.com/avasilev/chatlens/internal/config"
	"github.com/avasilev/chatlens/internal/dashboard"
	"github.com/avasilev/chatlens/internal/model"
	"github.com/avasilev/chatlens/internal/report"
	"github.com/avasilev/chatlens/internal/sentiment"
	"github.com/avasilev/chatlens/internal/wordlist"
)

const (
	defaultTopSenders = 10
	defaultTopWords   = 20
	defaultTopEmoji   = 10
)

var (
	flagUser       string
	flagStopwords  string
	flagTopSenders int
	flagTopWords   int
	flagTopEmoji   int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chatlens <export-file>",
		Short:         "Chat export analyzer",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "analyze a single sender (default: all)")
	rootCmd.PersistentFlags().StringVar(&flagStopwords, "stopwords", "", "path to a stop-word list")
	rootCmd.PersistentFlags().IntVar(&flagTopSenders, "top-senders", defaultTopSenders, "busiest senders to rank")
	rootCmd.PersistentFlags().IntVar(&flagTopWords, "top-words", defaultTopWords, "common words to rank")
	rootCmd.PersistentFlags().IntVar(&flagTopEmoji, "top-emoji", defaultTopEmoji, "emoji to rank")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newSendersCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDashboardCmd(cmd *cobra.Command, args []string) error {
	msgs, opts, sender, stop, err := loadAnalysisInputs(cmd, args[0])
	if err != nil {
		return err
	}
	m := dashboard.NewModel(msgs, stop, sentiment.New(), sender, opts)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <export-file>",
		Short: "Print a plain-text report",
		Args:  cobra.ExactArgs(1),
		RunE:  runReportCmd,
	}
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	msgs, opts, sender, stop, err := loadAnalysisInputs(cmd, args[0])
	if err != nil {
		return err
	}
	data := report.Build(sender, msgs, stop, sentiment.New(), opts)
	out := cmd.OutOrStdout()
	return report.Render(out, data, report.TerminalWidth(os.Stdout))
}

func newSendersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "senders <export-file>",
		Short: "List senders found in an export",
		Args:  cobra.ExactArgs(1),
		RunE:  runSendersCmd,
	}
}

func runSendersCmd(cmd *cobra.Command, args []string) error {
	msgs, err := parseExportFile(args[0])
	if err != nil {
		return err
	}
	for _, sender := range analysis.Senders(msgs) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), sender); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
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

func loadAnalysisInputs(cmd *cobra.Command, exportPath string) ([]model.Message, report.Options, string, wordlist.Set, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, report.Options{}, "", nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "user", &flagUser, fileCfg.Analysis.User)
	applyStringConfig(cmd, "stopwords", &flagStopwords, fileCfg.Analysis.Stopwords)
	applyIntConfig(cmd, "top-senders", &flagTopSenders, fileCfg.Analysis.TopSenders)
	applyIntConfig(cmd, "top-words", &flagTopWords, fileCfg.Analysis.TopWords)
	applyIntConfig(cmd, "top-emoji", &flagTopEmoji, fileCfg.Analysis.TopEmoji)

	opts := report.Options{
		TopSenders: flagTopSenders,
		TopWords:   flagTopWords,
		TopEmoji:   flagTopEmoji,
	}
	if err := validateOptions(opts); err != nil {
		return nil, report.Options{}, "", nil, err
	}

	msgs, err := parseExportFile(exportPath)
	if err != nil {
		return nil, report.Options{}, "", nil, err
	}

	sender := strings.TrimSpace(flagUser)
	if sender == "" {
		sender = analysis.Overall
	}
	if err := validateSender(sender, msgs); err != nil {
		return nil, report.Options{}, "", nil, err
	}

	stop, err := resolveStopwords(flagStopwords)
	if err != nil {
		return nil, report.Options{}, "", nil, err
	}
	return msgs, opts, sender, stop, nil
}

func parseExportFile(path string) ([]model.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	msgs, err := chatlog.ParseExport(data)
	if err != nil {
		return nil, exportParseError(path, err)
	}
	return msgs, nil
}

func exportParseError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to parse export: %v", err),
		fmt.Sprintf("file: %s", path),
		"Expected a WhatsApp text export, e.g.:",
		`  12/5/23, 9:41 AM - Alice: hello`,
		`  [12/05/2023, 09:41:07] Alice: hello`,
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func validateSender(sender string, msgs []model.Message) error {
	if sender == analysis.Overall {
		return nil
	}
	for _, s := range analysis.Senders(msgs) {
		if s == sender {
			return nil
		}
	}
	return fmt.Errorf("unknown sender %q (list senders with: chatlens senders <file>)", sender)
}

func validateOptions(opts report.Options) error {
	if opts.TopSenders <= 0 {
		return fmt.Errorf("--top-senders must be > 0")
	}
	if opts.TopWords <= 0 {
		return fmt.Errorf("--top-words must be > 0")
	}
	if opts.TopEmoji <= 0 {
		return fmt.Errorf("--top-emoji must be > 0")
	}
	return nil
}

// resolveStopwords picks the stop-word list: explicit flag path, then the
// default XDG file if present, then the embedded list.
func resolveStopwords(path string) (wordlist.Set, error) {
	if path != "" {
		set, err := wordlist.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load stop words: %w", err)
		}
		return set, nil
	}
	defaultPath := config.DefaultStopwordsPath()
	if _, err := os.Stat(defaultPath); err == nil {
		set, err := wordlist.Load(defaultPath)
		if err != nil {
			logErrf("failed to load %s: %v; using built-in stop words\n", defaultPath, err)
			return wordlist.Default(), nil
		}
		return set, nil
	}
	return wordlist.Default(), nil
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
	return fmt.Sprintf(`# chatlens configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# user = ""               # Analyze a single sender (empty = all)
# stopwords = ""          # Path to a stop-word list
# top-senders = %d        # Busiest senders to rank
# top-words = %d          # Common words to rank
# top-emoji = %d          # Emoji to rank
`,
		defaultTopSenders,
		defaultTopWords,
		defaultTopEmoji,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package cli implements the fieldsort command line.
//
// The root command is the Zim custom tool entry point: it takes the
// selection as MARKED and optionally PLAIN, writes the text to paste back
// on stdout and reports the outcome through the exit status.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driven/config/env"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driven/config/file"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driven/keys"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driven/locale"
	"github.com/shawnhcorey/Field-Sort/internal/adapters/driving/tui"
	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driven"
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driving"
	"github.com/shawnhcorey/Field-Sort/internal/core/services"
	"github.com/shawnhcorey/Field-Sort/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services wired by the root command before any command runs.
var (
	sortService     driving.SortService
	settingsService driving.SettingsService
	localeProvider  *locale.Provider
	configStore     *env.Store
	currentSettings *domain.Settings
)

// Hooks replaced in tests.
var (
	lookupEnv  = os.LookupEnv
	getenv     = os.Getenv
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
	newPrompter = func() driven.KeySource {
		return tui.NewPrompter(
			tea.WithInputTTY(),
			tea.WithOutput(os.Stderr),
			tea.WithAltScreen(),
		)
	}
)

var (
	verbose     bool
	configDir   string
	keySpecs    []string
	noKeys      bool
	interactive bool
	strict      bool
	requireTTY  bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldsort [flags] MARKED [PLAIN]",
	Short: "Sort lines by their __field__ values",
	Long: `Sorts the lines of a Zim selection by the values marked as __field__.

MARKED is the selection with markup and is what gets reordered. PLAIN is the
same selection without markup and is used when sorting by the entire line;
when omitted it is derived by removing the field delimiters.

The sorted text is written to stdout. If the sort is cancelled the original
text is written unchanged and the exit status is 1; internal errors exit
with 255.

Sort keys are FIELD[:TYPE[:ORDER[:LOCALE]]], for example:
  fieldsort -k 2:number:desc -k 1 "$MARKED" "$PLAIN"
  fieldsort -k line:text:asc:de "$MARKED"

Without --key the key dialog is shown when a terminal is available,
otherwise the configured default keys are used.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSort,
}

func init() {
	// Assigned here rather than in the literal: bootstrap refers to rootCmd.
	rootCmd.PersistentPreRunE = bootstrap

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.fieldsort)")

	rootCmd.Flags().StringArrayVarP(&keySpecs, "key", "k", nil, "sort key FIELD[:TYPE[:ORDER[:LOCALE]]], repeatable")
	rootCmd.Flags().BoolVar(&noKeys, "no-keys", false, "sort with no keys, keeping the input order")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", true, "show the key dialog when a terminal is available")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail when MARKED and PLAIN have different line counts")
	rootCmd.Flags().BoolVar(&requireTTY, "require-tty", false, "cancel instead of using default keys when no terminal is available")
	rootCmd.MarkFlagsMutuallyExclusive("key", "no-keys")

	// cmd.Print writes to stderr unless an output is set.
	rootCmd.SetOut(os.Stdout)
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCancelled):
		logger.Info("Cancelled")
	default:
		logger.Error("%v", err)
	}
	return int(domain.StatusFor(err))
}

// bootstrap loads the configuration and wires the services. When the root
// sort cannot start, the marked text is echoed so the selection survives.
func bootstrap(cmd *cobra.Command, args []string) error {
	err := wire(cmd)
	if err != nil && cmd == rootCmd && len(args) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), args[0])
	}
	return err
}

func wire(cmd *cobra.Command) error {
	logger.SetVerbose(verbose)

	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	store, err := env.NewStore(fileStore, fileStore.Dir(), env.WithLookup(lookupEnv))
	if err != nil {
		return fmt.Errorf("loading %s: %w", env.DotEnvFile, err)
	}

	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	provider := locale.NewProvider(locale.Options{
		Override: settings.Locale,
		Extra:    settings.ExtraLocales,
		Getenv:   getenv,
	})

	configStore = store
	settingsService = settingsSvc
	currentSettings = settings
	localeProvider = provider
	sortService = services.NewSortService(provider,
		services.WithKeySource(selectKeySource(cmd, settings)),
		services.WithDefaultKeys(settings.DefaultKeys),
	)
	return nil
}

// selectKeySource decides where keys come from when none are given.
func selectKeySource(cmd *cobra.Command, settings *domain.Settings) driven.KeySource {
	wantDialog := settings.Interactive
	if f := cmd.Flags().Lookup("interactive"); f != nil && f.Changed {
		wantDialog = interactive
	}

	switch {
	case wantDialog && isTerminal():
		logger.Debug("Key source: dialog")
		return newPrompter()
	case wantDialog && requireTTY:
		logger.Warn("No terminal available for the key dialog")
		return keys.NewCancelled()
	default:
		logger.Debug("Key source: %d default keys", len(settings.DefaultKeys))
		return keys.NewStatic(settings.DefaultKeys)
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	if sortService == nil {
		return errors.New("sort service not configured")
	}

	marked := args[0]
	plain := domain.StripFieldMarkers(marked)
	if len(args) > 1 {
		plain = args[1]
	}
	out := cmd.OutOrStdout()

	req := domain.SortRequest{
		Marked: marked,
		Plain:  plain,
		Strict: strict,
	}
	if !cmd.Flags().Changed("strict") && currentSettings != nil {
		req.Strict = currentSettings.Strict
	}

	switch {
	case noKeys:
		req.Keys = []domain.SortKey{}
	case len(keySpecs) > 0:
		parsed, err := domain.ParseSortKeys(keySpecs)
		if err != nil {
			fmt.Fprint(out, marked)
			return fmt.Errorf("invalid --key: %w", err)
		}
		req.Keys = parsed
	}

	result, err := sortService.Sort(cmd.Context(), req)
	if err != nil {
		fmt.Fprint(out, marked)
		return fmt.Errorf("sort failed: %w", err)
	}

	fmt.Fprint(out, result.Output)
	if result.Cancelled() {
		return domain.ErrCancelled
	}
	return nil
}

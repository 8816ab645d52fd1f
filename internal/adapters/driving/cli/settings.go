package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shawnhcorey/Field-Sort/internal/adapters/driven/config/env"
	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used when sorting.

Settings are stored in config.toml in the configuration directory. Any
setting can be overridden with an environment variable named FIELDSORT_
followed by the key in upper case with dots replaced by underscores, for
example FIELDSORT_SORT_LOCALE. Variables may also be put in a .env file
next to config.toml.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Keys:
  sort.locale         locale used for new keys; empty uses the environment,
                      "none" disables locale-aware sorting
  sort.extra_locales  comma separated locales offered in the key dialog
  sort.default_keys   comma separated sort keys, e.g. "2:number:desc,1"
  sort.strict         true or false
  ui.interactive      true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Sort]")
	cmd.Printf("  Locale: %s\n", describeLocale(settings.Locale))
	cmd.Printf("  Extra locales: %s\n", describeList(settings.LocaleStrings()))
	cmd.Printf("  Default keys: %s\n", describeList(settings.DefaultKeySpecs()))
	cmd.Printf("  Strict: %t\n", settings.Strict)
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Interactive: %t\n", settings.Interactive)
	cmd.Println()

	if configStore != nil {
		overrides := configStore.Overrides(settingsService.Keys())
		if len(overrides) > 0 {
			cmd.Println("[Environment]")
			names := make([]string, 0, len(overrides))
			for name := range overrides {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				cmd.Printf("  %s=%s\n", name, overrides[name])
			}
			cmd.Println()
		}
	}

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := strings.TrimSpace(args[0]), args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrUnknownSetting) {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("Set %s = %s\n", key, value)
	if configStore != nil {
		name := env.VarName(key)
		if _, overridden := configStore.Overrides([]string{key})[name]; overridden {
			cmd.Printf("Note: %s is overridden by %s\n", key, name)
		}
	}
	return nil
}

func describeLocale(l string) string {
	if l == "" {
		return "(environment)"
	}
	return l
}

func describeList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

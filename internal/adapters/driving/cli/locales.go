package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the locales available for sort keys",
	Long: `Lists the locales a sort key can use. The active locale, marked with *,
comes from sort.locale or else LC_ALL, LC_COLLATE or LANG. More can be
offered with sort.extra_locales.`,
	Args: cobra.NoArgs,
	RunE: runLocales,
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

func runLocales(cmd *cobra.Command, _ []string) error {
	if localeProvider == nil {
		return errors.New("locale provider not configured")
	}

	active := localeProvider.Active()
	for _, l := range localeProvider.Locales() {
		marker := " "
		if l == active {
			marker = "*"
		}
		cmd.Printf("%s %-12s %s\n", marker, l.String(), localeProvider.Name(l))
	}
	return nil
}
